package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// handleTick advances the engine by one second and fires any alerts the
// new state warrants.
func (c *Console) handleTick() (tea.Model, tea.Cmd) {
	c.engine.Tick()

	snap := c.engine.Snapshot()

	if msg := c.notifier.Observe(snap); msg != "" {
		slog.Info("section alert",
			slog.String("section", snap.CurrentSection.Name),
			slog.String("level", string(snap.AlertLevel)),
			slog.String("message", msg),
		)
	}

	return c, tick()
}

// onSectionChange runs the per-section side effects after a navigation.
func (c *Console) onSectionChange() {
	snap := c.engine.Snapshot()

	if snap.CurrentSection.ID == c.lastSectionID {
		return
	}

	c.lastSectionID = snap.CurrentSection.ID
	c.notifier.Reset()

	sectionCmd := c.cfg.Settings.SectionCmd
	if sectionCmd == "" {
		return
	}

	section := snap.CurrentSection

	go func() {
		if err := RunSectionCmd(sectionCmd, section); err != nil {
			slog.Error("section_cmd failed", slog.Any("error", err))
		}
	}()
}

func (c *Console) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error

	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		if c.engine.Snapshot().IsRunning {
			err = c.engine.Pause()
		} else {
			err = c.engine.Start()
		}

	case key.Matches(msg, defaultKeymap.next):
		err = c.engine.NextSection()
		if err == nil {
			c.onSectionChange()
		}

	case key.Matches(msg, defaultKeymap.previous):
		err = c.engine.PreviousSection()
		if err == nil {
			c.onSectionChange()
		}

	case key.Matches(msg, defaultKeymap.stop):
		err = c.engine.Stop()

	case key.Matches(msg, defaultKeymap.reset):
		err = c.engine.Reset()

	case key.Matches(msg, defaultKeymap.endSession):
		err = c.engine.EndSession()

	case key.Matches(msg, defaultKeymap.surface):
		if c.surface == surfaceOperator {
			c.surface = surfaceSpeaker
		} else {
			c.surface = surfaceOperator
		}

	case key.Matches(msg, defaultKeymap.quit):
		if snap := c.engine.Snapshot(); snap.IsRunning {
			err = c.engine.Stop()
		}

		c.quitting = true

		return c, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	c.lastErr = err

	return c, nil
}

func (c *Console) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return c.handleTick()

	case tea.KeyMsg:
		return c.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		c.progress.Width = msg.Width - padding*2 - 4
		if c.progress.Width > maxWidth {
			c.progress.Width = maxWidth
		}

		return c, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := c.progress.Update(msg)
		c.progress, _ = progressModel.(progress.Model)

		return c, cmd
	}

	return c, nil
}

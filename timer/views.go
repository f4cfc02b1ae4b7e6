package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

func alertBanner(dm DisplayModel, st styles) string {
	if !dm.ShowAlert {
		return ""
	}

	banner := "Wrap up"
	if dm.AlertLevel == AlertOvertime {
		banner = "Over time by " + dm.OverBy
	}

	return st.alert.
		Foreground(lipgloss.Color(dm.AlertColor)).
		Render(banner)
}

func sectionListView(dm DisplayModel, st styles) string {
	if len(dm.Sections) == 0 {
		return ""
	}

	var s strings.Builder

	for _, row := range dm.Sections {
		line := fmt.Sprintf("%s (%dm)", row.Name, row.Planned)

		switch row.Progress {
		case SectionDone:
			line = st.done.Render(line)
		case SectionCurrent:
			line = st.current.Render("> " + line)
		default:
			line = st.secondary.Render(line)
		}

		s.WriteString("\n" + line)
	}

	return s.String()
}

func headerView(dm DisplayModel, st styles) string {
	header := dm.TemplateName
	if dm.SectionCount > 0 {
		header = fmt.Sprintf(
			"%s (%d/%d)",
			dm.TemplateName,
			dm.SectionIndex+1,
			dm.SectionCount,
		)
	}

	return st.title.Render(header)
}

// surfaceView renders one display surface. The operator console and the
// detached speaker display both draw through it so the two surfaces can
// never drift apart visually.
func surfaceView(dm DisplayModel, st styles, bar progress.Model) string {
	var s strings.Builder

	s.WriteString(headerView(dm, st))

	if dm.SectionName != "" {
		s.WriteString("\n\n" + st.title.Render(dm.SectionName))
	}

	switch {
	case dm.Paused:
		s.WriteString("  " + st.secondary.Render("[Paused]"))
	case !dm.Running:
		s.WriteString("  " + st.secondary.Render("[Stopped]"))
	}

	remaining := st.clock.
		Foreground(lipgloss.Color(dm.AlertColor)).
		Render(dm.TimeRemaining)

	s.WriteString("\n\n" + remaining)
	s.WriteString(
		"  " + st.hint.Render("elapsed "+dm.TimeElapsed),
	)

	s.WriteString("\n\n" + bar.ViewAs(dm.ProgressPercent/100))

	if banner := alertBanner(dm, st); banner != "" {
		s.WriteString("\n\n" + banner)
	}

	var facts []string

	if dm.CurrentTime != "" {
		facts = append(facts, "now "+dm.CurrentTime)
	}

	if dm.EndTime != "" {
		facts = append(facts, "ends "+dm.EndTime)
	}

	if dm.VarianceText != "" {
		variance := dm.VarianceText + " vs plan"
		if dm.VarianceLate {
			variance = lipgloss.NewStyle().
				Foreground(lipgloss.Color(dm.VarianceColor)).
				Render(variance)
		}

		facts = append(facts, variance)
	}

	if len(facts) > 0 {
		s.WriteString(
			"\n\n" + st.secondary.Render(strings.Join(facts, " | ")),
		)
	}

	s.WriteString(sectionListView(dm, st))

	return s.String()
}

func (c *Console) consoleHelpView() string {
	return "\n\n" + c.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.next,
		defaultKeymap.previous,
		defaultKeymap.stop,
		defaultKeymap.endSession,
		defaultKeymap.surface,
		defaultKeymap.quit,
	})
}

func (c *Console) View() string {
	if c.quitting {
		return ""
	}

	snap := c.engine.Snapshot()
	tmpl := c.engine.Template()

	displayCfg := c.cfg.Operator
	if c.surface == surfaceSpeaker {
		displayCfg = c.cfg.Speaker
	}

	view := surfaceView(Project(snap, tmpl, displayCfg), c.styles, c.progress)

	if c.lastErr != nil {
		view += "\n\n" + c.styles.alert.
			Foreground(lipgloss.Color("9")).
			Render(c.lastErr.Error())
	}

	if c.surface == surfaceOperator {
		view += c.consoleHelpView()
	} else {
		view += "\n\n" + c.help.ShortHelpView([]key.Binding{
			defaultKeymap.surface,
			defaultKeymap.quit,
		})
	}

	return c.styles.base.Render(view)
}

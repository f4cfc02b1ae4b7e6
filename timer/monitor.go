package timer

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/franciscoj/podium/config"
	"github.com/franciscoj/podium/internal/models"
)

type statusMsg *Status

type watchMsg struct{}

// Monitor is the detached speaker display. It runs in its own process,
// follows the operator console through the status file, and issues no
// control operations.
type Monitor struct {
	cfg     *config.Config
	watcher *fsnotify.Watcher

	status *Status

	progress progress.Model
	help     help.Model
	styles   styles

	quitting bool
}

// NewMonitor creates a speaker display that watches the status file's
// directory for updates. Watching the directory rather than the file
// itself survives the atomic rename the writer performs.
func NewMonitor(cfg *config.Config) (*Monitor, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(config.StatusFilePath())); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	m := &Monitor{
		cfg:      cfg,
		watcher:  watcher,
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
		styles:   newStyles(),
	}

	m.reload()

	return m, nil
}

// reload re-reads the status file. A missing file clears the view back to
// its waiting state.
func (m *Monitor) reload() {
	status, err := ReadStatusFile()
	if err != nil {
		if os.IsNotExist(err) {
			m.status = nil
		}

		return
	}

	m.status = status
}

// waitForChange blocks on the next filesystem event touching the status
// file.
func (m *Monitor) waitForChange() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-m.watcher.Events:
				if !ok {
					return nil
				}

				if event.Name == config.StatusFilePath() {
					return watchMsg{}
				}

			case _, ok := <-m.watcher.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

// monitorTick is the fallback heartbeat for filesystems where the watch
// misses events.
func monitorTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return statusMsg(nil)
	})
}

func (m *Monitor) Init() tea.Cmd {
	return tea.Batch(m.waitForChange(), monitorTick())
}

func (m *Monitor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case watchMsg:
		m.reload()
		return m, m.waitForChange()

	case statusMsg:
		m.reload()
		return m, monitorTick()

	case tea.KeyMsg:
		if key.Matches(msg, defaultKeymap.quit) {
			m.quitting = true
			return m, tea.Batch(tea.ClearScreen, tea.Quit)
		}

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}
	}

	return m, nil
}

func (m *Monitor) View() string {
	if m.quitting {
		return ""
	}

	if m.status == nil {
		return m.styles.base.Render(
			m.styles.secondary.Render("Waiting for the operator console..."),
		)
	}

	tmpl := &models.Template{
		Name:     m.status.TemplateName,
		Sections: m.status.Sections,
	}

	dm := Project(m.status.State, tmpl, m.cfg.Speaker)

	view := surfaceView(dm, m.styles, m.progress)
	view += "\n\n" + m.help.ShortHelpView([]key.Binding{defaultKeymap.quit})

	return m.styles.base.Render(view)
}

// Run starts the speaker display and blocks until it exits.
func (m *Monitor) Run() error {
	defer func() {
		_ = m.watcher.Close()
	}()

	_, err := tea.NewProgram(m).Run()

	return err
}

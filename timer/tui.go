package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/franciscoj/podium/config"
)

const (
	padding  = 2
	maxWidth = 80
)

const (
	surfaceOperator = "operator"
	surfaceSpeaker  = "speaker"
)

type keymap struct {
	togglePlay key.Binding
	next       key.Binding
	previous   key.Binding
	stop       key.Binding
	reset      key.Binding
	endSession key.Binding
	surface    key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("space"),
		key.WithHelp("space", "start/pause"),
	),
	next: key.NewBinding(
		key.WithKeys("n", "right"),
		key.WithHelp("n", "next section"),
	),
	previous: key.NewBinding(
		key.WithKeys("p", "left"),
		key.WithHelp("p", "previous section"),
	),
	stop: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "stop"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	endSession: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "end session"),
	),
	surface: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch view"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type styles struct {
	base      lipgloss.Style
	title     lipgloss.Style
	clock     lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	alert     lipgloss.Style
	done      lipgloss.Style
	current   lipgloss.Style
}

func newStyles() styles {
	return styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		title:     lipgloss.NewStyle().Bold(true),
		clock:     lipgloss.NewStyle().Bold(true).MarginTop(1),
		secondary: lipgloss.NewStyle().Faint(true),
		hint:      lipgloss.NewStyle().Faint(true),
		alert:     lipgloss.NewStyle().Bold(true),
		done:      lipgloss.NewStyle().Faint(true).Strikethrough(true),
		current:   lipgloss.NewStyle().Bold(true),
	}
}

// tickMsg drives the one-second heartbeat of the console.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Console is the interactive operator terminal. It owns the engine for the
// lifetime of the program and is the only component that issues control
// operations.
type Console struct {
	engine *Engine
	cfg    *config.Config

	notifier *Notifier

	progress progress.Model
	help     help.Model
	styles   styles

	surface       string
	lastSectionID string
	lastErr       error

	quitting bool
}

// NewConsole assembles the operator console around an engine.
func NewConsole(engine *Engine, cfg *config.Config) *Console {
	c := &Console{
		engine:   engine,
		cfg:      cfg,
		notifier: NewNotifier(cfg.Notifications),
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
		styles:   newStyles(),
		surface:  surfaceOperator,
	}

	c.engine.Subscribe(func(s State) {
		c.publishStatus(s)
	})

	return c
}

// publishStatus mirrors a state snapshot into the status file for detached
// displays. Failures are logged and otherwise ignored so a full disk can
// never stall the meeting.
func (c *Console) publishStatus(s State) {
	status := &Status{
		State:     s,
		UpdatedAt: time.Now(),
	}

	if t := c.engine.Template(); t != nil {
		status.TemplateName = t.Name
		status.Sections = t.Sections
	}

	if err := WriteStatusFile(status); err != nil {
		slog.Error("unable to publish status", slog.Any("error", err))
	}
}

func (c *Console) Init() tea.Cmd {
	return tick()
}

// Run starts the console UI and blocks until it exits.
func (c *Console) Run() error {
	defer func() {
		_ = RemoveStatusFile()
	}()

	// publish the initial state so a speaker display opened before the
	// first transition is not left waiting
	c.publishStatus(c.engine.Snapshot())

	_, err := tea.NewProgram(c).Run()

	return err
}

package timer

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/franciscoj/podium/config"
)

const (
	chimeSampleRate beep.SampleRate = 44100
	chimeDuration                   = 350 * time.Millisecond
)

var chimeFrequency = map[AlertLevel]float64{
	AlertWarning:  660,
	AlertCritical: 880,
	AlertOvertime: 1040,
}

var (
	speakerInit sync.Once
	speakerErr  error
)

// Notifier raises desktop notifications and audible chimes when the
// current section's alert level escalates. De-escalations and repeats of
// the same level stay silent.
type Notifier struct {
	cfg  config.NotificationConfig
	last AlertLevel
}

// NewNotifier returns a notifier honoring the given notification settings.
func NewNotifier(cfg config.NotificationConfig) *Notifier {
	return &Notifier{
		cfg:  cfg,
		last: AlertNormal,
	}
}

// Observe inspects a state snapshot and fires alerts on escalation.
// Returns the message shown, or an empty string when nothing fired.
func (n *Notifier) Observe(s State) string {
	level := s.AlertLevel

	defer func() {
		n.last = level
	}()

	if !n.cfg.Enabled {
		return ""
	}

	if level.Severity() <= n.last.Severity() {
		return ""
	}

	msg := alertMessage(s, level)

	configDir := filepath.Base(config.Dir())

	// pathToIcon will be an empty string if file is not found
	pathToIcon, _ := xdg.SearchDataFile(
		filepath.Join(configDir, "static", "icon.png"),
	)

	_ = beeep.Notify(s.CurrentSection.Name, msg, pathToIcon)

	if n.cfg.Chime {
		playChime(level)
	}

	return msg
}

// Reset clears the escalation memory, typically on a section change so the
// next section alerts afresh.
func (n *Notifier) Reset() {
	n.last = AlertNormal
}

func alertMessage(s State, level AlertLevel) string {
	switch level {
	case AlertOvertime:
		return "Time is up"
	case AlertCritical:
		return fmt.Sprintf("%d seconds remaining", s.SectionRemaining())
	default:
		return "1 minute remaining"
	}
}

// playChime synthesizes a short tone whose pitch rises with urgency.
func playChime(level AlertLevel) {
	freq, ok := chimeFrequency[level]
	if !ok {
		return
	}

	tone, err := generators.SineTone(chimeSampleRate, freq)
	if err != nil {
		return
	}

	speakerInit.Do(func() {
		speakerErr = speaker.Init(
			chimeSampleRate,
			chimeSampleRate.N(100*time.Millisecond),
		)
	})

	if speakerErr != nil {
		return
	}

	speaker.Play(beep.Take(chimeSampleRate.N(chimeDuration), tone))
}

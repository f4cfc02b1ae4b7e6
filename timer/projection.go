package timer

import (
	"fmt"

	"github.com/franciscoj/podium/config"
	"github.com/franciscoj/podium/internal/models"
	"github.com/franciscoj/podium/internal/timeutil"
)

// SectionProgress marks where a section sits relative to the live timer.
type SectionProgress string

const (
	SectionDone    SectionProgress = "done"
	SectionCurrent SectionProgress = "current"
	SectionPending SectionProgress = "pending"
)

// SectionRow is one line of the projected section list.
type SectionRow struct {
	Name     string
	Planned  int // minutes
	Progress SectionProgress
}

// DisplayModel is what a single display surface is allowed and configured
// to show. Fields gated off by the surface's config are left empty.
type DisplayModel struct {
	TemplateName string

	SectionName  string
	SectionType  models.SectionType
	SectionIndex int // 0-based
	SectionCount int

	// ProgressPercent is clamped to [0, 100]; overtime is signalled
	// through the alert level, never by progress beyond 100.
	ProgressPercent float64

	TimeElapsed   string // MM:SS within the section
	TimeRemaining string // MM:SS, floors at 00:00
	OverBy        string // MM:SS past the plan, empty unless overtime

	CurrentTime string
	EndTime     string

	VarianceText  string // signed MM:SS, empty when hidden
	VarianceLate  bool
	VarianceColor string

	AlertLevel AlertLevel
	AlertColor string
	ShowAlert  bool

	Sections []SectionRow

	Running bool
	Paused  bool
}

func formatMinSec(secs int) string {
	m, s := timeutil.SecsToMinsAndSecs(secs)
	return fmt.Sprintf("%02d:%02d", m, s)
}

func alertColor(colors config.AlertColors, level AlertLevel) string {
	switch level {
	case AlertWarning:
		return colors.Warning
	case AlertCritical:
		return colors.Critical
	case AlertOvertime:
		return colors.Overtime
	default:
		return colors.Normal
	}
}

// Project derives the display model for one surface from a state snapshot,
// the active template, and the surface's display config. It is a pure
// read-only function and safe to call from any number of surfaces
// concurrently.
func Project(
	s State,
	t *models.Template,
	cfg config.DisplayConfig,
) DisplayModel {
	dm := DisplayModel{
		SectionName:  s.CurrentSection.Name,
		SectionType:  s.CurrentSection.Type,
		SectionIndex: s.CurrentSectionIndex,
		TimeElapsed:  formatMinSec(s.CurrentSectionTime),
		Running:      s.IsRunning,
		Paused:       s.IsPaused,
	}

	if t != nil {
		dm.TemplateName = t.Name
		dm.SectionCount = len(t.Sections)
	}

	plannedSecs := s.CurrentSection.Duration * 60
	remaining := plannedSecs - s.CurrentSectionTime

	if plannedSecs > 0 {
		percent := float64(s.CurrentSectionTime) / float64(plannedSecs) * 100
		if percent > 100 {
			percent = 100
		}

		dm.ProgressPercent = percent
	}

	if remaining >= 0 {
		dm.TimeRemaining = formatMinSec(remaining)
	} else {
		dm.TimeRemaining = "00:00"
		dm.OverBy = formatMinSec(-remaining)
	}

	// Each surface escalates on its own configured thresholds.
	dm.AlertLevel = alertFor(
		remaining,
		cfg.AlertThresholds.Warning,
		cfg.AlertThresholds.Critical,
	)
	dm.AlertColor = alertColor(cfg.Colors, dm.AlertLevel)
	dm.ShowAlert = dm.AlertLevel != AlertNormal

	if cfg.ShowCurrentTime {
		dm.CurrentTime = s.CurrentTime
	}

	if cfg.ShowMeetingEndTime {
		dm.EndTime = s.EstimatedEndTime
	}

	if cfg.ShowTimeVariance {
		sign := "-"
		color := cfg.Colors.Normal

		if s.TimeVariance > 0 {
			sign = "+"
			color = cfg.Colors.Overtime
			dm.VarianceLate = true
		}

		if s.TimeVariance == 0 {
			sign = ""
		}

		dm.VarianceText = sign + formatMinSec(s.TimeVariance)
		dm.VarianceColor = color
	}

	if cfg.ShowSectionList && t != nil {
		dm.Sections = make([]SectionRow, 0, len(t.Sections))

		for i := range t.Sections {
			progress := SectionPending

			switch {
			case i < s.CurrentSectionIndex:
				progress = SectionDone
			case i == s.CurrentSectionIndex:
				progress = SectionCurrent
			}

			dm.Sections = append(dm.Sections, SectionRow{
				Name:     t.Sections[i].Name,
				Planned:  t.Sections[i].Duration,
				Progress: progress,
			})
		}
	}

	return dm
}

package timer

import (
	"time"

	"github.com/franciscoj/podium/internal/models"
)

// AlertLevel is a discrete urgency tier derived from the time remaining in
// the current section.
type AlertLevel string

const (
	AlertNormal   AlertLevel = "normal"
	AlertWarning  AlertLevel = "warning"
	AlertCritical AlertLevel = "critical"
	AlertOvertime AlertLevel = "overtime"
)

// Default seconds-remaining marks at which the engine escalates.
const (
	defaultWarningThreshold  = 60
	defaultCriticalThreshold = 30
)

var alertSeverity = map[AlertLevel]int{
	AlertNormal:   0,
	AlertWarning:  1,
	AlertCritical: 2,
	AlertOvertime: 3,
}

// Severity returns a comparable rank for the alert level.
func (l AlertLevel) Severity() int {
	return alertSeverity[l]
}

// alertFor derives the alert level from the seconds remaining in the
// current section and the escalation thresholds.
func alertFor(remaining, warning, critical int) AlertLevel {
	switch {
	case remaining <= 0:
		return AlertOvertime
	case remaining <= critical:
		return AlertCritical
	case remaining <= warning:
		return AlertWarning
	default:
		return AlertNormal
	}
}

// AlertFor derives the alert level for a section from its planned duration
// in minutes and the elapsed seconds, using the default thresholds. It is a
// pure function of its inputs.
func AlertFor(plannedMinutes, elapsedSeconds int) AlertLevel {
	return alertFor(
		plannedMinutes*60-elapsedSeconds,
		defaultWarningThreshold,
		defaultCriticalThreshold,
	)
}

// State is the live state of the meeting timer. It is owned and mutated
// exclusively by the Engine; every other component receives value copies.
type State struct {
	IsRunning bool `json:"is_running"`
	IsPaused  bool `json:"is_paused"`

	// CurrentSection is a denormalised copy of the template section at
	// CurrentSectionIndex, kept in sync whenever the index changes.
	CurrentSection      models.Section `json:"current_section"`
	CurrentSectionTime  int            `json:"current_section_time"` // seconds
	CurrentSectionIndex int            `json:"current_section_index"`

	// MeetingStartTime is set on the first start of a session and is only
	// cleared by a reset, never by pause or stop.
	MeetingStartTime     time.Time `json:"meeting_start_time"`
	TotalMeetingTime     int       `json:"total_meeting_time"`     // seconds, accrues only while running
	PlannedTotalDuration int       `json:"planned_total_duration"` // seconds, fixed at template selection

	// TimeVariance is the signed difference in seconds between elapsed and
	// planned-elapsed meeting time. Positive means the meeting is running
	// behind.
	TimeVariance int `json:"time_variance"`

	CurrentTime      string `json:"current_time"`
	EstimatedEndTime string `json:"estimated_end_time"`

	AlertLevel AlertLevel `json:"alert_level"`
	ShowAlert  bool       `json:"show_alert"`
}

// SectionRemaining returns the seconds left in the current section.
// Negative values mean the section is in overtime.
func (s *State) SectionRemaining() int {
	return s.CurrentSection.Duration*60 - s.CurrentSectionTime
}

// Idle reports whether the timer is neither running nor paused.
func (s *State) Idle() bool {
	return !s.IsRunning && !s.IsPaused
}

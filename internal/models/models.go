// Package models defines the data shapes shared between the meeting timer
// and the data store.
package models

import "time"

// SectionType identifies the kind of agenda item a section represents.
type SectionType string

const (
	SectionSong   SectionType = "song"
	SectionPrayer SectionType = "prayer"
	SectionTalk   SectionType = "talk"
	SectionStudy  SectionType = "study"
	SectionDemo   SectionType = "demo"
	SectionVideo  SectionType = "video"
	SectionBreak  SectionType = "break"
)

// SectionTypes lists every valid section type.
var SectionTypes = []SectionType{
	SectionSong,
	SectionPrayer,
	SectionTalk,
	SectionStudy,
	SectionDemo,
	SectionVideo,
	SectionBreak,
}

// TemplateType distinguishes midweek and weekend meeting structures.
type TemplateType string

const (
	TemplateWeekday TemplateType = "weekday"
	TemplateWeekend TemplateType = "weekend"
)

// Section is one timed agenda item within a meeting template.
type Section struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Duration   int         `json:"duration"` // planned minutes
	Order      int         `json:"order"`    // 1-based position
	Type       SectionType `json:"type"`
	IsRequired bool        `json:"is_required"`
}

// Template is a named, ordered list of sections defining a meeting's
// planned structure.
type Template struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Type          TemplateType `json:"type"`
	Sections      []Section    `json:"sections"`
	TotalDuration int          `json:"total_duration"` // minutes, derived
	IsDefault     bool         `json:"is_default"`
	LastModified  time.Time    `json:"last_modified"`
}

// SectionReport is an immutable record of one completed section visit.
// The section name and planned duration are captured at record time so
// historical reports survive template edits.
type SectionReport struct {
	SectionID       string    `json:"section_id"`
	SectionName     string    `json:"section_name"`
	PlannedDuration int       `json:"planned_duration"` // minutes
	ActualStartTime time.Time `json:"actual_start_time"`
	ActualEndTime   time.Time `json:"actual_end_time"`
	ActualDuration  int       `json:"actual_duration"` // minutes
	Variance        int       `json:"variance"`        // minutes, positive = ran long
}

// Session is one concrete run of a template with actual timings recorded.
type Session struct {
	ID                  string          `json:"id"`
	MeetingScheduleID   string          `json:"meeting_schedule_id"`
	TemplateName        string          `json:"template_name"`
	StartTime           time.Time       `json:"start_time"`
	EndTime             time.Time       `json:"end_time"` // zero until the session is explicitly ended
	CurrentSectionIndex int             `json:"current_section_index"`
	SectionReports      []SectionReport `json:"section_reports"`
	IsPaused            bool            `json:"is_paused"`
	TotalDelay          int             `json:"total_delay"` // accumulated signed seconds
}

// Ended reports whether the session has been finalized.
func (s *Session) Ended() bool {
	return !s.EndTime.IsZero()
}

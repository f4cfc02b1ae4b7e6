package timer

import (
	"time"

	"github.com/google/uuid"

	"github.com/franciscoj/podium/internal/models"
	"github.com/franciscoj/podium/store"
)

// Recorder accumulates section time reports into the active session and
// finalizes ended sessions into the data store. Reports are append-only:
// once recorded they are never mutated.
//
// The Recorder is driven solely by the Engine and inherits its
// single-writer discipline; it must not be shared with other writers.
type Recorder struct {
	db      store.DB // nil disables persistence
	current *models.Session
}

// NewRecorder returns a recorder that saves ended sessions to db. A nil db
// keeps sessions in memory only, which is how the engine is exercised in
// tests.
func NewRecorder(db store.DB) *Recorder {
	return &Recorder{db: db}
}

// Current returns the active session, or nil when none has been started.
func (r *Recorder) Current() *models.Session {
	return r.current
}

// Begin creates a new active session. The schedule reference is an opaque
// identifier handed to the external scheduling collaborator.
func (r *Recorder) Begin(now time.Time, templateName string) *models.Session {
	r.current = &models.Session{
		ID:                "session_" + uuid.NewString(),
		MeetingScheduleID: "schedule_" + uuid.NewString(),
		TemplateName:      templateName,
		StartTime:         now,
	}

	return r.current
}

// Record appends a section report to the active session in chronological
// exit order. It is a no-op when no session is active.
func (r *Recorder) Record(report models.SectionReport) {
	if r.current == nil {
		return
	}

	r.current.SectionReports = append(r.current.SectionReports, report)
}

// AddDelay accrues signed seconds of delay onto the active session.
func (r *Recorder) AddDelay(seconds int) {
	if r.current == nil {
		return
	}

	r.current.TotalDelay += seconds
}

// SetPaused mirrors the engine's paused flag onto the active session.
func (r *Recorder) SetPaused(paused bool) {
	if r.current == nil {
		return
	}

	r.current.IsPaused = paused
}

// SetSectionIndex mirrors the engine's section index onto the active
// session.
func (r *Recorder) SetSectionIndex(index int) {
	if r.current == nil {
		return
	}

	r.current.CurrentSectionIndex = index
}

// End finalizes the active session: its end time is set, it is saved to
// the store, and it stops being current. Returns the finalized session.
func (r *Recorder) End(now time.Time) (*models.Session, error) {
	if r.current == nil {
		return nil, nil
	}

	sess := r.current
	sess.EndTime = now
	r.current = nil

	if r.db == nil {
		return sess, nil
	}

	if err := r.db.SaveSession(sess); err != nil {
		return nil, err
	}

	return sess, nil
}

// Discard drops the active session without finalizing it.
func (r *Recorder) Discard() {
	r.current = nil
}

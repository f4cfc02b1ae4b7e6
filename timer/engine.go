// Package timer operates the Podium meeting timer: it advances through the
// timed sections of a meeting template, records actual-vs-planned timings,
// and publishes a consistent state snapshot to every display surface after
// each transition.
package timer

import (
	"sync"
	"time"

	"github.com/franciscoj/podium/auth"
	"github.com/franciscoj/podium/internal/models"
	"github.com/franciscoj/podium/internal/timeutil"
	"github.com/franciscoj/podium/meeting"
)

// Engine is the meeting timer state machine. All state mutation happens
// behind its mutex so a tick and a control operation can never partially
// overlap, and no reader can observe a torn state.
//
// Legal (running, paused) combinations are (false,false) stopped,
// (true,false) running, and (false,true) paused. (true,true) never occurs.
type Engine struct {
	mu       sync.Mutex
	now      func() time.Time
	gate     auth.Gate
	recorder *Recorder

	template *models.Template
	state    State

	// completedVariance accumulates signed seconds of variance each time a
	// section is left by advancing, including skipped sections which count
	// as time saved.
	completedVariance int

	twentyFourHour bool

	subscribers []func(State)
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source. Tests feed a synthetic
// clock through this.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithTwentyFourHour selects the 24-hour convention for the wall-clock
// strings the engine derives.
func WithTwentyFourHour(enabled bool) Option {
	return func(e *Engine) {
		e.twentyFourHour = enabled
	}
}

// New creates an engine whose control operations are authorized by gate
// and whose section exits are recorded by rec.
func New(gate auth.Gate, rec *Recorder, opts ...Option) *Engine {
	e := &Engine{
		now:      time.Now,
		gate:     gate,
		recorder: rec,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.resetState()

	return e
}

// Subscribe registers fn to be called with a state snapshot after every
// completed transition. Subscribers must not block.
func (e *Engine) Subscribe(fn func(State)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.subscribers = append(e.subscribers, fn)
}

// Snapshot returns a consistent copy of the current state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// Template returns the currently selected template, or nil.
func (e *Engine) Template() *models.Template {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.template
}

// Session returns the active session, or nil.
func (e *Engine) Session() *models.Session {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.recorder.Current()
}

// transition runs fn under the state lock and, if it succeeds, publishes
// one snapshot to every subscriber. A failed transition publishes nothing
// and leaves the state untouched.
func (e *Engine) transition(fn func() error) error {
	e.mu.Lock()

	err := fn()

	var (
		snap State
		subs []func(State)
	)

	if err == nil {
		snap = e.state
		subs = e.subscribers
	}

	e.mu.Unlock()

	if err != nil {
		return err
	}

	for _, fn := range subs {
		fn(snap)
	}

	return nil
}

// resetState returns the state to its zero form, preserving only the
// planned total duration of the selected template.
func (e *Engine) resetState() {
	var planned int
	if e.template != nil {
		planned = e.template.TotalDuration * 60
	}

	e.state = State{
		PlannedTotalDuration: planned,
		CurrentTime:          timeutil.FormatClock(e.now(), e.twentyFourHour),
		AlertLevel:           AlertNormal,
	}
	e.completedVariance = 0
}

// refreshDerived recomputes every derived field from the primary ones.
// Called on every tick and after every control mutation so readers always
// see matching values.
func (e *Engine) refreshDerived(now time.Time) {
	e.state.CurrentTime = timeutil.FormatClock(now, e.twentyFourHour)

	if !e.state.MeetingStartTime.IsZero() {
		end := e.state.MeetingStartTime.Add(
			time.Duration(e.state.PlannedTotalDuration) * time.Second,
		)
		e.state.EstimatedEndTime = timeutil.FormatClock(end, e.twentyFourHour)
	}

	e.state.AlertLevel = AlertFor(
		e.state.CurrentSection.Duration,
		e.state.CurrentSectionTime,
	)
	e.state.ShowAlert = e.state.AlertLevel != AlertNormal

	overrun := e.state.CurrentSectionTime - e.state.CurrentSection.Duration*60
	if overrun < 0 {
		overrun = 0
	}

	e.state.TimeVariance = e.completedVariance + overrun
}

// sectionReport builds the immutable record for the section being left.
// The name and planned duration are captured now so the report survives
// template edits.
func (e *Engine) sectionReport(now time.Time) models.SectionReport {
	sec := e.state.CurrentSection
	actualMins := e.state.CurrentSectionTime / 60

	return models.SectionReport{
		SectionID:       sec.ID,
		SectionName:     sec.Name,
		PlannedDuration: sec.Duration,
		ActualStartTime: now.Add(-time.Duration(e.state.CurrentSectionTime) * time.Second),
		ActualEndTime:   now,
		ActualDuration:  actualMins,
		Variance:        actualMins - sec.Duration,
	}
}

// SelectTemplate validates t, makes it the active template, and hard-resets
// the engine. Switching templates mid-run intentionally discards in-progress
// timing and the active session.
func (e *Engine) SelectTemplate(t *models.Template) error {
	return e.transition(func() error {
		if err := meeting.Validate(t); err != nil {
			return err
		}

		e.template = t
		e.resetState()
		e.recorder.Discard()

		return nil
	})
}

// Start begins or resumes the timer. The first start of a session fixes
// the meeting start time; resuming after a pause never resets it. A
// session is created lazily if none exists.
func (e *Engine) Start() error {
	return e.transition(func() error {
		if !e.gate.Authorize(auth.TimerControl) {
			return ErrNotAuthorized.Fmt("start timer")
		}

		if e.template == nil {
			return ErrNoTemplate
		}

		if e.state.IsRunning {
			return ErrIllegalTransition.Fmt("timer is already running")
		}

		now := e.now()

		if e.recorder.Current() == nil {
			e.recorder.Begin(now, e.template.Name)
		}

		e.state.IsRunning = true
		e.state.IsPaused = false
		e.recorder.SetPaused(false)

		if e.state.MeetingStartTime.IsZero() {
			e.state.MeetingStartTime = now
		}

		e.state.CurrentSection = e.template.Sections[e.state.CurrentSectionIndex]
		e.refreshDerived(now)

		return nil
	})
}

// Pause suspends the timer without touching any time fields.
func (e *Engine) Pause() error {
	return e.transition(func() error {
		if !e.gate.Authorize(auth.TimerControl) {
			return ErrNotAuthorized.Fmt("pause timer")
		}

		if !e.state.IsRunning {
			return ErrIllegalTransition.Fmt("cannot pause a timer that is not running")
		}

		e.state.IsRunning = false
		e.state.IsPaused = true
		e.recorder.SetPaused(true)

		return nil
	})
}

// Stop halts the timer. If the current section has accrued any time, its
// visit-so-far is recorded. Elapsed times and the section index are kept,
// so a subsequent Start resumes the same section; the session stays open.
func (e *Engine) Stop() error {
	return e.transition(func() error {
		if !e.gate.Authorize(auth.TimerControl) {
			return ErrNotAuthorized.Fmt("stop timer")
		}

		// A repeated Stop is idempotent: only an active visit is an exit.
		active := e.state.IsRunning || e.state.IsPaused
		if active && e.state.CurrentSectionTime > 0 && e.state.CurrentSection.ID != "" {
			e.recorder.Record(e.sectionReport(e.now()))
		}

		e.state.IsRunning = false
		e.state.IsPaused = false
		e.recorder.SetPaused(false)

		return nil
	})
}

// Reset reinitializes the state to its zero form, preserving the selected
// template's planned duration, and discards the active session without
// finalizing it. The timer must be stopped first; Reset itself never emits
// a report.
func (e *Engine) Reset() error {
	return e.transition(func() error {
		if !e.gate.Authorize(auth.TimerOverride) {
			return ErrNotAuthorized.Fmt("reset timer")
		}

		if e.state.IsRunning {
			return ErrIllegalTransition.Fmt("stop the timer before resetting")
		}

		e.resetState()
		e.recorder.Discard()

		return nil
	})
}

// NextSection leaves the current section and moves to the following one.
// A section that accrued time produces exactly one report; a section
// skipped with no elapsed time produces none but still counts its planned
// duration as time saved. Running/paused status is unchanged.
func (e *Engine) NextSection() error {
	return e.transition(func() error {
		if !e.gate.Authorize(auth.TimerControl) {
			return ErrNotAuthorized.Fmt("advance section")
		}

		if e.template == nil {
			return ErrNoTemplate
		}

		if e.state.CurrentSectionIndex >= len(e.template.Sections)-1 {
			return ErrInvalidSectionIndex.Fmt("forward", "last")
		}

		now := e.now()

		if e.state.CurrentSection.ID == "" {
			e.state.CurrentSection = e.template.Sections[e.state.CurrentSectionIndex]
		}

		if e.state.CurrentSectionTime > 0 {
			e.recorder.Record(e.sectionReport(now))
		}

		delta := e.state.CurrentSectionTime - e.state.CurrentSection.Duration*60
		e.completedVariance += delta
		e.recorder.AddDelay(delta)

		e.state.CurrentSectionIndex++
		e.state.CurrentSection = e.template.Sections[e.state.CurrentSectionIndex]
		e.state.CurrentSectionTime = 0
		e.recorder.SetSectionIndex(e.state.CurrentSectionIndex)

		e.refreshDerived(now)

		return nil
	})
}

// PreviousSection moves back one section. It is a navigational correction:
// no report is emitted and it is only legal while the timer is not
// running.
func (e *Engine) PreviousSection() error {
	return e.transition(func() error {
		if !e.gate.Authorize(auth.TimerControl) {
			return ErrNotAuthorized.Fmt("go back a section")
		}

		if e.template == nil {
			return ErrNoTemplate
		}

		if e.state.IsRunning {
			return ErrIllegalTransition.Fmt("stop or pause the timer before going back")
		}

		if e.state.CurrentSectionIndex <= 0 {
			return ErrInvalidSectionIndex.Fmt("backward", "first")
		}

		e.state.CurrentSectionIndex--
		e.state.CurrentSection = e.template.Sections[e.state.CurrentSectionIndex]
		e.state.CurrentSectionTime = 0
		e.recorder.SetSectionIndex(e.state.CurrentSectionIndex)

		e.refreshDerived(e.now())

		return nil
	})
}

// EndSession finalizes the active session: sets its end time, hands it to
// the store, and clears it. The timer must be stopped first; the engine
// then returns to its zero form for the next meeting.
func (e *Engine) EndSession() error {
	return e.transition(func() error {
		if !e.gate.Authorize(auth.TimerControl) {
			return ErrNotAuthorized.Fmt("end session")
		}

		if e.state.IsRunning {
			return ErrIllegalTransition.Fmt("stop the timer before ending the session")
		}

		if e.recorder.Current() == nil {
			return ErrIllegalTransition.Fmt("no session in progress")
		}

		if _, err := e.recorder.End(e.now()); err != nil {
			return err
		}

		e.resetState()

		return nil
	})
}

// Tick advances the timer by one second. It is driven by an external
// periodic source and is a no-op unless the timer is running and not
// paused. Elapsed counters and every derived field are updated as one
// atomic transition.
func (e *Engine) Tick() {
	e.mu.Lock()

	if !e.state.IsRunning || e.state.IsPaused {
		e.mu.Unlock()
		return
	}

	e.state.CurrentSectionTime++
	e.state.TotalMeetingTime++

	e.refreshDerived(e.now())

	snap := e.state
	subs := e.subscribers

	e.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

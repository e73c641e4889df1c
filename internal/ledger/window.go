package ledger

import "time"

// Window computes the "today" interval over which quota counts run.
//
// The boundary is local midnight in a fixed reference timezone, not a rolling
// 24 hours. The clock is injected so tests can pin time.
type Window struct {
	loc *time.Location
	now func() time.Time
}

// creates a window anchored to the given reference timezone
func NewWindow(loc *time.Location) Window {
	return NewWindowWithClock(loc, time.Now)
}

// creates a window with an explicit clock (for tests)
func NewWindowWithClock(loc *time.Location, now func() time.Time) Window {
	if loc == nil {
		loc = time.UTC
	}

	if now == nil {
		now = time.Now
	}

	return Window{loc: loc, now: now}
}

// returns local midnight of the current day in the reference timezone
func (w Window) Start() time.Time {
	t := w.now().In(w.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, w.loc)
}

package gesture

import "time"

// DefaultWindow is how far back the tracker looks when estimating velocity.
const DefaultWindow = 100 * time.Millisecond

type point struct {
	y  float64
	at time.Time
}

// Tracker converts absolute pointer positions into incremental samples.
// Positions are in points (the caller scales terminal rows).
type Tracker struct {
	window  time.Duration
	now     func() time.Time
	active  bool
	lastY   float64
	history []point
}

// NewTracker creates a tracker estimating velocity over window.
// A nil clock uses time.Now.
func NewTracker(window time.Duration, now func() time.Time) *Tracker {
	if window <= 0 {
		window = DefaultWindow
	}
	if now == nil {
		now = time.Now
	}
	return &Tracker{window: window, now: now}
}

// Active reports whether a drag is being tracked.
func (t *Tracker) Active() bool {
	return t.active
}

// Press starts a drag at y.
func (t *Tracker) Press(y float64) Sample {
	t.active = true
	t.lastY = y
	t.history = t.history[:0]
	t.record(y)
	return Sample{Phase: Began}
}

// Move reports the pointer at y. The boolean is false when no drag is active
// or the pointer did not move.
func (t *Tracker) Move(y float64) (Sample, bool) {
	if !t.active || y == t.lastY {
		return Sample{}, false
	}
	delta := y - t.lastY
	t.lastY = y
	t.record(y)
	return Sample{Phase: Changed, Delta: delta, Velocity: t.velocity()}, true
}

// Release ends the drag at y and reports the release velocity.
func (t *Tracker) Release(y float64) (Sample, bool) {
	return t.finish(y, Ended)
}

// Cancel aborts the drag at the last known position.
func (t *Tracker) Cancel() (Sample, bool) {
	return t.finish(t.lastY, Cancelled)
}

func (t *Tracker) finish(y float64, phase Phase) (Sample, bool) {
	if !t.active {
		return Sample{}, false
	}
	delta := y - t.lastY
	t.lastY = y
	t.record(y)
	s := Sample{Phase: phase, Delta: delta, Velocity: t.velocity()}
	t.active = false
	t.history = t.history[:0]
	return s, true
}

func (t *Tracker) record(y float64) {
	now := t.now()
	t.history = append(t.history, point{y: y, at: now})

	cutoff := now.Add(-t.window)
	drop := 0
	// keep one point older than the window so short bursts still have a baseline
	for drop < len(t.history)-2 && t.history[drop+1].at.Before(cutoff) {
		drop++
	}
	if drop > 0 {
		t.history = append(t.history[:0], t.history[drop:]...)
	}
}

func (t *Tracker) velocity() float64 {
	if len(t.history) < 2 {
		return 0
	}
	first := t.history[0]
	last := t.history[len(t.history)-1]
	if last.at.Sub(first.at) > 2*t.window {
		// pointer rested: only the most recent step counts
		first = t.history[len(t.history)-2]
	}
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.y - first.y) / dt
}

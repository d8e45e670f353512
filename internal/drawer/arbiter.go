package drawer

import (
	"github.com/llehouerou/drawer/internal/gesture"
	"github.com/llehouerou/drawer/internal/position"
)

// Velocity thresholds in points per second.
const (
	DefaultFlickVelocity = 2000
	DefaultNudgeVelocity = 400
)

// Thresholds separates flicks, nudges and slow releases.
type Thresholds struct {
	Flick float64
	Nudge float64
}

// DefaultThresholds returns the standard 2000/400 points-per-second split.
func DefaultThresholds() Thresholds {
	return Thresholds{Flick: DefaultFlickVelocity, Nudge: DefaultNudgeVelocity}
}

// Tier classifies a release velocity.
type Tier int

const (
	// TierSettle snaps to the nearest position.
	TierSettle Tier = iota
	// TierNudge steps one position in the drag direction.
	TierNudge
	// TierFlick jumps to the extreme position in the drag direction.
	TierFlick
)

func (t Tier) String() string {
	switch t {
	case TierSettle:
		return "settle"
	case TierNudge:
		return "nudge"
	case TierFlick:
		return "flick"
	}
	return "unknown"
}

// Classify returns the tier for velocity v. Boundary values belong to the
// faster tier.
func (t Thresholds) Classify(v float64) Tier {
	switch {
	case v >= t.Flick || v <= -t.Flick:
		return TierFlick
	case v >= t.Nudge || v <= -t.Nudge:
		return TierNudge
	}
	return TierSettle
}

// State is the read-only view of the controller the arbiter decides from.
type State interface {
	Current() position.Position
	FrameY() float64
}

// EffectKind says what the host must do after a sample.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectTranslate
	EffectSettle
)

// Effect is the outcome of handling one sample.
type Effect struct {
	Kind   EffectKind
	Delta  float64           // for EffectTranslate
	Target position.Position // for EffectSettle
}

// Arbiter interprets drag samples. It keeps only the drag flag and the
// movement not yet applied; positions and frames are read from State.
type Arbiter struct {
	manager    *Manager
	thresholds Thresholds
	dragging   bool
	pending    float64
}

// NewArbiter creates an arbiter deciding against m's positions.
func NewArbiter(m *Manager, t Thresholds) *Arbiter {
	return &Arbiter{manager: m, thresholds: t}
}

// Thresholds returns the velocity thresholds in use.
func (a *Arbiter) Thresholds() Thresholds {
	return a.thresholds
}

// SetThresholds replaces the velocity thresholds.
func (a *Arbiter) SetThresholds(t Thresholds) {
	a.thresholds = t
}

// Dragging reports whether a drag is in progress.
func (a *Arbiter) Dragging() bool {
	return a.dragging
}

// Reset abandons any drag in progress.
func (a *Arbiter) Reset() {
	a.dragging = false
	a.pending = 0
}

// Handle processes one sample.
//
// While dragging, movement accumulates until it can be applied without
// lifting the sheet above the fully expanded frame; there is no bound
// below. A terminal sample ends the drag with a settle decision.
func (a *Arbiter) Handle(s gesture.Sample, st State) Effect {
	if s.Phase.IsTerminal() {
		a.Reset()
		return Effect{Kind: EffectSettle, Target: a.Decide(s.Velocity, st)}
	}

	if s.Phase == gesture.Began {
		// a new gesture starts from scratch even if the last one never ended
		a.pending = 0
	}
	a.dragging = true
	a.pending += s.Delta
	if a.pending == 0 {
		return Effect{}
	}
	if st.FrameY()+a.pending < a.manager.TopBound() {
		return Effect{}
	}
	delta := a.pending
	a.pending = 0
	return Effect{Kind: EffectTranslate, Delta: delta}
}

// Decide picks the position to settle at for release velocity v.
func (a *Arbiter) Decide(v float64, st State) position.Position {
	m := a.manager
	positions := m.Positions()
	t := a.thresholds

	if v >= t.Flick {
		return positions.Min()
	}
	if v <= -t.Flick {
		return positions.Max()
	}

	current := st.Current()
	closest := func() position.Position { return m.Closest(st.FrameY()) }

	switch {
	case !positions.Contains(current):
		return closest()
	case m.IsMin(current):
		if v <= -t.Nudge {
			return m.Next(current)
		}
		return closest()
	case m.IsMax(current):
		if v >= t.Nudge {
			return m.Previous(current)
		}
		return closest()
	}

	if v >= t.Nudge {
		return m.Previous(current)
	}
	if v <= -t.Nudge {
		return m.Next(current)
	}
	return closest()
}

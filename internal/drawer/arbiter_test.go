package drawer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/drawer/internal/gesture"
	"github.com/llehouerou/drawer/internal/position"
)

type fakeState struct {
	current position.Position
	y       float64
}

func (s fakeState) Current() position.Position { return s.current }
func (s fakeState) FrameY() float64            { return s.y }

func restingAt(m *Manager, p position.Position) fakeState {
	return fakeState{current: p, y: m.ReferenceY(p)}
}

func TestClassify(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		v    float64
		want Tier
	}{
		{3000, TierFlick},
		{2000, TierFlick},
		{1999.99, TierNudge},
		{400, TierNudge},
		{399.99, TierSettle},
		{0, TierSettle},
		{-399.99, TierSettle},
		{-400, TierNudge},
		{-1999.99, TierNudge},
		{-2000, TierFlick},
		{-3000, TierFlick},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, th.Classify(tt.v), "Classify(%v)", tt.v)
	}
}

func TestArbiterDecide(t *testing.T) {
	collapsed, partial, expanded := position.DefaultCollapsed, position.DefaultPartial, position.DefaultExpanded
	m := newTestManager(position.DefaultSet())
	a := NewArbiter(m, DefaultThresholds())

	tests := []struct {
		name  string
		state fakeState
		v     float64
		want  position.Position
	}{
		{"partial nudged up", restingAt(m, partial), -500, expanded},
		{"partial nudged down", restingAt(m, partial), 500, collapsed},
		{"collapsed nudged up stops at partial", restingAt(m, collapsed), -500, partial},
		{"expanded flicked down", restingAt(m, expanded), 3000, collapsed},
		{"collapsed flicked up", restingAt(m, collapsed), -3000, expanded},
		{"flick boundary", restingAt(m, expanded), 2000, collapsed},
		{"just below flick", restingAt(m, expanded), 1999.99, partial},
		{"negative flick boundary", restingAt(m, collapsed), -2000, expanded},
		{"just above negative flick", restingAt(m, collapsed), -1999.99, partial},
		{"nudge boundary", restingAt(m, partial), -400, expanded},
		{"just below nudge", restingAt(m, partial), -399.99, partial},
		{"collapsed pushed down settles", fakeState{current: collapsed, y: 900}, 500, collapsed},
		{"expanded pushed up settles", restingAt(m, expanded), -500, expanded},
		{"slow release settles nearest", fakeState{current: partial, y: 200}, 0, expanded},
		{"unsupported current settles nearest", fakeState{current: position.New(position.Custom, 0.6), y: 520}, 1000, partial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Decide(tt.v, tt.state)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestArbiterTopBound(t *testing.T) {
	m := newTestManager(position.DefaultSet())
	st := restingAt(m, position.DefaultPartial) // y = 550, top bound = 100

	t.Run("exactly at bound is accepted", func(t *testing.T) {
		a := NewArbiter(m, DefaultThresholds())
		e := a.Handle(gesture.Sample{Phase: gesture.Changed, Delta: -450}, st)
		assert.Equal(t, EffectTranslate, e.Kind)
		assert.InDelta(t, -450, e.Delta, 1e-9)
	})

	t.Run("one point beyond is rejected", func(t *testing.T) {
		a := NewArbiter(m, DefaultThresholds())
		e := a.Handle(gesture.Sample{Phase: gesture.Changed, Delta: -451}, st)
		assert.Equal(t, EffectNone, e.Kind)
		assert.True(t, a.Dragging())
	})

	t.Run("no bound below", func(t *testing.T) {
		a := NewArbiter(m, DefaultThresholds())
		e := a.Handle(gesture.Sample{Phase: gesture.Changed, Delta: 900}, st)
		assert.Equal(t, EffectTranslate, e.Kind)
	})
}

func TestArbiterAccumulatesRejectedDelta(t *testing.T) {
	m := newTestManager(position.DefaultSet())
	st := restingAt(m, position.DefaultPartial)
	a := NewArbiter(m, DefaultThresholds())

	require.Equal(t, EffectNone, a.Handle(gesture.Sample{Phase: gesture.Changed, Delta: -460}, st).Kind)

	e := a.Handle(gesture.Sample{Phase: gesture.Changed, Delta: 20}, st)
	require.Equal(t, EffectTranslate, e.Kind)
	assert.InDelta(t, -440, e.Delta, 1e-9)

	// applied movement is not replayed
	st.y += e.Delta
	e = a.Handle(gesture.Sample{Phase: gesture.Changed, Delta: 5}, st)
	require.Equal(t, EffectTranslate, e.Kind)
	assert.InDelta(t, 5, e.Delta, 1e-9)
}

func TestArbiterTerminalSample(t *testing.T) {
	m := newTestManager(position.DefaultSet())
	st := restingAt(m, position.DefaultPartial)

	for _, phase := range []gesture.Phase{gesture.Ended, gesture.Cancelled} {
		t.Run(phase.String(), func(t *testing.T) {
			a := NewArbiter(m, DefaultThresholds())
			a.Handle(gesture.Sample{Phase: gesture.Began}, st)
			a.Handle(gesture.Sample{Phase: gesture.Changed, Delta: -1000}, st)

			e := a.Handle(gesture.Sample{Phase: phase, Velocity: -500}, st)
			assert.Equal(t, EffectSettle, e.Kind)
			assert.True(t, e.Target.Equal(position.DefaultExpanded))
			assert.False(t, a.Dragging())

			// pending movement from the rejected sample is gone
			e = a.Handle(gesture.Sample{Phase: gesture.Changed, Delta: 1}, st)
			assert.InDelta(t, 1, e.Delta, 1e-9)
		})
	}
}

func TestArbiterBeganClearsRejectedDelta(t *testing.T) {
	m := newTestManager(position.DefaultSet())
	st := restingAt(m, position.DefaultPartial)
	a := NewArbiter(m, DefaultThresholds())

	a.Handle(gesture.Sample{Phase: gesture.Began}, st)
	require.Equal(t, EffectNone, a.Handle(gesture.Sample{Phase: gesture.Changed, Delta: -1000}, st).Kind)

	// no terminal sample; a new gesture begins
	a.Handle(gesture.Sample{Phase: gesture.Began}, st)
	e := a.Handle(gesture.Sample{Phase: gesture.Changed, Delta: 10}, st)
	require.Equal(t, EffectTranslate, e.Kind)
	assert.InDelta(t, 10, e.Delta, 1e-9)
}

package drawer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/drawer/internal/position"
)

func TestEaseOutSpring(t *testing.T) {
	assert.InDelta(t, 0, EaseOutSpring(0), 1e-12)
	assert.InDelta(t, 1, EaseOutSpring(1), 1e-12)
	assert.InDelta(t, 0, EaseOutSpring(-1), 1e-12)
	assert.InDelta(t, 1, EaseOutSpring(2), 1e-12)

	// ease-out: more than half way at the midpoint, never overshooting
	assert.Greater(t, EaseOutSpring(0.5), 0.5)
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseOutSpring(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev)
		assert.LessOrEqual(t, v, 1.0)
		prev = v
	}
}

func TestTimingWithDefaults(t *testing.T) {
	got := Timing{}.withDefaults()
	assert.Equal(t, DefaultMinDuration, got.Min)
	assert.Equal(t, DefaultMaxDuration, got.Max)
	assert.NotNil(t, got.Ease)

	got = Timing{Min: time.Second, Max: 100 * time.Millisecond}.withDefaults()
	assert.Equal(t, time.Second, got.Min)
	assert.Equal(t, time.Second, got.Max)
}

func TestTransitionFraction(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	linear := func(x float64) float64 { return x }
	tr := &transition{
		from:     0.2,
		to:       position.DefaultExpanded.Fraction,
		target:   position.DefaultExpanded,
		start:    start,
		duration: time.Second,
		ease:     linear,
	}

	f, done := tr.fraction(start.Add(-time.Second))
	assert.InDelta(t, 0.2, f, 1e-9)
	assert.False(t, done)

	f, done = tr.fraction(start.Add(500 * time.Millisecond))
	assert.InDelta(t, 0.55, f, 1e-9)
	assert.False(t, done)

	f, done = tr.fraction(start.Add(time.Second))
	assert.InDelta(t, 0.9, f, 1e-9)
	assert.True(t, done)
}

package drawer

import (
	"math"
	"time"

	"github.com/llehouerou/drawer/internal/position"
)

// Animation duration bounds.
const (
	DefaultMinDuration = 300 * time.Millisecond
	DefaultMaxDuration = 600 * time.Millisecond
)

// springStiffness puts a critically damped step response at 99.9% of its
// travel when progress reaches 1.
const springStiffness = 9.23

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// EaseOutSpring follows the step response of a critically damped spring,
// normalised to end exactly at 1.
func EaseOutSpring(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	step := func(x float64) float64 {
		return 1 - (1+springStiffness*x)*math.Exp(-springStiffness*x)
	}
	return step(t) / step(1)
}

// Timing configures settle animations.
type Timing struct {
	Min  time.Duration
	Max  time.Duration
	Ease Easing
}

// DefaultTiming returns 0.3s–0.6s spring-like ease-out animations.
func DefaultTiming() Timing {
	return Timing{Min: DefaultMinDuration, Max: DefaultMaxDuration, Ease: EaseOutSpring}
}

func (t Timing) withDefaults() Timing {
	d := DefaultTiming()
	if t.Min <= 0 {
		t.Min = d.Min
	}
	if t.Max < t.Min {
		t.Max = max(d.Max, t.Min)
	}
	if t.Ease == nil {
		t.Ease = d.Ease
	}
	return t
}

// Duration scales the animation with the share of the full travel covered:
// half the travel ratio in seconds, clamped to [Min, Max].
func (t Timing) Duration(heightChange, maxMovement float64) time.Duration {
	if maxMovement <= 0 {
		return t.Min
	}
	seconds := (math.Abs(heightChange) / maxMovement) / 2
	d := time.Duration(seconds * float64(time.Second))
	return min(max(d, t.Min), t.Max)
}

// transition animates the visible fraction of the viewport covered by the
// sheet. Working in fractions keeps an animation valid across a resize.
type transition struct {
	from       float64
	to         float64
	target     position.Position
	start      time.Time
	duration   time.Duration
	ease       Easing
	onComplete func()
}

// fraction returns the eased visible fraction at now and whether the
// animation has finished.
func (tr *transition) fraction(now time.Time) (float64, bool) {
	elapsed := now.Sub(tr.start)
	if tr.duration <= 0 || elapsed >= tr.duration {
		return tr.to, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	p := tr.ease(float64(elapsed) / float64(tr.duration))
	return tr.from + (tr.to-tr.from)*p, false
}

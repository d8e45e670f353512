package drawer

import (
	"time"

	"github.com/llehouerou/drawer/internal/gesture"
	"github.com/llehouerou/drawer/internal/position"
)

// Options configures a Controller.
type Options struct {
	Positions   position.Set
	Thresholds  Thresholds
	Timing      Timing
	DragEnabled bool
	TapToExpand bool
	// HidesOnCollapse moves the sheet below the viewport at its lowest
	// position, as a modal sheet does when dismissed.
	HidesOnCollapse bool
	// Now is the animation clock; nil uses time.Now.
	Now func() time.Time
}

// DefaultOptions returns the default positions, thresholds and timing with
// dragging enabled and tap-to-expand disabled.
func DefaultOptions() Options {
	return Options{
		Positions:   position.DefaultSet(),
		Thresholds:  DefaultThresholds(),
		Timing:      DefaultTiming(),
		DragEnabled: true,
	}
}

// Controller owns the sheet's current position and frame. It is not safe
// for concurrent use; hosts call it from a single event loop.
type Controller struct {
	manager *Manager
	arbiter *Arbiter
	timing  Timing
	now     func() time.Time

	current position.Position
	y       float64 // top edge of the sheet
	anim    *transition

	dragEnabled bool
	tapToExpand bool
	owner       Owner

	positionListeners listeners[position.Position]
	dragListeners     listeners[float64]
}

// New creates a controller resting at the lowest supported position.
func New(opts Options) *Controller {
	if opts.Thresholds == (Thresholds{}) {
		opts.Thresholds = DefaultThresholds()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	m := NewManager(opts.Positions)
	m.SetHidesOnCollapse(opts.HidesOnCollapse)
	c := &Controller{
		manager:     m,
		arbiter:     NewArbiter(m, opts.Thresholds),
		timing:      opts.Timing.withDefaults(),
		now:         opts.Now,
		dragEnabled: opts.DragEnabled,
		tapToExpand: opts.TapToExpand,
	}
	c.current = m.Positions().Min()
	c.y = m.ReferenceY(c.current)
	return c
}

// Manager exposes the position manager for frame queries.
func (c *Controller) Manager() *Manager {
	return c.manager
}

// Current returns the position the sheet last settled at. During an
// animation it still reports the position the animation started from.
func (c *Controller) Current() position.Position {
	return c.current
}

// Target returns where the sheet is heading: the animation target while
// animating, otherwise Current.
func (c *Controller) Target() position.Position {
	if c.anim != nil {
		return c.anim.target
	}
	return c.current
}

// FrameY returns the top edge of the sheet.
func (c *Controller) FrameY() float64 {
	return c.y
}

// Frame returns the visible part of the sheet.
func (c *Controller) Frame() Rect {
	g := c.manager.Geometry()
	return Rect{X: 0, Y: c.y, Width: g.Width, Height: max(g.Bottom()-c.y, 0)}
}

// FullFrame returns the laid-out sheet, which may extend below the viewport.
func (c *Controller) FullFrame() Rect {
	g := c.manager.Geometry()
	return Rect{X: 0, Y: c.y, Width: g.Width, Height: c.manager.TotalHeight()}
}

// Animating reports whether a settle animation is in flight.
func (c *Controller) Animating() bool {
	return c.anim != nil
}

// Dragging reports whether the sheet is following a drag.
func (c *Controller) Dragging() bool {
	return c.arbiter.Dragging()
}

// Owner returns who holds the gesture currently being routed.
func (c *Controller) Owner() Owner {
	return c.owner
}

// SupportedPositions returns the resting positions.
func (c *Controller) SupportedPositions() position.Set {
	return c.manager.Positions()
}

// SetSupportedPositions replaces the resting positions and snaps, without
// animation, to the new lowest one. Any drag or animation is abandoned. An
// empty set falls back to the default collapsed and expanded positions.
func (c *Controller) SetSupportedPositions(s position.Set) {
	c.manager.SetPositions(s)
	c.arbiter.Reset()
	c.owner = OwnerNone
	c.SetPosition(c.manager.Positions().Min(), false, nil)
}

// HidesOnCollapse reports whether the lowest position hides the sheet.
func (c *Controller) HidesOnCollapse() bool {
	return c.manager.HidesOnCollapse()
}

// SetHidesOnCollapse toggles hiding the sheet at its lowest position. An
// idle sheet moves to the new frame of its current position.
func (c *Controller) SetHidesOnCollapse(hide bool) {
	c.manager.SetHidesOnCollapse(hide)
	if c.anim == nil && !c.arbiter.Dragging() {
		c.y = c.manager.ReferenceY(c.current)
	}
}

// Thresholds returns the velocity thresholds.
func (c *Controller) Thresholds() Thresholds {
	return c.arbiter.Thresholds()
}

// SetThresholds replaces the velocity thresholds.
func (c *Controller) SetThresholds(t Thresholds) {
	c.arbiter.SetThresholds(t)
}

// Timing returns the animation timing.
func (c *Controller) Timing() Timing {
	return c.timing
}

// SetTiming replaces the animation timing for future animations.
func (c *Controller) SetTiming(t Timing) {
	c.timing = t.withDefaults()
}

// DragEnabled reports whether drag samples are processed.
func (c *Controller) DragEnabled() bool {
	return c.dragEnabled
}

// SetDragEnabled toggles dragging. Disabling stops samples from reaching the
// arbiter; a drag in flight is dropped and the sheet settles at the nearest
// position.
func (c *Controller) SetDragEnabled(enabled bool) {
	if c.dragEnabled == enabled {
		return
	}
	c.dragEnabled = enabled
	if enabled {
		return
	}
	wasDragging := c.arbiter.Dragging()
	c.arbiter.Reset()
	c.owner = OwnerNone
	if wasDragging {
		c.SetPosition(c.manager.Closest(c.y), true, nil)
	}
}

// TapToExpand reports whether header taps toggle the sheet.
func (c *Controller) TapToExpand() bool {
	return c.tapToExpand
}

// SetTapToExpand toggles header taps.
func (c *Controller) SetTapToExpand(enabled bool) {
	c.tapToExpand = enabled
}

// OnPositionChanged registers fn to run every time the sheet settles.
func (c *Controller) OnPositionChanged(fn func(position.Position)) Subscription {
	return c.positionListeners.add(fn)
}

// OnDrag registers fn to run with every accepted drag translation.
func (c *Controller) OnDrag(fn func(delta float64)) Subscription {
	return c.dragListeners.add(fn)
}

// SetPosition moves the sheet to target. Without animation the frame,
// current position, listeners and onComplete are all updated before
// returning. With animation they are updated when the animation completes;
// a later SetPosition supersedes the animation and its onComplete never runs.
func (c *Controller) SetPosition(target position.Position, animated bool, onComplete func()) {
	oldFrame := c.manager.Frame(c.current)
	newFrame := c.manager.Frame(target)

	if !animated {
		c.anim = nil
		c.y = newFrame.Y
		c.settle(target, onComplete)
		return
	}

	c.anim = &transition{
		from:       c.visibleFraction(),
		to:         c.manager.VisibleFraction(target),
		target:     target,
		start:      c.now(),
		duration:   c.timing.Duration(oldFrame.Height-newFrame.Height, c.manager.MaxMovement()),
		ease:       c.timing.Ease,
		onComplete: onComplete,
	}
}

// Expand moves to the highest supported position.
func (c *Controller) Expand(animated bool) {
	c.SetPosition(c.manager.Positions().Max(), animated, nil)
}

// Collapse moves to the lowest supported position.
func (c *Controller) Collapse(animated bool) {
	c.SetPosition(c.manager.Positions().Min(), animated, nil)
}

// Tap handles a tap on the sheet header. When tap-to-expand is enabled it
// collapses a fully expanded sheet and expands it otherwise. It returns
// false when the tap was ignored.
func (c *Controller) Tap() bool {
	if !c.tapToExpand {
		return false
	}
	if c.manager.IsMax(c.Target()) {
		c.Collapse(true)
	} else {
		c.Expand(true)
	}
	return true
}

// OnViewportChanged applies new viewport geometry. When idle the frame of
// the current position is re-applied; an animation in flight keeps heading
// to its target. The current position never changes.
func (c *Controller) OnViewportChanged(g Geometry) {
	c.manager.SetGeometry(g)
	if c.anim != nil || c.arbiter.Dragging() {
		return
	}
	c.y = c.manager.ReferenceY(c.current)
}

// Advance steps the animation to now and reports whether it is still
// running.
func (c *Controller) Advance(now time.Time) bool {
	if c.anim == nil {
		return false
	}
	tr := c.anim
	f, done := tr.fraction(now)
	if !done {
		c.y = c.manager.YForFraction(f)
		return true
	}
	c.y = c.manager.ReferenceY(tr.target)
	c.anim = nil
	c.settle(tr.target, tr.onComplete)
	return c.anim != nil
}

// HandleSample feeds a drag sample owned by the sheet, for example one
// coming from the header. Samples are dropped while dragging is disabled.
func (c *Controller) HandleSample(s gesture.Sample) Effect {
	if !c.dragEnabled {
		return Effect{}
	}
	if s.Phase == gesture.Began && c.anim != nil {
		// grab the sheet where it is
		c.anim = nil
	}
	effect := c.arbiter.Handle(s, c)
	switch effect.Kind {
	case EffectTranslate:
		c.y += effect.Delta
		c.dragListeners.emit(effect.Delta)
	case EffectSettle:
		c.SetPosition(effect.Target, true, nil)
	case EffectNone:
	}
	return effect
}

// RouteSample arbitrates a drag that started over scrollable content. The
// gesture is claimed on its first movement; when the content owns it and
// scrolls back to its top edge during a downward drag, the sheet takes
// over. The returned owner tells the host whether to scroll the content.
func (c *Controller) RouteSample(s gesture.Sample, nested NestedScroll) Owner {
	if !c.dragEnabled {
		c.owner = OwnerNone
		if nested.Scrollable {
			return OwnerContent
		}
		return OwnerNone
	}

	switch s.Phase {
	case gesture.Began:
		c.owner = OwnerNone
		return OwnerNone

	case gesture.Changed:
		switch c.owner {
		case OwnerNone:
			c.owner = ArbitrateScroll(DragContext{
				AtMax:     c.manager.IsMax(c.Target()) && c.anim == nil,
				Direction: s.Delta,
			}, nested)
			if c.owner == OwnerDrawer {
				c.HandleSample(gesture.Sample{Phase: gesture.Began})
				c.HandleSample(s)
			}
		case OwnerContent:
			if nested.AtTop() && s.Delta > 0 {
				c.owner = OwnerDrawer
				c.HandleSample(gesture.Sample{Phase: gesture.Began})
				c.HandleSample(s)
				return OwnerDrawer
			}
		case OwnerDrawer:
			c.HandleSample(s)
		}
		return c.owner

	case gesture.Ended, gesture.Cancelled:
		owner := c.owner
		c.owner = OwnerNone
		if owner == OwnerDrawer {
			c.HandleSample(s)
		}
		return owner
	}
	return c.owner
}

func (c *Controller) settle(target position.Position, onComplete func()) {
	c.current = target
	c.positionListeners.emit(target)
	if onComplete != nil {
		onComplete()
	}
}

func (c *Controller) visibleFraction() float64 {
	g := c.manager.Geometry()
	if g.Height <= 0 {
		return c.manager.VisibleFraction(c.current)
	}
	return (g.Bottom() - c.y) / g.Height
}

// Package drawer implements the bottom sheet state machine: resting
// positions, drag interpretation and animated settling.
//
// All coordinates are in points with Y growing downward; the viewport spans
// [0, Geometry.Height]. The package has no knowledge of terminals: hosts
// push geometry and drag samples in and read frames back out.
package drawer

// Geometry is the viewport size the sheet lives in. BottomInset is the
// space at the bottom of the viewport the sheet rests above, such as a
// status line or a safe area.
type Geometry struct {
	Width       float64
	Height      float64
	BottomInset float64
}

// Bottom is the Y the sheet rests on.
func (g Geometry) Bottom() float64 {
	return g.Height - max(g.BottomInset, 0)
}

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 {
	return r.Y + r.Height
}

// Translate returns r moved vertically by dy.
func (r Rect) Translate(dy float64) Rect {
	r.Y += dy
	return r
}

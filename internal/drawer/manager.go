package drawer

import (
	"math"

	"github.com/llehouerou/drawer/internal/position"
)

// Manager maps resting positions to frames for the current geometry.
type Manager struct {
	geometry        Geometry
	positions       position.Set
	hidesOnCollapse bool
}

// NewManager creates a manager for the given positions. An empty set is
// replaced by the default collapsed and expanded positions.
func NewManager(positions position.Set) *Manager {
	m := &Manager{}
	m.SetPositions(positions)
	return m
}

// FallbackSet is used in place of an empty set of positions.
func FallbackSet() position.Set {
	return position.NewSet(position.DefaultCollapsed, position.DefaultExpanded)
}

// Geometry returns the viewport geometry last pushed by the host.
func (m *Manager) Geometry() Geometry {
	return m.geometry
}

// SetGeometry replaces the viewport geometry.
func (m *Manager) SetGeometry(g Geometry) {
	m.geometry = g
}

// Positions returns the supported positions.
func (m *Manager) Positions() position.Set {
	return m.positions
}

// SetPositions replaces the supported positions. An empty set is replaced
// by FallbackSet.
func (m *Manager) SetPositions(s position.Set) {
	if s.IsEmpty() {
		s = FallbackSet()
	}
	m.positions = s
}

// HidesOnCollapse reports whether the lowest position moves the sheet
// entirely below the viewport.
func (m *Manager) HidesOnCollapse() bool {
	return m.hidesOnCollapse
}

// SetHidesOnCollapse toggles hiding the sheet at the lowest position. A
// hidden sheet ignores the bottom inset.
func (m *Manager) SetHidesOnCollapse(hide bool) {
	m.hidesOnCollapse = hide
}

// VisibleFraction is the share of the viewport covered by the sheet resting
// at p: its fraction, or 0 when p is hidden.
func (m *Manager) VisibleFraction(p position.Position) float64 {
	if m.hidden(p) {
		return 0
	}
	return p.Fraction
}

func (m *Manager) hidden(p position.Position) bool {
	return m.hidesOnCollapse && m.positions.Len() > 1 && m.IsMin(p)
}

// TotalHeight is the sheet height at its highest resting position.
func (m *Manager) TotalHeight() float64 {
	return m.geometry.Height * m.positions.Max().Fraction
}

// Height returns the visible height of the sheet resting at p.
func (m *Manager) Height(p position.Position) float64 {
	return m.geometry.Height * m.VisibleFraction(p)
}

// ReferenceY returns the top edge of the sheet resting at p, measured up
// from the bottom inset. A hidden sheet rests at the bottom of the viewport.
func (m *Manager) ReferenceY(p position.Position) float64 {
	if m.hidden(p) {
		return m.geometry.Height
	}
	return m.geometry.Bottom() - m.Height(p)
}

// YForFraction returns the top edge of a sheet covering fraction f of the
// viewport.
func (m *Manager) YForFraction(f float64) float64 {
	return m.geometry.Bottom() - m.geometry.Height*f
}

// TopBound is the smallest Y a drag may move the sheet to: the top edge of
// the fully expanded frame.
func (m *Manager) TopBound() float64 {
	return m.geometry.Bottom() - m.TotalHeight()
}

// Frame returns the on-screen rectangle of the sheet resting at p. The frame
// runs from the reference Y down to the bottom inset, so its height grows
// with the fraction.
func (m *Manager) Frame(p position.Position) Rect {
	return Rect{
		X:      0,
		Y:      m.ReferenceY(p),
		Width:  m.geometry.Width,
		Height: m.Height(p),
	}
}

// FullFrame returns the laid-out rectangle of the sheet resting at p. Its
// height is always TotalHeight; at lower positions it extends below the
// viewport.
func (m *Manager) FullFrame(p position.Position) Rect {
	return Rect{
		X:      0,
		Y:      m.ReferenceY(p),
		Width:  m.geometry.Width,
		Height: m.TotalHeight(),
	}
}

// Closest returns the supported position whose reference Y is nearest to y.
// Positions are scanned in ascending fraction order and only a strictly
// smaller distance replaces the best match, so ties resolve to the lower
// fraction. A zero Manager, which holds no positions, yields
// DefaultExpanded.
func (m *Manager) Closest(y float64) position.Position {
	if m.positions.IsEmpty() {
		return position.DefaultExpanded
	}
	best := m.positions.At(0)
	bestDist := math.Abs(y - m.ReferenceY(best))
	for i := 1; i < m.positions.Len(); i++ {
		p := m.positions.At(i)
		if d := math.Abs(y - m.ReferenceY(p)); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// Next returns the position above current, or current at the top edge or
// when current is not supported.
func (m *Manager) Next(current position.Position) position.Position {
	i := m.positions.IndexOf(current)
	if i < 0 || i == m.positions.Len()-1 {
		return current
	}
	return m.positions.At(i + 1)
}

// Previous returns the position below current, or current at the bottom
// edge or when current is not supported.
func (m *Manager) Previous(current position.Position) position.Position {
	i := m.positions.IndexOf(current)
	if i <= 0 {
		return current
	}
	return m.positions.At(i - 1)
}

// IsMin reports whether p is the lowest supported position.
func (m *Manager) IsMin(p position.Position) bool {
	return m.positions.Min().Equal(p)
}

// IsMax reports whether p is the highest supported position.
func (m *Manager) IsMax(p position.Position) bool {
	return m.positions.Max().Equal(p)
}

// MaxMovement is the height difference between the highest and lowest
// positions.
func (m *Manager) MaxMovement() float64 {
	return math.Abs(m.Height(m.positions.Max()) - m.Height(m.positions.Min()))
}

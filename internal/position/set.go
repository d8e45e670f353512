package position

import "slices"

// Set is an immutable collection of resting points kept in ascending order.
// Fractions are unique: a later position whose fraction is already present
// is dropped.
type Set struct {
	items []Position
}

// NewSet builds a set from positions in any order.
func NewSet(positions ...Position) Set {
	items := make([]Position, 0, len(positions))
	for _, p := range positions {
		p = New(p.Category, p.Fraction)
		if slices.ContainsFunc(items, func(q Position) bool { return q.Fraction == p.Fraction }) {
			continue
		}
		items = append(items, p)
	}
	slices.SortStableFunc(items, Position.Compare)
	return Set{items: items}
}

// DefaultSet returns the collapsed/partial/expanded defaults.
func DefaultSet() Set {
	return NewSet(DefaultCollapsed, DefaultPartial, DefaultExpanded)
}

// FromFractions builds a set from bare fractions. The lowest becomes
// Collapsed and the highest Expanded; with exactly three values the middle
// one is Partial, otherwise interior values are Custom.
func FromFractions(fractions ...float64) Set {
	sorted := slices.Clone(fractions)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	positions := make([]Position, 0, len(sorted))
	for i, f := range sorted {
		category := Custom
		switch {
		case i == len(sorted)-1:
			category = Expanded
		case i == 0:
			category = Collapsed
		case len(sorted) == 3:
			category = Partial
		}
		positions = append(positions, New(category, f))
	}
	return NewSet(positions...)
}

// Len returns the number of positions.
func (s Set) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the set holds no positions.
func (s Set) IsEmpty() bool {
	return len(s.items) == 0
}

// Sorted returns a copy of the positions in ascending order.
func (s Set) Sorted() []Position {
	return slices.Clone(s.items)
}

// At returns the i-th position in ascending order.
func (s Set) At(i int) Position {
	return s.items[i]
}

// Min returns the lowest position, or DefaultCollapsed for an empty set.
func (s Set) Min() Position {
	if len(s.items) == 0 {
		return DefaultCollapsed
	}
	return s.items[0]
}

// Max returns the highest position, or DefaultExpanded for an empty set.
func (s Set) Max() Position {
	if len(s.items) == 0 {
		return DefaultExpanded
	}
	return s.items[len(s.items)-1]
}

// IndexOf returns the index of p, or -1 when p is not in the set.
func (s Set) IndexOf(p Position) int {
	return slices.IndexFunc(s.items, p.Equal)
}

// Contains reports whether p is in the set.
func (s Set) Contains(p Position) bool {
	return s.IndexOf(p) >= 0
}

// Equal reports whether both sets hold the same positions.
func (s Set) Equal(o Set) bool {
	return slices.EqualFunc(s.items, o.items, Position.Equal)
}

// Fractions returns the fractions in ascending order.
func (s Set) Fractions() []float64 {
	out := make([]float64, len(s.items))
	for i, p := range s.items {
		out[i] = p.Fraction
	}
	return out
}

// Package position defines the resting points a bottom sheet can settle at.
package position

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Category names the role a resting point plays in the sheet.
type Category int

const (
	Collapsed Category = iota
	Partial
	Expanded
	Custom
)

func (c Category) String() string {
	switch c {
	case Collapsed:
		return "collapsed"
	case Partial:
		return "partial"
	case Expanded:
		return "expanded"
	case Custom:
		return "custom"
	}
	return "unknown"
}

// ParseCategory converts a category name back to a Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "collapsed":
		return Collapsed, nil
	case "partial":
		return Partial, nil
	case "expanded":
		return Expanded, nil
	case "custom", "":
		return Custom, nil
	}
	return Custom, fmt.Errorf("unknown position category %q", s)
}

// Position is a resting point expressed as a fraction of the viewport height.
// The zero value is a collapsed position at fraction 0.
type Position struct {
	Category Category
	Fraction float64
}

// New creates a position, clamping fraction to [0, 1].
func New(category Category, fraction float64) Position {
	return Position{Category: category, Fraction: clampFraction(fraction)}
}

// Default resting points.
var (
	DefaultExpanded  = New(Expanded, 0.9)
	DefaultPartial   = New(Partial, 0.45)
	DefaultCollapsed = New(Collapsed, 0.2)
)

// Equal reports whether both positions have the same category and fraction.
func (p Position) Equal(o Position) bool {
	return p.Category == o.Category && p.Fraction == o.Fraction
}

// Less orders positions by fraction, then by category.
func (p Position) Less(o Position) bool {
	if p.Fraction != o.Fraction {
		return p.Fraction < o.Fraction
	}
	return p.Category < o.Category
}

// Compare returns -1, 0 or 1 following Less and Equal.
func (p Position) Compare(o Position) int {
	switch {
	case p.Less(o):
		return -1
	case o.Less(p):
		return 1
	}
	return 0
}

func (p Position) String() string {
	return fmt.Sprintf("%s(%.2f)", p.Category, p.Fraction)
}

// Parse reads "category:fraction" or a bare fraction (Custom).
func Parse(s string) (Position, error) {
	s = strings.TrimSpace(s)
	category := Custom
	raw := s
	if name, value, ok := strings.Cut(s, ":"); ok {
		c, err := ParseCategory(name)
		if err != nil {
			return Position{}, err
		}
		category = c
		raw = value
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return Position{}, fmt.Errorf("parse position %q: %w", s, err)
	}
	return New(category, f), nil
}

func clampFraction(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

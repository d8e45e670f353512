package position

import (
	"math"
	"testing"
)

func TestNewClampsFraction(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"inside range", 0.45, 0.45},
		{"negative", -0.2, 0},
		{"above one", 1.7, 1},
		{"zero", 0, 0},
		{"one", 1, 1},
		{"NaN", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(Custom, tt.input).Fraction
			if got != tt.want {
				t.Errorf("New(Custom, %v).Fraction = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEqualComparesCategoryAndFraction(t *testing.T) {
	a := New(Partial, 0.5)
	b := New(Custom, 0.5)

	if a.Equal(b) {
		t.Error("positions with different categories should not be equal")
	}
	if !a.Equal(New(Partial, 0.5)) {
		t.Error("identical positions should be equal")
	}
	if a.Equal(New(Partial, 0.51)) {
		t.Error("positions with different fractions should not be equal")
	}
}

func TestLessOrdersByFractionThenCategory(t *testing.T) {
	if !New(Expanded, 0.3).Less(New(Collapsed, 0.4)) {
		t.Error("lower fraction should sort first regardless of category")
	}
	if !New(Collapsed, 0.5).Less(New(Partial, 0.5)) {
		t.Error("equal fractions should sort by category rank")
	}
	if New(Partial, 0.5).Compare(New(Partial, 0.5)) != 0 {
		t.Error("Compare of equal positions should be 0")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Position
		wantErr bool
	}{
		{"collapsed:0.2", New(Collapsed, 0.2), false},
		{"partial: 0.45", New(Partial, 0.45), false},
		{"Expanded:0.9", New(Expanded, 0.9), false},
		{"0.3", New(Custom, 0.3), false},
		{"custom:1.5", New(Custom, 1), false},
		{"sideways:0.3", Position{}, true},
		{"partial:abc", Position{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := DefaultPartial.String(); got != "partial(0.45)" {
		t.Errorf("String() = %q, want %q", got, "partial(0.45)")
	}
}

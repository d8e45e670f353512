package layout

import "testing"

func TestNewScale(t *testing.T) {
	tests := []struct {
		in   float64
		want Scale
	}{
		{20, 20},
		{8, 8},
		{0, DefaultPointsPerRow},
		{-3, DefaultPointsPerRow},
	}

	for _, tt := range tests {
		if got := NewScale(tt.in); got != tt.want {
			t.Errorf("NewScale(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScaleConversions(t *testing.T) {
	s := NewScale(20)

	if got := s.Points(3); got != 60 {
		t.Errorf("Points(3) = %v, want 60", got)
	}
	if got := s.Rows(50); got != 2.5 {
		t.Errorf("Rows(50) = %v, want 2.5", got)
	}

	g := s.Geometry(80, 40, 0)
	if g.Width != 1600 || g.Height != 800 || g.BottomInset != 0 {
		t.Errorf("Geometry(80, 40, 0) = %+v, want 1600x800", g)
	}

	g = s.Geometry(80, 40, 2)
	if g.BottomInset != 40 || g.Bottom() != 760 {
		t.Errorf("Geometry(80, 40, 2) = %+v, want inset 40", g)
	}
	if g := s.Geometry(80, 4, 10); g.BottomInset != 80 {
		t.Errorf("inset larger than the window should clamp, got %+v", g)
	}
}

func TestSheetTop(t *testing.T) {
	tests := []struct {
		name         string
		frameY       float64
		windowHeight int
		want         int
	}{
		{
			name:         "exact row",
			frameY:       200,
			windowHeight: 40,
			want:         10,
		},
		{
			name:         "rounds to nearest row",
			frameY:       215,
			windowHeight: 40,
			want:         11,
		},
		{
			name:         "above the window",
			frameY:       -40,
			windowHeight: 40,
			want:         0,
		},
		{
			name:         "dragged below the window",
			frameY:       1000,
			windowHeight: 40,
			want:         40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SheetTop(tt.frameY, tt.windowHeight, NewScale(20))
			if got != tt.want {
				t.Errorf("SheetTop() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestVisibleRows(t *testing.T) {
	tests := []struct {
		top, windowHeight, want int
	}{
		{10, 40, 30},
		{0, 40, 40},
		{40, 40, 0},
		{45, 40, 0},
	}

	for _, tt := range tests {
		if got := VisibleRows(tt.top, tt.windowHeight); got != tt.want {
			t.Errorf("VisibleRows(%d, %d) = %d, want %d", tt.top, tt.windowHeight, got, tt.want)
		}
	}
}

func TestSheetRows(t *testing.T) {
	s := NewScale(20)

	if got := SheetRows(720, 40, s); got != 36 {
		t.Errorf("SheetRows(720) = %d, want 36", got)
	}
	if got := SheetRows(2000, 40, s); got != 40 {
		t.Errorf("SheetRows(2000) = %d, want 40 (window height)", got)
	}
}

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		sheetRows    int
		headerHeight int
		want         int
	}{
		{
			name:         "default header",
			sheetRows:    36,
			headerHeight: 3,
			want:         32, // 36 - 1 border - 3 header
		},
		{
			name:         "no header",
			sheetRows:    10,
			headerHeight: 0,
			want:         9,
		},
		{
			name:         "sheet smaller than header",
			sheetRows:    2,
			headerHeight: 3,
			want:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentHeight(tt.sheetRows, tt.headerHeight)
			if got != tt.want {
				t.Errorf("ContentHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHitTesting(t *testing.T) {
	const top, header = 20, 3

	tests := []struct {
		y                   int
		inHeader, inContent bool
	}{
		{19, false, false},
		{20, true, false}, // border
		{23, true, false}, // last header row
		{24, false, true},
		{39, false, true},
	}

	for _, tt := range tests {
		if got := InHeader(tt.y, top, header); got != tt.inHeader {
			t.Errorf("InHeader(%d) = %v, want %v", tt.y, got, tt.inHeader)
		}
		if got := InContent(tt.y, top, header); got != tt.inContent {
			t.Errorf("InContent(%d) = %v, want %v", tt.y, got, tt.inContent)
		}
	}
}

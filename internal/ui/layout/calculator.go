// Package layout provides pure functions converting between terminal cells
// and the sheet's point space.
package layout

import (
	"math"

	"github.com/llehouerou/drawer/internal/drawer"
)

// DefaultPointsPerRow is how many points one terminal row spans. Column
// width uses the same factor.
const DefaultPointsPerRow = 20

// BorderHeight is the top border of the sheet. The sheet runs off the
// bottom of the screen so it has no bottom border.
const BorderHeight = 1

// Scale converts rows to points.
type Scale float64

// NewScale returns a scale of pointsPerRow, or the default for values <= 0.
func NewScale(pointsPerRow float64) Scale {
	if pointsPerRow <= 0 {
		return DefaultPointsPerRow
	}
	return Scale(pointsPerRow)
}

// Points converts a row count (or row delta) to points.
func (s Scale) Points(rows float64) float64 {
	return rows * float64(s)
}

// Rows converts points to rows without rounding.
func (s Scale) Rows(points float64) float64 {
	if s == 0 {
		return 0
	}
	return points / float64(s)
}

// Geometry returns the drawer geometry for a window of width x height cells
// whose last inset rows stay clear of the sheet.
func (s Scale) Geometry(width, height, inset int) drawer.Geometry {
	return drawer.Geometry{
		Width:       s.Points(float64(width)),
		Height:      s.Points(float64(height)),
		BottomInset: s.Points(float64(min(max(inset, 0), height))),
	}
}

// SheetTop returns the first row covered by a sheet whose top edge is at
// frameY points, clamped to the window.
func SheetTop(frameY float64, windowHeight int, s Scale) int {
	top := int(math.Round(s.Rows(frameY)))
	return min(max(top, 0), windowHeight)
}

// VisibleRows returns how many rows of the sheet are on screen.
func VisibleRows(top, windowHeight int) int {
	return max(windowHeight-top, 0)
}

// SheetRows returns the laid-out height in rows of a sheet of totalHeight
// points. It is never taller than the window.
func SheetRows(totalHeight float64, windowHeight int, s Scale) int {
	rows := int(math.Round(s.Rows(totalHeight)))
	return min(max(rows, 0), windowHeight)
}

// ContentHeight returns the rows left for content inside a sheet of
// sheetRows once the border and header are taken.
func ContentHeight(sheetRows, headerHeight int) int {
	return max(sheetRows-BorderHeight-headerHeight, 0)
}

// InHeader reports whether window row y falls on the border or header of a
// sheet starting at top.
func InHeader(y, top, headerHeight int) bool {
	return y >= top && y < top+BorderHeight+headerHeight
}

// InContent reports whether window row y falls below the header of a sheet
// starting at top.
func InContent(y, top, headerHeight int) bool {
	return y >= top+BorderHeight+headerHeight
}

package styles

import "github.com/charmbracelet/lipgloss"

// SheetStyle returns the frame of the bottom sheet. The sheet is open at
// the bottom; a positive corner radius rounds its top corners. While
// dragged the border takes the focus color.
func SheetStyle(cornerRadius int, dragging bool) lipgloss.Style {
	border := lipgloss.NormalBorder()
	if cornerRadius > 0 {
		border = lipgloss.RoundedBorder()
	}

	color := T().Border
	if dragging {
		color = T().BorderFocus
	}

	return lipgloss.NewStyle().
		BorderStyle(border).
		BorderTop(true).
		BorderLeft(true).
		BorderRight(true).
		BorderBottom(false).
		BorderForeground(color)
}

package sheet

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/drawer/internal/ui/layout"
	"github.com/llehouerou/drawer/internal/ui/overlay"
	"github.com/llehouerou/drawer/internal/ui/render"
	"github.com/llehouerou/drawer/internal/ui/styles"
)

// handleWidth is the width of the drag handle in cells.
const handleWidth = 8

// View renders the sheet over an empty window.
func (m Model) View() string {
	return m.Render("")
}

// Render draws the sheet over base, a view of the whole window. A modal
// sheet dims base first.
func (m Model) Render(base string) string {
	if m.width == 0 || m.height == 0 {
		return base
	}
	if m.cfg.Modal && !m.state.dismissed {
		base = overlay.Dim(base, styles.T().S().Backdrop)
	}
	top, rows := m.Rows()
	return overlay.Bottom(base, rows, top, m.width, m.height)
}

// Rows returns the first window row of the sheet and its visible lines.
func (m Model) Rows() (top int, rows []string) {
	top = m.Top()
	visible := layout.VisibleRows(top, m.BottomRow())
	if visible == 0 {
		return top, nil
	}
	lines := strings.Split(m.renderSheet(), "\n")
	return top, lines[:min(visible, len(lines))]
}

func (m Model) renderSheet() string {
	inner := m.ContentWidth()
	parts := m.renderHeader(inner)
	if m.content.Height > 0 {
		parts = append(parts, m.content.View())
	}

	return styles.SheetStyle(m.cfg.CornerRadius, m.ctrl.Dragging()).
		Width(inner).
		Render(strings.Join(parts, "\n"))
}

// renderHeader returns the handle, the title and a separator, fitted to the
// configured header height.
func (m Model) renderHeader(inner int) []string {
	t := styles.T()
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(inner, lipgloss.Center, s)
	}

	handle := center(styles.Handle(min(handleWidth, inner)))
	title := center(styles.ApplyBoldGradient(render.Truncate(m.cfg.Title, inner), t.Primary, t.Secondary))
	separator := t.S().Subtle.Render(render.Separator(inner))

	n := m.cfg.HeaderHeight
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []string{handle}
	case n == 2:
		return []string{handle, title}
	}

	lines := []string{handle, title}
	for range n - 3 {
		lines = append(lines, render.EmptyLine(inner))
	}
	return append(lines, separator)
}

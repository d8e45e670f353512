package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/drawer/internal/ui/popup"
	"github.com/llehouerou/drawer/internal/ui/render"
	"github.com/llehouerou/drawer/internal/ui/styles"
)

// Map grid spacing in cells.
const (
	gridCols = 10
	gridRows = 5
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	view := m.Sheet.Render(m.renderBase())
	if m.ShowHelp {
		view = m.renderHelp(view)
	}
	return view
}

// renderBase draws the status lines over a map grid. With a bottom inset
// the status line moves to the last row, below the sheet.
func (m Model) renderBase() string {
	lines := make([]string, 0, m.Height)
	lines = append(lines, m.renderHeader())
	statusRow := 1
	if m.Sheet.Config().BottomInset > 0 {
		statusRow = m.Height - 1
	}
	for y := len(lines); y < m.Height; y++ {
		if y == statusRow {
			lines = append(lines, m.renderStatus())
			continue
		}
		lines = append(lines, m.renderGridLine(y))
	}
	if len(lines) > m.Height {
		lines = lines[:m.Height]
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderHeader() string {
	t := styles.T()
	left := styles.ApplyBoldGradient("drawer", t.Primary, t.Secondary) + " " +
		t.S().Muted.Render(m.Sheet.Controller().Current().String())
	right := m.Help.View(m.Keys)
	return ansi.Truncate(render.Row(left, right, m.Width), m.Width, "")
}

func (m Model) renderStatus() string {
	t := styles.T()
	if m.ErrorMsg != "" {
		return t.S().Error.Render(render.Truncate(m.ErrorMsg, m.Width))
	}

	ctrl := m.Sheet.Controller()
	parts := []string{
		t.S().Key.Render("velocity") + " " + humanize.SIWithDigits(m.Sheet.LastVelocity(), 1, "pt/s"),
		t.S().Key.Render("drag") + " " + onOff(ctrl.DragEnabled()),
		t.S().Key.Render("content") + " " + fmt.Sprintf("%s (%s, %s lines)",
			m.Content.Name(), humanize.Bytes(uint64(max(m.Content.Size, 0))), humanize.Comma(int64(m.Content.Lines()))),
	}
	if m.StatusMsg != "" {
		parts = append(parts, t.S().Success.Render(m.StatusMsg))
	}
	return ansi.Truncate(strings.Join(parts, t.S().Subtle.Render(" · ")), m.Width, "…")
}

func (m Model) renderGridLine(y int) string {
	var b strings.Builder
	for x := range m.Width {
		onRow, onCol := y%gridRows == 0, x%gridCols == 0
		switch {
		case onRow && onCol:
			b.WriteByte('+')
		case onRow:
			b.WriteByte('-')
		case onCol:
			b.WriteByte('|')
		default:
			b.WriteByte(' ')
		}
	}
	return styles.T().S().Subtle.Render(b.String())
}

func (m Model) renderHelp(base string) string {
	d := popup.New("Keys", m.Help.FullHelpView(m.Keys.FullHelp()), "esc to close")
	return d.Over(base, m.Width, m.Height)
}

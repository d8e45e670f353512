// Package popup renders centered dialogs drawn over the application view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/drawer/internal/ui/overlay"
	"github.com/llehouerou/drawer/internal/ui/styles"
)

// Style configures the dialog appearance.
type Style struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	TitleStyle  lipgloss.Style
	FooterStyle lipgloss.Style
}

// DefaultStyle returns the default dialog style.
func DefaultStyle() Style {
	t := styles.T()
	return Style{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: t.Border,
		TitleStyle:  t.S().Title,
		FooterStyle: t.S().Subtle,
	}
}

// Dialog is a centered box with a title, content and a footer.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // 0 = auto-fit content
	Style   Style
}

// New creates a dialog with the default style.
func New(title, content, footer string) *Dialog {
	return &Dialog{
		Title:   title,
		Content: content,
		Footer:  footer,
		Style:   DefaultStyle(),
	}
}

// Render returns the dialog centered in a termWidth x termHeight area.
func (d *Dialog) Render(termWidth, termHeight int) string {
	inner := d.innerWidth(termWidth)
	if inner <= 0 {
		return ""
	}

	lines := make([]string, 0, strings.Count(d.Content, "\n")+5)
	if d.Title != "" {
		lines = append(lines, centerLine(d.Style.TitleStyle.Render(d.Title), inner), "")
	}
	for line := range strings.SplitSeq(d.Content, "\n") {
		lines = append(lines, fitLine(line, inner))
	}
	if d.Footer != "" {
		lines = append(lines, "", centerLine(d.Style.FooterStyle.Render(d.Footer), inner))
	}

	// avoid overflowing the terminal vertically
	if maxLines := termHeight - 2; maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	box := lipgloss.NewStyle().
		Border(d.Style.Border).
		BorderForeground(d.Style.BorderColor).
		Padding(0, 1).
		Width(inner + 2).
		Render(strings.Join(lines, "\n"))
	return Center(box, termWidth, termHeight)
}

// Over draws the dialog on top of base.
func (d *Dialog) Over(base string, termWidth, termHeight int) string {
	return overlay.Compose(base, d.Render(termWidth, termHeight), termWidth)
}

func (d *Dialog) innerWidth(termWidth int) int {
	w := d.Width
	if w == 0 {
		w = maxLineWidth(d.Content)
		w = max(w, lipgloss.Width(d.Title), lipgloss.Width(d.Footer))
	}
	// border and padding take four columns, keep two more as margin
	return min(w, termWidth-6)
}

// Center places box in the middle of a termWidth x termHeight area.
func Center(box string, termWidth, termHeight int) string {
	return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "))
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}

func centerLine(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// fitLine truncates or pads a possibly styled line to width cells.
func fitLine(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

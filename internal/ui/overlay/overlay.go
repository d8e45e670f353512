// Package overlay layers rendered views on top of each other.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view.
// Non-space characters in overlay replace the base at the same position.
// This function is ANSI-aware and handles styled text correctly.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue
		}

		startCol := len(plainOverlay) - len(strings.TrimLeft(plainOverlay, " "))
		trimmed := strings.TrimRight(plainOverlay, " ")
		endCol := startCol + ansi.StringWidth(trimmed[startCol:])

		baseLine := padRight(baseLines[i], width)
		result := ansi.Cut(baseLine, 0, startCol) + ansi.Cut(overlayLine, startCol, endCol)
		if endCol < width {
			result += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}

// Bottom replaces the base rows from top downward with the sheet rows.
// Sheet rows falling past the end of the base are dropped, and the base is
// padded to height rows first so a short base still shows the sheet.
func Bottom(base string, sheet []string, top, width, height int) string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	for i, row := range sheet {
		y := top + i
		if y < 0 {
			continue
		}
		if y >= height {
			break
		}
		lines[y] = padRight(ansi.Truncate(row, width, ""), width)
	}
	return strings.Join(lines, "\n")
}

// Dim re-renders a view as plain text in the given style, used as a
// backdrop behind modal content.
func Dim(view string, style lipgloss.Style) string {
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		if plain := ansi.Strip(line); plain != "" {
			lines[i] = style.Render(plain)
		}
	}
	return strings.Join(lines, "\n")
}

func padRight(line string, width int) string {
	if w := ansi.StringWidth(line); w < width {
		return line + strings.Repeat(" ", width-w)
	}
	return line
}

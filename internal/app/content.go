package app

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/drawer/internal/ui/render"
)

// Content is the text shown inside the sheet.
type Content struct {
	Path string // empty for the built-in introduction
	Text string
	Size int64
}

const introduction = `# Drawer

Drag the **handle** or the title to move the sheet between its resting
points. Release quickly to flick it all the way up or down.

## Keys

- k / up: next position
- j / down: previous position
- e / c: expand / collapse
- space: tap the header
- d: toggle dragging
- p: cycle position presets
- ?: help

## Scrolling

When the sheet is fully expanded, dragging inside this text scrolls it.
Once scrolled back to the top, dragging down moves the sheet again.
`

// DefaultContent returns the built-in introduction.
func DefaultContent() Content {
	return Content{Text: introduction, Size: int64(len(introduction))}
}

// Markdown reports whether the content is rendered as markdown.
func (c Content) Markdown() bool {
	if c.Path == "" {
		return true
	}
	switch strings.ToLower(filepath.Ext(c.Path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// Name returns a short label for the status line.
func (c Content) Name() string {
	if c.Path == "" {
		return "introduction"
	}
	return filepath.Base(c.Path)
}

// Lines returns the number of source lines.
func (c Content) Lines() int {
	if c.Text == "" {
		return 0
	}
	return strings.Count(strings.TrimRight(c.Text, "\n"), "\n") + 1
}

// renderContent renders c for a sheet width cells wide. Every line is cut
// to width so the viewport never wraps.
func renderContent(c Content, width int) (string, error) {
	if width <= 0 {
		return "", nil
	}

	text := render.Sanitize(c.Text)
	if c.Markdown() {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		if text, err = r.Render(text); err != nil {
			return "", err
		}
		text = strings.Trim(text, "\n")
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n"), nil
}

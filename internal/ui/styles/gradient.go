package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// HandleGlyph is the character the drag handle is drawn with.
const HandleGlyph = "━"

// ApplyGradient renders text with a horizontal color gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, false, from, to)
}

// ApplyBoldGradient renders bold text with a horizontal color gradient.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, true, from, to)
}

// Handle renders the drag handle: a short bar of width cells blending from
// the primary to the secondary theme color.
func Handle(width int) string {
	if width <= 0 {
		return ""
	}
	t := T()
	return ApplyGradient(strings.Repeat(HandleGlyph, width), t.Primary, t.Secondary)
}

func applyGradient(text string, bold bool, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// grapheme clusters keep wide and combined characters whole
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	style := lipgloss.NewStyle().Bold(bold)
	if len(clusters) == 1 {
		return style.Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, c := range blendColors(len(clusters), from, to) {
		b.WriteString(style.Foreground(lipgloss.Color(c.Hex())).Render(clusters[i]))
	}
	return b.String()
}

// blendColors returns size colors blended in HCL space between from and to.
func blendColors(size int, from, to lipgloss.Color) []colorful.Color {
	c1 := toColorful(from)
	if size < 2 {
		return []colorful.Color{c1}
	}
	c2 := toColorful(to)

	colors := make([]colorful.Color, size)
	for i := range size {
		colors[i] = c1.BlendHcl(c2, float64(i)/float64(size-1)).Clamped()
	}
	return colors
}

// toColorful parses a hex lipgloss color. ANSI palette colors fall back to
// a neutral gray.
func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	gray, _ := colorful.MakeColor(color.Gray{Y: 128})
	return gray
}

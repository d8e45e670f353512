package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestBlendColorsEndpoints(t *testing.T) {
	colors := blendColors(5, "#000000", "#ffffff")

	assert.Len(t, colors, 5)
	assert.Equal(t, "#000000", colors[0].Hex())
	assert.Equal(t, "#ffffff", colors[4].Hex())
}

func TestBlendColorsSingle(t *testing.T) {
	colors := blendColors(1, "#a78bfa", "#f1a208")
	assert.Equal(t, []string{"#a78bfa"}, []string{colors[0].Hex()})
}

func TestToColorfulFallsBackForANSI(t *testing.T) {
	assert.Equal(t, "#808080", toColorful(lipgloss.Color("240")).Hex())
}

func TestApplyGradientKeepsText(t *testing.T) {
	tests := []string{"", "a", "Results", "日本語"}
	for _, text := range tests {
		got := ansi.Strip(ApplyBoldGradient(text, T().Primary, T().Secondary))
		assert.Equal(t, text, got)
	}
}

func TestHandle(t *testing.T) {
	assert.Empty(t, Handle(0))
	assert.Equal(t, strings.Repeat(HandleGlyph, 6), ansi.Strip(Handle(6)))
}

func TestSheetStyle(t *testing.T) {
	rounded := SheetStyle(8, false).Render("x")
	square := SheetStyle(0, true).Render("x")

	assert.Contains(t, ansi.Strip(rounded), "╭")
	assert.Contains(t, ansi.Strip(square), "┌")
	// open at the bottom
	assert.NotContains(t, ansi.Strip(rounded), "╰")
}

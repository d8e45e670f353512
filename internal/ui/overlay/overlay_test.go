package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		overlay string
		width   int
		want    string
	}{
		{
			name:    "centered box",
			base:    "aaaaaa\nbbbbbb\ncccccc",
			overlay: "\n  XY\n",
			width:   6,
			want:    "aaaaaa\nbbXYbb\ncccccc",
		},
		{
			name:    "short base line is padded",
			base:    "ab",
			overlay: "   Z",
			width:   5,
			want:    "ab Z ",
		},
		{
			name:    "overlay longer than base",
			base:    "one",
			overlay: "1\n2",
			width:   3,
			want:    "1ne",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(tt.base, tt.overlay, tt.width))
		})
	}
}

func TestComposeKeepsOverlayStyling(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("X")
	got := Compose("....", " "+styled, 4)
	assert.Equal(t, ".X..", ansi.Strip(got))
}

func TestBottom(t *testing.T) {
	base := "map1\nmap2\nmap3\nmap4"

	got := Bottom(base, []string{"top", "body", "lost"}, 2, 4, 4)

	assert.Equal(t, []string{"map1", "map2", "top ", "body"}, strings.Split(got, "\n"))
}

func TestBottomPadsShortBase(t *testing.T) {
	got := Bottom("x", []string{"sheet"}, 2, 3, 3)
	assert.Equal(t, []string{"x", "", "she"}, strings.Split(got, "\n"))
}

func TestBottomNegativeTop(t *testing.T) {
	got := Bottom("a\nb", []string{"hidden", "s"}, -1, 1, 2)
	assert.Equal(t, []string{"s", "b"}, strings.Split(got, "\n"))
}

func TestDim(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("map")
	got := Dim(styled+"\n", lipgloss.NewStyle())
	assert.Equal(t, "map\n", ansi.Strip(got))
}

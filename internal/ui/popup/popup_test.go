package popup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/drawer/internal/ui/testutil"
)

func TestDialogRender(t *testing.T) {
	d := New("Help", "j  next\nk  previous", "esc to close")
	view := d.Render(40, 12)

	lines := testutil.Lines(view)
	assert.Len(t, lines, 12)
	assert.True(t, testutil.ContainsLine(view, "Help"))
	assert.True(t, testutil.ContainsLine(view, "j  next"))
	assert.True(t, testutil.ContainsLine(view, "esc to close"))

	top := testutil.LineIndex(view, "╭")
	bottom := testutil.LineIndex(view, "╰")
	assert.Greater(t, top, 0)
	assert.Less(t, bottom, 11)
	// title, blank, two content lines, blank, footer
	assert.Equal(t, 7, bottom-top)
}

func TestDialogTruncatesWideContent(t *testing.T) {
	d := New("", strings.Repeat("x", 80), "")
	for _, line := range testutil.Lines(d.Render(30, 5)) {
		assert.LessOrEqual(t, testutil.MeasureWidth(line), 30)
	}
}

func TestDialogTooNarrow(t *testing.T) {
	d := New("Help", "content", "")
	assert.Empty(t, d.Render(5, 10))
}

func TestDialogOver(t *testing.T) {
	base := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 40)+"\n", 12), "\n")
	view := New("Help", "body", "").Over(base, 40, 12)

	lines := testutil.Lines(view)
	assert.Len(t, lines, 12)
	assert.Equal(t, strings.Repeat(".", 40), lines[0])
	assert.True(t, testutil.ContainsLine(view, "body"))
	for _, line := range lines {
		assert.Equal(t, 40, testutil.MeasureWidth(line))
	}
}

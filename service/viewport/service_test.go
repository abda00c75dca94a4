package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/repline/service/host/memory"
)

func TestCaptureRestore(t *testing.T) {
	aHost := memory.New()
	view := aHost.NewView("python", 40, "a", "b", "c", "d")
	view.SetScroll(2)
	view.SetCursor(3, 5)

	service := New()
	snapshot := service.Capture(view)

	view.SetScroll(0)
	view.SetCursor(1, 0)
	service.Restore(view, snapshot)

	top, _ := view.Scroll()
	line, column := view.Cursor()
	assert.EqualValues(t, 2, top)
	assert.EqualValues(t, 3, line)
	assert.EqualValues(t, 5, column)
}

func TestRenderReplacesWholesale(t *testing.T) {
	aHost := memory.New()
	companion := aHost.NewView("python", 10, "stale", "content", "here")

	service := New()
	service.Render(companion, []string{"2", "4"}, 4, false)
	assert.EqualValues(t, []string{"2   ", "4   "}, companion.Lines())
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		description string
		line        string
		width       int
		rightAlign  bool
		expect      string
	}{
		{"left pad-right", "2", 4, false, "2   "},
		{"right align", "2", 4, true, "   2"},
		{"exact width untouched", "abcd", 4, true, "abcd"},
		{"overlong untouched", "abcdef", 4, true, "abcdef"},
		{"zero width untouched", "x", 0, true, "x"},
	}
	for _, testCase := range testCases {
		actual := Format(testCase.line, testCase.width, testCase.rightAlign)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

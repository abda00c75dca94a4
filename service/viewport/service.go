// Package viewport captures and restores scroll/cursor state around a
// pipeline run and renders extracted text into the companion pane. The two
// panes stay mirrored through the host's scroll binding for as long as a
// session is open; this package only handles the per-update save/replace/
// restore cycle.
package viewport

import (
	"strings"

	"github.com/viant/repline/service/host"
)

// Snapshot is the viewport state captured before companion content is
// replaced and restored right after.
type Snapshot struct {
	ScrollTop    int
	ScrollOffset int
	CursorLine   int
	CursorColumn int
}

// Service implements the capture/render/restore cycle.
type Service struct{}

// New creates a viewport service.
func New() *Service {
	return &Service{}
}

// Capture records the source view's scroll position and cursor location.
func (s *Service) Capture(view host.View) *Snapshot {
	top, offset := view.Scroll()
	line, column := view.Cursor()
	return &Snapshot{
		ScrollTop:    top,
		ScrollOffset: offset,
		CursorLine:   line,
		CursorColumn: column,
	}
}

// Render replaces the companion view's content wholesale, formatting every
// line to the fixed pane width, right-aligned when configured.
func (s *Service) Render(companion host.View, lines []string, width int, rightAlign bool) {
	formatted := make([]string, len(lines))
	for i, line := range lines {
		formatted[i] = Format(line, width, rightAlign)
	}
	companion.SetLines(formatted)
}

// Restore puts scroll position and cursor back to the captured snapshot.
func (s *Service) Restore(view host.View, snapshot *Snapshot) {
	if snapshot == nil {
		return
	}
	view.SetScroll(snapshot.ScrollTop)
	view.SetCursor(snapshot.CursorLine, snapshot.CursorColumn)
}

// Format fits one line into the display width: overlong lines are kept as
// is (the host wraps or clips), shorter lines are padded on the right, or
// on the left when right-aligning.
func Format(line string, width int, rightAlign bool) string {
	if width <= 0 || len(line) >= width {
		return line
	}
	padding := strings.Repeat(" ", width-len(line))
	if rightAlign {
		return padding + line
	}
	return line + padding
}

// Package host defines the boundary between the engine and the editor that
// embeds it. The engine only ever talks to these interfaces; concrete hosts
// (an editor adapter, the in-memory reference host) live behind them.
package host

// View is one editor pane the engine can observe and mutate.
type View interface {
	// ID returns the host-unique view identity.
	ID() string

	// Filetype returns the language identifier assigned to the view.
	Filetype() string
	SetFiletype(filetype string)

	// Lines returns the buffer content, one entry per line.
	Lines() []string
	SetLines(lines []string)

	// Scroll returns the first visible line and the cursor offset within
	// the visible window.
	Scroll() (top, offset int)
	SetScroll(top int)

	// Cursor returns the cursor position (1-based line, 0-based column).
	Cursor() (line, column int)
	SetCursor(line, column int)

	// Width returns the pane width in columns.
	Width() int

	// Option reads a view-local option previously set with SetOption.
	Option(name string) (interface{}, bool)
	SetOption(name string, value interface{})
}

// Companion describes placement of a companion pane.
type Companion struct {
	Width      int
	RightSplit bool
}

// Host exposes the editor primitives the engine needs: pane allocation,
// teardown and scroll/cursor binding between two panes.
type Host interface {
	// View resolves a view by identity.
	View(id string) (View, bool)

	// CreateCompanion splits a new pane next to source and returns it.
	CreateCompanion(source View, companion Companion) (View, error)

	// CloseView destroys a pane. Closing an unknown id is a no-op.
	CloseView(id string) error

	// Bind establishes continuous scroll/cursor mirroring between the two
	// panes; Unbind tears it down.
	Bind(sourceID, companionID string) error
	Unbind(sourceID, companionID string) error
}

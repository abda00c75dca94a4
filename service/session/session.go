// Package session implements the per-source-view lifecycle state machine: a
// session exists iff its companion view exists, at most one per source
// view. The manager owns spawn/kill/toggle/hide/show plus the update run
// that feeds the pipeline and renders its result.
package session

import (
	"github.com/viant/repline/model/interpreter"
)

// Restore is one recorded view-option restoration applied on kill.
type Restore struct {
	Option  string
	Value   interface{}
	Present bool
}

// Session binds a source view to its companion view and the interpreter
// descriptor fixed at spawn time; later registry changes never affect an
// open session.
type Session struct {
	ID          string
	SourceID    string
	CompanionID string
	Filetype    string
	Interpreter *interpreter.Descriptor
	Teardown    []Restore
	Hidden      bool
}

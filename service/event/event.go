// Package event defines the host-delivered events the engine reacts to.
// The engine never registers callbacks with the host; a thin host adapter
// translates editor hooks (idle timers, focus changes, quit hooks) into
// these events and hands them to Service.Dispatch.
package event

import (
	"time"

	"github.com/viant/repline/internal/clock"
)

// Kind identifies a host trigger.
type Kind string

const (
	// Idle fires after the source view has been quiescent.
	Idle Kind = "idle"
	// FocusGained fires when the source view becomes visible/focused.
	FocusGained Kind = "focusGained"
	// FocusLost fires when the source view loses visibility/focus.
	FocusLost Kind = "focusLost"
	// ViewClosing fires when the source view is about to close permanently.
	ViewClosing Kind = "viewClosing"
)

// Event is one host trigger aimed at a source view.
type Event struct {
	Kind     Kind                   `json:"kind"`
	SourceID string                 `json:"sourceID"`
	At       time.Time              `json:"at"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// New creates an event stamped with the current time.
func New(kind Kind, sourceID string) *Event {
	return &Event{
		Kind:     kind,
		SourceID: sourceID,
		At:       clock.Now(),
	}
}

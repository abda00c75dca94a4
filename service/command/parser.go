// Package command parses the user facing companion command into a
// lifecycle request.
package command

import (
	"fmt"

	"github.com/viant/parsly"
)

// Action is the lifecycle operation a command resolves to.
type Action int

const (
	//ActionSpawn opens (or replaces) a companion session
	ActionSpawn = Action(iota)
	//ActionKill closes the companion session
	ActionKill
	//ActionToggle flips between open and closed
	ActionToggle
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionSpawn:
		return "spawn"
	case ActionKill:
		return "kill"
	case ActionToggle:
		return "toggle"
	}
	return "unknown"
}

// Request is a parsed companion command.
type Request struct {
	Action   Action
	Filetype string
	//SetFiletype indicates the source view language should be updated
	SetFiletype bool
}

// Parse interprets the command surface: a bare command spawns with the
// source view's language, an argument spawns with that language and
// retargets the view, a banged command kills, and a banged command whose
// argument starts with '!' toggles.
func Parse(bang bool, arg string) (*Request, error) {
	cursor := parsly.NewCursor("", []byte(arg), 0)

	toggle := false
	matched := cursor.MatchAfterOptional(whitespaceToken, bangToken)
	if matched.Code == bangCode {
		if !bang {
			return nil, cursor.NewError(filetypeToken)
		}
		toggle = true
	}

	filetype := ""
	matched = cursor.MatchAfterOptional(whitespaceToken, filetypeToken)
	if matched.Code == filetypeCode {
		filetype = matched.Text(cursor)
	}
	matched = cursor.MatchAfterOptional(whitespaceToken, filetypeToken)
	if matched.Code == filetypeCode {
		return nil, fmt.Errorf("unexpected argument: %v", matched.Text(cursor))
	}

	switch {
	case toggle:
		return &Request{Action: ActionToggle, Filetype: filetype, SetFiletype: filetype != ""}, nil
	case bang:
		if filetype != "" {
			return nil, fmt.Errorf("unexpected argument: %v", filetype)
		}
		return &Request{Action: ActionKill}, nil
	case filetype != "":
		return &Request{Action: ActionSpawn, Filetype: filetype, SetFiletype: true}, nil
	}
	return &Request{Action: ActionSpawn}, nil
}

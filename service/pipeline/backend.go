package pipeline

import (
	"context"

	"github.com/viant/repline/model/interpreter"
)

// Backend spawns the interpreter under a simulated terminal, feeds it the
// prepared text followed by one end-of-transmission signal as the entire
// standard input, and returns everything written to the terminal.
//
// There is no timeout: a hung interpreter blocks the update until it exits.
type Backend interface {
	Run(ctx context.Context, descriptor *interpreter.Descriptor, input string, width int) (string, error)
}

package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"github.com/viant/repline/model/interpreter"
)

const endOfTransmission = "\x04"

// Local runs the interpreter on this machine under a pseudo-terminal. The
// pty is required: many interactive interpreters change buffering, echo or
// prompt emission when stdin is not a terminal, and without it prompts and
// results may not appear at all.
type Local struct{}

// NewLocal creates the local pty backend.
func NewLocal() *Local {
	return &Local{}
}

// Run spawns the descriptor's binary with an explicit argument vector and
// environment list, writes the input plus one EOT, and captures the
// terminal output until the process exits.
func (b *Local) Run(ctx context.Context, descriptor *interpreter.Descriptor, input string, width int) (string, error) {
	argv := descriptor.Argv()
	if len(argv) == 0 {
		return "", fmt.Errorf("descriptor bin is empty")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(), descriptor.EnvList()...)

	terminal, err := pty.Start(cmd)
	if err != nil {
		return "", err
	}
	defer terminal.Close()

	if width > 0 {
		_ = pty.Setsize(terminal, &pty.Winsize{Rows: 24, Cols: uint16(width)})
	}

	if !strings.HasSuffix(input, "\n") {
		input += "\n"
	}
	go func() {
		_, _ = io.WriteString(terminal, input)
		_, _ = io.WriteString(terminal, endOfTransmission)
	}()

	// the pty master returns an error (EIO on Linux) once the child exits;
	// everything captured up to that point is the transcript
	var captured bytes.Buffer
	_, _ = io.Copy(&captured, terminal)
	_ = cmd.Wait()
	return captured.String(), nil
}

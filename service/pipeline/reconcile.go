package pipeline

import (
	"regexp"
	"runtime"
	"strings"
)

// Mode selects how the sanitized transcript is reconciled with the two
// incompatible process-control behaviours observed across platforms.
type Mode int

const (
	// ModePromptBreak handles interpreters whose output is not reliably
	// newline-delimited per prompt: a newline is inserted after every
	// prompt occurrence so each prompt ends its own line.
	ModePromptBreak Mode = iota
	// ModeEchoDrop handles BSD-derived kernels where the simulated
	// terminal echoes the fed input verbatim before any interpreter
	// output: the echoed source lines are dropped from the front.
	ModeEchoDrop
)

func (m Mode) String() string {
	if m == ModeEchoDrop {
		return "echoDrop"
	}
	return "promptBreak"
}

// Detect resolves the reconciliation mode from the host OS, once, at engine
// construction.
func Detect() Mode {
	switch runtime.GOOS {
	case "darwin", "freebsd", "openbsd", "netbsd", "dragonfly":
		return ModeEchoDrop
	}
	return ModePromptBreak
}

// Reconcile applies the platform branch. sourceLines is the line count of
// the original source text; promptPattern is the descriptor's prompt
// expression, compiled in multi-line mode so anchored prompts match at
// every line start.
func Reconcile(mode Mode, text, promptPattern string, sourceLines int) (string, error) {
	switch mode {
	case ModeEchoDrop:
		lines := strings.Split(text, "\n")
		if sourceLines >= len(lines) {
			return "", nil
		}
		return strings.Join(lines[sourceLines:], "\n"), nil
	default:
		prompt, err := regexp.Compile("(?m)" + promptPattern)
		if err != nil {
			return "", err
		}
		return prompt.ReplaceAllStringFunc(text, func(match string) string {
			return match + "\n"
		}), nil
	}
}

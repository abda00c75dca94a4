package pipeline

import "strings"

// sanitizer strips terminal-control noise introduced by the simulated
// terminal layer and the interpreter's own line editing: end-of-transmission
// markers, backspaces and carriage returns. Nothing else is touched.
var sanitizer = strings.NewReplacer(
	"\x04", "",
	"\b", "",
	"\r", "",
)

// Sanitize removes EOT, backspace and carriage-return characters.
func Sanitize(text string) string {
	return sanitizer.Replace(text)
}

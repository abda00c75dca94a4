package pipeline

import (
	"regexp"
	"strings"
	"unicode"
)

// Extract scrapes one result line per prompt interval out of the reconciled
// transcript. Scanning keeps a single accumulating flag and one candidate
// line:
//
//   - a prompt line closes the current interval, emitting the candidate
//     (the first prompt only opens accumulation - it marks the end of the
//     echoed/startup region and emits nothing);
//   - a non-indented line overwrites the candidate, so only the last
//     non-indented line of an interval survives;
//   - indented lines are continuation/echo noise and are ignored.
//
// An interval with no candidate emits an empty line.
func Extract(text string, prompt *regexp.Regexp) []string {
	var result []string
	accumulating := false
	candidate := ""
	for _, line := range strings.Split(text, "\n") {
		if prompt.MatchString(line) {
			if accumulating {
				result = append(result, candidate)
				candidate = ""
			} else {
				accumulating = true
			}
			continue
		}
		if !accumulating || line == "" {
			continue
		}
		if first := []rune(line)[0]; !unicode.IsSpace(first) {
			candidate = line
		}
	}
	return result
}

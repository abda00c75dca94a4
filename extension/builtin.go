package extension

import (
	"regexp"
	"strings"
)

// Identity returns text unchanged; the default for absent hooks.
type Identity struct{}

func (t *Identity) Apply(text string) string { return text }

// StripPattern removes every line matching Pattern. Typical use is dropping
// interpreter banner or version noise before result extraction.
type StripPattern struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	matcher *regexp.Regexp
}

// Init compiles the configured pattern.
func (t *StripPattern) Init() error {
	matcher, err := regexp.Compile(t.Pattern)
	if err != nil {
		return err
	}
	t.matcher = matcher
	return nil
}

func (t *StripPattern) Apply(text string) string {
	if t.matcher == nil {
		return text
	}
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if t.matcher.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// TrimBlank drops leading and trailing blank lines.
type TrimBlank struct{}

func (t *TrimBlank) Apply(text string) string {
	lines := strings.Split(text, "\n")
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

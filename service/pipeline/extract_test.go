package pipeline

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	prompt := regexp.MustCompile(`^> `)
	testCases := []struct {
		description string
		transcript  []string
		expect      []string
	}{
		{
			description: "last non-indented line per interval, indented noise ignored",
			transcript:  []string{"> ", "1", "  extra", "> ", "2", "> "},
			expect:      []string{"1", "2"},
		},
		{
			description: "first prompt emits nothing",
			transcript:  []string{"banner", "> ", "42", "> "},
			expect:      []string{"42"},
		},
		{
			description: "interval without candidate emits empty line",
			transcript:  []string{"> ", "> ", "7", "> "},
			expect:      []string{"", "7"},
		},
		{
			description: "later candidate overwrites earlier one",
			transcript:  []string{"> ", "first", "second", "> "},
			expect:      []string{"second"},
		},
		{
			description: "trailing output after last prompt is dropped",
			transcript:  []string{"> ", "1", "> ", "dangling"},
			expect:      []string{"1"},
		},
		{
			description: "no prompts at all",
			transcript:  []string{"just", "noise"},
			expect:      nil,
		},
		{
			description: "blank lines are not candidates",
			transcript:  []string{"> ", "value", "", "> "},
			expect:      []string{"value"},
		},
	}
	for _, testCase := range testCases {
		actual := Extract(strings.Join(testCase.transcript, "\n"), prompt)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestExtractPromptCountProperty(t *testing.T) {
	// k prompts delimit k-1 intervals, hence exactly k-1 output lines
	prompt := regexp.MustCompile(`^>>> `)
	transcript := ">>> \nalpha\n>>> \n  indented\n>>> \nbeta\ngamma\n>>> "
	actual := Extract(transcript, prompt)
	assert.EqualValues(t, 3, len(actual))
	assert.EqualValues(t, []string{"alpha", "", "gamma"}, actual)
}

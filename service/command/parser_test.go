package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		description string
		bang        bool
		arg         string
		expect      *Request
		hasError    bool
	}{
		{
			description: "bare command spawns with view language",
			expect:      &Request{Action: ActionSpawn},
		},
		{
			description: "argument spawns and retargets the view",
			arg:         "python",
			expect:      &Request{Action: ActionSpawn, Filetype: "python", SetFiletype: true},
		},
		{
			description: "surrounding whitespace is ignored",
			arg:         "  ruby  ",
			expect:      &Request{Action: ActionSpawn, Filetype: "ruby", SetFiletype: true},
		},
		{
			description: "bang kills",
			bang:        true,
			expect:      &Request{Action: ActionKill},
		},
		{
			description: "bang with toggle argument toggles",
			bang:        true,
			arg:         "!javascript",
			expect:      &Request{Action: ActionToggle, Filetype: "javascript", SetFiletype: true},
		},
		{
			description: "toggle argument may be separated by whitespace",
			bang:        true,
			arg:         "! lua",
			expect:      &Request{Action: ActionToggle, Filetype: "lua", SetFiletype: true},
		},
		{
			description: "bare toggle uses the view language",
			bang:        true,
			arg:         "!",
			expect:      &Request{Action: ActionToggle},
		},
		{
			description: "toggle form without bang is invalid",
			arg:         "!python",
			hasError:    true,
		},
		{
			description: "bang with plain argument is invalid",
			bang:        true,
			arg:         "python",
			hasError:    true,
		},
		{
			description: "trailing arguments are rejected",
			arg:         "python extra",
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		actual, err := Parse(testCase.bang, testCase.arg)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestActionString(t *testing.T) {
	assert.EqualValues(t, "spawn", ActionSpawn.String())
	assert.EqualValues(t, "kill", ActionKill.String())
	assert.EqualValues(t, "toggle", ActionToggle.String())
	assert.EqualValues(t, "unknown", Action(42).String())
}

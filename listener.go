package repline

import (
	"log"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/viant/repline/service/session"
)

// Listener observes completed companion updates.
type Listener = session.Listener

// DiffListener returns a listener that logs a unified diff of the companion
// content whenever an update changes it. Useful while developing host
// adapters or interpreter definitions.
func DiffListener(logger *log.Logger) Listener {
	if logger == nil {
		logger = log.Default()
	}
	return func(sourceID string, previous, current []string) {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(strings.Join(previous, "\n")),
			B:        difflib.SplitLines(strings.Join(current, "\n")),
			FromFile: "previous",
			ToFile:   "current",
			Context:  3,
		})
		if err != nil || diff == "" {
			return
		}
		logger.Printf("companion %s changed:\n%s", sourceID, diff)
	}
}

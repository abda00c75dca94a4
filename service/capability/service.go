// Package capability verifies that required executables are present on the
// target system. Checks always report the complete missing set in one pass,
// never just the first absent item.
package capability

import (
	"context"
)

// Prober answers whether a single executable can be found.
type Prober interface {
	Has(ctx context.Context, name string) bool
}

// Checker aggregates per-executable probes into a missing set.
type Checker struct {
	prober Prober
}

// Option customises the checker.
type Option func(c *Checker)

// WithProber overrides the default shell prober; tests use a stub.
func WithProber(prober Prober) Option {
	return func(c *Checker) {
		c.prober = prober
	}
}

// New creates a checker backed by a persistent local shell prober unless
// overridden.
func New(options ...Option) *Checker {
	result := &Checker{}
	for _, option := range options {
		option(result)
	}
	if result.prober == nil {
		result.prober = NewShellProber()
	}
	return result
}

// Missing returns the subset of names not found as executables, in input
// order, duplicates collapsed. An empty result means all present.
func (c *Checker) Missing(ctx context.Context, names []string) []string {
	var missing []string
	seen := make(map[string]bool)
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		if !c.prober.Has(ctx, name) {
			missing = append(missing, name)
		}
	}
	return missing
}

package capability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubProber struct {
	present map[string]bool
	probed  []string
}

func (p *stubProber) Has(_ context.Context, name string) bool {
	p.probed = append(p.probed, name)
	return p.present[name]
}

func TestMissingReportsUnion(t *testing.T) {
	prober := &stubProber{present: map[string]bool{"sh": true, "node": true}}
	checker := New(WithProber(prober))
	missing := checker.Missing(context.Background(), []string{"sh", "ghci", "node", "stack"})
	assert.EqualValues(t, []string{"ghci", "stack"}, missing)
	// every name is probed; the check never stops at the first miss
	assert.EqualValues(t, []string{"sh", "ghci", "node", "stack"}, prober.probed)
}

func TestMissingCollapsesDuplicates(t *testing.T) {
	prober := &stubProber{present: map[string]bool{}}
	checker := New(WithProber(prober))
	missing := checker.Missing(context.Background(), []string{"iex", "iex", "", "elixir"})
	assert.EqualValues(t, []string{"iex", "elixir"}, missing)
}

func TestMissingAllPresent(t *testing.T) {
	prober := &stubProber{present: map[string]bool{"python3": true}}
	checker := New(WithProber(prober))
	assert.Empty(t, checker.Missing(context.Background(), []string{"python3"}))
}

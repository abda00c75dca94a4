package capability

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/viant/gosh"
	"github.com/viant/gosh/runner/local"
)

// ShellProber resolves executables with `command -v` through a persistent
// local shell session, so repeated capability checks pay the shell startup
// cost once per process.
type ShellProber struct {
	mux     sync.Mutex
	service *gosh.Service
}

// NewShellProber creates a lazy shell prober; the session starts on first
// probe.
func NewShellProber() *ShellProber {
	return &ShellProber{}
}

func (p *ShellProber) session(ctx context.Context) (*gosh.Service, error) {
	p.mux.Lock()
	defer p.mux.Unlock()
	if p.service != nil {
		return p.service, nil
	}
	service, err := gosh.New(ctx, local.New())
	if err != nil {
		return nil, fmt.Errorf("failed to start probe shell: %w", err)
	}
	p.service = service
	return service, nil
}

// Has reports whether name resolves to an executable. A shell that cannot
// be started counts as nothing being present; the base toolset check
// surfaces that as a missing-dependency report rather than a crash.
func (p *ShellProber) Has(ctx context.Context, name string) bool {
	service, err := p.session(ctx)
	if err != nil {
		return false
	}
	output, status, err := service.Run(ctx, fmt.Sprintf("command -v %s", name))
	if err != nil || status != 0 {
		return false
	}
	return strings.TrimSpace(output) != ""
}

// Close releases the probe shell session.
func (p *ShellProber) Close() error {
	p.mux.Lock()
	defer p.mux.Unlock()
	if p.service == nil {
		return nil
	}
	err := p.service.Close()
	p.service = nil
	return err
}

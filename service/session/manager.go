package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/repline/internal/idgen"
	"github.com/viant/repline/model/types"
	"github.com/viant/repline/service/capability"
	"github.com/viant/repline/service/host"
	"github.com/viant/repline/service/pipeline"
	"github.com/viant/repline/service/registry"
	"github.com/viant/repline/service/viewport"
	"github.com/viant/repline/tracing"
)

// Settings are the lifecycle-relevant engine options.
type Settings struct {
	Width      int
	AutoClose  bool
	Raw        bool
	RightAlign bool
	RightSplit bool
}

// Listener observes completed updates; previous and current are the
// companion content before and after the render.
type Listener func(sourceID string, previous, current []string)

// Manager is the per-source-view lifecycle state machine. All operations
// run on the host's single event goroutine; the busy flag is a
// non-reentrant guard against hide/show side effects fired synchronously
// from within an update's own view manipulation.
type Manager struct {
	host      host.Host
	registry  *registry.Service
	checker   *capability.Checker
	pipeline  *pipeline.Service
	viewport  *viewport.Service
	settings  Settings
	sessions  *Store[string, Session]
	listeners []Listener
	busy      bool
}

// Option customises the manager.
type Option func(m *Manager)

// WithSettings sets the lifecycle settings.
func WithSettings(settings Settings) Option {
	return func(m *Manager) {
		m.settings = settings
	}
}

// WithListeners registers update listeners.
func WithListeners(listeners ...Listener) Option {
	return func(m *Manager) {
		m.listeners = append(m.listeners, listeners...)
	}
}

// New creates a lifecycle manager.
func New(aHost host.Host, aRegistry *registry.Service, checker *capability.Checker, aPipeline *pipeline.Service, options ...Option) *Manager {
	result := &Manager{
		host:     aHost,
		registry: aRegistry,
		checker:  checker,
		pipeline: aPipeline,
		viewport: viewport.New(),
		settings: Settings{Width: 40, RightSplit: true},
		sessions: NewStore[string, Session](func(s *Session) string { return s.SourceID }),
	}
	for _, option := range options {
		option(result)
	}
	return result
}

// Open reports whether a session exists for the source view.
func (m *Manager) Open(sourceID string) bool {
	return m.sessions.Load(sourceID) != nil
}

// Session returns the session for a source view, nil when closed.
func (m *Manager) Session(sourceID string) *Session {
	return m.sessions.Load(sourceID)
}

// Sessions lists all open sessions.
func (m *Manager) Sessions() []*Session {
	return m.sessions.List()
}

// Spawn transitions Closed -> Open: resolves and validates the interpreter,
// allocates a companion view bound for the session's lifetime, records
// teardown actions and performs one immediate update. On any validation
// failure the state stays Closed and no companion view is created.
func (m *Manager) Spawn(ctx context.Context, sourceID, filetype string) error {
	view, ok := m.host.View(sourceID)
	if !ok {
		return fmt.Errorf("unknown view %v", sourceID)
	}
	if m.Open(sourceID) {
		if err := m.Kill(ctx, sourceID); err != nil {
			return err
		}
	}
	if filetype == "" {
		filetype = view.Filetype()
	}
	descriptor, err := m.registry.Resolve(filetype)
	if err != nil {
		return err
	}
	canonical := m.registry.Canonical(filetype)
	if missing := descriptor.MissingFields(); len(missing) > 0 {
		return types.NewConfigError(canonical, missing)
	}
	if missing := m.checker.Missing(ctx, descriptor.Executables()); len(missing) > 0 {
		return types.NewDepsError(canonical, missing)
	}

	companion, err := m.host.CreateCompanion(view, host.Companion{
		Width:      m.settings.Width,
		RightSplit: m.settings.RightSplit,
	})
	if err != nil {
		return fmt.Errorf("failed to create companion view: %w", err)
	}
	companion.SetFiletype(view.Filetype())

	aSession := &Session{
		ID:          idgen.New(),
		SourceID:    sourceID,
		CompanionID: companion.ID(),
		Filetype:    canonical,
		Interpreter: descriptor,
		Teardown:    bindOptions(view),
	}
	if err = m.host.Bind(sourceID, companion.ID()); err != nil {
		_ = m.host.CloseView(companion.ID())
		return err
	}
	m.sessions.Save(aSession)
	return m.Update(ctx, sourceID)
}

// Kill transitions Open -> Closed: destroys the companion view, applies the
// recorded teardown and discards the session. A no-op when already Closed.
func (m *Manager) Kill(ctx context.Context, sourceID string) error {
	aSession := m.sessions.Load(sourceID)
	if aSession == nil {
		return nil
	}
	_ = m.host.Unbind(sourceID, aSession.CompanionID)
	_ = m.host.CloseView(aSession.CompanionID)
	if view, ok := m.host.View(sourceID); ok {
		for _, restore := range aSession.Teardown {
			view.SetOption(restore.Option, restore.Value)
		}
	}
	m.sessions.Delete(sourceID)
	return nil
}

// Toggle kills an open session or spawns a closed one.
func (m *Manager) Toggle(ctx context.Context, sourceID, filetype string) error {
	if m.Open(sourceID) {
		return m.Kill(ctx, sourceID)
	}
	return m.Spawn(ctx, sourceID, filetype)
}

// Hide detaches the companion display without destroying session data.
// Available only under autoclose and never while an update is in flight.
func (m *Manager) Hide(ctx context.Context, sourceID string) error {
	if !m.settings.AutoClose || m.busy {
		return nil
	}
	aSession := m.sessions.Load(sourceID)
	if aSession == nil || aSession.Hidden {
		return nil
	}
	_ = m.host.Unbind(sourceID, aSession.CompanionID)
	_ = m.host.CloseView(aSession.CompanionID)
	aSession.Hidden = true
	aSession.CompanionID = ""
	m.sessions.Save(aSession)
	return nil
}

// Show re-spawns a hidden companion display when the source view regains
// focus. Guards mirror Hide.
func (m *Manager) Show(ctx context.Context, sourceID string) error {
	if !m.settings.AutoClose || m.busy {
		return nil
	}
	aSession := m.sessions.Load(sourceID)
	if aSession == nil || !aSession.Hidden {
		return nil
	}
	view, ok := m.host.View(sourceID)
	if !ok {
		return fmt.Errorf("unknown view %v", sourceID)
	}
	companion, err := m.host.CreateCompanion(view, host.Companion{
		Width:      m.settings.Width,
		RightSplit: m.settings.RightSplit,
	})
	if err != nil {
		return fmt.Errorf("failed to create companion view: %w", err)
	}
	companion.SetFiletype(view.Filetype())
	if err = m.host.Bind(sourceID, companion.ID()); err != nil {
		_ = m.host.CloseView(companion.ID())
		return err
	}
	aSession.Hidden = false
	aSession.CompanionID = companion.ID()
	m.sessions.Save(aSession)
	return m.Update(ctx, sourceID)
}

// Autoclose kills the session when the source view closes permanently,
// if autoclose is enabled.
func (m *Manager) Autoclose(ctx context.Context, sourceID string) error {
	if !m.settings.AutoClose {
		return nil
	}
	return m.Kill(ctx, sourceID)
}

// Update runs one pipeline pass for the source view and renders the result
// into its companion, restoring the captured viewport afterwards. At most
// one update is in flight at a time; reentrant triggers are dropped. On
// SpawnFailure the companion content is left stale.
func (m *Manager) Update(ctx context.Context, sourceID string) error {
	if m.busy {
		return nil
	}
	aSession := m.sessions.Load(sourceID)
	if aSession == nil || aSession.Hidden {
		return nil
	}
	view, ok := m.host.View(sourceID)
	if !ok {
		return fmt.Errorf("unknown view %v", sourceID)
	}
	companion, ok := m.host.View(aSession.CompanionID)
	if !ok {
		return fmt.Errorf("companion view %v is gone", aSession.CompanionID)
	}

	m.busy = true
	defer func() { m.busy = false }()

	ctx, span := tracing.StartSpan(ctx, "session.update")
	var err error
	defer func() { tracing.EndSpan(span, err) }()

	width := companion.Width()
	if width <= 0 {
		width = m.settings.Width
	}
	snapshot := m.viewport.Capture(view)
	previous := companion.Lines()

	var output *pipeline.Output
	output, err = m.pipeline.Run(ctx, &pipeline.Input{
		Source:     strings.Join(view.Lines(), "\n"),
		Descriptor: aSession.Interpreter,
		Raw:        m.settings.Raw,
		Width:      width,
	})
	if err != nil {
		return err
	}

	m.viewport.Render(companion, output.Lines, width, m.settings.RightAlign)
	m.viewport.Restore(view, snapshot)

	current := companion.Lines()
	for _, listener := range m.listeners {
		listener(sourceID, previous, current)
	}
	return nil
}

// bindOptions turns on scroll/cursor binding options on the source view and
// records what to restore on kill.
func bindOptions(view host.View) []Restore {
	var teardown []Restore
	for _, name := range []string{"scrollbind", "cursorbind"} {
		value, present := view.Option(name)
		teardown = append(teardown, Restore{Option: name, Value: value, Present: present})
		view.SetOption(name, true)
	}
	return teardown
}

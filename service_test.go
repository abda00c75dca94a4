package repline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/repline/model/interpreter"
	"github.com/viant/repline/model/types"
	"github.com/viant/repline/service/capability"
	"github.com/viant/repline/service/event"
	"github.com/viant/repline/service/host/memory"
	"github.com/viant/repline/service/pipeline"
	"github.com/viant/repline/service/registry"
)

type stubBackend struct {
	transcript string
}

func (b *stubBackend) Run(_ context.Context, _ *interpreter.Descriptor, _ string, _ int) (string, error) {
	return b.transcript, nil
}

type stubProber struct{ missing map[string]bool }

func (p *stubProber) Has(_ context.Context, name string) bool {
	return !p.missing[name]
}

type engineFixture struct {
	host    *memory.Service
	service *Service
	backend *stubBackend
	source  *memory.View
}

func newEngineFixture(t *testing.T, options ...Option) *engineFixture {
	t.Helper()
	aHost := memory.New()
	source := aHost.NewView("fake", 40, "1 + 1")

	aRegistry := registry.New(registry.WithoutDefaults())
	aRegistry.Register("fake", &interpreter.Descriptor{Bin: "fakebin", Prompt: `^>>> `})
	backend := &stubBackend{transcript: ">>> \n2\n>>> "}

	options = append([]Option{
		WithConfig(&Config{Width: 4, AutoClose: true, RightSplit: true, BaseTools: []string{"sh"}}),
		WithRegistry(aRegistry),
		WithChecker(capability.New(capability.WithProber(&stubProber{}))),
		WithBackend(backend),
		WithMode(pipeline.ModePromptBreak),
	}, options...)

	service, err := New(aHost, options...)
	if err != nil {
		t.Fatal(err)
	}
	return &engineFixture{host: aHost, service: service, backend: backend, source: source}
}

func TestCommandSpawnRendersCompanion(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	assert.Nil(t, f.service.Command(ctx, f.source.ID(), false, ""))

	aSession := f.service.Sessions().Session(f.source.ID())
	if !assert.NotNil(t, aSession) {
		return
	}
	companion, ok := f.host.View(aSession.CompanionID)
	assert.True(t, ok)
	assert.EqualValues(t, []string{"2   "}, companion.Lines())
}

func TestCommandArgumentRetargetsView(t *testing.T) {
	f := newEngineFixture(t)
	f.service.Registry().Register("other", &interpreter.Descriptor{Bin: "otherbin", Prompt: `^> `})
	assert.Nil(t, f.service.Command(context.Background(), f.source.ID(), false, "other"))
	assert.EqualValues(t, "other", f.source.Filetype())
	assert.EqualValues(t, "other", f.service.Sessions().Session(f.source.ID()).Filetype)
}

func TestCommandBangKills(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	assert.Nil(t, f.service.Command(ctx, f.source.ID(), false, ""))
	assert.True(t, f.service.Sessions().Open(f.source.ID()))

	assert.Nil(t, f.service.Command(ctx, f.source.ID(), true, ""))
	assert.False(t, f.service.Sessions().Open(f.source.ID()))
}

func TestCommandToggle(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	assert.Nil(t, f.service.Command(ctx, f.source.ID(), true, "!fake"))
	assert.True(t, f.service.Sessions().Open(f.source.ID()))
	assert.Nil(t, f.service.Command(ctx, f.source.ID(), true, "!fake"))
	assert.False(t, f.service.Sessions().Open(f.source.ID()))
}

func TestCommandParseErrorSurfaces(t *testing.T) {
	f := newEngineFixture(t)
	assert.NotNil(t, f.service.Command(context.Background(), f.source.ID(), false, "!fake"))
}

func TestIncompleteBaseToolsetDisablesEngine(t *testing.T) {
	f := newEngineFixture(t, WithChecker(capability.New(
		capability.WithProber(&stubProber{missing: map[string]bool{"sh": true}}))))

	err := f.service.Command(context.Background(), f.source.ID(), false, "")
	var base *types.BaseDependencyError
	if assert.True(t, errors.As(err, &base)) {
		assert.EqualValues(t, []string{"sh"}, base.Missing)
	}
	assert.EqualValues(t, []string{"sh"}, f.service.BaseMissing())
	assert.False(t, f.service.Sessions().Open(f.source.ID()))
}

func TestDispatch(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	assert.Nil(t, f.service.Command(ctx, f.source.ID(), false, ""))

	f.backend.transcript = ">>> \n4\n>>> "
	assert.Nil(t, f.service.Dispatch(ctx, event.New(event.Idle, f.source.ID())))
	aSession := f.service.Sessions().Session(f.source.ID())
	companion, _ := f.host.View(aSession.CompanionID)
	assert.EqualValues(t, []string{"4   "}, companion.Lines())

	assert.Nil(t, f.service.Dispatch(ctx, event.New(event.FocusLost, f.source.ID())))
	assert.True(t, f.service.Sessions().Session(f.source.ID()).Hidden)

	assert.Nil(t, f.service.Dispatch(ctx, event.New(event.FocusGained, f.source.ID())))
	assert.False(t, f.service.Sessions().Session(f.source.ID()).Hidden)

	assert.Nil(t, f.service.Dispatch(ctx, event.New(event.ViewClosing, f.source.ID())))
	assert.False(t, f.service.Sessions().Open(f.source.ID()))

	assert.Nil(t, f.service.Dispatch(ctx, nil))
	assert.Nil(t, f.service.Dispatch(ctx, event.New(event.Kind("unknown"), f.source.ID())))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(memory.New(), WithConfig(&Config{Width: 0}))
	assert.NotNil(t, err)
}

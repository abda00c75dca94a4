package repline

import (
	"context"
	"fmt"

	"github.com/viant/repline/extension"
	"github.com/viant/repline/model/types"
	"github.com/viant/repline/service/capability"
	"github.com/viant/repline/service/command"
	"github.com/viant/repline/service/event"
	"github.com/viant/repline/service/host"
	"github.com/viant/repline/service/pipeline"
	"github.com/viant/repline/service/registry"
	"github.com/viant/repline/service/session"
	"github.com/viant/x"
)

// Service is the engine façade. One instance serves one host; all state
// hangs off the instance so hosts can run several engines side by side.
type Service struct {
	config         *Config
	host           host.Host
	registry       *registry.Service
	checker        *capability.Checker
	transforms     *extension.Transforms
	extensionTypes []*x.Type
	backend        pipeline.Backend
	mode           *pipeline.Mode
	pipeline       *pipeline.Service
	manager        *session.Manager
	listeners      []session.Listener
	baseMissing    []string
}

func (s *Service) init(ctx context.Context, options []Option) error {
	for _, option := range options {
		option(s)
	}
	if err := s.ensureBaseSetup(ctx); err != nil {
		return err
	}
	s.manager = session.New(s.host, s.registry, s.checker, s.pipeline,
		session.WithSettings(session.Settings{
			Width:      s.config.Width,
			AutoClose:  s.config.AutoClose,
			Raw:        s.config.Raw,
			RightAlign: s.config.RightAlign,
			RightSplit: s.config.RightSplit,
		}),
		session.WithListeners(s.listeners...))
	s.baseMissing = s.checker.Missing(ctx, s.config.BaseTools)
	return nil
}

func (s *Service) ensureBaseSetup(ctx context.Context) error {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.registry == nil {
		s.registry = registry.New()
	}
	if s.config.InterpretersURL != "" {
		if err := s.registry.Load(ctx, s.config.InterpretersURL); err != nil {
			return err
		}
	}
	if s.checker == nil {
		s.checker = capability.New()
	}
	if s.transforms == nil {
		s.transforms = extension.NewTransforms(s.extensionTypes...)
	}
	if s.pipeline == nil {
		pipelineOptions := []pipeline.Option{pipeline.WithTransforms(s.transforms)}
		if s.mode != nil {
			pipelineOptions = append(pipelineOptions, pipeline.WithMode(*s.mode))
		}
		if s.backend != nil {
			pipelineOptions = append(pipelineOptions, pipeline.WithBackend(s.backend))
		}
		s.pipeline = pipeline.New(pipelineOptions...)
	}
	return nil
}

// Command handles one user command aimed at a source view. The bang flag
// and argument select the operation: bare spawns with the view's language,
// an argument spawns with that language and retargets the view, bang kills
// and a banged '!'-prefixed argument toggles. While the base toolset is
// incomplete every invocation is refused with BaseDependencyError.
func (s *Service) Command(ctx context.Context, viewID string, bang bool, arg string) error {
	if len(s.baseMissing) > 0 {
		return types.NewBaseDependencyError(s.baseMissing)
	}
	request, err := command.Parse(bang, arg)
	if err != nil {
		return err
	}
	if request.SetFiletype {
		view, ok := s.host.View(viewID)
		if !ok {
			return fmt.Errorf("unknown view %v", viewID)
		}
		view.SetFiletype(request.Filetype)
	}
	switch request.Action {
	case command.ActionKill:
		return s.manager.Kill(ctx, viewID)
	case command.ActionToggle:
		return s.manager.Toggle(ctx, viewID, request.Filetype)
	}
	return s.manager.Spawn(ctx, viewID, request.Filetype)
}

// Dispatch reacts to one host-delivered event. Unknown kinds are ignored.
func (s *Service) Dispatch(ctx context.Context, anEvent *event.Event) error {
	if anEvent == nil {
		return nil
	}
	switch anEvent.Kind {
	case event.Idle:
		return s.manager.Update(ctx, anEvent.SourceID)
	case event.FocusGained:
		return s.manager.Show(ctx, anEvent.SourceID)
	case event.FocusLost:
		return s.manager.Hide(ctx, anEvent.SourceID)
	case event.ViewClosing:
		return s.manager.Autoclose(ctx, anEvent.SourceID)
	}
	return nil
}

// Sessions returns the lifecycle manager.
func (s *Service) Sessions() *session.Manager {
	return s.manager
}

// Registry returns the interpreter registry.
func (s *Service) Registry() *registry.Service {
	return s.registry
}

// Checker returns the capability checker.
func (s *Service) Checker() *capability.Checker {
	return s.checker
}

// BaseMissing reports which base tools were absent at start-up; non-empty
// means the engine is disabled.
func (s *Service) BaseMissing() []string {
	return s.baseMissing
}

// New creates the engine façade wired to the supplied host.
func New(aHost host.Host, options ...Option) (*Service, error) {
	ret := &Service{host: aHost}
	if err := ret.init(context.Background(), options); err != nil {
		return nil, err
	}
	return ret, nil
}

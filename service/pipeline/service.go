// Package pipeline implements the execution pipeline: source text is fed to
// an interpreter running under a simulated terminal and the raw transcript
// is sanitized, reconciled per platform, preprocessed and scraped for one
// result line per executed statement. Stages after the process run are pure
// text-to-text functions composed in order, each independently testable.
package pipeline

import (
	"context"
	"regexp"
	"strings"

	"github.com/viant/repline/extension"
	"github.com/viant/repline/model/interpreter"
	"github.com/viant/repline/model/types"
	"github.com/viant/repline/tracing"
)

// Input is one pipeline run: the full source view content plus the session's
// descriptor. Raw skips result extraction; Width sizes the simulated
// terminal to the companion pane.
type Input struct {
	Source     string
	Descriptor *interpreter.Descriptor
	Raw        bool
	Width      int
}

// Output carries the reconciled transcript and the lines to render.
type Output struct {
	Transcript string
	Lines      []string
}

// Service composes the pipeline stages around a process backend and a
// platform reconciliation mode, both fixed at construction.
type Service struct {
	mode       Mode
	backend    Backend
	transforms *extension.Transforms
}

// Option customises the pipeline service.
type Option func(s *Service)

// WithMode overrides the platform reconciliation mode.
func WithMode(mode Mode) Option {
	return func(s *Service) {
		s.mode = mode
	}
}

// WithBackend overrides the process backend.
func WithBackend(backend Backend) Option {
	return func(s *Service) {
		s.backend = backend
	}
}

// WithTransforms sets the transform registry resolving rephrase/preprocess
// hooks.
func WithTransforms(transforms *extension.Transforms) Option {
	return func(s *Service) {
		s.transforms = transforms
	}
}

// New creates a pipeline service; by default it detects the reconciliation
// mode from the host OS and runs interpreters under a local pseudo-terminal.
func New(options ...Option) *Service {
	result := &Service{mode: Detect()}
	for _, option := range options {
		option(result)
	}
	if result.backend == nil {
		result.backend = NewLocal()
	}
	if result.transforms == nil {
		result.transforms = extension.NewTransforms()
	}
	return result
}

// Mode returns the reconciliation mode the service was built with.
func (s *Service) Mode() Mode {
	return s.mode
}

// Run executes the pipeline stages in order. A failure to start the
// interpreter is reported as SpawnError; the caller leaves prior companion
// content untouched in that case.
func (s *Service) Run(ctx context.Context, input *Input) (*Output, error) {
	ctx, span := tracing.StartSpan(ctx, "pipeline.run")
	var err error
	defer func() { tracing.EndSpan(span, err) }()

	descriptor := input.Descriptor
	prompt, err := regexp.Compile(descriptor.Prompt)
	if err != nil {
		return nil, types.NewConfigError("", []string{"prompt"})
	}

	rephrase, err := s.transforms.Lookup(descriptor.Rephrase)
	if err != nil {
		return nil, err
	}
	preprocess, err := s.transforms.Lookup(descriptor.Preprocess)
	if err != nil {
		return nil, err
	}

	fed := rephrase.Apply(input.Source)
	captured, err := s.backend.Run(ctx, descriptor, fed, input.Width)
	if err != nil {
		bin := descriptor.Bin
		if argv := descriptor.Argv(); len(argv) > 0 {
			bin = argv[0]
		}
		err = types.NewSpawnError(bin, err)
		return nil, err
	}

	clean := Sanitize(captured)
	// echo-drop counts lines of the original source, not the rephrased text
	sourceLines := strings.Count(input.Source, "\n") + 1
	reconciled, err := Reconcile(s.mode, clean, descriptor.Prompt, sourceLines)
	if err != nil {
		return nil, err
	}
	transcript := preprocess.Apply(reconciled)

	output := &Output{Transcript: transcript}
	if input.Raw {
		output.Lines = strings.Split(transcript, "\n")
		return output, nil
	}
	output.Lines = Extract(transcript, prompt)
	return output, nil
}

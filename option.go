package repline

import (
	"github.com/viant/repline/service/capability"
	"github.com/viant/repline/service/pipeline"
	"github.com/viant/repline/service/registry"
	"github.com/viant/repline/service/session"
	"github.com/viant/repline/tracing"
	"github.com/viant/x"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises the repline service
type Option func(s *Service)

// WithConfig sets the engine configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithRegistry sets the interpreter registry
func WithRegistry(aRegistry *registry.Service) Option {
	return func(s *Service) {
		s.registry = aRegistry
	}
}

// WithChecker sets the executable capability checker
func WithChecker(checker *capability.Checker) Option {
	return func(s *Service) {
		s.checker = checker
	}
}

// WithExtensionTypes registers additional transform types resolvable from
// interpreter rephrase/preprocess hooks
func WithExtensionTypes(types ...*x.Type) Option {
	return func(s *Service) {
		s.extensionTypes = append(s.extensionTypes, types...)
	}
}

// WithBackend overrides the interpreter process backend, for example to run
// interpreters on a remote host over SSH
func WithBackend(backend pipeline.Backend) Option {
	return func(s *Service) {
		s.backend = backend
	}
}

// WithMode overrides the platform transcript reconciliation mode
func WithMode(mode pipeline.Mode) Option {
	return func(s *Service) {
		s.mode = &mode
	}
}

// WithListeners registers update listeners invoked after every companion
// render
func WithListeners(listeners ...session.Listener) Option {
	return func(s *Service) {
		s.listeners = append(s.listeners, listeners...)
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty the
// stdout exporter is used; otherwise traces are written to the supplied file path. The function is
// safe to call multiple times – the first successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter. This enables
// integrations with exporters other than the built-in stdout exporter, for example OTLP, Jaeger or
// Zipkin. The function is safe to call multiple times – the first successful initialisation wins.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}

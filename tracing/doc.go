// Package tracing wraps OpenTelemetry so the rest of the engine can start
// and end spans around update runs and pipeline stages without importing
// the upstream packages directly.  Until Init is called the global noop
// provider is in effect and spans cost nothing.
package tracing

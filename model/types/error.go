package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyFiletype is reported when a session is requested for a view that
// carries no language identifier. It is checked before any registry lookup.
var ErrEmptyFiletype = errors.New("filetype is empty")

// UnknownInterpreterError indicates that the alias-resolved filetype has no
// registry entry.
type UnknownInterpreterError struct {
	Filetype string
}

func (e *UnknownInterpreterError) Error() string {
	return fmt.Sprintf("no interpreter registered for filetype %q", e.Filetype)
}

func NewUnknownInterpreterError(filetype string) error {
	return &UnknownInterpreterError{Filetype: filetype}
}

// ConfigError indicates a descriptor with missing required fields. Missing
// always carries the complete set, never just the first offender.
type ConfigError struct {
	Filetype string
	Missing  []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("interpreter %q config is missing: %s", e.Filetype, strings.Join(e.Missing, ", "))
}

func NewConfigError(filetype string, missing []string) error {
	return &ConfigError{Filetype: filetype, Missing: missing}
}

// DepsError indicates executables required by a descriptor that were not
// found on the target system.
type DepsError struct {
	Filetype string
	Missing  []string
}

func (e *DepsError) Error() string {
	return fmt.Sprintf("interpreter %q requires missing executables: %s", e.Filetype, strings.Join(e.Missing, ", "))
}

func NewDepsError(filetype string, missing []string) error {
	return &DepsError{Filetype: filetype, Missing: missing}
}

// BaseDependencyError disables the whole engine: the fixed base toolset is
// incomplete. Every command invocation returns it until the process restarts.
type BaseDependencyError struct {
	Missing []string
}

func (e *BaseDependencyError) Error() string {
	return fmt.Sprintf("base toolset incomplete, missing: %s", strings.Join(e.Missing, ", "))
}

func NewBaseDependencyError(missing []string) error {
	return &BaseDependencyError{Missing: missing}
}

// SpawnError wraps a failure to start the interpreter process or to obtain
// any usable output from it. Companion content is left untouched.
type SpawnError struct {
	Bin string
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn interpreter %q: %v", e.Bin, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

func NewSpawnError(bin string, err error) error {
	return &SpawnError{Bin: bin, Err: err}
}

// Package registry owns the interpreter table and the alias map. Lookups
// resolve aliases first, then the canonical entry; descriptors are returned
// as copies and never mutated in place.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/repline/model/interpreter"
	"github.com/viant/repline/model/types"
	"gopkg.in/yaml.v3"
)

// File is the on-disk registry schema.
type File struct {
	Interpreters map[string]*interpreter.Descriptor `yaml:"interpreters"`
	Aliases      map[string]string                  `yaml:"aliases"`
}

// Service is the interpreter registry with alias resolution.
type Service struct {
	fs      afs.Service
	mux     sync.RWMutex
	entries map[string]*interpreter.Descriptor
	aliases map[string]string
}

// Option customises the registry.
type Option func(s *Service)

// WithoutDefaults starts from an empty table instead of the built-ins.
func WithoutDefaults() Option {
	return func(s *Service) {
		s.entries = make(map[string]*interpreter.Descriptor)
		s.aliases = make(map[string]string)
	}
}

// WithFS overrides the file service used by Load.
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// New creates a registry pre-populated with the built-in interpreter table.
func New(options ...Option) *Service {
	result := &Service{
		fs:      afs.New(),
		entries: defaultInterpreters(),
		aliases: defaultAliases(),
	}
	for _, option := range options {
		option(result)
	}
	return result
}

// Register adds or replaces an interpreter entry.
func (s *Service) Register(filetype string, descriptor *interpreter.Descriptor) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.entries[filetype] = descriptor
}

// RegisterAlias maps an alternate filetype onto a canonical registry key.
func (s *Service) RegisterAlias(alias, canonical string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.aliases[alias] = canonical
}

// Canonical maps a filetype through the alias table; identity if absent.
func (s *Service) Canonical(filetype string) string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	if canonical, ok := s.aliases[filetype]; ok {
		return canonical
	}
	return filetype
}

// Resolve maps filetype through the alias table and looks up the registry.
// An empty filetype is reported before any lookup.
func (s *Service) Resolve(filetype string) (*interpreter.Descriptor, error) {
	if filetype == "" {
		return nil, types.ErrEmptyFiletype
	}
	canonical := s.Canonical(filetype)
	s.mux.RLock()
	descriptor, ok := s.entries[canonical]
	s.mux.RUnlock()
	if !ok {
		return nil, types.NewUnknownInterpreterError(canonical)
	}
	return descriptor.Clone(), nil
}

// Filetypes returns the canonical registry keys, sorted.
func (s *Service) Filetypes() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	result := make([]string, 0, len(s.entries))
	for filetype := range s.entries {
		result = append(result, filetype)
	}
	sort.Strings(result)
	return result
}

// Load merges a YAML registry file located at the supplied URL (any scheme
// the file service understands) over the current table.
func (s *Service) Load(ctx context.Context, URL string) error {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to load interpreter registry from %s: %w", URL, err)
	}
	return s.Merge(data)
}

// Merge decodes a YAML registry document and merges it over the current
// table. Entries with missing required fields are rejected up front so a
// bad file never half-applies.
func (s *Service) Merge(data []byte) error {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse interpreter registry: %w", err)
	}
	for filetype, descriptor := range file.Interpreters {
		if missing := descriptor.MissingFields(); len(missing) > 0 {
			return types.NewConfigError(filetype, missing)
		}
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	for filetype, descriptor := range file.Interpreters {
		s.entries[filetype] = descriptor
	}
	for alias, canonical := range file.Aliases {
		s.aliases[alias] = canonical
	}
	return nil
}

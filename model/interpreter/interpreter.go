package interpreter

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Descriptor describes how to drive one interactive interpreter. Instances
// are owned by the registry and treated as immutable after load; sessions
// hold the descriptor that was bound at spawn time for their whole lifetime.
type Descriptor struct {
	// Bin is the interpreter command line; the first field is the
	// executable, the rest are arguments.
	Bin string `yaml:"bin" json:"bin"`
	// Prompt is a regular expression matching the interpreter's
	// per-statement prompt.
	Prompt string `yaml:"prompt" json:"prompt"`
	// Env holds whitespace separated KEY=VALUE assignments applied to the
	// interpreter process.
	Env string `yaml:"env,omitempty" json:"env,omitempty"`
	// Rephrase names a transform applied to source text before it is fed in.
	Rephrase *HookRef `yaml:"rephrase,omitempty" json:"rephrase,omitempty"`
	// Preprocess names a transform applied to reconciled output before
	// result extraction.
	Preprocess *HookRef `yaml:"preprocess,omitempty" json:"preprocess,omitempty"`
	// Deps lists additional executables that must be present besides Bin.
	Deps []string `yaml:"deps,omitempty" json:"deps,omitempty"`
}

// HookRef references a registered transform by name, optionally with
// transform specific options.
type HookRef struct {
	Name string                 `yaml:"name" json:"name"`
	With map[string]interface{} `yaml:"with,omitempty" json:"with,omitempty"`
}

// UnmarshalYAML accepts either a plain scalar (the transform name) or a
// mapping with name/with keys.
func (h *HookRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		h.Name = node.Value
		return nil
	}
	type alias HookRef
	var value alias
	if err := node.Decode(&value); err != nil {
		return err
	}
	*h = HookRef(value)
	return nil
}

// MissingFields returns the required descriptor fields that are unset; the
// complete set, not just the first one.
func (d *Descriptor) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(d.Bin) == "" {
		missing = append(missing, "bin")
	}
	if strings.TrimSpace(d.Prompt) == "" {
		missing = append(missing, "prompt")
	}
	return missing
}

// Argv splits Bin into an explicit argument vector.
func (d *Descriptor) Argv() []string {
	return strings.Fields(d.Bin)
}

// EnvList parses Env into KEY=VALUE entries; fields without '=' are skipped.
func (d *Descriptor) EnvList() []string {
	var result []string
	for _, field := range strings.Fields(d.Env) {
		if strings.Contains(field, "=") {
			result = append(result, field)
		}
	}
	return result
}

// Executables returns the set of executables the descriptor requires: the
// binary plus any declared deps.
func (d *Descriptor) Executables() []string {
	var result []string
	if argv := d.Argv(); len(argv) > 0 {
		result = append(result, argv[0])
	}
	result = append(result, d.Deps...)
	return result
}

// PromptRegexp compiles the prompt pattern for per-line matching.
func (d *Descriptor) PromptRegexp() (*regexp.Regexp, error) {
	return regexp.Compile(d.Prompt)
}

// Clone returns a deep copy so callers can never mutate registry state.
func (d *Descriptor) Clone() *Descriptor {
	result := *d
	if d.Rephrase != nil {
		ref := *d.Rephrase
		result.Rephrase = &ref
	}
	if d.Preprocess != nil {
		ref := *d.Preprocess
		result.Preprocess = &ref
	}
	if len(d.Deps) > 0 {
		result.Deps = append([]string(nil), d.Deps...)
	}
	return &result
}

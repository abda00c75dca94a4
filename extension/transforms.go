package extension

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/viant/repline/model/interpreter"
	"github.com/viant/structology/conv"
	"github.com/viant/x"
)

// Transform rewrites interpreter input or output text.
type Transform interface {
	Apply(text string) string
}

// Transforms keeps transform prototypes mapped by name. Lookup instantiates
// a fresh value for each hook reference so descriptor options never leak
// between sessions.
type Transforms struct {
	registry  *x.Registry
	converter *conv.Converter
	mux       sync.RWMutex
}

// Register adds a transform prototype to the registry.
func (t *Transforms) Register(aType *x.Type) {
	t.mux.Lock()
	defer t.mux.Unlock()
	t.registry.Register(aType)
}

// Lookup resolves a hook reference into a ready-to-use transform. A nil or
// empty reference resolves to the identity transform.
func (t *Transforms) Lookup(ref *interpreter.HookRef) (Transform, error) {
	if ref == nil || ref.Name == "" {
		return &Identity{}, nil
	}
	t.mux.RLock()
	aType := t.registry.Lookup(ref.Name)
	t.mux.RUnlock()
	if aType == nil {
		return nil, fmt.Errorf("transform %v not found", ref.Name)
	}
	instance := reflect.New(aType.Type).Interface()
	if len(ref.With) > 0 {
		if err := t.converter.Convert(ref.With, instance); err != nil {
			return nil, fmt.Errorf("failed to apply transform %v options: %w", ref.Name, err)
		}
	}
	transform, ok := instance.(Transform)
	if !ok {
		return nil, fmt.Errorf("registered type for %v does not implement Transform", ref.Name)
	}
	if initer, ok := instance.(interface{ Init() error }); ok {
		if err := initer.Init(); err != nil {
			return nil, fmt.Errorf("failed to init transform %v: %w", ref.Name, err)
		}
	}
	return transform, nil
}

// NewTransforms creates a transform registry pre-populated with the built-in
// transforms plus any supplied prototypes.
func NewTransforms(types ...*x.Type) *Transforms {
	options := conv.DefaultOptions()
	options.IgnoreUnmapped = true
	result := &Transforms{
		registry:  x.NewRegistry(),
		converter: conv.NewConverter(options),
	}
	result.Register(x.NewType(reflect.TypeOf(Identity{}), x.WithName("identity")))
	result.Register(x.NewType(reflect.TypeOf(StripPattern{}), x.WithName("stripPattern")))
	result.Register(x.NewType(reflect.TypeOf(TrimBlank{}), x.WithName("trimBlank")))
	for _, aType := range types {
		result.Register(aType)
	}
	return result
}

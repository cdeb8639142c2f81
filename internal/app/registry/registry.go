// Package registry provides the preset type registry.
package registry

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/tobywaite/firemix/internal/domain/preset"
)

// ErrUnknownType is returned when a type name has no registered factory.
var ErrUnknownType = errors.New("unknown preset type")

// Registry maps preset type names to factories.
type Registry struct {
	factories map[string]preset.Factory
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]preset.Factory),
	}
}

// Register registers a preset factory. A later registration under the same name replaces the earlier one.
func (r *Registry) Register(typeName string, factory preset.Factory) {
	r.factories[typeName] = factory
}

// Lookup returns the factory registered under typeName.
func (r *Registry) Lookup(typeName string) (preset.Factory, error) {
	factory, ok := r.factories[typeName]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "%q", typeName)
	}
	return factory, nil
}

// Names returns all registered type names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

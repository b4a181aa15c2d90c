// SPDX-License-Identifier: MIT

package engine

import (
	"reflect"
	"sync"

	"github.com/katalvlaran/numerus/capability"
)

// Registry is a TypeRegistry: it maps element types to a strategy object
// that implements a whole family of operations (trigonometry, logic) for
// that type. Types without an entry get a fallback strategy, usually one
// whose operations report ErrUnsupported or run generic series code.
type Registry struct {
	name    string
	mu      sync.RWMutex
	entries map[reflect.Type]any
}

// NewRegistry returns an empty registry tagged name (used in panics).
func NewRegistry(name string) *Registry {
	return &Registry{name: name, entries: make(map[reflect.Type]any)}
}

// Name returns the registry tag.
func (r *Registry) Name() string { return r.name }

// Register installs strategy s for element type T, replacing any previous
// entry.
func Register[T, S any](r *Registry, s S) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[reflect.TypeFor[T]()] = s
}

// Registered reports whether T has an explicit entry.
func Registered[T any](r *Registry) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[reflect.TypeFor[T]()]

	return ok
}

// Lookup returns the strategy registered for T, or fallback(T) when none is
// registered. Panics if the registered entry is not an S.
func Lookup[T, S any](r *Registry, fallback func(capability.Type) S) S {
	r.mu.RLock()
	v, ok := r.entries[reflect.TypeFor[T]()]
	r.mu.RUnlock()
	if !ok {
		return fallback(capability.TypeOf[T]())
	}
	s, ok := v.(S)
	if !ok {
		panic("engine: registry " + r.name + ": entry for " + reflect.TypeFor[T]().String() +
			" is not a " + reflect.TypeFor[S]().String())
	}

	return s
}

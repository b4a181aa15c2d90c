// SPDX-License-Identifier: MIT

package engine

import (
	"reflect"
	"sync"

	"github.com/katalvlaran/numerus/capability"
)

// FastPathTable maps (operation, built-in element type) to a native
// implementation that bypasses specialization entirely. Families fill it
// from init and the table is read-only afterwards.
type FastPathTable struct {
	mu      sync.RWMutex
	entries map[key]any
}

// FastPaths is the process-wide fast-path table.
var FastPaths = &FastPathTable{entries: make(map[key]any)}

// RegisterFastPath records impl as the native implementation of d for T.
// Panics when T is not an exact built-in numeric type or when the entry
// already exists (programmer error).
func RegisterFastPath[T, F any](d *Descriptor, impl F) {
	FastPaths.register(d, reflect.TypeFor[T](), impl)
}

func (t *FastPathTable) register(d *Descriptor, rt reflect.Type, impl any) {
	if !capability.TypeFromReflect(rt).Kind.Builtin() {
		panic("engine: fast path for non-built-in type " + rt.String())
	}
	k := key{d, rt}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, dup := t.entries[k]; dup {
		panic("engine: duplicate fast path " + d.QualifiedName() + "[" + rt.String() + "]")
	}
	t.entries[k] = impl
}

// Lookup returns the native implementation of d for rt, if any.
func (t *FastPathTable) Lookup(d *Descriptor, rt reflect.Type) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	impl, ok := t.entries[key{d, rt}]

	return impl, ok
}

// HasFastPath reports whether d has a fast path for T.
func HasFastPath[T any](d *Descriptor) bool {
	_, ok := FastPaths.Lookup(d, reflect.TypeFor[T]())

	return ok
}

// Len returns the number of registered fast paths.
func (t *FastPathTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.entries)
}

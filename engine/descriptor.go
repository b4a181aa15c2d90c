// SPDX-License-Identifier: MIT

package engine

import (
	"slices"
	"strings"
	"sync"

	"github.com/katalvlaran/numerus/capability"
)

// Descriptor is the OperationDescriptor: the immutable, element-type
// independent description of one operation.
type Descriptor struct {
	Family    string                // owning package, e.g. "matrix"
	Name      string                // operation name, e.g. "Determinant"
	Arity     int                   // number of operands
	Signature string                // Go signature with T as the element type
	Requires  []capability.Operator // required operator set, in check order
	Uses      []*Descriptor         // operations the template resolves as dependencies
}

// QualifiedName returns "family.Name".
func (d *Descriptor) QualifiedName() string { return d.Family + "." + d.Name }

// String implements fmt.Stringer.
func (d *Descriptor) String() string { return d.QualifiedName() }

// catalog is the process-wide set of descriptors. It is written only from
// package initialization (Define) and read afterwards.
var catalog = struct {
	mu      sync.RWMutex
	entries map[string]*Descriptor
}{entries: make(map[string]*Descriptor)}

// Define creates a descriptor and records it in the catalog.
// Panics on an empty or duplicate qualified name (programmer error).
func Define(family, name string, arity int, signature string, requires ...capability.Operator) *Descriptor {
	if family == "" || name == "" {
		panic("engine: Define: family and name are required")
	}
	d := &Descriptor{
		Family:    family,
		Name:      name,
		Arity:     arity,
		Signature: signature,
		Requires:  slices.Clone(requires),
	}

	catalog.mu.Lock()
	defer catalog.mu.Unlock()
	if _, dup := catalog.entries[d.QualifiedName()]; dup {
		panic("engine: Define: duplicate operation " + d.QualifiedName())
	}
	catalog.entries[d.QualifiedName()] = d

	return d
}

// DependsOn records the operations d's template resolves through Dependency
// and folds their required operators into d.Requires, so validation covers
// the whole composite before anything is compiled. It is meant for package
// initialization and returns d for chaining onto Define.
func (d *Descriptor) DependsOn(deps ...*Descriptor) *Descriptor {
	for _, dep := range deps {
		if dep == nil {
			panic("engine: DependsOn: nil dependency of " + d.QualifiedName())
		}
		d.Uses = append(d.Uses, dep)
		for _, op := range dep.Requires {
			if !slices.Contains(d.Requires, op) {
				d.Requires = append(d.Requires, op)
			}
		}
	}

	return d
}

// Catalog returns every defined descriptor sorted by qualified name.
func Catalog() []*Descriptor {
	catalog.mu.RLock()
	out := make([]*Descriptor, 0, len(catalog.entries))
	for _, d := range catalog.entries {
		out = append(out, d)
	}
	catalog.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Descriptor) int {
		return strings.Compare(a.QualifiedName(), b.QualifiedName())
	})

	return out
}

// LookupDescriptor finds a descriptor by qualified name ("family.Name").
func LookupDescriptor(qualified string) (*Descriptor, bool) {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()
	d, ok := catalog.entries[qualified]

	return d, ok
}

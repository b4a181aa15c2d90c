// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/numerus/capability"
)

// key identifies one slot: an operation and an element type.
type key struct {
	op *Descriptor
	rt reflect.Type
}

// Cache is the SpecializationCache: the table of slots for every
// (operation, element type) pair seen so far, plus the collaborators used
// to fill them.
type Cache struct {
	slots       sync.Map // key → *Slot
	log         *zap.Logger
	compiler    Compiler
	metrics     *metrics
	fastPaths   bool
	retryFailed bool
}

// New builds an empty cache.
// Panics if a registerer is supplied and rejects the counter.
func New(opts ...Option) *Cache {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Cache{
		log:         o.logger.Named("engine"),
		compiler:    o.compiler,
		metrics:     newMetrics(),
		fastPaths:   o.fastPaths,
		retryFailed: o.retryFailed,
	}
	if o.registerer != nil {
		o.registerer.MustRegister(c.metrics.specializations)
	}

	return c
}

var defaultCache atomic.Pointer[Cache]

func init() { defaultCache.Store(New()) }

// Default returns the process-wide cache used by every package-level
// operation.
func Default() *Cache { return defaultCache.Load() }

// SetDefault swaps the process-wide cache and returns the previous one.
// Panics on nil.
func SetDefault(c *Cache) *Cache {
	if c == nil {
		panic("engine: SetDefault(nil)")
	}

	return defaultCache.Swap(c)
}

// Collector exposes the specialization counter for registration.
func (c *Cache) Collector() prometheus.Collector { return c.metrics.specializations }

// Len returns the number of slots created so far.
func (c *Cache) Len() int {
	n := 0
	c.slots.Range(func(_, _ any) bool {
		n++

		return true
	})

	return n
}

// Slot returns the slot of (d, rt), or nil if none was created yet.
func (c *Cache) Slot(d *Descriptor, rt reflect.Type) *Slot {
	if v, ok := c.slots.Load(key{d, rt}); ok {
		return v.(*Slot)
	}

	return nil
}

// Attempts returns how many times the compiler ran for operation d on T.
func Attempts[T any](c *Cache, d *Descriptor) int64 {
	if s := c.Slot(d, reflect.TypeFor[T]()); s != nil {
		return s.Attempts()
	}

	return 0
}

// StateOf returns the slot state of operation d on T.
func StateOf[T any](c *Cache, d *Descriptor) State {
	if s := c.Slot(d, reflect.TypeFor[T]()); s != nil {
		return s.State()
	}

	return Unspecialized
}

func (c *Cache) slot(d *Descriptor, rt reflect.Type) *Slot {
	k := key{d, rt}
	if v, ok := c.slots.Load(k); ok {
		return v.(*Slot)
	}
	v, _ := c.slots.LoadOrStore(k, &Slot{})

	return v.(*Slot)
}

// Resolve returns the implementation of d for T from the default cache.
// See ResolveIn.
func Resolve[T, F any](d *Descriptor, tmpl func(*Algebra[T]) (F, error)) (F, error) {
	return ResolveIn(Default(), d, tmpl)
}

// ResolveIn returns the implementation of d for T, specializing on first
// use.
//
// Stage 1 (fast path): built-in kinds with a registered native
// implementation return it directly, without touching a slot.
// Stage 2 (slot): a Specialized slot returns its implementation, a Failed
// slot its memoized *CompileError.
// Stage 3 (bootstrap): under the slot lock, validate T against d.Requires
// (which DependsOn widens to every nested operation), synthesize the unit,
// compile it and rebind the slot.
//
// Complexity: O(1) after the first call; the bootstrap is O(|Requires|)
// plus whatever the template does at build time.
func ResolveIn[T, F any](c *Cache, d *Descriptor, tmpl func(*Algebra[T]) (F, error)) (F, error) {
	rt := reflect.TypeFor[T]()
	if c.fastPaths {
		if impl, ok := FastPaths.Lookup(d, rt); ok {
			if f, ok := impl.(F); ok {
				return f, nil
			}
		}
	}

	s := c.slot(d, rt)
	if f, done, err := bound[F](s); done {
		return f, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, done, err := bound[F](s); done {
		return f, err
	}

	return bootstrap(c, d, s, tmpl)
}

// Dependency resolves a nested operation through its own slot in the cache
// alg was resolved in. Templates call it at build time so composite
// operations reuse the specialized primitives.
func Dependency[T, F any](alg *Algebra[T], d *Descriptor, tmpl func(*Algebra[T]) (F, error)) (F, error) {
	c := alg.cache
	if c == nil {
		c = Default()
	}

	return ResolveIn(c, d, tmpl)
}

// bound reads a resolved slot. done is false while the slot is unspecialized.
func bound[F any](s *Slot) (f F, done bool, err error) {
	b := s.binding.Load()
	if b == nil {
		return f, false, nil
	}
	if b.state == Failed {
		return f, true, b.err
	}

	return b.impl.(F), true, nil
}

func bootstrap[T, F any](c *Cache, d *Descriptor, s *Slot, tmpl func(*Algebra[T]) (F, error)) (F, error) {
	var zero F
	t := capability.TypeOf[T]()
	op := d.QualifiedName()

	// Stage 1: validate. Capability failures never reach the compiler and
	// leave the slot unspecialized.
	if err := capability.Validate(t, d.Requires...).Err(); err != nil {
		c.metrics.observe(op, t.Name, resultCapability)
		c.log.Debug("capability check failed",
			zap.String("operation", op), zap.String("element_type", t.Name), zap.Error(err))

		return zero, OpErrorf(op, err)
	}

	// Stage 2: synthesize.
	u := &Unit{
		Operation: d,
		Type:      t,
		Source:    synthesize(d, t),
		build: func() (any, error) {
			f, err := tmpl(newAlgebra[T](c))
			if err != nil {
				return nil, err
			}

			return f, nil
		},
	}

	// Stage 3: compile.
	s.attempts.Add(1)
	out, err := c.compiler.Compile(u)
	if err == nil {
		if f, ok := out.(F); ok {
			// Stage 4: rebind.
			s.binding.Store(&binding{state: Specialized, impl: f})
			c.metrics.observe(op, t.Name, resultCompiled)
			c.log.Debug("specialized",
				zap.String("operation", op), zap.String("element_type", t.Name),
				zap.Int64("attempt", s.attempts.Load()))

			return f, nil
		}
		err = fmt.Errorf("compiler returned %T, want %s", out, reflect.TypeFor[F]())
	}

	// A nested operation rejected T although d did not declare it through
	// DependsOn: report it as the capability error it is.
	var missing *capability.MissingError
	if errors.As(err, &missing) {
		c.metrics.observe(op, t.Name, resultCapability)

		return zero, OpErrorf(op, err)
	}

	ce := &CompileError{Operation: op, Type: t.Name, Source: u.Source, Diagnostic: err}
	if !c.retryFailed {
		s.binding.Store(&binding{state: Failed, err: ce})
	}
	c.metrics.observe(op, t.Name, resultCompile)
	c.log.Warn("specialization failed",
		zap.String("operation", op), zap.String("element_type", t.Name),
		zap.Bool("memoized", !c.retryFailed), zap.Error(err))

	return zero, ce
}

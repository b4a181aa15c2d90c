// SPDX-License-Identifier: MIT

// Package engine is the self-specializing operation-dispatch engine behind
// every numerus operation.
//
// What & Why:
//
//	Each named operation (compute.Add, matrix.Determinant, stats.Variance, ...)
//	is described once by an immutable Descriptor: its name, arity, signature
//	and the operator capabilities it needs. The first call for a given
//	(operation, element type) pair runs the bootstrap sequence
//
//	    validate → synthesize → compile → rebind
//
//	and stores the specialized implementation in that pair's Slot. Every
//	later call loads the Slot and runs the cached implementation directly.
//
// Components:
//
//	Descriptor / Catalog  – one immutable entry per operation (descriptor.go)
//	Algebra[T]            – operator table resolved for T (algebra*.go)
//	Unit / Compiler       – synthesized source and the injected compiler (compiler.go)
//	Slot / Cache          – per-pair binding, process-wide table (slot.go, cache.go)
//	FastPaths             – native implementations for built-in kinds (fastpath.go)
//	Registry              – type → strategy maps for whole families (registry.go)
//
// Generic instantiation replaces runtime code generation: a "template" is a
// Go function that receives the resolved Algebra[T] and returns the
// implementation. The default DirectCompiler simply builds it; tests inject
// compilers that fail or count.
//
// Concurrency:
//
//	Specialization is serialized per cache key (one mutex per Slot). A
//	specialized Slot is immutable and read lock-free.
//
// Errors:
//
//	capability.ErrMissing  – first use; element type lacks an operator.
//	ErrCompile             – first use; building the implementation failed.
//	ErrDomain              – per call; argument values violate a precondition.
//	ErrUnsupported         – always; operation deliberately unimplemented.
package engine

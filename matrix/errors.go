// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every sentinel wraps the engine's domain taxonomy, so callers can
// match either the precise matrix condition or the general engine.ErrDomain
// via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/numerus/engine"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Operations
// wrap these with their qualified name ("matrix.Inverse: ...") through
// matrixErrorf; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> numeric (singular, zero divisor).

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = fmt.Errorf("matrix: nil matrix: %w", engine.ErrInvalidArgument)

	// ErrBadShape is returned when a requested shape is invalid (rows<=0,
	// cols<=0, or ragged rows in FromRows).
	ErrBadShape = fmt.Errorf("matrix: invalid shape: %w", engine.ErrInvalidArgument)

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = fmt.Errorf("matrix: bad index: %w", engine.ErrOutOfRange)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, or Multiply where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("matrix: %w", engine.ErrDimensionMismatch)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", engine.ErrDimensionMismatch)

	// ErrSingular is returned by Inverse (and Power with a negative exponent)
	// when elimination finds a column with no nonzero pivot.
	ErrSingular = fmt.Errorf("matrix: %w", engine.ErrSingular)
)

// matrixErrorf wraps err with the operation's qualified name.
func matrixErrorf(d *engine.Descriptor, err error) error {
	return fmt.Errorf("%s: %w", d.QualifiedName(), err)
}


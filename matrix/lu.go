// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/numerus/capability"
	"github.com/katalvlaran/numerus/engine"
)

var decomposeLUOp = engine.Define(family, "DecomposeLU", 1, "(m *Dense[T]) (*LU[T], error)",
	capability.Division, capability.Negation, capability.Equality, capability.Conversion).
	DependsOn(swapRowsOp, scaleRowOp, addRowMultipleOp, identityOp)

// LU is a permuted lower-upper factorization: P·A = L·U, where row i of P·A is
// row Perm[i] of A, L is unit lower-triangular and U is upper-triangular.
// Sign is +1 or -1, the determinant of P.
type LU[T any] struct {
	L, U *Dense[T]
	Perm []int
	Sign int
}

// decomposeLUTemplate runs Doolittle elimination with nonzero-pivot row
// exchange. U is eliminated through the row slots; the multipliers are stored
// in L, whose already-filled columns follow every exchange.
//
// A column without a nonzero pivot is skipped, so singular inputs still
// factor and U carries a zero on its diagonal. For truncating element types a
// multiplier that is not a whole number fails with ErrNotWhole.
// Complexity: O(n³).
func decomposeLUTemplate[T any](alg *engine.Algebra[T]) (func(m *Dense[T]) (*LU[T], error), error) {
	ops, err := rowOpsFor(alg)
	if err != nil {
		return nil, err
	}
	identity, err := engine.Dependency(alg, identityOp, identityTemplate[T])
	if err != nil {
		return nil, err
	}

	return func(m *Dense[T]) (*LU[T], error) {
		// Stage 1 (Validate)
		if err := ValidateSquareNonNil(m); err != nil {
			return nil, matrixErrorf(decomposeLUOp, err)
		}
		// Stage 2 (Prepare): U starts as a copy of m, L as the identity.
		n := m.r
		u := m.Clone()
		l, _ := identity(n)
		perm := make([]int, n)
		for i := range perm {
			perm[i] = i
		}
		sign := 1
		// Stage 3 (Execute)
		for k := 0; k < n; k++ {
			p := -1
			for i := k; i < n; i++ {
				if !alg.IsZero(u.data[i*n+k]) {
					p = i
					break
				}
			}
			if p < 0 {
				continue
			}
			if p != k {
				_ = ops.swap(u, p, k)
				lp, lk := l.row(p), l.row(k)
				for j := 0; j < k; j++ {
					lp[j], lk[j] = lk[j], lp[j]
				}
				perm[p], perm[k] = perm[k], perm[p]
				sign = -sign
			}
			pivot := u.data[k*n+k]
			for i := k + 1; i < n; i++ {
				f, err := ops.quotient(u.data[i*n+k], pivot)
				if err != nil {
					return nil, matrixErrorf(decomposeLUOp, err)
				}
				l.data[i*n+k] = f
				if !alg.IsZero(f) {
					_ = ops.add(u, i, k, alg.Neg(f))
				}
				u.data[i*n+k] = alg.Zero()
			}
		}

		return &LU[T]{L: l, U: u, Perm: perm, Sign: sign}, nil
	}, nil
}

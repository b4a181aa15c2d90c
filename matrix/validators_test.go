// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numerus/matrix"
)

func zeros(t *testing.T, r, c int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDense[float64](r, c)
	require.NoError(t, err)

	return m
}

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    *matrix.Dense[float64]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(t, 2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(t, 2, 2), nil, matrix.ErrNilMatrix},
		{"zero value", &matrix.Dense[float64]{}, zeros(t, 2, 2), matrix.ErrBadShape},
		{"equal 2x3", zeros(t, 2, 3), zeros(t, 2, 3), nil},
		{"row mismatch", zeros(t, 2, 3), zeros(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(t, 2, 3), zeros(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquareNonNil covers nil and zero-value inputs plus square and non-square cases.
func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquareNonNil[float64](nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(&matrix.Dense[float64]{}), matrix.ErrBadShape)
	require.NoError(t, matrix.ValidateSquareNonNil(zeros(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquareNonNil(zeros(t, 2, 3)), matrix.ErrNonSquare)
}

// TestValidateIndices covers vector length and row bounds.
func TestValidateIndices(t *testing.T) {
	t.Parallel()

	m := zeros(t, 2, 3)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2, 3}, m.Cols()))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, m.Cols()), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateRow(m, 1))
	require.ErrorIs(t, matrix.ValidateRow(m, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateRow(m, -1), matrix.ErrOutOfRange)
}

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/startour/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSquare(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(m), matrix.ErrNonSquare)

	sq, err := matrix.NewSquare(3, 0)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSquare(sq))
}

func TestValidateSymmetric(t *testing.T) {
	m, err := matrix.NewSquare(3, 1.0)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(m, 0))

	require.NoError(t, m.Set(0, 2, 1.5))
	require.ErrorIs(t, matrix.ValidateSymmetric(m, 1e-12), matrix.ErrAsymmetry)

	// A generous (negative => absolute) tolerance accepts the drift.
	require.NoError(t, matrix.ValidateSymmetric(m, -1))

	require.ErrorIs(t, matrix.ValidateSymmetric(m, math.NaN()), matrix.ErrNaNInf)
}

func TestValidateNonNegative(t *testing.T) {
	m, err := matrix.NewSquare(2, 0.5)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNonNegative(m))

	require.NoError(t, m.Set(1, 0, -1e-9))
	require.ErrorIs(t, matrix.ValidateNonNegative(m), matrix.ErrNegative)

	require.NoError(t, m.Set(1, 0, math.NaN()))
	require.ErrorIs(t, matrix.ValidateNonNegative(m), matrix.ErrNaNInf)

	require.ErrorIs(t, matrix.ValidateNonNegative(nil), matrix.ErrNilMatrix)
}

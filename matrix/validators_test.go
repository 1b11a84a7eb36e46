package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/matrix"
)

func TestValidators(t *testing.T) {
	sq := MustMatrix(t, [][]int64{{1, 2}, {3, 4}})
	wide := MustMatrix(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	tall := MustMatrix(t, [][]int64{{1, 2}, {3, 4}, {5, 6}})

	require.NoError(t, matrix.ValidateNotNil(sq))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSameShape(sq, sq))
	require.ErrorIs(t, matrix.ValidateSameShape(sq, wide), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(wide), matrix.ErrNonSquare)

	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, sq), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(wide, tall))
	require.ErrorIs(t, matrix.ValidateMulCompatible(wide, sq), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(sq, nil), matrix.ErrNilMatrix)
}

// TestValidators_ErrorPriority: nil is reported before shape problems.
func TestValidators_ErrorPriority(t *testing.T) {
	err := matrix.ValidateBinarySameShape(nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.NotErrorIs(t, err, matrix.ErrDimensionMismatch)
}

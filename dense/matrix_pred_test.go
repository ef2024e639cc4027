package dense_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oselvar/matvec/dense"
)

func TestMatrixIsZero(t *testing.T) {
	assert.True(t, mustRows(t, [][]int{{0, 0}, {0, 0}}).IsZero())
	assert.False(t, mustRows(t, [][]int{{0, 1}, {0, 0}}).IsZero())

	var empty dense.Matrix[int]
	assert.True(t, empty.IsZero(), "no element breaks the claim")
}

func TestMatrixIsReal(t *testing.T) {
	assert.True(t, mustRows(t, [][]float64{{1.5, -2}}).IsReal())
}

func TestMatrixIsFinite(t *testing.T) {
	assert.True(t, mustRows(t, [][]float64{{1, 2}, {3, 4}}).IsFinite())
	assert.False(t, mustRows(t, [][]float64{{1, math.NaN()}}).IsFinite())
	assert.False(t, mustRows(t, [][]float64{{1, math.Inf(-1)}}).IsFinite())
	assert.True(t, mustRows(t, [][]int{{1, 2}}).IsFinite())
}

func TestMatrixTriangularPredicates(t *testing.T) {
	lower := mustRows(t, [][]int{{1, 0, 0}, {2, 3, 0}, {4, 5, 6}})
	assert.True(t, lower.IsLowerTriangular())
	assert.False(t, lower.IsUpperTriangular())
	assert.False(t, lower.IsStrictLowerTriangular(), "the diagonal is populated")

	upper := lower.Transpose()
	assert.True(t, upper.IsUpperTriangular())
	assert.False(t, upper.IsLowerTriangular())

	strict := mustRows(t, [][]int{{0, 0}, {7, 0}})
	assert.True(t, strict.IsStrictLowerTriangular())
	assert.True(t, strict.Transpose().IsStrictUpperTriangular())

	diag := dense.Diagonal([]int{1, 2})
	assert.True(t, diag.IsLowerTriangular())
	assert.True(t, diag.IsUpperTriangular())
}

func TestMatrixTriangularPredicates_Rectangular(t *testing.T) {
	// Triangular checks accept any shape.
	assert.True(t, mustRows(t, [][]int{{1, 0, 0}, {2, 3, 0}}).IsLowerTriangular())
	assert.False(t, mustRows(t, [][]int{{1, 9, 0}, {2, 3, 0}}).IsLowerTriangular())
}

func TestMatrixIsDiagonal(t *testing.T) {
	ok, err := dense.Diagonal([]int{1, 2, 3}).IsDiagonal()
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = mustRows(t, [][]int{{1, 4}, {0, 2}}).IsDiagonal()
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = mustRows(t, [][]int{{1, 2, 3}}).IsDiagonal()
	assert.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

func TestMatrixIsSymmetric(t *testing.T) {
	ok, err := mustRows(t, [][]int{{1, 7}, {7, 2}}).IsSymmetric()
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = mustRows(t, [][]int{{1, 7}, {8, 2}}).IsSymmetric()
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = mustRows(t, [][]int{{1, 2, 3}}).IsSymmetric()
	assert.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

func TestMatrixIsAntisymmetric(t *testing.T) {
	ok, err := mustRows(t, [][]int{{0, 2}, {-2, 0}}).IsAntisymmetric()
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = mustRows(t, [][]int{{1, 2}, {-2, 0}}).IsAntisymmetric()
	assert.NoError(t, err)
	assert.False(t, ok, "a nonzero diagonal cannot cancel against itself")
}

func TestMatrixIsHermitian(t *testing.T) {
	// Real elements make Hermitian and symmetric coincide.
	m := mustRows(t, [][]float64{{1, 2.5}, {2.5, 3}})

	herm, err := m.IsHermitian()
	assert.NoError(t, err)
	sym, err := m.IsSymmetric()
	assert.NoError(t, err)
	assert.Equal(t, sym, herm)
}

func TestMatrixIsNormal(t *testing.T) {
	ok, err := mustRows(t, [][]int{{1, 7}, {7, 2}}).IsNormal()
	assert.NoError(t, err)
	assert.True(t, ok, "symmetric matrices commute with their transpose")

	ok, err = mustRows(t, [][]int{{1, 2}, {0, 1}}).IsNormal()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMatrixIsOrthogonal(t *testing.T) {
	s := math.Sqrt2 / 2
	rotation := mustRows(t, [][]float64{{s, -s}, {s, s}})

	ok, err := rotation.IsOrthogonal()
	assert.NoError(t, err)
	assert.True(t, ok, "a quarter-turn rotation preserves lengths")

	ok, err = mustRows(t, [][]float64{{1, 1}, {0, 1}}).IsOrthogonal()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMatrixIsUnitary(t *testing.T) {
	swap := mustRows(t, [][]int{{0, 1}, {1, 0}})

	ok, err := swap.IsUnitary()
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestMatrixOrthogonal_BadOption(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 0}, {0, 1}})

	_, err := m.IsOrthogonal(dense.WithEpsilon(-0.5))
	assert.ErrorIs(t, err, dense.ErrBadOption)

	_, err = m.IsNormal(dense.WithEpsilon(-0.5))
	assert.ErrorIs(t, err, dense.ErrBadOption)
}

func TestMatrixIsPermutation(t *testing.T) {
	ok, err := mustRows(t, [][]int{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}}).IsPermutation()
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = mustRows(t, [][]int{{1, 0}, {0, 1}}).IsPermutation()
	assert.NoError(t, err)
	assert.True(t, ok, "the identity permutes trivially")

	ok, err = mustRows(t, [][]int{{1, 1}, {0, 0}}).IsPermutation()
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = mustRows(t, [][]int{{2, 0}, {0, 1}}).IsPermutation()
	assert.NoError(t, err)
	assert.False(t, ok, "entries other than 0 and 1 disqualify")

	_, err = mustRows(t, [][]int{{1, 0}}).IsPermutation()
	assert.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

func TestMatrixIsRegularAndIsSingular(t *testing.T) {
	regular := mustRows(t, [][]int{{1, 2}, {3, 4}})
	degenerate := mustRows(t, [][]int{{1, 2}, {2, 4}})

	ok, err := regular.IsRegular()
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = regular.IsSingular()
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = degenerate.IsRegular()
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = degenerate.IsSingular()
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = mustRows(t, [][]int{{1, 2, 3}}).IsRegular()
	assert.ErrorIs(t, err, dense.ErrDimensionMismatch)
	_, err = mustRows(t, [][]int{{1, 2, 3}}).IsSingular()
	assert.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

package dense_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oselvar/matvec/dense"
	"github.com/oselvar/matvec/scalar"
)

// mustRows builds a matrix from rows, failing the test on error.
func mustRows[T scalar.Number](t *testing.T, rows [][]T) dense.Matrix[T] {
	t.Helper()
	m, err := dense.FromRows(rows)
	require.NoError(t, err)

	return m
}

func TestFromRows(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	e, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6, e)
}

func TestFromRows_CopiesInput(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	m := mustRows(t, rows)

	rows[0][0] = 99
	e, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, e)
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := dense.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
	require.ErrorContains(t, err, "row 1")
}

func TestFromRows_NoRows(t *testing.T) {
	m, err := dense.FromRows[int](nil)
	require.NoError(t, err)
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
}

func TestFromColumns(t *testing.T) {
	m, err := dense.FromColumns([][]int{{1, 3}, {2, 4}})
	require.NoError(t, err)
	require.True(t, m.Equal(mustRows(t, [][]int{{1, 2}, {3, 4}})))

	_, err = dense.FromColumns([][]int{{1, 3}, {2}})
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
	require.ErrorContains(t, err, "column 1")
}

func TestBuild(t *testing.T) {
	m, err := dense.Build(2, 3, func(i, j int) int { return i*10 + j })
	require.NoError(t, err)
	require.True(t, m.Equal(mustRows(t, [][]int{{0, 1, 2}, {10, 11, 12}})))
}

func TestBuild_Errors(t *testing.T) {
	_, err := dense.Build(-1, 2, func(i, j int) int { return 0 })
	require.ErrorIs(t, err, dense.ErrBadArgument)

	_, err = dense.Build[int](2, 2, nil)
	require.ErrorIs(t, err, dense.ErrBadArgument)
}

func TestDiagonal(t *testing.T) {
	m := dense.Diagonal([]int{1, 2, 3})
	require.True(t, m.Equal(mustRows(t, [][]int{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}})))
	require.True(t, dense.Diagonal[int](nil).IsEmpty())
}

func TestScalarMatrix(t *testing.T) {
	m, err := dense.Scalar(2, 7)
	require.NoError(t, err)
	require.True(t, m.Equal(mustRows(t, [][]int{{7, 0}, {0, 7}})))

	_, err = dense.Scalar(-1, 7)
	require.ErrorIs(t, err, dense.ErrBadArgument)
}

func TestIdentity(t *testing.T) {
	m, err := dense.Identity[int](3)
	require.NoError(t, err)
	require.True(t, m.Equal(mustRows(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})))

	empty, err := dense.Identity[int](0)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())

	_, err = dense.Identity[int](-2)
	require.ErrorIs(t, err, dense.ErrBadArgument)
}

func TestZeroMatrix(t *testing.T) {
	m, err := dense.Zero[int](2, 3)
	require.NoError(t, err)
	require.True(t, m.Equal(mustRows(t, [][]int{{0, 0, 0}, {0, 0, 0}})))

	_, err = dense.Zero[int](2, -3)
	require.ErrorIs(t, err, dense.ErrBadArgument)
}

func TestEmpty(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {0, 3}, {3, 0}} {
		m, err := dense.Empty[int](shape[0], shape[1])
		require.NoError(t, err)
		require.True(t, m.IsEmpty())
		r, c := m.Shape()
		require.Equal(t, shape[0], r)
		require.Equal(t, shape[1], c)
	}
}

func TestEmpty_Errors(t *testing.T) {
	_, err := dense.Empty[int](2, 3)
	require.ErrorIs(t, err, dense.ErrBadArgument, "both dimensions positive")

	_, err = dense.Empty[int](-1, 0)
	require.ErrorIs(t, err, dense.ErrBadArgument)
}

func TestRowVectorAndColumnVector(t *testing.T) {
	row := dense.RowVector([]int{1, 2, 3})
	r, c := row.Shape()
	require.Equal(t, 1, r)
	require.Equal(t, 3, c)

	col := dense.ColumnVector([]int{1, 2, 3})
	r, c = col.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 1, c)
	require.True(t, col.Equal(row.Transpose()))
}

func TestHStack(t *testing.T) {
	left := mustRows(t, [][]int{{1}, {3}})
	right := mustRows(t, [][]int{{2, 9}, {4, 8}})

	m, err := dense.HStack(left, right)
	require.NoError(t, err)
	require.True(t, m.Equal(mustRows(t, [][]int{{1, 2, 9}, {3, 4, 8}})))
}

func TestHStack_Errors(t *testing.T) {
	_, err := dense.HStack[int]()
	require.ErrorIs(t, err, dense.ErrBadArgument)

	_, err = dense.HStack(mustRows(t, [][]int{{1}, {2}}), mustRows(t, [][]int{{3}}))
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

func TestVStack(t *testing.T) {
	top := mustRows(t, [][]int{{1, 2}})
	bottom := mustRows(t, [][]int{{3, 4}, {5, 6}})

	m, err := dense.VStack(top, bottom)
	require.NoError(t, err)
	require.True(t, m.Equal(mustRows(t, [][]int{{1, 2}, {3, 4}, {5, 6}})))

	_, err = dense.VStack(top, mustRows(t, [][]int{{1, 2, 3}}))
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

func TestFromVector(t *testing.T) {
	v := dense.NewVector(1, 2, 3)
	require.True(t, dense.FromVector(v).Equal(v.ToMatrix()))
}

func TestMatrixShapePredicates(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	require.False(t, m.IsSquare())
	require.False(t, m.IsEmpty())
	require.True(t, mustRows(t, [][]int{{1, 2}, {3, 4}}).IsSquare())

	var zero dense.Matrix[int]
	require.True(t, zero.IsEmpty())
	require.True(t, zero.IsSquare(), "the 0x0 matrix is square")
}

func TestMatrixAt(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2}, {3, 4}})

	e, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3, e)

	for _, cell := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(cell[0], cell[1])
		require.ErrorIs(t, err, dense.ErrIndexOutOfRange)
	}

	e, ok := m.AtOK(0, 1)
	require.True(t, ok)
	require.Equal(t, 2, e)

	_, ok = m.AtOK(5, 5)
	require.False(t, ok)
}

func TestMatrixRowAndColumn(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, row.ToSlice())

	col, err := m.Column(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 4}, col.ToSlice())

	_, err = m.Row(2)
	require.ErrorIs(t, err, dense.ErrIndexOutOfRange)
	_, err = m.Column(-1)
	require.ErrorIs(t, err, dense.ErrIndexOutOfRange)

	_, ok := m.RowOK(9)
	require.False(t, ok)
	_, ok = m.ColumnOK(9)
	require.False(t, ok)
}

func TestMatrixRowVectorsAndColumnVectors(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2}, {3, 4}})

	rows := m.RowVectors()
	require.Len(t, rows, 2)
	require.Equal(t, []int{3, 4}, rows[1].ToSlice())

	cols := m.ColumnVectors()
	require.Len(t, cols, 2)
	require.Equal(t, []int{2, 4}, cols[1].ToSlice())
}

func TestMatrixDiag(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, []int{1, 5}, m.Diag().ToSlice(), "rectangular diagonal stops at the short side")
}

func TestMatrixToSlices_Independent(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2}, {3, 4}})

	out := m.ToSlices()
	out[0][0] = 99
	e, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, e)
}

func TestMatrixCloneIsEqualAndDistinct(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.True(t, m.Equal(c))

	s := c.ToSlices()
	s[0][0] = 42
	require.True(t, m.Equal(c), "clones never share backing storage")
}

func TestMatrixEqual(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	require.True(t, a.Equal(mustRows(t, [][]int{{1, 2}, {3, 4}})))
	require.False(t, a.Equal(mustRows(t, [][]int{{1, 2}, {3, 5}})))
	require.False(t, a.Equal(mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})), "shape matters")
	require.False(t, a.Equal(a.Transpose()))
}

func TestMatrixEqualApprox(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{1 + 1e-9, 2}, {3, 4 - 1e-9}})
	require.True(t, a.EqualApprox(b, 1e-6))
	require.False(t, a.EqualApprox(b, 1e-12))
}

func TestMatrixString(t *testing.T) {
	require.Equal(t, "Matrix[[1, 2], [3, 4]]", mustRows(t, [][]int{{1, 2}, {3, 4}}).String())

	empty, err := dense.Empty[int](0, 3)
	require.NoError(t, err)
	require.Equal(t, "Matrix.empty(0, 3)", empty.String())
}

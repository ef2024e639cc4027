package dense

import (
	"fmt"
	"math"

	"github.com/oselvar/matvec/scalar"
)

// Determinant returns the determinant of m. Sizes 0 through 4 use closed
// forms (the 0x0 determinant is 1); larger matrices run Bareiss
// fraction-free elimination on a working copy, which stays exact for
// integer element types.
//
// Complexity: O(n³).
//
// Errors:
//   - ErrDimensionMismatch if m is not square.
func (m Matrix[T]) Determinant() (T, error) {
	if m.rows != m.cols {
		return 0, errSquare(opDeterminant, m.rows, m.cols)
	}
	a := m.data
	switch m.rows {
	case 0:
		return 1, nil
	case 1:
		return a[0], nil
	case 2:
		return a[0]*a[3] - a[1]*a[2], nil
	case 3:
		return a[0]*(a[4]*a[8]-a[5]*a[7]) -
			a[1]*(a[3]*a[8]-a[5]*a[6]) +
			a[2]*(a[3]*a[7]-a[4]*a[6]), nil
	case 4:
		// Expansion by complementary 2x2 minors of the top and bottom
		// row pairs.
		s01 := a[0]*a[5] - a[1]*a[4]
		s02 := a[0]*a[6] - a[2]*a[4]
		s03 := a[0]*a[7] - a[3]*a[4]
		s12 := a[1]*a[6] - a[2]*a[5]
		s13 := a[1]*a[7] - a[3]*a[5]
		s23 := a[2]*a[7] - a[3]*a[6]
		t01 := a[8]*a[13] - a[9]*a[12]
		t02 := a[8]*a[14] - a[10]*a[12]
		t03 := a[8]*a[15] - a[11]*a[12]
		t12 := a[9]*a[14] - a[10]*a[13]
		t13 := a[9]*a[15] - a[11]*a[13]
		t23 := a[10]*a[15] - a[11]*a[14]

		return s01*t23 - s02*t13 + s03*t12 + s12*t03 - s13*t02 + s23*t01, nil
	}

	return m.bareissDeterminant(), nil
}

// bareissDeterminant eliminates on a working copy. Every division in the
// Bareiss recurrence is exact, so integer elements never truncate.
func (m Matrix[T]) bareissDeterminant() T {
	n := m.rows
	a := make([]T, len(m.data))
	copy(a, m.data)
	sign := T(1)
	prev := T(1)
	for k := 0; k < n-1; k++ {
		if a[k*n+k] == 0 {
			sw := -1
			for i := k + 1; i < n; i++ {
				if a[i*n+k] != 0 {
					sw = i
					break
				}
			}
			if sw < 0 {
				return 0
			}
			swapRows(a, n, k, sw)
			sign = -sign
		}
		pivot := a[k*n+k]
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				a[i*n+j] = (pivot*a[i*n+j] - a[i*n+k]*a[k*n+j]) / prev
			}
			a[i*n+k] = 0
		}
		prev = pivot
	}

	return sign * a[n*n-1]
}

// Rank returns the rank of m. Rectangular shapes are fine; the empty
// matrix has rank 0. The elimination is Bareiss-style and therefore
// exact for integer element types.
//
// Complexity: O(min(r,c)·r·c).
func (m Matrix[T]) Rank() int {
	r, c := m.rows, m.cols
	a := make([]T, len(m.data))
	copy(a, m.data)
	pivotRow := 0
	prev := T(1)
	for k := 0; k < c && pivotRow < r; k++ {
		sw := -1
		for i := pivotRow; i < r; i++ {
			if a[i*c+k] != 0 {
				sw = i
				break
			}
		}
		if sw < 0 {
			continue
		}
		if sw != pivotRow {
			swapRows(a, c, sw, pivotRow)
		}
		pivot := a[pivotRow*c+k]
		for i := pivotRow + 1; i < r; i++ {
			for j := k + 1; j < c; j++ {
				a[i*c+j] = (pivot*a[i*c+j] - a[i*c+k]*a[pivotRow*c+j]) / prev
			}
			a[i*c+k] = 0
		}
		pivotRow++
		prev = pivot
	}

	return pivotRow
}

// Inverse returns m⁻¹ by Gauss-Jordan elimination with partial pivoting
// over a float64 working copy. The result is always float64 because
// inversion leaves the integers.
//
// Errors:
//   - ErrDimensionMismatch if m is not square.
//   - ErrNotRegular        if m is singular.
func (m Matrix[T]) Inverse() (Matrix[float64], error) {
	if m.rows != m.cols {
		return Matrix[float64]{}, errSquare(opInverse, m.rows, m.cols)
	}
	n := m.rows
	a := make([]float64, len(m.data))
	for i, e := range m.data {
		a[i] = float64(e)
	}
	inv := make([]float64, n*n)
	for i := 0; i < n; i++ {
		inv[i*n+i] = 1
	}
	for k := 0; k < n; k++ {
		best, bestAbs := k, math.Abs(a[k*n+k])
		for i := k + 1; i < n; i++ {
			if abs := math.Abs(a[i*n+k]); abs > bestAbs {
				best, bestAbs = i, abs
			}
		}
		if bestAbs == 0 {
			return Matrix[float64]{}, fmt.Errorf("%s: zero pivot column %d: %w", opInverse, k, ErrNotRegular)
		}
		if best != k {
			swapRows(a, n, best, k)
			swapRows(inv, n, best, k)
		}
		pivot := a[k*n+k]
		for j := 0; j < n; j++ {
			a[k*n+j] /= pivot
			inv[k*n+j] /= pivot
		}
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			f := a[i*n+k]
			if f == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
				inv[i*n+j] -= f * inv[k*n+j]
			}
		}
	}

	return Matrix[float64]{rows: n, cols: n, data: inv}, nil
}

// Solve returns the x satisfying m·x = b, as m⁻¹·b.
//
// Errors:
//   - ErrDimensionMismatch if m is not square or b has the wrong length.
//   - ErrNotRegular        if m is singular.
func (m Matrix[T]) Solve(b Vector[T]) (Vector[float64], error) {
	if m.rows != m.cols {
		return Vector[float64]{}, errSquare(opSolve, m.rows, m.cols)
	}
	if len(b.data) != m.rows {
		return Vector[float64]{}, errLen(opSolve, m.rows, len(b.data))
	}
	inv, err := m.Inverse()
	if err != nil {
		return Vector[float64]{}, opErrorf(opSolve, err)
	}

	return inv.MulVec(ConvertVector[T, float64](b))
}

// FirstMinor returns m with row i and column j deleted. Any shape with
// at least one row and column qualifies.
//
// Errors:
//   - ErrOperationNotDefined if m is empty.
//   - ErrBadArgument         if (i, j) is outside the matrix.
func (m Matrix[T]) FirstMinor(i, j int) (Matrix[T], error) {
	if m.IsEmpty() {
		return Matrix[T]{}, fmt.Errorf("%s: empty %dx%d matrix: %w", opFirstMinor, m.rows, m.cols, ErrOperationNotDefined)
	}
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return Matrix[T]{}, errArgf(opFirstMinor, "(%d,%d) outside %dx%d", i, j, m.rows, m.cols)
	}
	out := make([]T, 0, (m.rows-1)*(m.cols-1))
	for r := 0; r < m.rows; r++ {
		if r == i {
			continue
		}
		for c := 0; c < m.cols; c++ {
			if c == j {
				continue
			}
			out = append(out, m.data[r*m.cols+c])
		}
	}

	return Matrix[T]{rows: m.rows - 1, cols: m.cols - 1, data: out}, nil
}

// Cofactor returns (-1)^(i+j) times the determinant of FirstMinor(i, j).
//
// Errors:
//   - ErrOperationNotDefined if m is empty.
//   - ErrDimensionMismatch   if m is not square.
//   - ErrBadArgument         if (i, j) is outside the matrix.
func (m Matrix[T]) Cofactor(i, j int) (T, error) {
	if m.IsEmpty() {
		return 0, fmt.Errorf("%s: empty %dx%d matrix: %w", opCofactor, m.rows, m.cols, ErrOperationNotDefined)
	}
	if m.rows != m.cols {
		return 0, errSquare(opCofactor, m.rows, m.cols)
	}
	minor, err := m.FirstMinor(i, j)
	if err != nil {
		return 0, opErrorf(opCofactor, err)
	}
	det, err := minor.Determinant()
	if err != nil {
		return 0, opErrorf(opCofactor, err)
	}
	if (i+j)%2 != 0 {
		det = -det
	}

	return det, nil
}

// Adjugate returns the transpose of the cofactor matrix of m. For a
// regular matrix, m·Adjugate(m) equals Determinant(m)·I.
//
// Errors:
//   - ErrDimensionMismatch if m is not square.
func (m Matrix[T]) Adjugate() (Matrix[T], error) {
	if m.rows != m.cols {
		return Matrix[T]{}, errSquare(opAdjugate, m.rows, m.cols)
	}
	n := m.rows
	out := make([]T, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cf, err := m.Cofactor(i, j)
			if err != nil {
				return Matrix[T]{}, opErrorf(opAdjugate, err)
			}
			out[j*n+i] = cf
		}
	}

	return Matrix[T]{rows: n, cols: n, data: out}, nil
}

// LaplaceExpansion returns the determinant of m expanded along the given
// row or column. The value matches Determinant; the method exists for
// when the per-cofactor breakdown itself is of interest.
//
// Errors:
//   - ErrBadArgument       if axis is unknown or index is outside it.
//   - ErrDimensionMismatch if m is not square.
func (m Matrix[T]) LaplaceExpansion(axis Axis, index int) (T, error) {
	if !axis.valid() {
		return 0, errArgf(opLaplace, "unknown axis %v", axis)
	}
	if m.rows != m.cols {
		return 0, errSquare(opLaplace, m.rows, m.cols)
	}
	n := m.rows
	if index < 0 || index >= n {
		return 0, errArgf(opLaplace, "index %d outside [0,%d)", index, n)
	}
	var acc T
	for k := 0; k < n; k++ {
		i, j := index, k
		if axis == AxisColumn {
			i, j = k, index
		}
		cf, err := m.Cofactor(i, j)
		if err != nil {
			return 0, opErrorf(opLaplace, err)
		}
		acc += m.data[i*n+j] * cf
	}

	return acc, nil
}

// Minor returns the rowCount×colCount submatrix starting at
// (fromRow, fromCol). Blocks reaching past the edge are clipped, so the
// result may be smaller than asked; a start on the far edge yields an
// empty matrix.
//
// Errors:
//   - ErrBadArgument if rowCount or colCount is negative, or if a start
//     lies outside [0, size].
func (m Matrix[T]) Minor(fromRow, rowCount, fromCol, colCount int) (Matrix[T], error) {
	if rowCount < 0 || colCount < 0 {
		return Matrix[T]{}, errArgf(opMinor, "negative size %dx%d", rowCount, colCount)
	}
	if fromRow < 0 || fromRow > m.rows {
		return Matrix[T]{}, errArgf(opMinor, "row start %d outside [0,%d]", fromRow, m.rows)
	}
	if fromCol < 0 || fromCol > m.cols {
		return Matrix[T]{}, errArgf(opMinor, "column start %d outside [0,%d]", fromCol, m.cols)
	}
	endRow := min(fromRow+rowCount, m.rows)
	endCol := min(fromCol+colCount, m.cols)
	rows := endRow - fromRow
	cols := endCol - fromCol
	out := make([]T, 0, rows*cols)
	for i := fromRow; i < endRow; i++ {
		out = append(out, m.data[i*m.cols+fromCol:i*m.cols+endCol]...)
	}

	return Matrix[T]{rows: rows, cols: cols, data: out}, nil
}

// swapRows exchanges rows i and j of a flat row-major block.
func swapRows[T scalar.Number](a []T, cols, i, j int) {
	ri := a[i*cols : (i+1)*cols]
	rj := a[j*cols : (j+1)*cols]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

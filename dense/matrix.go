package dense

import (
	"fmt"
	"strings"

	"github.com/oselvar/matvec/scalar"
)

// Matrix is an immutable dense matrix stored in row-major order: element
// (i, j) lives at data[i*cols+j]. The zero value is the 0x0 matrix.
// Zero-sized shapes (0xN, Nx0, 0x0) are first-class values. Matrices
// never share backing storage with caller memory or with each other.
type Matrix[T scalar.Number] struct {
	rows, cols int
	data       []T
}

// index returns the flat offset of (i, j). Bounds are the caller's
// responsibility.
func (m Matrix[T]) index(i, j int) int { return i*m.cols + j }

// FromRows returns the matrix with the given rows. All rows must share a
// length; the input is copied.
//
// Errors:
//   - ErrDimensionMismatch if the rows are ragged; the message names the
//     offending row and both lengths.
func FromRows[T scalar.Number](rows [][]T) (Matrix[T], error) {
	r := len(rows)
	if r == 0 {
		return Matrix[T]{}, nil
	}
	c := len(rows[0])
	for i, row := range rows {
		if len(row) != c {
			return Matrix[T]{}, fmt.Errorf("%s: row %d has %d elements, want %d: %w",
				opFromRows, i, len(row), c, ErrDimensionMismatch)
		}
	}
	data := make([]T, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}

	return Matrix[T]{rows: r, cols: c, data: data}, nil
}

// FromColumns returns the matrix with the given columns. All columns must
// share a length; the input is copied.
//
// Errors:
//   - ErrDimensionMismatch if the columns are ragged.
func FromColumns[T scalar.Number](cols [][]T) (Matrix[T], error) {
	c := len(cols)
	if c == 0 {
		return Matrix[T]{}, nil
	}
	r := len(cols[0])
	for j, col := range cols {
		if len(col) != r {
			return Matrix[T]{}, fmt.Errorf("%s: column %d has %d elements, want %d: %w",
				opFromColumns, j, len(col), r, ErrDimensionMismatch)
		}
	}
	data := make([]T, r*c)
	for j, col := range cols {
		for i, e := range col {
			data[i*c+j] = e
		}
	}

	return Matrix[T]{rows: r, cols: c, data: data}, nil
}

// Build returns the rows x cols matrix with element (i, j) set to
// fn(i, j).
//
// Errors:
//   - ErrBadArgument if a dimension is negative or fn is nil.
func Build[T scalar.Number](rows, cols int, fn func(i, j int) T) (Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return Matrix[T]{}, errArgf(opBuild, "dimensions %dx%d must be non-negative", rows, cols)
	}
	if fn == nil {
		return Matrix[T]{}, errArgf(opBuild, "nil generator")
	}
	m := Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[i*cols+j] = fn(i, j)
		}
	}

	return m, nil
}

// Diagonal returns the square matrix with the given values on the main
// diagonal and zeros elsewhere.
func Diagonal[T scalar.Number](values []T) Matrix[T] {
	n := len(values)
	m := Matrix[T]{rows: n, cols: n, data: make([]T, n*n)}
	for i, e := range values {
		m.data[i*n+i] = e
	}

	return m
}

// Scalar returns the n x n matrix value·I.
//
// Errors:
//   - ErrBadArgument if n < 0.
func Scalar[T scalar.Number](n int, value T) (Matrix[T], error) {
	if n < 0 {
		return Matrix[T]{}, errArgf(opScalarMatrix, "size %d must be non-negative", n)
	}
	m := Matrix[T]{rows: n, cols: n, data: make([]T, n*n)}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = value
	}

	return m, nil
}

// identity returns I(n) for a known non-negative n.
func identity[T scalar.Number](n int) Matrix[T] {
	m := Matrix[T]{rows: n, cols: n, data: make([]T, n*n)}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// Identity returns the n x n identity matrix.
//
// Errors:
//   - ErrBadArgument if n < 0.
func Identity[T scalar.Number](n int) (Matrix[T], error) {
	if n < 0 {
		return Matrix[T]{}, errArgf(opIdentity, "size %d must be non-negative", n)
	}

	return identity[T](n), nil
}

// Zero returns the rows x cols matrix of zeros.
//
// Errors:
//   - ErrBadArgument if a dimension is negative.
func Zero[T scalar.Number](rows, cols int) (Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return Matrix[T]{}, errArgf(opZero, "dimensions %dx%d must be non-negative", rows, cols)
	}

	return Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// Empty returns a matrix with no elements: at least one of the dimensions
// must be zero. Empty(0, 0) is allowed.
//
// Errors:
//   - ErrBadArgument if a dimension is negative or both are positive.
func Empty[T scalar.Number](rows, cols int) (Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return Matrix[T]{}, errArgf(opEmpty, "dimensions %dx%d must be non-negative", rows, cols)
	}
	if rows > 0 && cols > 0 {
		return Matrix[T]{}, errArgf(opEmpty, "dimensions %dx%d hold elements", rows, cols)
	}

	return Matrix[T]{rows: rows, cols: cols}, nil
}

// RowVector returns the 1 x n matrix with the given elements as its row.
func RowVector[T scalar.Number](elems []T) Matrix[T] {
	data := make([]T, len(elems))
	copy(data, elems)

	return Matrix[T]{rows: 1, cols: len(elems), data: data}
}

// ColumnVector returns the n x 1 matrix with the given elements as its
// column.
func ColumnVector[T scalar.Number](elems []T) Matrix[T] {
	data := make([]T, len(elems))
	copy(data, elems)

	return Matrix[T]{rows: len(elems), cols: 1, data: data}
}

// HStack returns the given matrices joined left to right. All operands
// must share a row count.
//
// Errors:
//   - ErrBadArgument       if no matrices are given.
//   - ErrDimensionMismatch if a row count differs.
func HStack[T scalar.Number](ms ...Matrix[T]) (Matrix[T], error) {
	if len(ms) == 0 {
		return Matrix[T]{}, errArgf(opHStack, "need at least one matrix")
	}
	r := ms[0].rows
	total := 0
	for _, m := range ms {
		if m.rows != r {
			return Matrix[T]{}, errShape(opHStack, r, ms[0].cols, m.rows, m.cols)
		}
		total += m.cols
	}
	out := Matrix[T]{rows: r, cols: total, data: make([]T, r*total)}
	off := 0
	for _, m := range ms {
		for i := 0; i < r; i++ {
			copy(out.data[i*total+off:i*total+off+m.cols], m.data[i*m.cols:(i+1)*m.cols])
		}
		off += m.cols
	}

	return out, nil
}

// VStack returns the given matrices joined top to bottom. All operands
// must share a column count.
//
// Errors:
//   - ErrBadArgument       if no matrices are given.
//   - ErrDimensionMismatch if a column count differs.
func VStack[T scalar.Number](ms ...Matrix[T]) (Matrix[T], error) {
	if len(ms) == 0 {
		return Matrix[T]{}, errArgf(opVStack, "need at least one matrix")
	}
	c := ms[0].cols
	total := 0
	for _, m := range ms {
		if m.cols != c {
			return Matrix[T]{}, errShape(opVStack, ms[0].rows, c, m.rows, m.cols)
		}
		total += m.rows
	}
	out := Matrix[T]{rows: total, cols: c, data: make([]T, 0, total*c)}
	for _, m := range ms {
		out.data = append(out.data, m.data...)
	}

	return out, nil
}

// FromVector returns the vector as a single-column matrix, like
// Vector.ToMatrix.
func FromVector[T scalar.Number](v Vector[T]) Matrix[T] {
	return v.ToMatrix()
}

// Rows returns the row count.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m Matrix[T]) Cols() int { return m.cols }

// Shape returns the row and column counts.
func (m Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// IsSquare reports whether the row and column counts are equal.
func (m Matrix[T]) IsSquare() bool { return m.rows == m.cols }

// IsEmpty reports whether the matrix has no elements.
func (m Matrix[T]) IsEmpty() bool { return m.rows == 0 || m.cols == 0 }

// At returns the element at (i, j).
//
// Errors:
//   - ErrIndexOutOfRange if (i, j) is outside the bounds.
func (m Matrix[T]) At(i, j int) (T, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, errCell(opAt, i, j, m.rows, m.cols)
	}

	return m.data[m.index(i, j)], nil
}

// AtOK returns the element at (i, j) and whether the cell exists.
// The comma-ok form of At for callers that treat misses as absent values.
func (m Matrix[T]) AtOK(i, j int) (T, bool) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, false
	}

	return m.data[m.index(i, j)], true
}

// Row returns row i as a vector.
//
// Errors:
//   - ErrIndexOutOfRange if i is outside [0, Rows).
func (m Matrix[T]) Row(i int) (Vector[T], error) {
	if i < 0 || i >= m.rows {
		return Vector[T]{}, errIndex(opRow, i, m.rows)
	}

	return VectorFromSlice(m.data[i*m.cols : (i+1)*m.cols]), nil
}

// RowOK returns row i as a vector and whether the row exists.
func (m Matrix[T]) RowOK(i int) (Vector[T], bool) {
	if i < 0 || i >= m.rows {
		return Vector[T]{}, false
	}

	return VectorFromSlice(m.data[i*m.cols : (i+1)*m.cols]), true
}

// Column returns column j as a vector.
//
// Errors:
//   - ErrIndexOutOfRange if j is outside [0, Cols).
func (m Matrix[T]) Column(j int) (Vector[T], error) {
	if j < 0 || j >= m.cols {
		return Vector[T]{}, errIndex(opColumn, j, m.cols)
	}

	return Vector[T]{data: m.column(j)}, nil
}

// ColumnOK returns column j as a vector and whether the column exists.
func (m Matrix[T]) ColumnOK(j int) (Vector[T], bool) {
	if j < 0 || j >= m.cols {
		return Vector[T]{}, false
	}

	return Vector[T]{data: m.column(j)}, true
}

// column copies column j into a fresh slice. Bounds are the caller's
// responsibility.
func (m Matrix[T]) column(j int) []T {
	out := make([]T, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.data[i*m.cols+j]
	}

	return out
}

// RowVectors returns all rows as vectors.
func (m Matrix[T]) RowVectors() []Vector[T] {
	out := make([]Vector[T], m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = VectorFromSlice(m.data[i*m.cols : (i+1)*m.cols])
	}

	return out
}

// ColumnVectors returns all columns as vectors.
func (m Matrix[T]) ColumnVectors() []Vector[T] {
	out := make([]Vector[T], m.cols)
	for j := 0; j < m.cols; j++ {
		out[j] = Vector[T]{data: m.column(j)}
	}

	return out
}

// Diag returns the main diagonal as a vector of length min(Rows, Cols).
func (m Matrix[T]) Diag() Vector[T] {
	n := min(m.rows, m.cols)
	out := make([]T, n)
	for d := 0; d < n; d++ {
		out[d] = m.data[d*m.cols+d]
	}

	return Vector[T]{data: out}
}

// ToSlices returns the rows as a fresh nested slice.
func (m Matrix[T]) ToSlices() [][]T {
	out := make([][]T, m.rows)
	for i := 0; i < m.rows; i++ {
		row := make([]T, m.cols)
		copy(row, m.data[i*m.cols:(i+1)*m.cols])
		out[i] = row
	}

	return out
}

// Clone returns a copy of the matrix.
func (m Matrix[T]) Clone() Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// Equal reports whether m and o have the same shape and identical
// elements. NaN elements compare unequal, as in Go.
func (m Matrix[T]) Equal(o Matrix[T]) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, e := range m.data {
		if e != o.data[i] {
			return false
		}
	}

	return true
}

// EqualApprox reports whether m and o have the same shape and all
// elements within eps of each other.
func (m Matrix[T]) EqualApprox(o Matrix[T], eps float64) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, e := range m.data {
		if !scalar.EqualWithin(float64(e), float64(o.data[i]), eps) {
			return false
		}
	}

	return true
}

// String renders the matrix as Matrix[[row0], [row1], ...]. Matrices
// without elements render as Matrix.empty(rows, cols) so degenerate
// shapes stay distinguishable.
func (m Matrix[T]) String() string {
	if m.IsEmpty() {
		return fmt.Sprintf("Matrix.empty(%d, %d)", m.rows, m.cols)
	}
	var b strings.Builder
	b.WriteString("Matrix[")
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", m.data[m.index(i, j)])
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')

	return b.String()
}

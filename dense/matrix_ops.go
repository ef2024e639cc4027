package dense

import (
	"fmt"

	"github.com/oselvar/matvec/scalar"
	"github.com/oselvar/matvec/simd"
)

// Add returns m + o elementwise.
//
// Errors:
//   - ErrDimensionMismatch if the shapes differ.
func (m Matrix[T]) Add(o Matrix[T]) (Matrix[T], error) {
	if m.rows != o.rows || m.cols != o.cols {
		return Matrix[T]{}, errShape(opAdd, m.rows, m.cols, o.rows, o.cols)
	}
	out := make([]T, len(m.data))
	simd.AddInto(out, m.data, o.data)

	return Matrix[T]{rows: m.rows, cols: m.cols, data: out}, nil
}

// Sub returns m - o elementwise.
//
// Errors:
//   - ErrDimensionMismatch if the shapes differ.
func (m Matrix[T]) Sub(o Matrix[T]) (Matrix[T], error) {
	if m.rows != o.rows || m.cols != o.cols {
		return Matrix[T]{}, errShape(opSub, m.rows, m.cols, o.rows, o.cols)
	}
	out := make([]T, len(m.data))
	simd.SubInto(out, m.data, o.data)

	return Matrix[T]{rows: m.rows, cols: m.cols, data: out}, nil
}

// MulElem returns the elementwise (Hadamard) product m * o.
//
// Errors:
//   - ErrDimensionMismatch if the shapes differ.
func (m Matrix[T]) MulElem(o Matrix[T]) (Matrix[T], error) {
	if m.rows != o.rows || m.cols != o.cols {
		return Matrix[T]{}, errShape(opMulElem, m.rows, m.cols, o.rows, o.cols)
	}
	out := make([]T, len(m.data))
	simd.MulInto(out, m.data, o.data)

	return Matrix[T]{rows: m.rows, cols: m.cols, data: out}, nil
}

// DivElem returns the elementwise quotient m / o. Integer elements divide
// like Go's / operator and reject zero divisors; float elements follow
// IEEE semantics.
//
// Errors:
//   - ErrDimensionMismatch if the shapes differ.
//   - ErrDivisionByZero    if T is an integer type and o has a zero.
func (m Matrix[T]) DivElem(o Matrix[T]) (Matrix[T], error) {
	if m.rows != o.rows || m.cols != o.cols {
		return Matrix[T]{}, errShape(opDivElem, m.rows, m.cols, o.rows, o.cols)
	}
	if err := checkZeroDivisor(opDivElem, o.data); err != nil {
		return Matrix[T]{}, err
	}
	out := make([]T, len(m.data))
	simd.DivInto(out, m.data, o.data)

	return Matrix[T]{rows: m.rows, cols: m.cols, data: out}, nil
}

// Scale returns m with every element multiplied by k.
func (m Matrix[T]) Scale(k T) Matrix[T] {
	out := make([]T, len(m.data))
	simd.ScaleInto(out, m.data, k)

	return Matrix[T]{rows: m.rows, cols: m.cols, data: out}
}

// DivScalar returns m with every element divided by k.
//
// Errors:
//   - ErrDivisionByZero if T is an integer type and k is zero.
func (m Matrix[T]) DivScalar(k T) (Matrix[T], error) {
	if err := checkZeroScalar(opDivScalar, k); err != nil {
		return Matrix[T]{}, err
	}
	out := make([]T, len(m.data))
	simd.DivScalarInto(out, m.data, k)

	return Matrix[T]{rows: m.rows, cols: m.cols, data: out}, nil
}

// Neg returns m with every element negated.
func (m Matrix[T]) Neg() Matrix[T] {
	return m.Scale(-1)
}

// Mul returns the matrix product m · o. The operands must conform:
// m.Cols() == o.Rows(). Multiplying an r×0 by a 0×c yields the r×c zero
// matrix.
//
// Complexity: O(m.Rows · m.Cols · o.Cols).
//
// Errors:
//   - ErrDimensionMismatch if m.Cols() != o.Rows().
func (m Matrix[T]) Mul(o Matrix[T]) (Matrix[T], error) {
	if m.cols != o.rows {
		return Matrix[T]{}, errMulShape(opMul, m.rows, m.cols, o.rows, o.cols)
	}

	return m.mul(o), nil
}

// mul multiplies conformable operands. Callers validate shapes.
func (m Matrix[T]) mul(o Matrix[T]) Matrix[T] {
	out := make([]T, m.rows*o.cols)
	// Skipping zero cells of the left operand is exact for integer
	// elements only; float products keep every term so 0·NaN and
	// 0·±Inf reach the sum.
	skipZero := integral[T]()
	for i := 0; i < m.rows; i++ {
		dst := out[i*o.cols : (i+1)*o.cols]
		for k := 0; k < m.cols; k++ {
			a := m.data[i*m.cols+k]
			if skipZero && a == 0 {
				continue
			}
			row := o.data[k*o.cols : (k+1)*o.cols]
			for j, b := range row {
				dst[j] += a * b
			}
		}
	}

	return Matrix[T]{rows: m.rows, cols: o.cols, data: out}
}

// MulVec returns the product m · v with v taken as a column vector.
//
// Errors:
//   - ErrDimensionMismatch if v.Len() != m.Cols().
func (m Matrix[T]) MulVec(v Vector[T]) (Vector[T], error) {
	if m.cols != len(v.data) {
		return Vector[T]{}, errLen(opMulVec, m.cols, len(v.data))
	}
	out := make([]T, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = simd.Dot(m.data[i*m.cols:(i+1)*m.cols], v.data)
	}

	return Vector[T]{data: out}, nil
}

// DivMatrix returns m · o⁻¹, the right quotient of m by o. The result is
// always float64 because inversion leaves the integers.
//
// Errors:
//   - ErrDimensionMismatch if m.Cols() != o.Rows() or o is not square.
//   - ErrNotRegular        if o is singular.
func (m Matrix[T]) DivMatrix(o Matrix[T]) (Matrix[float64], error) {
	if m.cols != o.rows {
		return Matrix[float64]{}, errMulShape(opDivMatrix, m.rows, m.cols, o.rows, o.cols)
	}
	inv, err := o.Inverse()
	if err != nil {
		return Matrix[float64]{}, opErrorf(opDivMatrix, err)
	}

	return ConvertMatrix[T, float64](m).mul(inv), nil
}

// Pow returns m raised to the n-th power by binary exponentiation. Pow(0)
// is the identity of matching size.
//
// Complexity: O(log n) multiplications.
//
// Errors:
//   - ErrDimensionMismatch   if m is not square.
//   - ErrOperationNotDefined if n < 0; inverse powers live in float64,
//     use Inverse followed by Pow instead.
func (m Matrix[T]) Pow(n int) (Matrix[T], error) {
	if m.rows != m.cols {
		return Matrix[T]{}, errSquare(opPow, m.rows, m.cols)
	}
	if n < 0 {
		return Matrix[T]{}, fmt.Errorf("%s: negative exponent %d: %w", opPow, n, ErrOperationNotDefined)
	}
	out := identity[T](m.rows)
	base := m.Clone()
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			out = out.mul(base)
		}
		base = base.mul(base)
	}

	return out, nil
}

// Transpose returns mᵀ.
func (m Matrix[T]) Transpose() Matrix[T] {
	out := make([]T, len(m.data))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}

	return Matrix[T]{rows: m.cols, cols: m.rows, data: out}
}

// Trace returns the sum of the main diagonal.
//
// Errors:
//   - ErrDimensionMismatch if m is not square.
func (m Matrix[T]) Trace() (T, error) {
	if m.rows != m.cols {
		return 0, errSquare(opTrace, m.rows, m.cols)
	}
	var acc T
	for i := 0; i < m.rows; i++ {
		acc += m.data[i*m.cols+i]
	}

	return acc, nil
}

// Map returns a matrix with fn applied to every element.
func (m Matrix[T]) Map(fn func(x T) T) Matrix[T] {
	out := make([]T, len(m.data))
	for i, e := range m.data {
		out[i] = fn(e)
	}

	return Matrix[T]{rows: m.rows, cols: m.cols, data: out}
}

// MapWithIndex returns a matrix with fn applied to every element and its
// row and column indices.
func (m Matrix[T]) MapWithIndex(fn func(x T, i, j int) T) Matrix[T] {
	out := make([]T, len(m.data))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			k := i*m.cols + j
			out[k] = fn(m.data[k], i, j)
		}
	}

	return Matrix[T]{rows: m.rows, cols: m.cols, data: out}
}

// Each calls fn for every cell selected by sel, in row-major order.
//
// Errors:
//   - ErrBadArgument if sel is unknown or fn is nil.
func (m Matrix[T]) Each(sel Selection, fn func(x T)) error {
	if !sel.valid() {
		return errSelection(opEach, sel)
	}
	if fn == nil {
		return errArgf(opEach, "nil visitor")
	}
	m.visit(sel, func(i, j int) bool {
		fn(m.data[m.index(i, j)])
		return true
	})

	return nil
}

// EachWithIndex calls fn for every cell selected by sel along with its
// row and column indices, in row-major order.
//
// Errors:
//   - ErrBadArgument if sel is unknown or fn is nil.
func (m Matrix[T]) EachWithIndex(sel Selection, fn func(x T, i, j int)) error {
	if !sel.valid() {
		return errSelection(opEachWithIndex, sel)
	}
	if fn == nil {
		return errArgf(opEachWithIndex, "nil visitor")
	}
	m.visit(sel, func(i, j int) bool {
		fn(m.data[m.index(i, j)], i, j)
		return true
	})

	return nil
}

// Collect returns a matrix with fn applied to the cells selected by sel;
// cells outside the selection are copied unchanged.
//
// Errors:
//   - ErrBadArgument if sel is unknown or fn is nil.
func (m Matrix[T]) Collect(sel Selection, fn func(x T) T) (Matrix[T], error) {
	if !sel.valid() {
		return Matrix[T]{}, errSelection(opCollect, sel)
	}
	if fn == nil {
		return Matrix[T]{}, errArgf(opCollect, "nil transform")
	}
	out := m.Clone()
	out.visit(sel, func(i, j int) bool {
		k := out.index(i, j)
		out.data[k] = fn(out.data[k])
		return true
	})

	return out, nil
}

// Find returns the indices of the first cell selected by sel whose value
// satisfies pred, scanning in row-major order. ok is false when no cell
// matches.
//
// Errors:
//   - ErrBadArgument if sel is unknown or pred is nil.
func (m Matrix[T]) Find(sel Selection, pred func(x T) bool) (i, j int, ok bool, err error) {
	if !sel.valid() {
		return 0, 0, false, errSelection(opFind, sel)
	}
	if pred == nil {
		return 0, 0, false, errArgf(opFind, "nil predicate")
	}
	fi, fj := 0, 0
	found := !m.visit(sel, func(i, j int) bool {
		if pred(m.data[m.index(i, j)]) {
			fi, fj = i, j
			return false
		}
		return true
	})

	return fi, fj, found, nil
}

// Combine zips the given matrices elementwise: every cell of the result
// is fn applied to the corresponding cells of all operands. The slice
// passed to fn is reused between calls and must not be retained.
//
// Errors:
//   - ErrBadArgument      if fn is nil or no matrices are given.
//   - ErrDimensionMismatch if the shapes differ.
func Combine[T scalar.Number](fn func(xs []T) T, ms ...Matrix[T]) (Matrix[T], error) {
	if fn == nil {
		return Matrix[T]{}, errArgf(opCombine, "nil combiner")
	}
	if len(ms) == 0 {
		return Matrix[T]{}, errArgf(opCombine, "no matrices")
	}
	first := ms[0]
	for _, o := range ms[1:] {
		if o.rows != first.rows || o.cols != first.cols {
			return Matrix[T]{}, errShape(opCombine, first.rows, first.cols, o.rows, o.cols)
		}
	}
	out := make([]T, len(first.data))
	xs := make([]T, len(ms))
	for k := range first.data {
		for mi, o := range ms {
			xs[mi] = o.data[k]
		}
		out[k] = fn(xs)
	}

	return Matrix[T]{rows: first.rows, cols: first.cols, data: out}, nil
}

package dense

import (
	"fmt"
	"math"

	"github.com/oselvar/matvec/scalar"
	"github.com/oselvar/matvec/simd"
)

// Dot returns the dot product of v and w.
//
// Errors:
//   - ErrDimensionMismatch if the lengths differ.
//
// Complexity: O(n).
func (v Vector[T]) Dot(w Vector[T]) (T, error) {
	if len(v.data) != len(w.data) {
		return 0, errLen(opDot, len(v.data), len(w.data))
	}

	return simd.Dot(v.data, w.data), nil
}

// SquaredMagnitude returns |v|² in the element type, exactly for integer
// elements.
func (v Vector[T]) SquaredMagnitude() T {
	return simd.Dot(v.data, v.data)
}

// Magnitude returns the Euclidean norm |v| as float64.
func (v Vector[T]) Magnitude() float64 {
	return simd.Norm(v.data)
}

// Normalize returns v scaled to unit length, as float64.
//
// Errors:
//   - ErrZeroVector if |v| == 0.
func (v Vector[T]) Normalize() (Vector[float64], error) {
	n := simd.Norm(v.data)
	if n == 0 {
		return Vector[float64]{}, opErrorf(opNormalize, ErrZeroVector)
	}
	out := make([]float64, len(v.data))
	for i, e := range v.data {
		out[i] = float64(e)
	}
	simd.DivScalarInto(out, out, n)

	return Vector[float64]{data: out}, nil
}

// Distance returns the Euclidean distance between v and w.
//
// Errors:
//   - ErrDimensionMismatch if the lengths differ.
func (v Vector[T]) Distance(w Vector[T]) (float64, error) {
	if len(v.data) != len(w.data) {
		return 0, errLen(opDistance, len(v.data), len(w.data))
	}

	return simd.Distance(v.data, w.data), nil
}

// CosineSimilarity returns dot(v,w) / (|v|·|w|). Zero-magnitude operands
// yield 0.
//
// Errors:
//   - ErrDimensionMismatch if the lengths differ.
func (v Vector[T]) CosineSimilarity(w Vector[T]) (float64, error) {
	if len(v.data) != len(w.data) {
		return 0, errLen(opCosine, len(v.data), len(w.data))
	}

	return simd.CosineSimilarity(v.data, w.data), nil
}

// Angle returns the angle between v and w in radians, in [0, π].
// If either operand has zero magnitude the angle is defined as 0.
//
// Errors:
//   - ErrDimensionMismatch if the lengths differ.
func (v Vector[T]) Angle(w Vector[T]) (float64, error) {
	if len(v.data) != len(w.data) {
		return 0, errLen(opAngle, len(v.data), len(w.data))
	}
	nv, nw := simd.Norm(v.data), simd.Norm(w.data)
	if nv == 0 || nw == 0 {
		return 0, nil
	}
	cos := scalar.Clamp(float64(simd.Dot(v.data, w.data))/(nv*nw), -1, 1)

	return math.Acos(cos), nil
}

// ParallelTo reports whether v and w point in the same direction, within
// the configured tolerance on the angle between them. A zero-magnitude
// operand has no direction and is parallel to nothing.
//
// Errors:
//   - ErrDimensionMismatch if the lengths differ.
//   - ErrBadOption         if an invalid Option was supplied.
func (v Vector[T]) ParallelTo(w Vector[T], opts ...Option) (bool, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return false, opErrorf(opParallel, err)
	}
	if len(v.data) != len(w.data) {
		return false, errLen(opParallel, len(v.data), len(w.data))
	}
	if v.IsZero() || w.IsZero() {
		return false, nil
	}
	ang, _ := v.Angle(w)

	return ang <= o.Epsilon, nil
}

// AntiparallelTo reports whether v and w point in opposite directions,
// within the configured tolerance on the angle between them. A
// zero-magnitude operand is antiparallel to nothing.
//
// Errors:
//   - ErrDimensionMismatch if the lengths differ.
//   - ErrBadOption         if an invalid Option was supplied.
func (v Vector[T]) AntiparallelTo(w Vector[T], opts ...Option) (bool, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return false, opErrorf(opAntiparallel, err)
	}
	if len(v.data) != len(w.data) {
		return false, errLen(opAntiparallel, len(v.data), len(w.data))
	}
	if v.IsZero() || w.IsZero() {
		return false, nil
	}
	ang, _ := v.Angle(w)

	return math.Pi-ang <= o.Epsilon, nil
}

// PerpendicularTo reports whether v and w are orthogonal: the magnitude
// of their dot product falls within the configured tolerance. Unlike
// ParallelTo this is not a test on the angle, so it scales with the
// operands. The zero vector has dot 0 with everything and is
// perpendicular to every vector.
//
// Errors:
//   - ErrDimensionMismatch if the lengths differ.
//   - ErrBadOption         if an invalid Option was supplied.
func (v Vector[T]) PerpendicularTo(w Vector[T], opts ...Option) (bool, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return false, opErrorf(opPerpendicular, err)
	}
	if len(v.data) != len(w.data) {
		return false, errLen(opPerpendicular, len(v.data), len(w.data))
	}

	return math.Abs(float64(simd.Dot(v.data, w.data))) <= o.Epsilon, nil
}

// CrossProduct returns the generalized cross product of v and the given
// vectors. A vector of size n takes exactly n-2 operands: size 2 takes
// none and returns the counterclockwise perpendicular (-y, x), size 3
// takes one and returns the familiar v × w, and larger sizes expand the
// determinant form along an appended basis row (Laplace expansion), so
// the result is orthogonal to every operand. Integer elements stay exact.
//
// Errors:
//   - ErrOperationNotDefined if v has fewer than 2 elements.
//   - ErrBadArgument         if the operand count is not Len-2.
//   - ErrDimensionMismatch   if an operand length differs from Len.
//
// Complexity: O(n⁴) in the general case.
func (v Vector[T]) CrossProduct(ws ...Vector[T]) (Vector[T], error) {
	n := len(v.data)
	if n < 2 {
		return Vector[T]{}, fmt.Errorf("%s: size %d has no cross product: %w",
			opCross, n, ErrOperationNotDefined)
	}
	if len(ws) != n-2 {
		return Vector[T]{}, errArgf(opCross, "size %d needs %d operands, got %d", n, n-2, len(ws))
	}
	for _, w := range ws {
		if len(w.data) != n {
			return Vector[T]{}, errLen(opCross, n, len(w.data))
		}
	}

	switch n {
	case 2:
		return NewVector(-v.data[1], v.data[0]), nil
	case 3:
		w := ws[0]

		return NewVector(
			v.data[1]*w.data[2]-v.data[2]*w.data[1],
			v.data[2]*w.data[0]-v.data[0]*w.data[2],
			v.data[0]*w.data[1]-v.data[1]*w.data[0],
		), nil
	}

	// General case: out[j] = (-1)^(n-1+j) · det of the (n-1)x(n-1) block
	// formed by the operand rows with column j removed.
	rows := make([][]T, 0, n-1)
	rows = append(rows, v.data)
	for _, w := range ws {
		rows = append(rows, w.data)
	}
	out := make([]T, n)
	for j := 0; j < n; j++ {
		sub := Matrix[T]{rows: n - 1, cols: n - 1, data: make([]T, (n-1)*(n-1))}
		for i, row := range rows {
			k := 0
			for c := 0; c < n; c++ {
				if c == j {
					continue
				}
				sub.data[i*(n-1)+k] = row[c]
				k++
			}
		}
		d, err := sub.Determinant()
		if err != nil {
			return Vector[T]{}, opErrorf(opCross, err)
		}
		if (n-1+j)%2 == 1 {
			d = -d
		}
		out[j] = d
	}

	return Vector[T]{data: out}, nil
}

// Independent reports whether the given vectors are linearly independent:
// they must share a size, and the matrix of their rows must have rank
// equal to their count. More vectors than dimensions are always
// dependent.
//
// Errors:
//   - ErrBadArgument       if no vectors are given.
//   - ErrDimensionMismatch if the sizes differ.
//
// Complexity: O(k·n·min(k,n)) for k vectors of size n.
func Independent[T scalar.Number](vs ...Vector[T]) (bool, error) {
	if len(vs) == 0 {
		return false, errArgf(opIndependent, "need at least one vector")
	}
	size := vs[0].Len()
	for _, w := range vs[1:] {
		if w.Len() != size {
			return false, errLen(opIndependent, size, w.Len())
		}
	}
	if len(vs) > size {
		return false, nil
	}
	rows := make([][]T, len(vs))
	for i, w := range vs {
		rows[i] = w.data
	}
	m, err := FromRows(rows)
	if err != nil {
		return false, opErrorf(opIndependent, err)
	}

	return m.Rank() == len(vs), nil
}

// Independent reports whether v and the given vectors are linearly
// independent. See the package-level Independent.
func (v Vector[T]) Independent(ws ...Vector[T]) (bool, error) {
	return Independent(append([]Vector[T]{v}, ws...)...)
}

// ToMatrix returns the vector as a single-column matrix.
func (v Vector[T]) ToMatrix() Matrix[T] {
	return ColumnVector(v.data)
}

// Covector returns the vector as a single-row matrix.
func (v Vector[T]) Covector() Matrix[T] {
	return RowVector(v.data)
}

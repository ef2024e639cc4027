package dense

import (
	"github.com/oselvar/matvec/scalar"
	"github.com/oselvar/matvec/simd"
)

// Add returns v + w elementwise.
//
// Errors:
//   - ErrDimensionMismatch if the lengths differ.
func (v Vector[T]) Add(w Vector[T]) (Vector[T], error) {
	if len(v.data) != len(w.data) {
		return Vector[T]{}, errLen(opVecAdd, len(v.data), len(w.data))
	}
	out := make([]T, len(v.data))
	simd.AddInto(out, v.data, w.data)

	return Vector[T]{data: out}, nil
}

// Sub returns v - w elementwise.
//
// Errors:
//   - ErrDimensionMismatch if the lengths differ.
func (v Vector[T]) Sub(w Vector[T]) (Vector[T], error) {
	if len(v.data) != len(w.data) {
		return Vector[T]{}, errLen(opVecSub, len(v.data), len(w.data))
	}
	out := make([]T, len(v.data))
	simd.SubInto(out, v.data, w.data)

	return Vector[T]{data: out}, nil
}

// Mul returns the elementwise (Hadamard) product v * w.
//
// Errors:
//   - ErrDimensionMismatch if the lengths differ.
func (v Vector[T]) Mul(w Vector[T]) (Vector[T], error) {
	if len(v.data) != len(w.data) {
		return Vector[T]{}, errLen(opVecMul, len(v.data), len(w.data))
	}
	out := make([]T, len(v.data))
	simd.MulInto(out, v.data, w.data)

	return Vector[T]{data: out}, nil
}

// Div returns the elementwise quotient v / w. Integer elements divide
// like Go's / operator and reject zero divisors; float elements follow
// IEEE semantics.
//
// Errors:
//   - ErrDimensionMismatch if the lengths differ.
//   - ErrDivisionByZero    if T is an integer type and w has a zero.
func (v Vector[T]) Div(w Vector[T]) (Vector[T], error) {
	if len(v.data) != len(w.data) {
		return Vector[T]{}, errLen(opVecDiv, len(v.data), len(w.data))
	}
	if err := checkZeroDivisor(opVecDiv, w.data); err != nil {
		return Vector[T]{}, err
	}
	out := make([]T, len(v.data))
	simd.DivInto(out, v.data, w.data)

	return Vector[T]{data: out}, nil
}

// AddScalar returns v with k added to every element.
func (v Vector[T]) AddScalar(k T) Vector[T] {
	out := make([]T, len(v.data))
	simd.AddScalarInto(out, v.data, k)

	return Vector[T]{data: out}
}

// SubScalar returns v with k subtracted from every element.
func (v Vector[T]) SubScalar(k T) Vector[T] {
	out := make([]T, len(v.data))
	simd.SubScalarInto(out, v.data, k)

	return Vector[T]{data: out}
}

// Scale returns v with every element multiplied by k.
func (v Vector[T]) Scale(k T) Vector[T] {
	out := make([]T, len(v.data))
	simd.ScaleInto(out, v.data, k)

	return Vector[T]{data: out}
}

// DivScalar returns v with every element divided by k.
//
// Errors:
//   - ErrDivisionByZero if T is an integer type and k is zero.
func (v Vector[T]) DivScalar(k T) (Vector[T], error) {
	if err := checkZeroScalar(opVecDivScalar, k); err != nil {
		return Vector[T]{}, err
	}
	out := make([]T, len(v.data))
	simd.DivScalarInto(out, v.data, k)

	return Vector[T]{data: out}, nil
}

// Neg returns v with every element negated.
func (v Vector[T]) Neg() Vector[T] {
	return v.Scale(-1)
}

// Map returns a vector with fn applied to every element.
func (v Vector[T]) Map(fn func(x T) T) Vector[T] {
	out := make([]T, len(v.data))
	for i, e := range v.data {
		out[i] = fn(e)
	}

	return Vector[T]{data: out}
}

// MapWithIndex returns a vector with fn applied to every element and its
// index.
func (v Vector[T]) MapWithIndex(fn func(x T, i int) T) Vector[T] {
	out := make([]T, len(v.data))
	for i, e := range v.data {
		out[i] = fn(e, i)
	}

	return Vector[T]{data: out}
}

// Map2 returns a vector with fn applied to element pairs of v and w.
//
// Errors:
//   - ErrDimensionMismatch if the lengths differ.
func (v Vector[T]) Map2(w Vector[T], fn func(a, b T) T) (Vector[T], error) {
	if len(v.data) != len(w.data) {
		return Vector[T]{}, errLen(opMap2, len(v.data), len(w.data))
	}
	out := make([]T, len(v.data))
	for i, e := range v.data {
		out[i] = fn(e, w.data[i])
	}

	return Vector[T]{data: out}, nil
}

// Round returns the elements rounded to the given number of decimal
// digits, as float64. Negative digits round to tens, hundreds, and so on.
func (v Vector[T]) Round(digits int) Vector[float64] {
	out := make([]float64, len(v.data))
	for i, e := range v.data {
		out[i] = scalar.RoundTo(float64(e), digits)
	}

	return Vector[float64]{data: out}
}

// Sum returns the sum of all elements. The empty vector sums to 0.
func (v Vector[T]) Sum() T {
	return simd.Sum(v.data)
}

// Product returns the product of all elements. The empty vector yields 1.
func (v Vector[T]) Product() T {
	acc := T(1)
	for _, e := range v.data {
		acc *= e
	}

	return acc
}

// Chomp returns v without its first n elements. Counts past the end yield
// the empty vector.
//
// Errors:
//   - ErrBadArgument if n < 0.
func (v Vector[T]) Chomp(n int) (Vector[T], error) {
	if n < 0 {
		return Vector[T]{}, errArgf(opChomp, "count %d must be non-negative", n)
	}
	if n > len(v.data) {
		n = len(v.data)
	}

	return VectorFromSlice(v.data[n:]), nil
}

// Top returns the first n elements of v. Counts past the end yield the
// whole vector.
//
// Errors:
//   - ErrBadArgument if n < 0.
func (v Vector[T]) Top(n int) (Vector[T], error) {
	if n < 0 {
		return Vector[T]{}, errArgf(opTop, "count %d must be non-negative", n)
	}
	if n > len(v.data) {
		n = len(v.data)
	}

	return VectorFromSlice(v.data[:n]), nil
}

// Concat returns v followed by the given vectors.
func (v Vector[T]) Concat(ws ...Vector[T]) Vector[T] {
	total := len(v.data)
	for _, w := range ws {
		total += len(w.data)
	}
	out := make([]T, 0, total)
	out = append(out, v.data...)
	for _, w := range ws {
		out = append(out, w.data...)
	}

	return Vector[T]{data: out}
}

package dense

import (
	"fmt"
	"strings"

	"github.com/oselvar/matvec/scalar"
)

// Vector is an immutable, fixed-length sequence of numeric elements.
// The zero value is the empty vector. Vectors never share backing storage
// with caller memory or with each other, so values may be used from
// multiple goroutines freely.
type Vector[T scalar.Number] struct {
	data []T
}

// NewVector returns a vector holding the given elements.
func NewVector[T scalar.Number](elems ...T) Vector[T] {
	data := make([]T, len(elems))
	copy(data, elems)

	return Vector[T]{data: data}
}

// VectorFromSlice returns a vector holding a copy of s. Later writes to s
// do not affect the result.
func VectorFromSlice[T scalar.Number](s []T) Vector[T] {
	data := make([]T, len(s))
	copy(data, s)

	return Vector[T]{data: data}
}

// Basis returns the size-dimensional standard basis vector: all zeros with
// a single 1 at the given index.
//
// Errors:
//   - ErrBadArgument if size < 1 or index is outside [0, size).
func Basis[T scalar.Number](size, index int) (Vector[T], error) {
	if size < 1 {
		return Vector[T]{}, errArgf(opBasis, "size %d must be positive", size)
	}
	if index < 0 || index >= size {
		return Vector[T]{}, errArgf(opBasis, "index %d outside [0,%d)", index, size)
	}
	data := make([]T, size)
	data[index] = 1

	return Vector[T]{data: data}, nil
}

// ZeroVector returns the zero vector of the given size.
//
// Errors:
//   - ErrBadArgument if size < 0.
func ZeroVector[T scalar.Number](size int) (Vector[T], error) {
	if size < 0 {
		return Vector[T]{}, errArgf(opZeroVector, "size %d must be non-negative", size)
	}

	return Vector[T]{data: make([]T, size)}, nil
}

// Repeat returns a vector of n copies of x.
//
// Errors:
//   - ErrBadArgument if n < 0.
func Repeat[T scalar.Number](x T, n int) (Vector[T], error) {
	if n < 0 {
		return Vector[T]{}, errArgf(opRepeat, "count %d must be non-negative", n)
	}
	data := make([]T, n)
	for i := range data {
		data[i] = x
	}

	return Vector[T]{data: data}, nil
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return len(v.data) }

// IsEmpty reports whether the vector has no elements.
func (v Vector[T]) IsEmpty() bool { return len(v.data) == 0 }

// IsZero reports whether every element is zero. The empty vector is zero.
func (v Vector[T]) IsZero() bool {
	for _, e := range v.data {
		if e != 0 {
			return false
		}
	}

	return true
}

// At returns the element at index i.
//
// Errors:
//   - ErrIndexOutOfRange if i is outside [0, Len).
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		return 0, errIndex(opVecAt, i, len(v.data))
	}

	return v.data[i], nil
}

// AtOK returns the element at index i and whether i was in range.
// The comma-ok form of At for callers that treat misses as absent values.
func (v Vector[T]) AtOK(i int) (T, bool) {
	if i < 0 || i >= len(v.data) {
		return 0, false
	}

	return v.data[i], true
}

// ToSlice returns the elements as a fresh slice.
func (v Vector[T]) ToSlice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// AppendTo appends the elements to dst and returns the extended slice.
func (v Vector[T]) AppendTo(dst []T) []T {
	return append(dst, v.data...)
}

// Clone returns a copy of the vector.
func (v Vector[T]) Clone() Vector[T] {
	return VectorFromSlice(v.data)
}

// Equal reports whether v and w have the same length and identical
// elements. NaN elements compare unequal, as in Go.
func (v Vector[T]) Equal(w Vector[T]) bool {
	if len(v.data) != len(w.data) {
		return false
	}
	for i, e := range v.data {
		if e != w.data[i] {
			return false
		}
	}

	return true
}

// EqualApprox reports whether v and w have the same length and all
// elements within eps of each other.
func (v Vector[T]) EqualApprox(w Vector[T], eps float64) bool {
	if len(v.data) != len(w.data) {
		return false
	}
	for i, e := range v.data {
		if !scalar.EqualWithin(float64(e), float64(w.data[i]), eps) {
			return false
		}
	}

	return true
}

// Each calls fn for every element in order.
func (v Vector[T]) Each(fn func(x T)) {
	for _, e := range v.data {
		fn(e)
	}
}

// EachWithIndex calls fn for every element in order with its index.
func (v Vector[T]) EachWithIndex(fn func(x T, i int)) {
	for i, e := range v.data {
		fn(e, i)
	}
}

// String renders the vector as Vector{e0, e1, ...}.
func (v Vector[T]) String() string {
	var b strings.Builder
	b.WriteString("Vector{")
	for i, e := range v.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteByte('}')

	return b.String()
}

// Package dense: sentinel error set. Operations never return these bare;
// they wrap them with the operation tag and the offending shapes or
// indices, so errors.Is matches through the wrap and the message still
// names the failing call.

package dense

import "errors"

var (
	// ErrDimensionMismatch is returned when operand shapes are
	// incompatible: elementwise ops on different shapes, Mul where
	// a.Cols() != b.Rows(), ragged row input, length conflicts, and
	// square-only operations (Determinant, Inverse, Trace, Pow, the
	// square predicates) applied to non-square matrices.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNotRegular is returned when an inverse-like operation meets a
	// singular (non-invertible) matrix.
	ErrNotRegular = errors.New("dense: matrix is not regular")

	// ErrZeroVector is returned when a direction is required of the zero
	// vector (Normalize).
	ErrZeroVector = errors.New("dense: zero vector has no direction")

	// ErrOperationNotDefined is returned when an operation is undefined
	// for the receiver outright: CrossProduct of a vector shorter than 2,
	// negative Pow exponents, minors and cofactors of an empty matrix.
	ErrOperationNotDefined = errors.New("dense: operation not defined")

	// ErrDivisionByZero is returned when an integer-typed division meets a
	// zero divisor, where Go's / would panic. Float divisions follow IEEE
	// semantics (±Inf, NaN) and never return this.
	ErrDivisionByZero = errors.New("dense: division by zero")

	// ErrIndexOutOfRange is returned by the raising accessors (At, Row,
	// Column) when the index lies outside the valid range. The OK
	// variants report false instead. Operations that merely take an
	// index as a parameter reject bad values with ErrBadArgument.
	ErrIndexOutOfRange = errors.New("dense: index out of range")

	// ErrBadArgument is returned for malformed arguments that are not
	// indices: negative sizes or counts, unknown Selection or Axis
	// values, a zero denominator, a wrong operand count.
	ErrBadArgument = errors.New("dense: bad argument")

	// ErrBadOption is returned when an invalid functional Option is
	// supplied (for example a negative epsilon).
	ErrBadOption = errors.New("dense: invalid option supplied")
)

// Package dense: central guards and error constructors. Kernels validate
// through these so every failure carries the same
// "<op>: <detail>: <sentinel>" shape and tests can match with errors.Is.

package dense

import (
	"fmt"

	"github.com/oselvar/matvec/scalar"
)

// Operation tags used in wrapped error messages. Keeping them in one
// block avoids magic strings across the kernels.
const (
	// vector construction and access
	opBasis      = "Basis"
	opZeroVector = "ZeroVector"
	opRepeat     = "Repeat"
	opVecAt      = "Vector.At"

	// vector arithmetic and slicing
	opVecAdd       = "Vector.Add"
	opVecSub       = "Vector.Sub"
	opVecMul       = "Vector.Mul"
	opVecDiv       = "Vector.Div"
	opVecDivScalar = "Vector.DivScalar"
	opMap2         = "Map2"
	opChomp        = "Chomp"
	opTop          = "Top"

	// vector geometry
	opDot           = "Dot"
	opDistance      = "Distance"
	opCosine        = "CosineSimilarity"
	opAngle         = "Angle"
	opNormalize     = "Normalize"
	opCross         = "CrossProduct"
	opIndependent   = "Independent"
	opParallel      = "ParallelTo"
	opAntiparallel  = "AntiparallelTo"
	opPerpendicular = "PerpendicularTo"

	// vector coercion
	opComplexify  = "Complexify"
	opRationalize = "Rationalize"

	// matrix construction
	opFromRows     = "FromRows"
	opFromColumns  = "FromColumns"
	opBuild        = "Build"
	opScalarMatrix = "Scalar"
	opIdentity     = "Identity"
	opZero         = "Zero"
	opEmpty        = "Empty"
	opHStack       = "HStack"
	opVStack       = "VStack"

	// matrix access and iteration
	opAt            = "At"
	opRow           = "Row"
	opColumn        = "Column"
	opEach          = "Each"
	opEachWithIndex = "EachWithIndex"
	opCollect       = "Collect"
	opFind          = "Find"
	opCombine       = "Combine"

	// matrix arithmetic
	opAdd       = "Add"
	opSub       = "Sub"
	opMulElem   = "MulElem"
	opDivElem   = "DivElem"
	opMul       = "Mul"
	opMulVec    = "MulVec"
	opDivScalar = "DivScalar"
	opDivMatrix = "DivMatrix"
	opPow       = "Pow"
	opTrace     = "Trace"

	// matrix algebra
	opMinor       = "Minor"
	opFirstMinor  = "FirstMinor"
	opCofactor    = "Cofactor"
	opAdjugate    = "Adjugate"
	opLaplace     = "LaplaceExpansion"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opSolve       = "Solve"

	// square-only predicates
	opIsDiagonal      = "IsDiagonal"
	opIsSymmetric     = "IsSymmetric"
	opIsAntisymmetric = "IsAntisymmetric"
	opIsHermitian     = "IsHermitian"
	opIsNormal        = "IsNormal"
	opIsOrthogonal    = "IsOrthogonal"
	opIsUnitary       = "IsUnitary"
	opIsPermutation   = "IsPermutation"
	opIsRegular       = "IsRegular"
	opIsSingular      = "IsSingular"

	// serialization
	opUnmarshal    = "UnmarshalJSON"
	opVecUnmarshal = "Vector.UnmarshalJSON"
)

// opErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Call only with a non-nil err.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// errShape reports an elementwise shape conflict.
func errShape(op string, ar, ac, br, bc int) error {
	return fmt.Errorf("%s: %dx%d vs %dx%d: %w", op, ar, ac, br, bc, ErrDimensionMismatch)
}

// errMulShape reports an inner-dimension conflict (a.Cols != b.Rows).
func errMulShape(op string, ar, ac, br, bc int) error {
	return fmt.Errorf("%s: %dx%d by %dx%d: %w", op, ar, ac, br, bc, ErrDimensionMismatch)
}

// errLen reports a vector length conflict.
func errLen(op string, want, got int) error {
	return fmt.Errorf("%s: length %d vs %d: %w", op, want, got, ErrDimensionMismatch)
}

// errSquare reports a square-only operation applied to a non-square matrix.
func errSquare(op string, r, c int) error {
	return fmt.Errorf("%s: %dx%d matrix is not square: %w", op, r, c, ErrDimensionMismatch)
}

// errCell reports a (row, col) pair outside the matrix bounds.
func errCell(op string, i, j, rows, cols int) error {
	return fmt.Errorf("%s: (%d,%d) outside %dx%d: %w", op, i, j, rows, cols, ErrIndexOutOfRange)
}

// errIndex reports a one-dimensional index outside [0, n).
func errIndex(op string, i, n int) error {
	return fmt.Errorf("%s: index %d outside [0,%d): %w", op, i, n, ErrIndexOutOfRange)
}

// errArgf reports a malformed argument.
func errArgf(op, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrBadArgument)
}

// errSelection reports an unknown Selection value.
func errSelection(op string, s Selection) error {
	return fmt.Errorf("%s: unknown selection %v: %w", op, s, ErrBadArgument)
}

// integral reports whether T is an integer element type.
func integral[T scalar.Number]() bool {
	return T(1)/T(2) == 0
}

// checkZeroDivisor rejects zero divisors for integer element types, where
// Go division would panic. Float divisors follow IEEE semantics instead
// and pass unchecked.
func checkZeroDivisor[T scalar.Number](op string, ys []T) error {
	if !integral[T]() {
		return nil
	}
	for i, y := range ys {
		if y == 0 {
			return fmt.Errorf("%s: zero divisor at offset %d: %w", op, i, ErrDivisionByZero)
		}
	}

	return nil
}

// checkZeroScalar rejects a zero scalar divisor for integer element types.
func checkZeroScalar[T scalar.Number](op string, k T) error {
	if integral[T]() && k == 0 {
		return fmt.Errorf("%s: zero divisor: %w", op, ErrDivisionByZero)
	}

	return nil
}

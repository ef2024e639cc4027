// Explicit coercions out of the machine-numeric element world. Complex,
// rational and decimal values are conversion targets, not element types,
// so these helpers return plain slices rather than containers.
// Conversions between machine numerics stay inside the container via
// ConvertVector and ConvertMatrix.

package dense

import (
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	"github.com/oselvar/matvec/scalar"
)

// ConvertVector returns v with every element converted to U using Go
// conversion semantics (float to integer truncates).
func ConvertVector[T, U scalar.Number](v Vector[T]) Vector[U] {
	out := make([]U, len(v.data))
	for i, e := range v.data {
		out[i] = U(e)
	}

	return Vector[U]{data: out}
}

// ConvertMatrix returns m with every element converted to U using Go
// conversion semantics.
func ConvertMatrix[T, U scalar.Number](m Matrix[T]) Matrix[U] {
	out := make([]U, len(m.data))
	for i, e := range m.data {
		out[i] = U(e)
	}

	return Matrix[U]{rows: m.rows, cols: m.cols, data: out}
}

// Complexify returns the elements of v as complex128 values. With no
// auxiliary vector the imaginary parts are zero; with one, it supplies
// the imaginary parts elementwise.
//
// Errors:
//   - ErrBadArgument       if more than one auxiliary vector is given.
//   - ErrDimensionMismatch if the auxiliary length differs from Len.
func Complexify[T scalar.Number](v Vector[T], imag ...Vector[T]) ([]complex128, error) {
	if len(imag) > 1 {
		return nil, errArgf(opComplexify, "want at most one imaginary vector, got %d", len(imag))
	}
	var im []T
	if len(imag) == 1 {
		if imag[0].Len() != v.Len() {
			return nil, errLen(opComplexify, v.Len(), imag[0].Len())
		}
		im = imag[0].data
	}
	out := make([]complex128, len(v.data))
	for i, e := range v.data {
		if im != nil {
			out[i] = complex(float64(e), float64(im[i]))
		} else {
			out[i] = complex(float64(e), 0)
		}
	}

	return out, nil
}

// Rationalize returns the elements of v as exact rationals with the given
// denominator: element e becomes e/denom. Restricted to integer element
// types, which convert to big.Rat without loss.
//
// Errors:
//   - ErrBadArgument if denom is zero.
func Rationalize[T constraints.Signed](v Vector[T], denom int64) ([]*big.Rat, error) {
	if denom == 0 {
		return nil, errArgf(opRationalize, "zero denominator")
	}
	out := make([]*big.Rat, len(v.data))
	for i, e := range v.data {
		out[i] = big.NewRat(int64(e), denom)
	}

	return out, nil
}

// Decimalize returns the elements of v as fixed-point decimals: element e
// becomes e·10^exp. Restricted to integer element types, which carry into
// the decimal coefficient exactly.
func Decimalize[T constraints.Signed](v Vector[T], exp int32) []decimal.Decimal {
	out := make([]decimal.Decimal, len(v.data))
	for i, e := range v.data {
		out[i] = decimal.New(int64(e), exp)
	}

	return out
}

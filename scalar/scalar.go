package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number constrains container elements to real machine numerics:
// signed integers of any width, or float32/float64.
type Number interface {
	constraints.Signed | constraints.Float
}

// Abs returns |x|.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Sqrt returns the square root of x as float64, regardless of T.
// Negative inputs yield NaN, matching math.Sqrt.
func Sqrt[T Number](x T) float64 {
	return math.Sqrt(float64(x))
}

// Clamp limits x to the closed interval [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}

// EqualWithin reports whether a and b differ by at most eps.
func EqualWithin(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// RoundTo rounds x to the given number of decimal digits, halves away
// from zero. Negative digits round to tens, hundreds, and so on.
func RoundTo(x float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))

	return math.Round(x*pow) / pow
}

// Finite reports whether x is neither NaN nor ±Inf.
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

package simd

import (
	"math"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/oselvar/matvec/scalar"
)

// Accelerated reports whether the float64 kernels run vectorized on this CPU.
// The float32 kernels share the same detection.
func Accelerated() bool {
	return vek.Info().Acceleration
}

// Dot returns the dot product of x and y.
//
// Complexity: O(n).
func Dot[T scalar.Number](x, y []T) T {
	if len(x) == 0 {
		return 0
	}
	switch xs := any(x).(type) {
	case []float64:
		return T(vek.Dot(xs, any(y).([]float64)))
	case []float32:
		return T(vek32.Dot(xs, any(y).([]float32)))
	}

	var acc T
	for i := range x {
		acc += x[i] * y[i]
	}

	return acc
}

// Norm returns the Euclidean (L2) norm of x as float64.
//
// Complexity: O(n).
func Norm[T scalar.Number](x []T) float64 {
	if len(x) == 0 {
		return 0
	}
	switch xs := any(x).(type) {
	case []float64:
		return vek.Norm(xs)
	case []float32:
		return float64(vek32.Norm(xs))
	}

	var sum float64
	for _, v := range x {
		f := float64(v)
		sum += f * f
	}

	return math.Sqrt(sum)
}

// Distance returns the Euclidean distance between x and y as float64.
//
// Complexity: O(n).
func Distance[T scalar.Number](x, y []T) float64 {
	if len(x) == 0 {
		return 0
	}
	switch xs := any(x).(type) {
	case []float64:
		return vek.Distance(xs, any(y).([]float64))
	case []float32:
		return float64(vek32.Distance(xs, any(y).([]float32)))
	}

	var sum float64
	for i := range x {
		d := float64(x[i]) - float64(y[i])
		sum += d * d
	}

	return math.Sqrt(sum)
}

// CosineSimilarity returns dot(x,y) / (|x|·|y|) as float64.
// Zero-magnitude operands yield 0 rather than NaN.
//
// Complexity: O(n).
func CosineSimilarity[T scalar.Number](x, y []T) float64 {
	if len(x) == 0 {
		return 0
	}
	switch xs := any(x).(type) {
	case []float64:
		// vek returns NaN for zero vectors; report 0 instead.
		if cos := vek.CosineSimilarity(xs, any(y).([]float64)); !math.IsNaN(cos) {
			return cos
		}

		return 0
	case []float32:
		if cos := float64(vek32.CosineSimilarity(xs, any(y).([]float32))); !math.IsNaN(cos) {
			return cos
		}

		return 0
	}

	nx, ny := Norm(x), Norm(y)
	if nx == 0 || ny == 0 {
		return 0
	}

	return float64(Dot(x, y)) / (nx * ny)
}

// Sum returns the sum of all elements of x.
//
// Complexity: O(n).
func Sum[T scalar.Number](x []T) T {
	if len(x) == 0 {
		return 0
	}
	switch xs := any(x).(type) {
	case []float64:
		return T(vek.Sum(xs))
	case []float32:
		return T(vek32.Sum(xs))
	}

	var acc T
	for _, v := range x {
		acc += v
	}

	return acc
}

// AddInto stores x[i]+y[i] into dst. dst may alias x or y.
func AddInto[T scalar.Number](dst, x, y []T) {
	if len(x) == 0 {
		return
	}
	switch xs := any(x).(type) {
	case []float64:
		vek.Add_Into(any(dst).([]float64), xs, any(y).([]float64))
	case []float32:
		vek32.Add_Into(any(dst).([]float32), xs, any(y).([]float32))
	default:
		for i := range x {
			dst[i] = x[i] + y[i]
		}
	}
}

// SubInto stores x[i]-y[i] into dst. dst may alias x or y.
func SubInto[T scalar.Number](dst, x, y []T) {
	if len(x) == 0 {
		return
	}
	switch xs := any(x).(type) {
	case []float64:
		vek.Sub_Into(any(dst).([]float64), xs, any(y).([]float64))
	case []float32:
		vek32.Sub_Into(any(dst).([]float32), xs, any(y).([]float32))
	default:
		for i := range x {
			dst[i] = x[i] - y[i]
		}
	}
}

// MulInto stores x[i]*y[i] (the Hadamard product) into dst.
func MulInto[T scalar.Number](dst, x, y []T) {
	if len(x) == 0 {
		return
	}
	switch xs := any(x).(type) {
	case []float64:
		vek.Mul_Into(any(dst).([]float64), xs, any(y).([]float64))
	case []float32:
		vek32.Mul_Into(any(dst).([]float32), xs, any(y).([]float32))
	default:
		for i := range x {
			dst[i] = x[i] * y[i]
		}
	}
}

// DivInto stores x[i]/y[i] into dst. Division semantics follow Go's /
// operator for T: integer division truncates, float division by zero
// yields ±Inf or NaN.
func DivInto[T scalar.Number](dst, x, y []T) {
	if len(x) == 0 {
		return
	}
	switch xs := any(x).(type) {
	case []float64:
		vek.Div_Into(any(dst).([]float64), xs, any(y).([]float64))
	case []float32:
		vek32.Div_Into(any(dst).([]float32), xs, any(y).([]float32))
	default:
		for i := range x {
			dst[i] = x[i] / y[i]
		}
	}
}

// ScaleInto stores x[i]*k into dst.
func ScaleInto[T scalar.Number](dst, x []T, k T) {
	if len(x) == 0 {
		return
	}
	switch xs := any(x).(type) {
	case []float64:
		vek.MulNumber_Into(any(dst).([]float64), xs, float64(k))
	case []float32:
		vek32.MulNumber_Into(any(dst).([]float32), xs, float32(k))
	default:
		for i := range x {
			dst[i] = x[i] * k
		}
	}
}

// AddScalarInto stores x[i]+k into dst.
func AddScalarInto[T scalar.Number](dst, x []T, k T) {
	if len(x) == 0 {
		return
	}
	switch xs := any(x).(type) {
	case []float64:
		vek.AddNumber_Into(any(dst).([]float64), xs, float64(k))
	case []float32:
		vek32.AddNumber_Into(any(dst).([]float32), xs, float32(k))
	default:
		for i := range x {
			dst[i] = x[i] + k
		}
	}
}

// SubScalarInto stores x[i]-k into dst.
func SubScalarInto[T scalar.Number](dst, x []T, k T) {
	if len(x) == 0 {
		return
	}
	switch xs := any(x).(type) {
	case []float64:
		vek.SubNumber_Into(any(dst).([]float64), xs, float64(k))
	case []float32:
		vek32.SubNumber_Into(any(dst).([]float32), xs, float32(k))
	default:
		for i := range x {
			dst[i] = x[i] - k
		}
	}
}

// DivScalarInto stores x[i]/k into dst. Division semantics follow Go's /
// operator for T.
func DivScalarInto[T scalar.Number](dst, x []T, k T) {
	if len(x) == 0 {
		return
	}
	switch xs := any(x).(type) {
	case []float64:
		vek.DivNumber_Into(any(dst).([]float64), xs, float64(k))
	case []float32:
		vek32.DivNumber_Into(any(dst).([]float32), xs, float32(k))
	default:
		for i := range x {
			dst[i] = x[i] / k
		}
	}
}

package dense

import (
	"gonum.org/v1/gonum/mat"

	"github.com/oselvar/matvec/scalar"
)

// ToGonum copies m into a gonum dense matrix for use with the wider
// gonum ecosystem (decompositions, eigenvalues, optimizers). Empty
// shapes return the zero mat.Dense, since gonum constructors reject
// zero dimensions.
func ToGonum[T scalar.Number](m Matrix[T]) *mat.Dense {
	if m.IsEmpty() {
		return &mat.Dense{}
	}
	data := make([]float64, len(m.data))
	for i, e := range m.data {
		data[i] = float64(e)
	}

	return mat.NewDense(m.rows, m.cols, data)
}

// FromGonum copies any gonum matrix into a Matrix[float64].
func FromGonum(src mat.Matrix) Matrix[float64] {
	r, c := src.Dims()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = src.At(i, j)
		}
	}

	return Matrix[float64]{rows: r, cols: c, data: data}
}

// ToGonumVector copies v into a gonum column vector. The empty vector
// returns the zero mat.VecDense, since gonum constructors reject zero
// lengths.
func ToGonumVector[T scalar.Number](v Vector[T]) *mat.VecDense {
	if len(v.data) == 0 {
		return &mat.VecDense{}
	}
	data := make([]float64, len(v.data))
	for i, e := range v.data {
		data[i] = float64(e)
	}

	return mat.NewVecDense(len(data), data)
}

// FromGonumVector copies any gonum vector into a Vector[float64].
func FromGonumVector(src mat.Vector) Vector[float64] {
	n := src.Len()
	data := make([]float64, n)
	for i := 0; i < n; i++ {
		data[i] = src.AtVec(i)
	}

	return Vector[float64]{data: data}
}

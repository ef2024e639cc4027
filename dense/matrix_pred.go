package dense

import "github.com/oselvar/matvec/scalar"

// IsZero reports whether every element is zero. The empty matrix counts
// as zero.
func (m Matrix[T]) IsZero() bool {
	for _, e := range m.data {
		if e != 0 {
			return false
		}
	}

	return true
}

// IsReal reports whether every element is a real number. Number elements
// are real by construction, so this always holds; the method exists for
// parity with the predicate family.
func (m Matrix[T]) IsReal() bool {
	return true
}

// IsFinite reports whether no element is NaN or infinite. Integer
// elements are always finite.
func (m Matrix[T]) IsFinite() bool {
	for _, e := range m.data {
		if !scalar.Finite(float64(e)) {
			return false
		}
	}

	return true
}

// IsLowerTriangular reports whether every element above the main
// diagonal is zero. Any shape qualifies.
func (m Matrix[T]) IsLowerTriangular() bool {
	return m.visit(SelStrictUpper, func(i, j int) bool {
		return m.data[m.index(i, j)] == 0
	})
}

// IsUpperTriangular reports whether every element below the main
// diagonal is zero. Any shape qualifies.
func (m Matrix[T]) IsUpperTriangular() bool {
	return m.visit(SelStrictLower, func(i, j int) bool {
		return m.data[m.index(i, j)] == 0
	})
}

// IsStrictLowerTriangular reports whether every element on or above the
// main diagonal is zero.
func (m Matrix[T]) IsStrictLowerTriangular() bool {
	return m.visit(SelUpper, func(i, j int) bool {
		return m.data[m.index(i, j)] == 0
	})
}

// IsStrictUpperTriangular reports whether every element on or below the
// main diagonal is zero.
func (m Matrix[T]) IsStrictUpperTriangular() bool {
	return m.visit(SelLower, func(i, j int) bool {
		return m.data[m.index(i, j)] == 0
	})
}

// IsDiagonal reports whether every off-diagonal element is zero.
//
// Errors:
//   - ErrDimensionMismatch if m is not square.
func (m Matrix[T]) IsDiagonal() (bool, error) {
	if m.rows != m.cols {
		return false, errSquare(opIsDiagonal, m.rows, m.cols)
	}

	return m.visit(SelOffDiagonal, func(i, j int) bool {
		return m.data[m.index(i, j)] == 0
	}), nil
}

// IsSymmetric reports whether m equals its transpose.
//
// Errors:
//   - ErrDimensionMismatch if m is not square.
func (m Matrix[T]) IsSymmetric() (bool, error) {
	if m.rows != m.cols {
		return false, errSquare(opIsSymmetric, m.rows, m.cols)
	}

	return m.symmetricCells(), nil
}

// IsAntisymmetric reports whether m equals the negation of its
// transpose. The diagonal of such a matrix is necessarily zero.
//
// Errors:
//   - ErrDimensionMismatch if m is not square.
func (m Matrix[T]) IsAntisymmetric() (bool, error) {
	if m.rows != m.cols {
		return false, errSquare(opIsAntisymmetric, m.rows, m.cols)
	}

	return m.visit(SelUpper, func(i, j int) bool {
		return m.data[m.index(i, j)] == -m.data[m.index(j, i)]
	}), nil
}

// IsHermitian reports whether m equals its conjugate transpose. Number
// elements are real, so this coincides with IsSymmetric.
//
// Errors:
//   - ErrDimensionMismatch if m is not square.
func (m Matrix[T]) IsHermitian() (bool, error) {
	if m.rows != m.cols {
		return false, errSquare(opIsHermitian, m.rows, m.cols)
	}

	return m.symmetricCells(), nil
}

// IsNormal reports whether m commutes with its transpose, comparing the
// two products within the configured epsilon.
//
// Errors:
//   - ErrDimensionMismatch if m is not square.
//   - ErrBadOption         if an option is invalid.
func (m Matrix[T]) IsNormal(opts ...Option) (bool, error) {
	if m.rows != m.cols {
		return false, errSquare(opIsNormal, m.rows, m.cols)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return false, opErrorf(opIsNormal, err)
	}
	t := m.Transpose()

	return m.mul(t).EqualApprox(t.mul(m), o.Epsilon), nil
}

// IsOrthogonal reports whether mᵀ·m is the identity within the
// configured epsilon.
//
// Errors:
//   - ErrDimensionMismatch if m is not square.
//   - ErrBadOption         if an option is invalid.
func (m Matrix[T]) IsOrthogonal(opts ...Option) (bool, error) {
	if m.rows != m.cols {
		return false, errSquare(opIsOrthogonal, m.rows, m.cols)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return false, opErrorf(opIsOrthogonal, err)
	}

	return m.orthogonalWithin(o.Epsilon), nil
}

// IsUnitary reports whether m is unitary. Number elements are real, so
// this coincides with IsOrthogonal.
//
// Errors:
//   - ErrDimensionMismatch if m is not square.
//   - ErrBadOption         if an option is invalid.
func (m Matrix[T]) IsUnitary(opts ...Option) (bool, error) {
	if m.rows != m.cols {
		return false, errSquare(opIsUnitary, m.rows, m.cols)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return false, opErrorf(opIsUnitary, err)
	}

	return m.orthogonalWithin(o.Epsilon), nil
}

// IsPermutation reports whether every row and every column holds exactly
// one 1 and zeros elsewhere.
//
// Errors:
//   - ErrDimensionMismatch if m is not square.
func (m Matrix[T]) IsPermutation() (bool, error) {
	if m.rows != m.cols {
		return false, errSquare(opIsPermutation, m.rows, m.cols)
	}
	rowOnes := make([]int, m.rows)
	colOnes := make([]int, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			switch m.data[i*m.cols+j] {
			case 0:
			case 1:
				rowOnes[i]++
				colOnes[j]++
			default:
				return false, nil
			}
		}
	}
	for i := range rowOnes {
		if rowOnes[i] != 1 || colOnes[i] != 1 {
			return false, nil
		}
	}

	return true, nil
}

// IsRegular reports whether m is invertible, that is, of full rank.
//
// Errors:
//   - ErrDimensionMismatch if m is not square.
func (m Matrix[T]) IsRegular() (bool, error) {
	if m.rows != m.cols {
		return false, errSquare(opIsRegular, m.rows, m.cols)
	}

	return m.Rank() == m.rows, nil
}

// IsSingular reports whether m has no inverse.
//
// Errors:
//   - ErrDimensionMismatch if m is not square.
func (m Matrix[T]) IsSingular() (bool, error) {
	if m.rows != m.cols {
		return false, errSquare(opIsSingular, m.rows, m.cols)
	}

	return m.Rank() != m.rows, nil
}

// symmetricCells compares the strict upper triangle against the strict
// lower one. Callers validate squareness.
func (m Matrix[T]) symmetricCells() bool {
	return m.visit(SelStrictUpper, func(i, j int) bool {
		return m.data[m.index(i, j)] == m.data[m.index(j, i)]
	})
}

// orthogonalWithin compares mᵀ·m against the identity within eps.
// Callers validate squareness.
func (m Matrix[T]) orthogonalWithin(eps float64) bool {
	t := m.Transpose()

	return t.mul(m).EqualApprox(identity[T](m.rows), eps)
}

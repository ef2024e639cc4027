package dense

import "encoding/json"

// MarshalJSON encodes the vector as a flat JSON array. The zero vector
// value encodes as [].
func (v Vector[T]) MarshalJSON() ([]byte, error) {
	if v.data == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(v.data)
}

// UnmarshalJSON decodes a flat JSON array into the vector, replacing its
// contents.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return opErrorf(opVecUnmarshal, err)
	}
	v.data = elems

	return nil
}

// MarshalJSON encodes the matrix as a JSON array of row arrays. A zero
// column count is preserved ([[],[]] for 2x0); a zero row count decodes
// back as 0x0 because the array carries no column information.
func (m Matrix[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToSlices())
}

// UnmarshalJSON decodes a JSON array of row arrays into the matrix,
// replacing its contents.
//
// Errors:
//   - ErrDimensionMismatch if the rows have uneven lengths.
func (m *Matrix[T]) UnmarshalJSON(data []byte) error {
	var rows [][]T
	if err := json.Unmarshal(data, &rows); err != nil {
		return opErrorf(opUnmarshal, err)
	}
	parsed, err := FromRows(rows)
	if err != nil {
		return opErrorf(opUnmarshal, err)
	}
	*m = parsed

	return nil
}

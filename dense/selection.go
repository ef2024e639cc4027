package dense

import "fmt"

// Selection chooses which cells of a matrix an iteration visits.
// Cells are always visited in row-major order.
type Selection int

const (
	// SelAll visits every cell.
	SelAll Selection = iota
	// SelDiagonal visits cells with i == j.
	SelDiagonal
	// SelOffDiagonal visits cells with i != j.
	SelOffDiagonal
	// SelLower visits cells with j <= i (the lower triangle).
	SelLower
	// SelStrictLower visits cells with j < i.
	SelStrictLower
	// SelUpper visits cells with j >= i (the upper triangle).
	SelUpper
	// SelStrictUpper visits cells with j > i.
	SelStrictUpper
)

var selectionNames = [...]string{
	SelAll:         "All",
	SelDiagonal:    "Diagonal",
	SelOffDiagonal: "OffDiagonal",
	SelLower:       "Lower",
	SelStrictLower: "StrictLower",
	SelUpper:       "Upper",
	SelStrictUpper: "StrictUpper",
}

func (s Selection) String() string {
	if s < 0 || int(s) >= len(selectionNames) {
		return fmt.Sprintf("Selection(%d)", int(s))
	}

	return selectionNames[s]
}

// valid reports whether s names a known selection.
func (s Selection) valid() bool {
	return s >= 0 && int(s) < len(selectionNames)
}

// Axis names a direction through a matrix for operations that act along
// a single row or column, such as LaplaceExpansion.
type Axis int

const (
	// AxisRow selects a row.
	AxisRow Axis = iota
	// AxisColumn selects a column.
	AxisColumn
)

func (a Axis) String() string {
	switch a {
	case AxisRow:
		return "Row"
	case AxisColumn:
		return "Column"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// valid reports whether a names a known axis.
func (a Axis) valid() bool {
	return a == AxisRow || a == AxisColumn
}

// visit walks the cells selected by sel in row-major order, calling fn for
// each. fn returns false to stop early; visit reports whether the walk ran
// to completion. sel must be validated by the caller.
func (m Matrix[T]) visit(sel Selection, fn func(i, j int) bool) bool {
	r, c := m.rows, m.cols
	switch sel {
	case SelDiagonal:
		for d := 0; d < min(r, c); d++ {
			if !fn(d, d) {
				return false
			}
		}
	case SelOffDiagonal:
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if i == j {
					continue
				}
				if !fn(i, j) {
					return false
				}
			}
		}
	case SelLower:
		for i := 0; i < r; i++ {
			for j := 0; j <= i && j < c; j++ {
				if !fn(i, j) {
					return false
				}
			}
		}
	case SelStrictLower:
		for i := 0; i < r; i++ {
			for j := 0; j < i && j < c; j++ {
				if !fn(i, j) {
					return false
				}
			}
		}
	case SelUpper:
		for i := 0; i < r; i++ {
			for j := i; j < c; j++ {
				if !fn(i, j) {
					return false
				}
			}
		}
	case SelStrictUpper:
		for i := 0; i < r; i++ {
			for j := i + 1; j < c; j++ {
				if !fn(i, j) {
					return false
				}
			}
		}
	default: // SelAll
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if !fn(i, j) {
					return false
				}
			}
		}
	}

	return true
}

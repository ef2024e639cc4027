// Package dense implements generic, immutable dense linear algebra:
// Vector[T] and Matrix[T] over any signed integer or floating-point
// element type, with exact arithmetic for integer elements.
//
// What
//
//   - Vector[T]: fixed-length sequence with elementwise arithmetic,
//     geometry (Dot, Magnitude, Normalize, Angle, CrossProduct,
//     Independent) and explicit coercion to complex, rational and
//     decimal targets.
//   - Matrix[T]: flat row-major storage with constructors (FromRows,
//     FromColumns, Build, Identity, Diagonal, Scalar, Zero, Empty,
//     RowVector, ColumnVector, HStack, VStack), elementwise and matrix
//     arithmetic, structural predicates, a Selection-based iteration
//     protocol, and the classic algebra kernels: Determinant (Bareiss),
//     Rank, Inverse (Gauss–Jordan), Cofactor, Adjugate,
//     LaplaceExpansion, Solve.
//   - JSON round-trips for both types and gonum/mat adapters for
//     interoperating with the wider numeric ecosystem.
//
// Semantics
//
//   - Values are immutable: every operation returns a fresh value and
//     no constructor or accessor shares backing storage with the caller.
//     Values may therefore be used from multiple goroutines freely.
//   - Shapes are validated before any arithmetic. All failures are
//     returned as errors wrapping the package sentinels
//     (ErrDimensionMismatch, ErrNotRegular, ErrZeroVector,
//     ErrOperationNotDefined, ErrIndexOutOfRange, ErrBadArgument, ...);
//     match them with errors.Is. User input never panics.
//   - Zero-sized shapes are first-class: 0-length vectors, 0xN, Nx0 and
//     0x0 matrices all construct, print, compare and combine per the
//     usual conventions (Determinant of the 0x0 matrix is 1).
//   - Integer elements stay exact: Determinant and Rank run the
//     fraction-free Bareiss scheme, so Matrix[int] algebra never leaves
//     the integers. Kernels that inherently need division (Inverse,
//     Solve, DivMatrix, Normalize) return float64-typed results instead.
//
// Precision
//
//	Comparisons that need a tolerance (EqualApprox, ParallelTo,
//	PerpendicularTo, Orthogonal checks on float matrices) take it
//	explicitly, either as an argument or via WithEpsilon. The default is
//	DefaultEpsilon (1e-6). There is no process-wide mutable precision.
//
// Performance
//
//	float64 and float32 element types dispatch the hot slice loops to
//	the vectorized kernels in the sibling simd package; other element
//	types use portable loops with identical results.
//
// Errors
//
//   - ErrDimensionMismatch   operand shapes are incompatible (including
//     square-only operations on non-square matrices).
//   - ErrNotRegular          inverse/solve on a singular matrix.
//   - ErrZeroVector          normalize on a zero vector.
//   - ErrOperationNotDefined operation undefined outright (cross product
//     below size 2, negative exponents, minors of empty matrices).
//   - ErrDivisionByZero      integer division by zero.
//   - ErrIndexOutOfRange     accessor index outside the valid range.
//   - ErrBadArgument         malformed selector, axis, index, count or
//     size.
//   - ErrBadOption           invalid functional option value.
package dense

// Package simd provides the accelerated slice kernels behind the dense
// containers: dot products, norms, distances and elementwise arithmetic.
//
// What
//
//   - Generic entry points (Dot, Norm, Distance, CosineSimilarity, Sum,
//     AddInto, SubInto, MulInto, DivInto, ScaleInto, ...) over any
//     scalar.Number element type.
//   - []float64 dispatches to github.com/viterin/vek and []float32 to its
//     vek32 twin, both of which pick AVX2/NEON code paths at runtime.
//     Every other element type runs a portable loop with identical
//     semantics.
//
// Contract
//
//	Length agreement is the caller's responsibility; the dense package
//	validates shapes before reaching these kernels. Destination slices of
//	the *Into functions may alias an input.
//
// Use Accelerated to check whether the vectorized paths are active on the
// current CPU.
package simd

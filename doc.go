// Package matvec is your in-memory toolkit for vector and matrix math —
// from basic arithmetic to determinants, ranks, inverses and geometric
// predicates, over any built-in numeric type.
//
// 🚀 What is matvec?
//
//	A small, generic linear-algebra library that brings together:
//		• Immutable values: every operation returns a fresh Vector or Matrix
//		• Generic elements: one API for int, int32, int64, float32, float64
//		• Vector geometry: dot products, norms, angles, cross products
//		• Matrix algebra: determinant, rank, inverse, adjugate, solve
//		• Structure predicates: symmetric, orthogonal, permutation & friends
//		• SIMD kernels: float32/float64 paths accelerate automatically
//		• Interop: gonum round-trips, JSON, decimal & rational escapes
//
// ✨ Why choose matvec?
//
//   - Value semantics – share matrices across goroutines without locks
//   - Exact where possible – integer determinants and ranks never round
//   - Explicit errors – shape conflicts return sentinels, never panic
//   - Plays well with others – convert to gonum when you need LAPACK-grade
//     decompositions
//
// Under the hood, everything is organized under three subpackages:
//
//	scalar/ — the Number constraint and small numeric helpers
//	simd/   — vectorized float kernels with portable fallbacks
//	dense/  — the Vector and Matrix types and all operations on them
//
// Quick example:
//
//	m, _ := dense.FromRows([][]int{{1, 2}, {3, 4}})
//	det, _ := m.Determinant() // -2, computed exactly
//
// Dive into the dense package docs for the full operation surface and
// error contracts.
//
//	go get github.com/oselvar/matvec
package matvec

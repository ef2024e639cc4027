// Package scalar defines the numeric element constraint shared by every
// container in this module, plus a handful of pure helpers over it.
//
// What
//
//   - Number: the element constraint — any signed integer or floating-point
//     machine type. Containers are generic over Number; complex, rational and
//     decimal values appear only as explicit coercion targets, never as
//     element types.
//   - Abs, Sqrt, Clamp, EqualWithin, RoundTo, Finite: allocation-free helpers
//     used by the dense package and usable on their own.
//
// Why
//
//	Keeping the constraint in a leaf package lets dense, simd and user code
//	agree on one definition without import cycles.
package scalar

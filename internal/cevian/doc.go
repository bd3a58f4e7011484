// Package cevian counts interior triple-cevian concurrency points produced
// when every vertex angle of a triangle is split into n+1 equal sectors.
//
// Three interchangeable calculators share the Calculator interface:
//
//   - TrigCeva enumerates the n² (i, j) pairs, inverts the Ceva ratio at the
//     third vertex analytically and accepts the candidate within a floating
//     tolerance.
//   - ExactCeva uses the same inversion as a loose screen and then decides each
//     candidate exactly with cyclotomic polynomial arithmetic.
//   - ClosedForm evaluates the odd-n rule on the equilateral triangle and is
//     used as a cross-check rather than as a production path.
package cevian

// SPDX-License-Identifier: MIT

// Package gca implements finite dimensional graded commutative algebras.
//
// 🚀 What is a finite graded commutative algebra?
//
//	An integer-graded algebra A = A_0 ⊕ … ⊕ A_n, multiplicatively generated
//	by monomials x_1..x_k of positive degree, where
//	  • A_i·A_j ⊂ A_{i+j} when i+j ≤ n, and the product is 0 above n;
//	  • x·y = (-1)^{ij} y·x for homogeneous x ∈ A_i, y ∈ A_j;
//	  • hence every odd-degree generator squares to zero.
//	Cohomology rings of finite CW-complexes are the typical examples.
//
// ✨ Key features:
//   - eager, canonically ordered basis (grading, then lexicographic)
//   - memoized product on basis indices with the super sign rule
//   - generic coefficients through ring.Ring (ℤ, ℚ, GF(p))
//   - plain-text and LaTeX rendering, and a parser for the plain form
//   - Hilbert series, multiplication tables and a Poincaré duality test
//
// ⚙️ Usage:
//
//	A, err := gca.New[int64](ring.Integers{},
//		gca.WithNames("x", "y", "z", "t"),
//		gca.WithDegrees(1, 2, 2, 3),
//		gca.WithMaxDegree(6))
//	x, _ := A.GeneratorByName("x")
//	t, _ := A.GeneratorByName("t")
//	A.Format(A.Add(A.Mul(t, x), A.Mul(x, t))) // "0"
//
// Errors:
//
//	ErrInvalidConfiguration - bad names, degrees or maximal degree in New.
//	ErrIndexOutOfRange      - generator index outside [0, n).
//	ErrNotHomogeneous       - DegreeOf on a mixed-degree (or zero) element.
//	ErrNotInBasis           - vector is not a basis index of the algebra.
//	ErrUnknownGenerator     - parser met an unknown name.
//	ErrBadExpression        - parser met malformed input.
//	ErrNoTopClass           - pairing requested without a one-dimensional top degree.
//
// Concurrency: an Algebra is immutable after New. The product cache is a
// sync.Map filled with compute-or-fetch semantics; two goroutines may
// compute the same entry, the last write wins and both results are equal.
package gca

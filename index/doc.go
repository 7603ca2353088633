// SPDX-License-Identifier: MIT

// Package index enumerates the basis indices of a finite graded-commutative
// algebra and multiplies them.
//
// 🚀 What lives here?
//
//	A generator set with positive degrees d_0..d_{n-1} turns every
//	monomial x_0^{w_0}···x_{n-1}^{w_{n-1}} into an integer Vector w
//	graded by Σ w_i·d_i. This package provides:
//	  • Space    — weighted compositions: Grading, Slice(k), Count(k)
//	  • IsValid  — odd-degree generators appear at most once
//	  • Basis    — every valid vector up to a maximal degree, in canonical order
//	  • Product  — index addition with degree truncation and the super sign
//
// ✨ Canonical order:
//
//	Basis vectors are sorted by grading ascending; vectors of equal grading
//	are ordered lexicographically ascending, so for degrees (1,2,2,3) the
//	degree-2 block is [0 0 1 0] (z) before [0 1 0 0] (y).
//
// ⚙️ Usage:
//
//	sp, _ := index.NewSpace([]int{1, 2, 3})
//	b, _ := index.NewBasis(sp, 5)
//	sign, w, ok := sp.Product(index.Vector{0, 0, 1}, index.Vector{1, 0, 0}, b.MaxDegree())
//	// sign = -1, w = [1 0 1], ok = true   (z·x = −x·z)
//
// Everything in this package is immutable after construction and safe for
// concurrent readers.
package index

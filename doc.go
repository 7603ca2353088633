// SPDX-License-Identifier: MIT

// Package gcalg is a toolkit for finite graded-commutative algebras: the
// algebra generated by named generators of positive integer degree, with
// the super sign rule xy = (-1)^{|x||y|} yx, odd generators squaring to
// zero, and every product above a maximal degree n set to zero.
//
// What you get:
//
//   - Exponent-vector indexing of the basis, in canonical order
//   - Exact products with signs over ℤ, ℚ or GF(p)
//   - Parsing and printing of elements, plain and LaTeX
//   - Hilbert series, multiplication tables, Poincaré pairings
//   - A concurrent exhaustive checker for the algebra laws
//   - The gcalg command-line tool
//
// Packages, leaves first:
//
//	ring/     — coefficient rings: Integers, Rationals, PrimeField
//	index/    — Vector, Space (weighted index space), Basis, Product
//	freemod/  — free modules over a ring with string-keyed bases
//	matrix/   — exact int64 matrices: Bareiss determinant and rank
//	gca/      — the Algebra facade: generators, basis, products, display
//	check/    — exhaustive law verification on a worker pool
//	cmd/gcalg — the CLI (internal/cli for commands and configuration)
//
// Quick example, the cohomology of S² × S² truncated at degree 4:
//
//	A, _ := gca.New[int64](ring.Integers{},
//		gca.WithNames("a", "b"), gca.WithDegrees(2, 2), gca.WithMaxDegree(4))
//	a, _ := A.GeneratorByName("a")
//	b, _ := A.GeneratorByName("b")
//	fmt.Println(A.Format(A.Mul(a, b))) // a*b
//
//	go get github.com/katalvlaran/gcalg
package gcalg

// Package matrix provides a small exact integer matrix used to analyse the
// multiplicative structure of graded-commutative algebras.
//
// Dense is a row-major int64 matrix. Determinant and Rank are computed with
// fraction-free (Bareiss) elimination on math/big integers, so results are
// exact regardless of intermediate growth.
//
// Typical use: build the Poincaré pairing matrix A_k × A_{n-k} → A_n of an
// algebra, whose entries are the signs -1, 0, +1 of basis products, and test
// it for non-degeneracy over ℚ.
package matrix

// SPDX-License-Identifier: MIT

// Package ring defines the coefficient rings a graded-commutative algebra
// is built over.
//
// A Ring[T] is a value-level description of a commutative ring with unity:
// it knows how to add, multiply and negate values of T, what its zero and
// one are, and how to compare and print them. Values of T are treated as
// immutable; every operation returns a fresh value.
//
// Provided rings:
//   - Integers   — ℤ over int64.
//   - Rationals  — ℚ over *big.Rat (exact, never mutated in place).
//   - PrimeField — GF(p) over uint64 for prime p.
//
// Example:
//
//	q := ring.Rationals{}
//	half := big.NewRat(1, 2)
//	fmt.Println(q.Format(q.Add(half, half))) // 1
package ring

// SPDX-License-Identifier: MIT

// Package check verifies the defining laws of a finite graded-commutative
// algebra exhaustively over its basis.
//
// Laws:
//   - identity           1·w = w·1 = w
//   - truncation         |w1|+|w2| > n ⇒ w1·w2 = 0
//   - super-commutative  w1·w2 = (-1)^{|w1||w2|} w2·w1
//   - odd nilpotency     x·x = 0 for every odd generator x
//   - associativity      (w1·w2)·w3 = w1·(w2·w3)
//
// The associativity sweep is O(dim³); Run splits it by first factor across
// a bounded pool of goroutines (golang.org/x/sync/errgroup) and stops at
// the first violation or when the context is cancelled.
package check

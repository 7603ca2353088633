// SPDX-License-Identifier: MIT

package index

import (
	"fmt"
	"iter"
)

// Space is the set of non-negative integer vectors graded by a fixed
// degree tuple. It performs no validity filtering of its own beyond
// IsValid, which callers apply explicitly.
type Space struct {
	degrees []int
	odd     []bool // odd[i] == degrees[i] is odd
}

// NewSpace builds the weighted index space for the given generator degrees.
// Errors: ErrNoGenerators, ErrBadDegree.
// Complexity: O(n).
func NewSpace(degrees []int) (*Space, error) {
	if len(degrees) == 0 {
		return nil, ErrNoGenerators
	}
	s := &Space{
		degrees: make([]int, len(degrees)),
		odd:     make([]bool, len(degrees)),
	}
	for i, d := range degrees {
		if d <= 0 {
			return nil, fmt.Errorf("generator %d has degree %d: %w", i, d, ErrBadDegree)
		}
		s.degrees[i] = d
		s.odd[i] = d%2 != 0
	}

	return s, nil
}

// Len returns the number of generators.
func (s *Space) Len() int { return len(s.degrees) }

// Degrees returns a copy of the degree tuple.
func (s *Space) Degrees() []int {
	out := make([]int, len(s.degrees))
	copy(out, s.degrees)

	return out
}

// IsOdd reports whether generator i has odd degree.
func (s *Space) IsOdd(i int) bool { return s.odd[i] }

// Check verifies that w is shaped for this space: one non-negative entry
// per generator.
func (s *Space) Check(w Vector) error {
	if len(w) != len(s.degrees) {
		return fmt.Errorf("got %d entries, want %d: %w", len(w), len(s.degrees), ErrLengthMismatch)
	}
	for i, e := range w {
		if e < 0 {
			return fmt.Errorf("entry %d is %d: %w", i, e, ErrNegativeEntry)
		}
	}

	return nil
}

// Grading returns Σ w_i·d_i. w must have one entry per generator.
// Complexity: O(n).
func (s *Space) Grading(w Vector) int {
	g := 0
	for i, e := range w {
		g += e * s.degrees[i]
	}

	return g
}

// IsValid reports whether every odd-degree generator appears with
// exponent at most 1. Even-degree exponents are unrestricted.
// Complexity: O(n).
func (s *Space) IsValid(w Vector) bool {
	for i, e := range w {
		if s.odd[i] && e > 1 {
			return false
		}
	}

	return true
}

// Slice yields every vector w with Grading(w) == k, lexicographically
// ascending. The sequence is finite and restartable; it is empty for k < 0
// or when no combination of degrees sums to k. Each yielded vector is a
// fresh copy owned by the caller.
func (s *Space) Slice(k int) iter.Seq[Vector] {
	return func(yield func(Vector) bool) {
		if k < 0 {
			return
		}
		w := make(Vector, len(s.degrees))
		s.compose(w, 0, k, yield)
	}
}

// compose fills positions pos.. of w so that the remaining weight is
// consumed exactly. Returns false once yield asked to stop.
func (s *Space) compose(w Vector, pos, rest int, yield func(Vector) bool) bool {
	d := s.degrees[pos]
	if pos == len(s.degrees)-1 {
		if rest%d != 0 {
			return true
		}
		w[pos] = rest / d
		ok := yield(w.Clone())
		w[pos] = 0

		return ok
	}
	for e := 0; e*d <= rest; e++ {
		w[pos] = e
		if !s.compose(w, pos+1, rest-e*d, yield) {
			w[pos] = 0
			return false
		}
	}
	w[pos] = 0

	return true
}

// Count returns the number of vectors in Slice(k) without enumerating
// them (coin-change style dynamic programming).
// Complexity: O(n·k) time, O(k) memory.
func (s *Space) Count(k int) int {
	if k < 0 {
		return 0
	}
	ways := make([]int, k+1)
	ways[0] = 1
	for _, d := range s.degrees {
		for t := d; t <= k; t++ {
			ways[t] += ways[t-d]
		}
	}

	return ways[k]
}

// Step returns gcd of all degrees: every reachable grading is a multiple of it.
func (s *Space) Step() int {
	g := 0
	for _, d := range s.degrees {
		g = gcd(g, d)
	}

	return g
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

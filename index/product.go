// SPDX-License-Identifier: MIT

package index

// Product multiplies the basis monomials indexed by w1 and w2.
//
// Algorithm:
//  1. If Grading(w1)+Grading(w2) > maxDegree the product is truncated
//     to zero (ok=false).
//  2. w = w1 + w2 entrywise.
//  3. If w is not valid (an odd generator would be squared) the product
//     is zero (ok=false).
//  4. The sign is (-1)^s where s counts pairs (p, q), q < p, with w1[p]
//     and w2[q] both non-zero on odd-degree generators: the number of
//     transpositions needed to move the odd factors of w2 left past the
//     odd factors of w1 into generator order. Even generators commute
//     freely and contribute nothing.
//
// Both vectors must have one entry per generator; Product never fails
// otherwise. The result is a fresh vector.
// Complexity: O(n).
func (s *Space) Product(w1, w2 Vector, maxDegree int) (sign int, w Vector, ok bool) {
	if s.Grading(w1)+s.Grading(w2) > maxDegree {
		return 0, nil, false
	}
	w = w1.Add(w2)
	if !s.IsValid(w) {
		return 0, nil, false
	}

	return s.Sign(w1, w2), w, true
}

// Sign returns (-1)^s for the transpositions counted by Product, without
// checking degree or validity. It is +1 or -1.
func (s *Space) Sign(w1, w2 Vector) int {
	swaps := 0
	oddRightBefore := 0 // odd generators of w2 at positions < p
	for p := range w1 {
		if s.odd[p] && w1[p] > 0 {
			swaps += oddRightBefore
		}
		if s.odd[p] && w2[p] > 0 {
			oddRightBefore++
		}
	}
	if swaps%2 == 0 {
		return 1
	}

	return -1
}

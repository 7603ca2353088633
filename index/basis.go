// SPDX-License-Identifier: MIT

package index

import (
	"fmt"
	"iter"
)

// Basis is the finite, canonically ordered set of valid vectors with
// grading at most MaxDegree. It is materialized eagerly at construction
// and never changes afterwards.
type Basis struct {
	space     *Space
	maxDegree int
	vectors   []Vector       // canonical order
	position  map[string]int // Vector.Key() → position in vectors
	byDegree  map[int][2]int // grading → [start, end) in vectors
	gradings  []int          // non-empty gradings, ascending
}

// NewBasis enumerates every valid vector of space with grading in
// {0, step, 2·step, …} up to and including maxDegree, step being the gcd
// of the degrees.
// Errors: ErrNegativeMaxDegree.
// Complexity: O(Σ_k |Slice(k)|·n).
func NewBasis(space *Space, maxDegree int) (*Basis, error) {
	if maxDegree < 0 {
		return nil, fmt.Errorf("max degree %d: %w", maxDegree, ErrNegativeMaxDegree)
	}
	b := &Basis{
		space:     space,
		maxDegree: maxDegree,
		position:  make(map[string]int),
		byDegree:  make(map[int][2]int),
	}
	step := space.Step()
	for k := 0; k <= maxDegree; k += step {
		start := len(b.vectors)
		for w := range space.Slice(k) {
			if !space.IsValid(w) {
				continue
			}
			b.position[w.Key()] = len(b.vectors)
			b.vectors = append(b.vectors, w)
		}
		if end := len(b.vectors); end > start {
			b.byDegree[k] = [2]int{start, end}
			b.gradings = append(b.gradings, k)
		}
	}

	return b, nil
}

// Space returns the underlying weighted index space.
func (b *Basis) Space() *Space { return b.space }

// MaxDegree returns the truncation degree.
func (b *Basis) MaxDegree() int { return b.maxDegree }

// Len returns the number of basis vectors (the dimension of the algebra).
func (b *Basis) Len() int { return len(b.vectors) }

// At returns a copy of the i-th basis vector in canonical order.
// It panics if i is out of range, like a slice index.
func (b *Basis) At(i int) Vector { return b.vectors[i].Clone() }

// All yields (position, vector) pairs in canonical order. Restartable.
func (b *Basis) All() iter.Seq2[int, Vector] {
	return func(yield func(int, Vector) bool) {
		for i, w := range b.vectors {
			if !yield(i, w.Clone()) {
				return
			}
		}
	}
}

// Contains reports whether w is a basis vector.
func (b *Basis) Contains(w Vector) bool {
	_, ok := b.position[w.Key()]

	return ok
}

// Position returns the canonical position of w, or false when w is not a
// basis vector.
func (b *Basis) Position(w Vector) (int, bool) {
	i, ok := b.position[w.Key()]

	return i, ok
}

// Identity returns the all-zero vector, the index of the unit element.
func (b *Basis) Identity() Vector { return Zero(b.space.Len()) }

// Degree returns copies of the basis vectors of grading exactly k, in
// canonical order. Empty for unreachable or out-of-range k.
func (b *Basis) Degree(k int) []Vector {
	span, ok := b.byDegree[k]
	if !ok {
		return nil
	}
	out := make([]Vector, 0, span[1]-span[0])
	for _, w := range b.vectors[span[0]:span[1]] {
		out = append(out, w.Clone())
	}

	return out
}

// Gradings returns the non-empty gradings in ascending order.
func (b *Basis) Gradings() []int {
	out := make([]int, len(b.gradings))
	copy(out, b.gradings)

	return out
}

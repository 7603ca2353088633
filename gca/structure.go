// SPDX-License-Identifier: MIT

package gca

import (
	"fmt"

	"github.com/katalvlaran/gcalg/index"
	"github.com/katalvlaran/gcalg/matrix"
)

// Dimension returns the dimension of the algebra as a module.
func (a *Algebra[T]) Dimension() int { return a.basis.Len() }

// HilbertSeries returns dim A_k for k = 0..MaximalDegree.
func (a *Algebra[T]) HilbertSeries() []int {
	out := make([]int, a.basis.MaxDegree()+1)
	for _, k := range a.basis.Gradings() {
		out[k] = len(a.basis.Degree(k))
	}

	return out
}

// TopDegree returns the highest grading with a non-zero basis element.
func (a *Algebra[T]) TopDegree() int {
	g := a.basis.Gradings()

	return g[len(g)-1]
}

// SignedProduct is one cell of a multiplication table: the product of two
// basis monomials is Sign·monomial(Index), or zero when Sign is 0.
type SignedProduct struct {
	Sign  int
	Index index.Vector
}

// MultiplicationTable returns the products of every degree-k basis
// monomial (rows) with every degree-l basis monomial (columns), together
// with the row and column indices, in canonical order.
func (a *Algebra[T]) MultiplicationTable(k, l int) (rows, cols []index.Vector, table [][]SignedProduct) {
	rows, cols = a.basis.Degree(k), a.basis.Degree(l)
	table = make([][]SignedProduct, len(rows))
	for i, w1 := range rows {
		table[i] = make([]SignedProduct, len(cols))
		for j, w2 := range cols {
			if e := a.productEntry(w1, w2); e.ok {
				table[i][j] = SignedProduct{Sign: e.sign, Index: e.w.Clone()}
			}
		}
	}

	return rows, cols, table
}

// PairingMatrix returns the matrix of the bilinear pairing
// A_k × A_{n-k} → A_n ≅ ℤ, n = TopDegree, in canonical bases: entry (i, j)
// is the sign of row_i·col_j on the top class, 0 when the product vanishes.
//
// Errors: ErrNoTopClass when dim A_n ≠ 1; matrix.ErrInvalidDimensions when
// A_k or A_{n-k} is zero.
func (a *Algebra[T]) PairingMatrix(k int) (*matrix.Dense, error) {
	n := a.TopDegree()
	tops := a.basis.Degree(n)
	if len(tops) != 1 {
		return nil, fmt.Errorf("degree %d has dimension %d: %w", n, len(tops), ErrNoTopClass)
	}
	_, cols, table := a.MultiplicationTable(k, n-k)
	entries := make([][]int64, len(table))
	for i := range table {
		entries[i] = make([]int64, len(cols))
		for j, cell := range table[i] {
			entries[i][j] = int64(cell.Sign)
		}
	}
	m, err := matrix.FromRows(entries)
	if err != nil {
		return nil, fmt.Errorf("pairing in degree %d: %w", k, err)
	}

	return m, nil
}

// IsPoincareDuality reports whether the algebra satisfies Poincaré duality
// over ℚ: the top non-empty degree n is one-dimensional and every pairing
// A_k × A_{n-k} → A_n is non-degenerate. Cohomology rings of closed
// orientable manifolds have this property.
func (a *Algebra[T]) IsPoincareDuality() bool {
	n := a.TopDegree()
	if len(a.basis.Degree(n)) != 1 {
		return false
	}
	for k := 0; k <= n; k++ {
		left, right := len(a.basis.Degree(k)), len(a.basis.Degree(n-k))
		if left != right {
			return false
		}
		if left == 0 {
			continue
		}
		m, err := a.PairingMatrix(k)
		if err != nil {
			return false
		}
		det, err := m.Determinant()
		if err != nil || det.Sign() == 0 {
			return false
		}
	}

	return true
}

// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
)

// bigRows copies m into a row-major grid of big integers.
func (m *Dense) bigRows() [][]*big.Int {
	g := make([][]*big.Int, m.r)
	for i := range g {
		g[i] = make([]*big.Int, m.c)
		for j := range g[i] {
			g[i][j] = big.NewInt(m.data[i*m.c+j])
		}
	}

	return g
}

// Determinant returns det(m) exactly.
//
// Algorithm (Bareiss):
//  1. Work on a big.Int copy; prev = 1.
//  2. For each pivot column k pick a non-zero pivot in rows ≥ k, swapping
//     rows (and flipping the sign) if needed; no pivot ⇒ det = 0.
//  3. For i, j > k: a[i][j] = (a[i][j]·a[k][k] − a[i][k]·a[k][j]) / prev;
//     the division is exact.
//  4. det = ±a[n-1][n-1].
//
// Errors: ErrNonSquare.
// Complexity: O(n³) big-integer operations.
func (m *Dense) Determinant() (*big.Int, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("Determinant: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	n := m.r
	a := m.bigRows()
	prev := big.NewInt(1)
	negate := false
	t1, t2 := new(big.Int), new(big.Int)

	for k := 0; k < n-1; k++ {
		if a[k][k].Sign() == 0 {
			p := k + 1
			for p < n && a[p][k].Sign() == 0 {
				p++
			}
			if p == n {
				return new(big.Int), nil
			}
			a[k], a[p] = a[p], a[k]
			negate = !negate
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				t1.Mul(a[i][j], a[k][k])
				t2.Mul(a[i][k], a[k][j])
				a[i][j] = new(big.Int).Quo(t1.Sub(t1, t2), prev)
			}
		}
		prev = a[k][k]
	}

	det := new(big.Int).Set(a[n-1][n-1])
	if negate {
		det.Neg(det)
	}

	return det, nil
}

// Rank returns the rank of m over ℚ using fraction-free elimination.
// Complexity: O(r·c·min(r,c)) big-integer operations.
func (m *Dense) Rank() int {
	a := m.bigRows()
	rank := 0
	t1, t2 := new(big.Int), new(big.Int)
	for col := 0; col < m.c && rank < m.r; col++ {
		p := rank
		for p < m.r && a[p][col].Sign() == 0 {
			p++
		}
		if p == m.r {
			continue
		}
		a[rank], a[p] = a[p], a[rank]
		for i := rank + 1; i < m.r; i++ {
			if a[i][col].Sign() == 0 {
				continue
			}
			for j := col + 1; j < m.c; j++ {
				t1.Mul(a[i][j], a[rank][col])
				t2.Mul(a[rank][j], a[i][col])
				a[i][j] = new(big.Int).Sub(t1, t2)
			}
			a[i][col] = new(big.Int)
		}
		rank++
	}

	return rank
}

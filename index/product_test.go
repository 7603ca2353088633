package index_test

import (
	"testing"

	"github.com/katalvlaran/gcalg/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProduct_Scenarios checks hand-computed products for degrees (1,2,3).
func TestProduct_Scenarios(t *testing.T) {
	sp, err := index.NewSpace([]int{1, 2, 3})
	require.NoError(t, err)

	tests := []struct {
		name     string
		w1, w2   index.Vector
		max      int
		wantOK   bool
		wantSign int
		want     index.Vector
	}{
		{"x*z", index.Vector{1, 0, 0}, index.Vector{0, 0, 1}, 5, true, 1, index.Vector{1, 0, 1}},
		{"z*x", index.Vector{0, 0, 1}, index.Vector{1, 0, 0}, 5, true, -1, index.Vector{1, 0, 1}},
		{"x*x", index.Vector{1, 0, 0}, index.Vector{1, 0, 0}, 5, false, 0, nil},
		{"xy*z truncated", index.Vector{1, 1, 0}, index.Vector{0, 0, 1}, 5, false, 0, nil},
		{"xy*yz", index.Vector{1, 1, 0}, index.Vector{0, 1, 1}, 10, true, 1, index.Vector{1, 2, 1}},
		{"yz*xy", index.Vector{0, 1, 1}, index.Vector{1, 1, 0}, 10, true, -1, index.Vector{1, 2, 1}},
		{"1*1", index.Vector{0, 0, 0}, index.Vector{0, 0, 0}, 0, true, 1, index.Vector{0, 0, 0}},
		{"y*y", index.Vector{0, 1, 0}, index.Vector{0, 1, 0}, 5, true, 1, index.Vector{0, 2, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sign, w, ok := sp.Product(tc.w1, tc.w2, tc.max)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantSign, sign)
			assert.Equal(t, tc.want, w)
		})
	}
}

// TestProduct_Laws checks super-commutativity, truncation, identity and
// associativity over every pair/triple of basis vectors.
func TestProduct_Laws(t *testing.T) {
	configs := []struct {
		degrees []int
		max     int
	}{
		{[]int{1, 2, 2, 3}, 6},
		{[]int{1, 1, 1}, 3},
		{[]int{1, 3, 5}, 9},
		{[]int{2, 3}, 8},
	}
	for _, cfg := range configs {
		b := mustBasis(t, cfg.degrees, cfg.max)
		sp := b.Space()
		n := b.Len()
		id := b.Identity()

		for i := 0; i < n; i++ {
			w1 := b.At(i)

			s, w, ok := sp.Product(id, w1, cfg.max)
			require.True(t, ok)
			assert.Equal(t, 1, s)
			assert.True(t, w.Equal(w1))
			s, w, ok = sp.Product(w1, id, cfg.max)
			require.True(t, ok)
			assert.Equal(t, 1, s)
			assert.True(t, w.Equal(w1))

			for j := 0; j < n; j++ {
				w2 := b.At(j)
				s12, r12, ok12 := sp.Product(w1, w2, cfg.max)
				s21, r21, ok21 := sp.Product(w2, w1, cfg.max)
				require.Equal(t, ok12, ok21)
				if sp.Grading(w1)+sp.Grading(w2) > cfg.max {
					assert.False(t, ok12, "truncation %v*%v", w1, w2)
				}
				if !ok12 {
					continue
				}
				assert.True(t, r12.Equal(r21))
				assert.True(t, b.Contains(r12), "product %v not in basis", r12)
				want := 1
				if (sp.Grading(w1)*sp.Grading(w2))%2 != 0 {
					want = -1
				}
				assert.Equal(t, want*s21, s12, "super-commutativity %v*%v", w1, w2)

				for k := 0; k < n; k++ {
					w3 := b.At(k)
					// (w1 w2) w3
					sa, ra, oka := sp.Product(r12, w3, cfg.max)
					// w1 (w2 w3)
					s23, r23, ok23 := sp.Product(w2, w3, cfg.max)
					var sb int
					var rb index.Vector
					okb := false
					if ok23 {
						sb, rb, okb = sp.Product(w1, r23, cfg.max)
						sb *= s23
					}
					sa *= s12
					require.Equal(t, oka, okb, "associativity support %v %v %v", w1, w2, w3)
					if oka {
						assert.True(t, ra.Equal(rb))
						assert.Equal(t, sa, sb, "associativity sign %v %v %v", w1, w2, w3)
					}
				}
			}
		}
	}
}

// TestProduct_OddNilpotency checks that squaring an odd generator is zero.
func TestProduct_OddNilpotency(t *testing.T) {
	sp, err := index.NewSpace([]int{1, 2, 2, 3})
	require.NoError(t, err)
	for i := 0; i < sp.Len(); i++ {
		u := index.Unit(sp.Len(), i)
		_, _, ok := sp.Product(u, u, 100)
		assert.Equal(t, !sp.IsOdd(i), ok, "generator %d", i)
	}
}

// SPDX-License-Identifier: MIT

package freemod

import (
	"slices"

	"github.com/katalvlaran/gcalg/ring"
)

// Keyed is implemented by basis keys; Key must be canonical: equal keys
// denote the same basis element.
type Keyed interface {
	Key() string
}

// Term is one basis key with its coefficient.
type Term[T any, K Keyed] struct {
	Key   K
	Coeff T
}

// Element is a finite linear combination Σ c_k·e_k with all c_k non-zero.
// The zero value is the zero element.
type Element[T any, K Keyed] struct {
	terms map[string]Term[T, K]
}

// Len returns the number of non-zero terms.
func (e Element[T, K]) Len() int { return len(e.terms) }

// IsZero reports whether e has no terms.
func (e Element[T, K]) IsZero() bool { return len(e.terms) == 0 }

// Module is the free module over a ring with basis keys of type K.
// compare defines the canonical order used by Support and Terms.
type Module[T any, K Keyed] struct {
	ring    ring.Ring[T]
	compare func(a, b K) int
}

// New returns the free module over r whose basis keys are ordered by compare.
func New[T any, K Keyed](r ring.Ring[T], compare func(a, b K) int) *Module[T, K] {
	return &Module[T, K]{ring: r, compare: compare}
}

// Ring returns the coefficient ring.
func (m *Module[T, K]) Ring() ring.Ring[T] { return m.ring }

// Zero returns the additive identity.
func (m *Module[T, K]) Zero() Element[T, K] { return Element[T, K]{} }

// Monomial returns 1·e_k.
func (m *Module[T, K]) Monomial(k K) Element[T, K] {
	return m.Term(k, m.ring.One())
}

// Term returns c·e_k, or zero when c is zero.
func (m *Module[T, K]) Term(k K, c T) Element[T, K] {
	if m.ring.IsZero(c) {
		return Element[T, K]{}
	}

	return Element[T, K]{terms: map[string]Term[T, K]{k.Key(): {Key: k, Coeff: c}}}
}

// FromTerms sums the given terms; repeated keys are added together.
func (m *Module[T, K]) FromTerms(terms ...Term[T, K]) Element[T, K] {
	acc := make(map[string]Term[T, K], len(terms))
	for _, t := range terms {
		m.accumulate(acc, t.Key, t.Coeff)
	}

	return Element[T, K]{terms: acc}
}

// accumulate adds c·e_k into acc in place, dropping the entry if it cancels.
func (m *Module[T, K]) accumulate(acc map[string]Term[T, K], k K, c T) {
	key := k.Key()
	if cur, ok := acc[key]; ok {
		c = m.ring.Add(cur.Coeff, c)
	}
	if m.ring.IsZero(c) {
		delete(acc, key)
		return
	}
	acc[key] = Term[T, K]{Key: k, Coeff: c}
}

// Add returns a + b.
func (m *Module[T, K]) Add(a, b Element[T, K]) Element[T, K] {
	acc := make(map[string]Term[T, K], len(a.terms)+len(b.terms))
	for key, t := range a.terms {
		acc[key] = t
	}
	for _, t := range b.terms {
		m.accumulate(acc, t.Key, t.Coeff)
	}

	return Element[T, K]{terms: acc}
}

// Sum returns the sum of all elements; zero for none.
func (m *Module[T, K]) Sum(elems ...Element[T, K]) Element[T, K] {
	acc := make(map[string]Term[T, K])
	for _, e := range elems {
		for _, t := range e.terms {
			m.accumulate(acc, t.Key, t.Coeff)
		}
	}

	return Element[T, K]{terms: acc}
}

// Neg returns -a.
func (m *Module[T, K]) Neg(a Element[T, K]) Element[T, K] {
	return m.Scale(m.ring.Neg(m.ring.One()), a)
}

// Sub returns a - b.
func (m *Module[T, K]) Sub(a, b Element[T, K]) Element[T, K] {
	return m.Add(a, m.Neg(b))
}

// Scale returns c·a. Terms whose coefficient becomes zero (possible over
// rings with zero divisors or in positive characteristic) are dropped.
func (m *Module[T, K]) Scale(c T, a Element[T, K]) Element[T, K] {
	acc := make(map[string]Term[T, K], len(a.terms))
	for key, t := range a.terms {
		if v := m.ring.Mul(c, t.Coeff); !m.ring.IsZero(v) {
			acc[key] = Term[T, K]{Key: t.Key, Coeff: v}
		}
	}

	return Element[T, K]{terms: acc}
}

// Equal reports whether a and b have the same coefficient on every key.
func (m *Module[T, K]) Equal(a, b Element[T, K]) bool {
	if len(a.terms) != len(b.terms) {
		return false
	}
	for key, ta := range a.terms {
		tb, ok := b.terms[key]
		if !ok || !m.ring.Equal(ta.Coeff, tb.Coeff) {
			return false
		}
	}

	return true
}

// Coefficient returns the coefficient of e_k in a (zero when absent).
func (m *Module[T, K]) Coefficient(a Element[T, K], k K) T {
	if t, ok := a.terms[k.Key()]; ok {
		return t.Coeff
	}

	return m.ring.Zero()
}

// Terms returns the non-zero terms of a in canonical key order.
func (m *Module[T, K]) Terms(a Element[T, K]) []Term[T, K] {
	out := make([]Term[T, K], 0, len(a.terms))
	for _, t := range a.terms {
		out = append(out, t)
	}
	slices.SortFunc(out, func(x, y Term[T, K]) int { return m.compare(x.Key, y.Key) })

	return out
}

// Support returns the keys with non-zero coefficient in canonical order.
func (m *Module[T, K]) Support(a Element[T, K]) []K {
	terms := m.Terms(a)
	out := make([]K, len(terms))
	for i, t := range terms {
		out[i] = t.Key
	}

	return out
}

// Linear extends f linearly: Σ c_k·e_k ↦ Σ c_k·f(k).
func (m *Module[T, K]) Linear(a Element[T, K], f func(K) Element[T, K]) Element[T, K] {
	acc := make(map[string]Term[T, K])
	for _, t := range a.terms {
		for _, u := range f(t.Key).terms {
			m.accumulate(acc, u.Key, m.ring.Mul(t.Coeff, u.Coeff))
		}
	}

	return Element[T, K]{terms: acc}
}

// Bilinear extends f bilinearly: (Σ a_i e_i, Σ b_j e_j) ↦ Σ a_i b_j f(i, j).
// This is the multiplication hook of an algebra whose product is known on
// basis keys.
func (m *Module[T, K]) Bilinear(a, b Element[T, K], f func(x, y K) Element[T, K]) Element[T, K] {
	acc := make(map[string]Term[T, K])
	for _, ta := range a.terms {
		for _, tb := range b.terms {
			c := m.ring.Mul(ta.Coeff, tb.Coeff)
			if m.ring.IsZero(c) {
				continue
			}
			for _, u := range f(ta.Key, tb.Key).terms {
				m.accumulate(acc, u.Key, m.ring.Mul(c, u.Coeff))
			}
		}
	}

	return Element[T, K]{terms: acc}
}

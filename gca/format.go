// SPDX-License-Identifier: MIT

package gca

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/gcalg/index"
)

// TermString renders the monomial with index w: "1" for the unit,
// otherwise generator powers joined by the multiplication symbol,
// e.g. "x*y^2*z".
func (a *Algebra[T]) TermString(w index.Vector) string {
	if w.IsZero() {
		return "1"
	}
	parts := make([]string, 0, len(w))
	for i, e := range w {
		switch {
		case e == 0:
		case e == 1:
			parts = append(parts, a.gens[i].Name)
		default:
			parts = append(parts, a.gens[i].Name+"^"+strconv.Itoa(e))
		}
	}

	return strings.Join(parts, a.mulSymbol)
}

// LatexTerm renders the monomial with index w in LaTeX, e.g. "x y^{2} z",
// or `x\smile y^{2}\smile z` with WithLatexMulSymbol(`\smile`).
func (a *Algebra[T]) LatexTerm(w index.Vector) string {
	if w.IsZero() {
		return "1"
	}
	parts := make([]string, 0, len(w))
	for i, e := range w {
		switch {
		case e == 0:
		case e == 1:
			parts = append(parts, a.gens[i].Name)
		default:
			parts = append(parts, a.gens[i].Name+"^{"+strconv.Itoa(e)+"}")
		}
	}

	return strings.Join(parts, a.latexMulSymbol+" ")
}

// Format renders e as a sum of terms in canonical basis order, e.g.
// "5*z + 4*x*z" or "x*y - z". The zero element renders as "0".
func (a *Algebra[T]) Format(e Element[T]) string {
	return a.render(e, a.TermString, "*")
}

// Latex renders e in LaTeX; coefficients are separated by a space.
func (a *Algebra[T]) Latex(e Element[T]) string {
	return a.render(e, a.LatexTerm, " ")
}

// render joins the terms of e, folding ±1 coefficients into the sign.
func (a *Algebra[T]) render(e Element[T], term func(index.Vector) string, scalarSep string) string {
	terms := a.Terms(e)
	if len(terms) == 0 {
		return "0"
	}
	r := a.Ring()
	one, minusOne := r.One(), r.Neg(r.One())

	var sb strings.Builder
	for i, t := range terms {
		var piece string
		mono := term(t.Key)
		switch {
		case t.Key.IsZero():
			piece = r.Format(t.Coeff)
		case r.Equal(t.Coeff, one):
			piece = mono
		case r.Equal(t.Coeff, minusOne):
			piece = "-" + mono
		default:
			piece = r.Format(t.Coeff) + scalarSep + mono
		}

		neg := strings.HasPrefix(piece, "-")
		switch {
		case i == 0:
			sb.WriteString(piece)
		case neg:
			sb.WriteString(" - ")
			sb.WriteString(piece[1:])
		default:
			sb.WriteString(" + ")
			sb.WriteString(piece)
		}
	}

	return sb.String()
}

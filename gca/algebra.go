// SPDX-License-Identifier: MIT

package gca

import (
	"fmt"
	"iter"
	"strings"
	"sync"
	"unicode"

	"github.com/katalvlaran/gcalg/freemod"
	"github.com/katalvlaran/gcalg/index"
	"github.com/katalvlaran/gcalg/ring"
)

// Element is an element of a graded-commutative algebra: a finite linear
// combination of basis monomials.
type Element[T any] = freemod.Element[T, index.Vector]

// Generator describes one multiplicative generator.
type Generator struct {
	Name   string
	Degree int
}

// Algebra is a finite graded-commutative algebra over a coefficient ring.
//
// It embeds the free module on its basis, so linear operations (Add, Sub,
// Neg, Scale, Sum, Equal, Coefficient, Terms, Support, Zero) come from
// freemod; Mul, Pow and ProductOnBasis add the graded product.
//
// An Algebra is immutable after New and safe for concurrent use.
type Algebra[T any] struct {
	*freemod.Module[T, index.Vector]

	gens           []Generator
	byName         map[string]int
	space          *index.Space
	basis          *index.Basis
	mulSymbol      string
	latexMulSymbol string

	// products memoizes ProductOnBasis by "key1|key2". Entries are
	// ring-independent; concurrent misses may compute the same entry
	// twice and the last Store wins, which is harmless.
	products *sync.Map
}

// productEntry is a cached ProductOnBasis outcome.
type productEntry struct {
	sign int
	w    index.Vector
	ok   bool
}

// New builds the algebra over r described by opts.
//
// Validation (all reported as ErrInvalidConfiguration, wrapped with context):
//   - names and degrees may not both be absent; absent names default to
//     x0, x1, …; absent degrees default to all 1;
//   - names and degrees must have equal length;
//   - the multiplication symbol may not contain letters, digits, '_',
//     '^', '+', '-' or whitespace;
//   - names must be distinct identifiers;
//   - every degree must be positive;
//   - the maximal degree is required and must be ≥ max(degrees).
//
// Complexity: O(dim·n) time and memory for the eager basis.
func New[T any](r ring.Ring[T], opts ...Option) (*Algebra[T], error) {
	o := gatherOptions(opts...)

	if o.names == nil && o.degrees == nil {
		return nil, fmt.Errorf("%w: names or degrees must be given", ErrInvalidConfiguration)
	}
	if !o.maxDegreeSet {
		return nil, fmt.Errorf("%w: maximal degree must be given", ErrInvalidConfiguration)
	}
	if o.names == nil {
		o.names = make([]string, len(o.degrees))
		for i := range o.names {
			o.names[i] = fmt.Sprintf("%s%d", defaultNamePrefix, i)
		}
	}
	if o.degrees == nil {
		o.degrees = make([]int, len(o.names))
		for i := range o.degrees {
			o.degrees[i] = 1
		}
	}
	if len(o.names) != len(o.degrees) {
		return nil, fmt.Errorf("%w: %d names but %d degrees", ErrInvalidConfiguration, len(o.names), len(o.degrees))
	}

	if err := checkMulSymbol(o.mulSymbol); err != nil {
		return nil, err
	}

	byName := make(map[string]int, len(o.names))
	for i, name := range o.names {
		if !isIdentifier(name) {
			return nil, fmt.Errorf("%w: generator name %q is not an identifier", ErrInvalidConfiguration, name)
		}
		if _, dup := byName[name]; dup {
			return nil, fmt.Errorf("%w: duplicate generator name %q", ErrInvalidConfiguration, name)
		}
		byName[name] = i
	}

	space, err := index.NewSpace(o.degrees)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	top := 0
	for _, d := range o.degrees {
		top = max(top, d)
	}
	if o.maxDegree < top {
		return nil, fmt.Errorf("%w: maximal degree %d must not be below %d", ErrInvalidConfiguration, o.maxDegree, top)
	}
	basis, err := index.NewBasis(space, o.maxDegree)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	a := &Algebra[T]{
		gens:           make([]Generator, len(o.names)),
		byName:         byName,
		space:          space,
		basis:          basis,
		mulSymbol:      o.mulSymbol,
		latexMulSymbol: o.latexMulSymbol,
	}
	for i := range o.names {
		a.gens[i] = Generator{Name: o.names[i], Degree: o.degrees[i]}
	}
	if o.productCache {
		a.products = new(sync.Map)
	}
	a.Module = freemod.New[T, index.Vector](r, a.compareIndices)

	return a, nil
}

// checkMulSymbol rejects multiplication symbols the parser could not tell
// apart from names, numbers, operators or whitespace.
func checkMulSymbol(sym string) error {
	for _, c := range sym {
		switch {
		case c == '_' || c == '^' || c == '+' || c == '-',
			unicode.IsLetter(c), unicode.IsDigit(c), unicode.IsSpace(c):
			return fmt.Errorf("%w: multiplication symbol %q contains %q", ErrInvalidConfiguration, sym, c)
		}
	}

	return nil
}

// isIdentifier reports whether s is a letter or underscore followed by
// letters, digits or underscores.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_' || unicode.IsLetter(c):
		case i > 0 && unicode.IsDigit(c):
		default:
			return false
		}
	}

	return true
}

// compareIndices is the canonical basis order: grading, then lexicographic.
func (a *Algebra[T]) compareIndices(w1, w2 index.Vector) int {
	g1, g2 := a.space.Grading(w1), a.space.Grading(w2)
	switch {
	case g1 < g2:
		return -1
	case g1 > g2:
		return 1
	}

	return w1.Compare(w2)
}

// NGens returns the number of generators.
func (a *Algebra[T]) NGens() int { return len(a.gens) }

// Names returns the generator names in order.
func (a *Algebra[T]) Names() []string {
	out := make([]string, len(a.gens))
	for i, g := range a.gens {
		out[i] = g.Name
	}

	return out
}

// Degrees returns the generator degrees in order.
func (a *Algebra[T]) Degrees() []int { return a.space.Degrees() }

// MaximalDegree returns the truncation degree.
func (a *Algebra[T]) MaximalDegree() int { return a.basis.MaxDegree() }

// Indices exposes the (read-only) basis index set.
func (a *Algebra[T]) Indices() *index.Basis { return a.basis }

// GeneratorInfo returns name and degree of generator i.
func (a *Algebra[T]) GeneratorInfo(i int) (Generator, error) {
	if i < 0 || i >= len(a.gens) {
		return Generator{}, fmt.Errorf("generator %d of %d: %w", i, len(a.gens), ErrIndexOutOfRange)
	}

	return a.gens[i], nil
}

// Generator returns the i-th generator as an element.
// Errors: ErrIndexOutOfRange.
func (a *Algebra[T]) Generator(i int) (Element[T], error) {
	if i < 0 || i >= len(a.gens) {
		return Element[T]{}, fmt.Errorf("generator %d of %d: %w", i, len(a.gens), ErrIndexOutOfRange)
	}

	return a.Monomial(index.Unit(len(a.gens), i)), nil
}

// GeneratorByName returns the generator called name.
// Errors: ErrUnknownGenerator.
func (a *Algebra[T]) GeneratorByName(name string) (Element[T], error) {
	i, ok := a.byName[name]
	if !ok {
		return Element[T]{}, fmt.Errorf("%q: %w", name, ErrUnknownGenerator)
	}

	return a.Monomial(index.Unit(len(a.gens), i)), nil
}

// Generators returns all generators in order.
func (a *Algebra[T]) Generators() []Element[T] {
	out := make([]Element[T], len(a.gens))
	for i := range a.gens {
		out[i] = a.Monomial(index.Unit(len(a.gens), i))
	}

	return out
}

// Identity returns the unit element 1.
func (a *Algebra[T]) Identity() Element[T] {
	return a.Monomial(a.basis.Identity())
}

// Basis yields (position, basis element) pairs in canonical order.
func (a *Algebra[T]) Basis() iter.Seq2[int, Element[T]] {
	return func(yield func(int, Element[T]) bool) {
		for i, w := range a.basis.All() {
			if !yield(i, a.Monomial(w)) {
				return
			}
		}
	}
}

// BasisElement returns the monomial with index w after checking that w is
// a basis index of this algebra.
// Errors: ErrNotInBasis (wrapping index.ErrLengthMismatch or
// index.ErrNegativeEntry for malformed vectors).
func (a *Algebra[T]) BasisElement(w index.Vector) (Element[T], error) {
	if err := a.space.Check(w); err != nil {
		return Element[T]{}, fmt.Errorf("%w: %w", ErrNotInBasis, err)
	}
	if !a.basis.Contains(w) {
		return Element[T]{}, fmt.Errorf("%v: %w", w, ErrNotInBasis)
	}

	return a.Monomial(w.Clone()), nil
}

// ProductOnBasis multiplies the basis monomials w1 and w2 (both basis
// indices of a). The result is ±monomial(w1+w2), or zero when the degree
// exceeds MaximalDegree or an odd generator would be squared. The result
// never shares its index vector with the product cache.
func (a *Algebra[T]) ProductOnBasis(w1, w2 index.Vector) Element[T] {
	e := a.productEntry(w1, w2)
	if !e.ok {
		return a.Zero()
	}

	return a.Term(e.w.Clone(), ring.Sign(a.Ring(), (1-e.sign)/2))
}

// productEntry computes or fetches the product of w1 and w2.
func (a *Algebra[T]) productEntry(w1, w2 index.Vector) productEntry {
	if a.products == nil {
		return a.computeProduct(w1, w2)
	}
	key := w1.Key() + "|" + w2.Key()
	if v, ok := a.products.Load(key); ok {
		return v.(productEntry)
	}
	e := a.computeProduct(w1, w2)
	a.products.Store(key, e)

	return e
}

func (a *Algebra[T]) computeProduct(w1, w2 index.Vector) productEntry {
	sign, w, ok := a.space.Product(w1, w2, a.basis.MaxDegree())

	return productEntry{sign: sign, w: w, ok: ok}
}

// Mul returns the product x·y, the bilinear extension of ProductOnBasis.
func (a *Algebra[T]) Mul(x, y Element[T]) Element[T] {
	return a.Bilinear(x, y, a.ProductOnBasis)
}

// Prod returns the ordered product of all factors; 1 for none.
func (a *Algebra[T]) Prod(factors ...Element[T]) Element[T] {
	acc := a.Identity()
	for _, f := range factors {
		acc = a.Mul(acc, f)
	}

	return acc
}

// Pow returns x^n for n ≥ 0 by repeated squaring; x^0 is 1. A negative n
// yields zero since the algebra has no inverses in positive degree.
func (a *Algebra[T]) Pow(x Element[T], n int) Element[T] {
	if n < 0 {
		return a.Zero()
	}
	acc, base := a.Identity(), x
	for n > 0 {
		if n&1 == 1 {
			acc = a.Mul(acc, base)
		}
		n >>= 1
		if n > 0 {
			base = a.Mul(base, base)
		}
	}

	return acc
}

// IsHomogeneous reports whether all terms of e share one grading.
// The zero element is not homogeneous.
func (a *Algebra[T]) IsHomogeneous(e Element[T]) bool {
	_, err := a.DegreeOf(e)

	return err == nil
}

// DegreeOf returns the common grading of the terms of e.
// Errors: ErrNotHomogeneous when terms span several gradings or e is zero.
func (a *Algebra[T]) DegreeOf(e Element[T]) (int, error) {
	support := a.Support(e)
	if len(support) == 0 {
		return 0, fmt.Errorf("zero element: %w", ErrNotHomogeneous)
	}
	deg := a.space.Grading(support[0])
	for _, w := range support[1:] {
		if g := a.space.Grading(w); g != deg {
			return 0, fmt.Errorf("gradings %d and %d: %w", deg, g, ErrNotHomogeneous)
		}
	}

	return deg, nil
}

// Homogeneous returns the degree-k component of e.
func (a *Algebra[T]) Homogeneous(e Element[T], k int) Element[T] {
	var terms []freemod.Term[T, index.Vector]
	for _, t := range a.Terms(e) {
		if a.space.Grading(t.Key) == k {
			terms = append(terms, t)
		}
	}

	return a.FromTerms(terms...)
}

// String describes the algebra, e.g.
// "Graded commutative algebra with generators ('x', 'y') in degrees (1, 2) with maximal degree 4".
func (a *Algebra[T]) String() string {
	names := make([]string, len(a.gens))
	degs := make([]string, len(a.gens))
	for i, g := range a.gens {
		names[i] = "'" + g.Name + "'"
		degs[i] = fmt.Sprint(g.Degree)
	}

	return fmt.Sprintf("Graded commutative algebra with generators %s in degrees %s with maximal degree %d",
		tuple(names), tuple(degs), a.basis.MaxDegree())
}

// tuple renders items as a parenthesised tuple; one item keeps a trailing comma.
func tuple(items []string) string {
	if len(items) == 1 {
		return "(" + items[0] + ",)"
	}

	return "(" + strings.Join(items, ", ") + ")"
}

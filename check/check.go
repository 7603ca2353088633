// SPDX-License-Identifier: MIT

package check

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gcalg/gca"
	"github.com/katalvlaran/gcalg/index"
)

// ErrLawViolated is returned (wrapped with the law and the offending
// indices) when an algebra breaks one of its laws.
var ErrLawViolated = errors.New("check: law violated")

// Law names used in reports and errors.
const (
	LawIdentity         = "identity"
	LawTruncation       = "truncation"
	LawSuperCommutative = "super-commutativity"
	LawOddNilpotency    = "odd nilpotency"
	LawAssociativity    = "associativity"
)

// Option configures Run.
type Option func(*config)

type config struct {
	workers       int
	associativity bool
}

// WithWorkers bounds the number of concurrent goroutines; n ≤ 0 means
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithAssociativity toggles the O(dim³) associativity sweep (on by default).
func WithAssociativity(enabled bool) Option {
	return func(c *config) { c.associativity = enabled }
}

// Report summarises a successful run.
type Report struct {
	Dimension int
	Laws      []string
	Products  int64 // basis products evaluated
}

// Run checks every law over the basis of a. It returns the first violation
// as ErrLawViolated, or ctx.Err() if cancelled.
func Run[T any](ctx context.Context, a *gca.Algebra[T], opts ...Option) (Report, error) {
	cfg := config{workers: runtime.GOMAXPROCS(0), associativity: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers <= 0 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}

	basis := a.Indices()
	sp := basis.Space()
	vecs := make([]index.Vector, 0, basis.Len())
	for _, w := range basis.All() {
		vecs = append(vecs, w)
	}
	rep := Report{Dimension: len(vecs)}
	var products atomic.Int64

	mono := func(w index.Vector) gca.Element[T] { return a.Monomial(w) }
	mul := func(w1, w2 index.Vector) gca.Element[T] {
		products.Add(1)
		return a.ProductOnBasis(w1, w2)
	}

	// Identity and odd nilpotency are linear in dim; run them inline.
	one := basis.Identity()
	for _, w := range vecs {
		if !a.Equal(mul(one, w), mono(w)) || !a.Equal(mul(w, one), mono(w)) {
			return rep, violation(LawIdentity, a, w)
		}
	}
	rep.Laws = append(rep.Laws, LawIdentity)

	for i := 0; i < sp.Len(); i++ {
		if !sp.IsOdd(i) {
			continue
		}
		u := index.Unit(sp.Len(), i)
		if !mul(u, u).IsZero() {
			return rep, violation(LawOddNilpotency, a, u)
		}
	}
	rep.Laws = append(rep.Laws, LawOddNilpotency)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for _, w1 := range vecs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d1 := sp.Grading(w1)
			for _, w2 := range vecs {
				d2 := sp.Grading(w2)
				p12 := mul(w1, w2)
				if d1+d2 > a.MaximalDegree() && !p12.IsZero() {
					return violation(LawTruncation, a, w1, w2)
				}
				p21 := mul(w2, w1)
				if d1*d2%2 != 0 {
					p21 = a.Neg(p21)
				}
				if !a.Equal(p12, p21) {
					return violation(LawSuperCommutative, a, w1, w2)
				}
				if !cfg.associativity {
					continue
				}
				for _, w3 := range vecs {
					left := a.Mul(p12, mono(w3))
					right := a.Mul(mono(w1), mul(w2, w3))
					products.Add(2)
					if !a.Equal(left, right) {
						return violation(LawAssociativity, a, w1, w2, w3)
					}
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		rep.Products = products.Load()
		return rep, err
	}
	rep.Laws = append(rep.Laws, LawTruncation, LawSuperCommutative)
	if cfg.associativity {
		rep.Laws = append(rep.Laws, LawAssociativity)
	}
	rep.Products = products.Load()

	return rep, nil
}

// violation formats the offending monomials into an ErrLawViolated error.
func violation[T any](law string, a *gca.Algebra[T], ws ...index.Vector) error {
	terms := make([]string, len(ws))
	for i, w := range ws {
		terms[i] = a.TermString(w)
	}

	return fmt.Errorf("%s at %v: %w", law, terms, ErrLawViolated)
}

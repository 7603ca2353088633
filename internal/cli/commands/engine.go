// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"fmt"
	"math/big"

	"github.com/katalvlaran/gcalg/check"
	"github.com/katalvlaran/gcalg/gca"
	"github.com/katalvlaran/gcalg/index"
	"github.com/katalvlaran/gcalg/internal/cli/config"
	"github.com/katalvlaran/gcalg/matrix"
	"github.com/katalvlaran/gcalg/ring"
)

// Engine is the ring-erased view of an algebra that the commands drive.
type Engine interface {
	Describe() string
	RingName() string
	Basis() []BasisEntry
	Eval(exprs ...string) (Value, error)
	Hilbert() []int
	Pairing(k int) (*matrix.Dense, error)
	PoincareDuality() bool
	Check(ctx context.Context, workers int) (check.Report, error)
}

// BasisEntry is one row of the basis listing.
type BasisEntry struct {
	Index     int          `yaml:"index"`
	Monomial  string       `yaml:"monomial"`
	Latex     string       `yaml:"latex"`
	Degree    int          `yaml:"degree"`
	Exponents index.Vector `yaml:"exponents,flow"`
}

// Value is an evaluated element. Degree is -1 unless Homogeneous.
type Value struct {
	Plain       string `yaml:"value"`
	Latex       string `yaml:"latex"`
	Homogeneous bool   `yaml:"homogeneous"`
	Degree      int    `yaml:"degree"`
}

// NewEngine builds the algebra described by cfg over its coefficient ring.
func NewEngine(cfg *config.Config) (Engine, error) {
	opts := []gca.Option{
		gca.WithMaxDegree(cfg.MaxDegree),
		gca.WithMulSymbol(cfg.MulSymbol),
		gca.WithLatexMulSymbol(cfg.LatexMulSymbol),
	}
	if len(cfg.Names) > 0 {
		opts = append(opts, gca.WithNames(cfg.Names...))
	}
	if len(cfg.Degrees) > 0 {
		opts = append(opts, gca.WithDegrees(cfg.Degrees...))
	}

	switch cfg.Ring {
	case config.RingInt:
		return newEngine[int64](ring.Integers{}, opts)
	case config.RingRat:
		return newEngine[*big.Rat](ring.Rationals{}, opts)
	case config.RingGF:
		f, err := ring.NewPrimeField(cfg.Modulus)
		if err != nil {
			return nil, err
		}

		return newEngine[uint64](f, opts)
	default:
		return nil, fmt.Errorf("%w: unknown ring %q", config.ErrInvalidConfig, cfg.Ring)
	}
}

type engine[T any] struct {
	alg *gca.Algebra[T]
}

func newEngine[T any](r ring.Ring[T], opts []gca.Option) (Engine, error) {
	a, err := gca.New(r, opts...)
	if err != nil {
		return nil, err
	}

	return &engine[T]{alg: a}, nil
}

func (e *engine[T]) Describe() string { return e.alg.String() }

func (e *engine[T]) RingName() string { return e.alg.Ring().Name() }

func (e *engine[T]) Basis() []BasisEntry {
	sp := e.alg.Indices().Space()
	out := make([]BasisEntry, 0, e.alg.Dimension())
	for i, w := range e.alg.Indices().All() {
		out = append(out, BasisEntry{
			Index:     i,
			Monomial:  e.alg.TermString(w),
			Latex:     e.alg.LatexTerm(w),
			Degree:    sp.Grading(w),
			Exponents: w,
		})
	}

	return out
}

// Eval parses every expression and multiplies them left to right.
func (e *engine[T]) Eval(exprs ...string) (Value, error) {
	factors := make([]gca.Element[T], len(exprs))
	for i, s := range exprs {
		x, err := e.alg.ParseElement(s)
		if err != nil {
			return Value{}, err
		}
		factors[i] = x
	}
	p := e.alg.Prod(factors...)

	v := Value{Plain: e.alg.Format(p), Latex: e.alg.Latex(p), Degree: -1}
	if d, err := e.alg.DegreeOf(p); err == nil {
		v.Homogeneous, v.Degree = true, d
	}

	return v, nil
}

func (e *engine[T]) Hilbert() []int { return e.alg.HilbertSeries() }

func (e *engine[T]) Pairing(k int) (*matrix.Dense, error) { return e.alg.PairingMatrix(k) }

func (e *engine[T]) PoincareDuality() bool { return e.alg.IsPoincareDuality() }

func (e *engine[T]) Check(ctx context.Context, workers int) (check.Report, error) {
	return check.Run(ctx, e.alg, check.WithWorkers(workers))
}

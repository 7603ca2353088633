// SPDX-License-Identifier: MIT

package gca

import "strings"

// Defaults applied by New when the corresponding option is absent.
const (
	// DefaultMulSymbol joins generator powers in TermString and Format.
	DefaultMulSymbol = "*"

	// DefaultLatexMulSymbol joins generator powers in LatexTerm; a space is
	// always appended after it.
	DefaultLatexMulSymbol = ""

	// DefaultProductCache enables memoization of ProductOnBasis.
	DefaultProductCache = true

	// defaultNamePrefix names generators x0, x1, … when only degrees are given.
	defaultNamePrefix = "x"
)

const panicEmptyMulSymbol = "gca: WithMulSymbol: symbol must be non-empty"

// Option configures an Algebra before construction.
// Option constructors panic only on nonsensical programmer input; every
// user-facing validation happens in New and is reported as an error.
type Option func(*options)

// options is the resolved configuration; see gatherOptions.
type options struct {
	names          []string
	degrees        []int
	maxDegree      int
	maxDegreeSet   bool
	mulSymbol      string
	latexMulSymbol string
	productCache   bool
}

// WithNames sets the generator names. The slice is copied.
func WithNames(names ...string) Option {
	cp := append([]string(nil), names...)

	return func(o *options) { o.names = cp }
}

// WithNameString sets the generator names from a comma separated list,
// e.g. "x,y,z". Surrounding whitespace of each name is trimmed.
func WithNameString(list string) Option {
	parts := strings.Split(list, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return WithNames(parts...)
}

// WithDegrees sets the generator degrees. The slice is copied.
func WithDegrees(degrees ...int) Option {
	cp := append([]int(nil), degrees...)

	return func(o *options) { o.degrees = cp }
}

// WithMaxDegree sets the maximal degree. It is required.
func WithMaxDegree(n int) Option {
	return func(o *options) {
		o.maxDegree = n
		o.maxDegreeSet = true
	}
}

// WithMulSymbol sets the symbol joining generators in plain-text output,
// e.g. "⌣". Panics on an empty symbol.
func WithMulSymbol(sym string) Option {
	if sym == "" {
		panic(panicEmptyMulSymbol)
	}

	return func(o *options) { o.mulSymbol = sym }
}

// WithLatexMulSymbol sets the LaTeX symbol joining generators, e.g. `\smile`.
// The empty string (juxtaposition) is allowed.
func WithLatexMulSymbol(sym string) Option {
	return func(o *options) { o.latexMulSymbol = sym }
}

// WithProductCache toggles memoization of ProductOnBasis.
func WithProductCache(enabled bool) Option {
	return func(o *options) { o.productCache = enabled }
}

// gatherOptions applies opts over the defaults. Names and degrees are
// left nil when absent; New fills them in after validation.
func gatherOptions(opts ...Option) options {
	o := options{
		mulSymbol:      DefaultMulSymbol,
		latexMulSymbol: DefaultLatexMulSymbol,
		productCache:   DefaultProductCache,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

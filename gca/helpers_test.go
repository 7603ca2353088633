package gca_test

import (
	"testing"

	"github.com/katalvlaran/gcalg/gca"
	"github.com/katalvlaran/gcalg/ring"
	"github.com/stretchr/testify/require"
)

// zz is the integer ring shared by most tests.
var zz = ring.Integers{}

// mustZ builds an integer algebra or fails the test.
func mustZ(t testing.TB, opts ...gca.Option) *gca.Algebra[int64] {
	t.Helper()
	a, err := gca.New[int64](zz, opts...)
	require.NoError(t, err)

	return a
}

// gens returns the named generators of a in order.
func gens[T any](t testing.TB, a *gca.Algebra[T], names ...string) []gca.Element[T] {
	t.Helper()
	out := make([]gca.Element[T], len(names))
	for i, n := range names {
		g, err := a.GeneratorByName(n)
		require.NoError(t, err)
		out[i] = g
	}

	return out
}

// parse parses s in a or fails the test.
func parse[T any](t testing.TB, a *gca.Algebra[T], s string) gca.Element[T] {
	t.Helper()
	e, err := a.ParseElement(s)
	require.NoError(t, err, "parse %q", s)

	return e
}

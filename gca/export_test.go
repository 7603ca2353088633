// SPDX-License-Identifier: MIT

package gca

// CachedProducts reports how many basis products are memoized in a.
// Test-only bridge for the external gca_test package.
func CachedProducts[T any](a *Algebra[T]) int {
	if a.products == nil {
		return 0
	}
	n := 0
	a.products.Range(func(_, _ any) bool {
		n++
		return true
	})

	return n
}

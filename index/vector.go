// SPDX-License-Identifier: MIT

package index

import (
	"strconv"
	"strings"
)

// Vector is an exponent vector: entry i is the power of generator i.
// Vectors are value objects; functions in this package never mutate
// their arguments.
type Vector []int

// Zero returns the all-zero vector of length n (the index of 1).
func Zero(n int) Vector {
	return make(Vector, n)
}

// Unit returns the vector with a single 1 at position i (the index of
// generator i).
func Unit(n, i int) Vector {
	w := make(Vector, n)
	w[i] = 1

	return w
}

// Clone returns an independent copy of w.
func (w Vector) Clone() Vector {
	out := make(Vector, len(w))
	copy(out, w)

	return out
}

// Equal reports entrywise equality; vectors of different length are unequal.
func (w Vector) Equal(v Vector) bool {
	if len(w) != len(v) {
		return false
	}
	for i := range w {
		if w[i] != v[i] {
			return false
		}
	}

	return true
}

// Compare orders vectors lexicographically, shorter-is-smaller on a common
// prefix. It returns -1, 0 or +1.
func (w Vector) Compare(v Vector) int {
	n := len(w)
	if len(v) < n {
		n = len(v)
	}
	for i := 0; i < n; i++ {
		switch {
		case w[i] < v[i]:
			return -1
		case w[i] > v[i]:
			return 1
		}
	}
	switch {
	case len(w) < len(v):
		return -1
	case len(w) > len(v):
		return 1
	}

	return 0
}

// Add returns the entrywise sum. Both vectors must have the same length.
func (w Vector) Add(v Vector) Vector {
	out := make(Vector, len(w))
	for i := range w {
		out[i] = w[i] + v[i]
	}

	return out
}

// IsZero reports whether every entry is zero.
func (w Vector) IsZero() bool {
	for _, e := range w {
		if e != 0 {
			return false
		}
	}

	return true
}

// Key returns a canonical string encoding, usable as a map key.
func (w Vector) Key() string {
	var sb strings.Builder
	for i, e := range w {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(e))
	}

	return sb.String()
}

// String renders w as "[1, 0, 1]".
func (w Vector) String() string {
	return "[" + strings.ReplaceAll(w.Key(), ",", ", ") + "]"
}

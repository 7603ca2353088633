// SPDX-License-Identifier: MIT

package gca

import "errors"

// Sentinel errors of the gca package. All are detected eagerly, at
// construction or at the offending call, and are matched with errors.Is.
// Products never fail: truncation and odd squares are the algebraic zero.
var (
	// ErrInvalidConfiguration is returned by New for unusable generator
	// names, degrees or maximal degree.
	ErrInvalidConfiguration = errors.New("gca: invalid configuration")

	// ErrIndexOutOfRange is returned when a generator index is outside [0, n).
	ErrIndexOutOfRange = errors.New("gca: generator index out of range")

	// ErrNotHomogeneous is returned when a degree is requested for an element
	// whose terms span several gradings (or for the zero element).
	ErrNotHomogeneous = errors.New("gca: element is not homogeneous")

	// ErrNotInBasis is returned when a vector is not a basis index of the algebra.
	ErrNotInBasis = errors.New("gca: vector is not a basis index")

	// ErrUnknownGenerator is returned by the parsers for an unknown name.
	ErrUnknownGenerator = errors.New("gca: unknown generator")

	// ErrBadExpression is returned by the parsers for malformed input.
	ErrBadExpression = errors.New("gca: malformed expression")

	// ErrNoTopClass is returned by PairingMatrix when the top non-empty
	// degree is not one-dimensional.
	ErrNoTopClass = errors.New("gca: top degree is not one-dimensional")
)

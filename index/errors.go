// SPDX-License-Identifier: MIT

package index

import "errors"

// Sentinel errors for index construction and vector checks.
// Messages carry the "index: " prefix; callers match with errors.Is.
var (
	// ErrNoGenerators is returned when the degree tuple is empty.
	ErrNoGenerators = errors.New("index: at least one generator degree is required")

	// ErrBadDegree is returned when a generator degree is not a positive integer.
	ErrBadDegree = errors.New("index: generator degree must be positive")

	// ErrNegativeMaxDegree is returned when the maximal degree is below zero.
	ErrNegativeMaxDegree = errors.New("index: maximal degree must be non-negative")

	// ErrLengthMismatch is returned when a vector does not have one entry per generator.
	ErrLengthMismatch = errors.New("index: vector length does not match generator count")

	// ErrNegativeEntry is returned when a vector carries a negative exponent.
	ErrNegativeEntry = errors.New("index: vector entries must be non-negative")
)

// SPDX-License-Identifier: MIT

// Package freemod implements finitely supported linear combinations over a
// coefficient ring: the free module with a distinguished basis.
//
// A Module[T, K] pairs a ring.Ring[T] with an ordering of basis keys K.
// Elements are immutable values holding only non-zero coefficients; every
// operation (Add, Scale, Bilinear, …) returns a new Element.
//
// Basis keys only need a canonical Key() string, so any comparable-by-value
// index type (e.g. index.Vector) can serve as a basis.
package freemod

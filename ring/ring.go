// SPDX-License-Identifier: MIT

package ring

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

// ErrNotPrime is returned by NewPrimeField when the modulus is not a prime.
var ErrNotPrime = errors.New("ring: modulus is not prime")

// Ring describes a commutative ring with unity over values of type T.
type Ring[T any] interface {
	// Name returns a short human-readable name, e.g. "ZZ", "QQ", "GF(5)".
	Name() string

	Zero() T
	One() T
	Add(a, b T) T
	Mul(a, b T) T
	Neg(a T) T

	// Equal reports whether a and b denote the same ring element.
	Equal(a, b T) bool
	IsZero(a T) bool

	// Format renders a for display.
	Format(a T) string
}

// FromInt lifts the integer n into r by repeated addition of One.
// Complexity: O(|n|).
func FromInt[T any](r Ring[T], n int) T {
	acc, one := r.Zero(), r.One()
	if n < 0 {
		one = r.Neg(one)
		n = -n
	}
	for i := 0; i < n; i++ {
		acc = r.Add(acc, one)
	}

	return acc
}

// Sign returns One for an even exponent and -One for an odd one, i.e. (-1)^s.
func Sign[T any](r Ring[T], s int) T {
	if s%2 == 0 {
		return r.One()
	}

	return r.Neg(r.One())
}

// Integers is the ring ℤ on int64. Overflow wraps silently.
type Integers struct{}

// Name returns "ZZ".
func (Integers) Name() string { return "ZZ" }

// Zero returns 0.
func (Integers) Zero() int64 { return 0 }

// One returns 1.
func (Integers) One() int64 { return 1 }

// Add returns a+b.
func (Integers) Add(a, b int64) int64 { return a + b }

// Mul returns a·b.
func (Integers) Mul(a, b int64) int64 { return a * b }

// Neg returns -a.
func (Integers) Neg(a int64) int64 { return -a }

// Equal reports whether a == b.
func (Integers) Equal(a, b int64) bool { return a == b }

// IsZero reports whether a == 0.
func (Integers) IsZero(a int64) bool { return a == 0 }

// Format renders a in base 10.
func (Integers) Format(a int64) string { return strconv.FormatInt(a, 10) }

// FromInt64 returns n unchanged.
func (Integers) FromInt64(n int64) int64 { return n }

// Rationals is the field ℚ on *big.Rat. A nil *big.Rat is read as zero.
// Every operation allocates its result; arguments are never modified.
type Rationals struct{}

// Name returns "QQ".
func (Rationals) Name() string { return "QQ" }

// Zero returns a fresh 0.
func (Rationals) Zero() *big.Rat { return new(big.Rat) }

// One returns a fresh 1.
func (Rationals) One() *big.Rat { return big.NewRat(1, 1) }

// Add returns a+b.
func (Rationals) Add(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Add(ratOrZero(a), ratOrZero(b))
}

// Mul returns a·b.
func (Rationals) Mul(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(ratOrZero(a), ratOrZero(b))
}

// Neg returns -a.
func (Rationals) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(ratOrZero(a)) }

// Equal reports whether a and b are the same rational.
func (Rationals) Equal(a, b *big.Rat) bool {
	return ratOrZero(a).Cmp(ratOrZero(b)) == 0
}

// IsZero reports whether a is nil or 0.
func (Rationals) IsZero(a *big.Rat) bool { return a == nil || a.Sign() == 0 }

// Format renders a as "p/q", or "p" for integers.
func (Rationals) Format(a *big.Rat) string {
	return ratOrZero(a).RatString()
}

// FromInt64 returns n/1.
func (Rationals) FromInt64(n int64) *big.Rat { return big.NewRat(n, 1) }

func ratOrZero(a *big.Rat) *big.Rat {
	if a == nil {
		return new(big.Rat)
	}

	return a
}

// PrimeField is GF(p) for a prime p below 2^32; values live in [0, p).
// Inputs outside [0, p) are reduced first.
type PrimeField struct {
	p uint64
}

// NewPrimeField returns GF(p), or ErrNotPrime when p is not a prime
// below 2^32 (the bound keeps products inside uint64).
func NewPrimeField(p uint64) (PrimeField, error) {
	if p >= 1<<32 || !big.NewInt(0).SetUint64(p).ProbablyPrime(20) {
		return PrimeField{}, fmt.Errorf("GF(%d): %w", p, ErrNotPrime)
	}

	return PrimeField{p: p}, nil
}

// Modulus returns p.
func (f PrimeField) Modulus() uint64 { return f.p }

// Name returns "GF(p)".
func (f PrimeField) Name() string { return fmt.Sprintf("GF(%d)", f.p) }

// Zero returns 0.
func (f PrimeField) Zero() uint64 { return 0 }

// One returns 1.
func (f PrimeField) One() uint64 { return 1 % f.p }

// Add returns a+b mod p.
func (f PrimeField) Add(a, b uint64) uint64 { return (a%f.p + b%f.p) % f.p }

// Mul returns a·b mod p.
func (f PrimeField) Mul(a, b uint64) uint64 { return (a % f.p) * (b % f.p) % f.p }

// Neg returns -a mod p.
func (f PrimeField) Neg(a uint64) uint64 {
	a %= f.p
	if a == 0 {
		return 0
	}

	return f.p - a
}

// Equal reports whether a ≡ b mod p.
func (f PrimeField) Equal(a, b uint64) bool { return a%f.p == b%f.p }

// IsZero reports whether a ≡ 0 mod p.
func (f PrimeField) IsZero(a uint64) bool { return a%f.p == 0 }

// Format renders the reduced value in base 10.
func (f PrimeField) Format(a uint64) string { return strconv.FormatUint(a%f.p, 10) }

// FromInt64 returns n mod p in [0, p).
func (f PrimeField) FromInt64(n int64) uint64 {
	m := n % int64(f.p)
	if m < 0 {
		m += int64(f.p)
	}

	return uint64(m)
}

// Integral is implemented by rings that can lift an int64 directly,
// without the O(|n|) walk of FromInt.
type Integral[T any] interface {
	Ring[T]
	FromInt64(n int64) T
}

// Lift converts n into r, using FromInt64 when r supports it.
func Lift[T any](r Ring[T], n int64) T {
	if ir, ok := r.(Integral[T]); ok {
		return ir.FromInt64(n)
	}

	return FromInt(r, int(n))
}

// Package bignum provides the small set of arbitrary-precision integer
// primitives the p-adic kernel needs beyond what math/big exposes
// directly: factor removal, digit sums, modular square roots, and a
// modular exponentiation entry point with an optional GMP backend
// (see powmod_gmp.go).
//
// All functions treat their *big.Int arguments as read-only unless the
// argument is the designated result receiver.
package bignum

import (
	"errors"
	"math/big"
	"math/bits"
)

// ErrNoInverse is returned by InvMod when the element is not invertible
// modulo the given modulus.
var ErrNoInverse = errors.New("bignum: element has no modular inverse")

// Remove divides the maximal power of f out of x and stores the
// quotient in z, returning the removed exponent. It follows the
// classic fmpz_remove contract: x must be nonzero and f >= 2.
// z and x may alias.
func Remove(z, x, f *big.Int) int {
	if x.Sign() == 0 {
		panic("bignum: Remove of zero")
	}
	z.Set(x)
	if z.CmpAbs(f) < 0 {
		return 0
	}

	var (
		k    int
		q, r big.Int
	)
	for {
		q.QuoRem(z, f, &r)
		if r.Sign() != 0 {
			return k
		}
		z.Set(&q)
		k++
	}
}

// InvMod sets z to the inverse of g modulo m and returns z. It returns
// ErrNoInverse when gcd(g, m) != 1. z, g and m may alias.
func InvMod(z, g, m *big.Int) (*big.Int, error) {
	if z.ModInverse(g, m) == nil {
		return nil, ErrNoInverse
	}
	return z, nil
}

// SqrtModPrime sets z to a square root of a modulo the odd prime p and
// reports whether one exists. On failure z is left untouched.
func SqrtModPrime(z, a, p *big.Int) bool {
	var t big.Int
	if t.ModSqrt(a, p) == nil {
		return false
	}
	z.Set(&t)
	return true
}

// SumOfDigits returns the sum of the digits of n in the given base.
// n must be nonnegative and base >= 2.
func SumOfDigits(n, base *big.Int) *big.Int {
	sum := new(big.Int)
	if n.Sign() == 0 {
		return sum
	}

	var t, q, r big.Int
	t.Set(n)
	for t.Sign() != 0 {
		q.QuoRem(&t, base, &r)
		sum.Add(sum, &r)
		t.Set(&q)
	}
	return sum
}

// SumOfDigitsUint64 is the word-sized counterpart of SumOfDigits.
func SumOfDigitsUint64(n, base uint64) uint64 {
	var sum uint64
	for n != 0 {
		sum += n % base
		n /= base
	}
	return sum
}

// PopCount returns the number of one bits in the absolute value of n.
func PopCount(n *big.Int) uint64 {
	var c uint64
	for _, w := range n.Bits() {
		c += uint64(bits.OnesCount(uint(w)))
	}
	return c
}

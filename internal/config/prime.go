package config

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"
)

// sieveLimit bounds the exact Eratosthenes screen; beyond it the check
// falls back to Miller-Rabin.
const sieveLimit = 1 << 20

// isProbablePrime screens the candidate prime. Small values get an
// exact sieve; larger ones math/big's ProbablyPrime(20), which runs 20
// Miller-Rabin rounds plus a Baillie-PSW test and is exact below 2^64.
// The kernel itself never verifies primality.
func isProbablePrime(p *big.Int) bool {
	if p.IsUint64() && p.Uint64() < sieveLimit {
		return sievedPrime(uint(p.Uint64()))
	}
	return p.ProbablyPrime(20)
}

// sievedPrime runs a bitset-backed sieve of Eratosthenes up to n and
// reports whether n survives.
func sievedPrime(n uint) bool {
	if n < 2 {
		return false
	}
	composite := bitset.New(n + 1)
	for i := uint(2); i*i <= n; i++ {
		if composite.Test(i) {
			continue
		}
		for j := i * i; j <= n; j += i {
			composite.Set(j)
		}
	}
	return !composite.Test(n)
}

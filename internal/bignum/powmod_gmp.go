//go:build gmp

// GMP-backed modular exponentiation, conditionally compiled with the
// "gmp" build tag so that:
//   - Projects can build without GMP (the default, using math/big)
//   - GMP support is opt-in, requiring: go build -tags=gmp
//   - The codebase remains portable across systems without libgmp
//
// Modular exponentiation dominates the Teichmüller lift and the
// Satoh-Skjernaa-Taguchi logarithm, which is where GMP's assembly
// routines pay off. Values cross the boundary via Bytes, so the rest
// of the kernel stays on math/big.

package bignum

import (
	"math/big"

	"github.com/ncw/gmp"
)

// PowMod returns base^exp mod m as a fresh big.Int, computed by libgmp.
// exp must be nonnegative and m positive.
func PowMod(base, exp, m *big.Int) *big.Int {
	gb := new(gmp.Int).SetBytes(base.Bytes())
	ge := new(gmp.Int).SetBytes(exp.Bytes())
	gm := new(gmp.Int).SetBytes(m.Bytes())

	gb.Exp(gb, ge, gm)
	return new(big.Int).SetBytes(gb.Bytes())
}

//go:build !gmp

package bignum

import "math/big"

// PowMod returns base^exp mod m as a fresh big.Int. exp must be
// nonnegative and m positive. This is the portable math/big backend;
// build with -tags=gmp to route through libgmp instead.
func PowMod(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

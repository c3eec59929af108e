package padic

import (
	"math/big"
	"math/bits"

	"github.com/agbru/padiccalc/internal/bignum"
)

// ValFac returns ord_p(n!) for word-sized n via Legendre's formula
//
//	ord_p(n!) = (n - s_p(n)) / (p - 1)
//
// where s_p(n) is the sum of the base-p digits of n. For p = 2 this
// specializes to n - popcount(n). The result of the word-sized version
// always fits in a word.
func ValFac(n uint64, ctx *Ctx) uint64 {
	if !ctx.p.IsUint64() {
		// p > n, so only the digit n itself contributes: ord is 0.
		return 0
	}
	p := ctx.p.Uint64()
	if p == 2 {
		return n - uint64(bits.OnesCount64(n))
	}
	return (n - bignum.SumOfDigitsUint64(n, p)) / (p - 1)
}

// ValFacBig is the arbitrary-precision lift of ValFac.
func ValFacBig(n *big.Int, ctx *Ctx) *big.Int {
	if n.Sign() <= 0 {
		return new(big.Int)
	}
	if n.Cmp(ctx.p) < 0 {
		return new(big.Int)
	}
	r := new(big.Int)
	if ctx.p.Cmp(twoInt) == 0 {
		return r.Sub(n, new(big.Int).SetUint64(bignum.PopCount(n)))
	}
	r.Sub(n, bignum.SumOfDigits(n, ctx.p))
	return r.Quo(r, new(big.Int).Sub(ctx.p, oneInt))
}

// valFacInt is ValFac for int arguments, used by the series guards.
func valFacInt(n int, ctx *Ctx) int {
	if n <= 0 {
		return 0
	}
	return int(ValFac(uint64(n), ctx))
}

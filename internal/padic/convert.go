package padic

import (
	"math/big"

	"github.com/agbru/padiccalc/internal/bignum"
)

// SetInt64 sets z to the class of n, reduced at z's precision.
func (z *Elem) SetInt64(n int64, ctx *Ctx) *Elem {
	z.u.SetInt64(n)
	z.v = 0
	z.reducePublic(ctx)
	return z
}

// SetUint64 sets z to the class of n, reduced at z's precision.
func (z *Elem) SetUint64(n uint64, ctx *Ctx) *Elem {
	z.u.SetUint64(n)
	z.v = 0
	z.reducePublic(ctx)
	return z
}

// SetBigInt sets z to the class of n, reduced at z's precision.
func (z *Elem) SetBigInt(n *big.Int, ctx *Ctx) *Elem {
	z.u.Set(n)
	z.v = 0
	z.reducePublic(ctx)
	return z
}

// SetRat sets z to the class of q, reduced at z's precision. The
// valuation of q at p is extracted from numerator and denominator and
// the remaining unit denominator is inverted modulo the precision
// modulus.
func (z *Elem) SetRat(q *big.Rat, ctx *Ctx) *Elem {
	if q.Sign() == 0 {
		return z.SetZero()
	}

	num := new(big.Int).Set(q.Num())
	den := new(big.Int).Set(q.Denom())
	v := bignum.Remove(num, num, ctx.p) - bignum.Remove(den, den, ctx.p)

	m := z.n - v
	if m <= 0 {
		return z.SetZero()
	}
	pm := ctx.powRead(m)
	w, err := bignum.InvMod(new(big.Int), den, pm)
	if err != nil {
		// den is coprime to p after Remove, so this cannot happen.
		panic(err)
	}
	z.u.Mul(num.Mod(num, pm), w)
	z.v = v
	z.reducePublic(ctx)
	return z
}

// GetBigInt returns the integer representative u*p^v in [0, p^N).
// It returns ErrNotInteger when x has negative valuation.
func (x *Elem) GetBigInt(ctx *Ctx) (*big.Int, error) {
	if x.zeroToPrec() {
		return new(big.Int), nil
	}
	if x.v < 0 {
		return nil, ErrNotInteger
	}
	r := new(big.Int).Mul(x.u, ctx.powRead(x.v))
	return r, nil
}

// GetRat returns the rational representative of x: the integer
// representative when v >= 0, else u / p^(-v).
func (x *Elem) GetRat(ctx *Ctx) *big.Rat {
	if x.zeroToPrec() {
		return new(big.Rat)
	}
	if x.v >= 0 {
		n := new(big.Int).Mul(x.u, ctx.powRead(x.v))
		return new(big.Rat).SetInt(n)
	}
	return new(big.Rat).SetFrac(new(big.Int).Set(x.u), new(big.Int).Set(ctx.powRead(-x.v)))
}

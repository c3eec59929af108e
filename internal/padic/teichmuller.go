package padic

import (
	"math/big"

	"github.com/agbru/padiccalc/internal/bignum"
)

// Teichmuller sets z to the Teichmüller lift of x: the unique
// (p-1)-th root of unity in Z_p congruent to x modulo p. x must not
// have negative valuation (ErrNotUnit); for positive valuation the
// lift is zero by convention. z may alias x.
//
// The lift is the Hensel limit of t <- t - (t^p - t) / (p*t^(p-1) - 1)
// with precision doubling each step; the derivative is congruent to
// -1 mod p and therefore always invertible.
func (z *Elem) Teichmuller(x *Elem, ctx *Ctx) error {
	if x.v < 0 {
		return ErrNotUnit
	}
	if x.zeroToPrec() || x.v > 0 {
		z.SetZero()
		return nil
	}
	if z.n <= 0 {
		z.SetZero()
		return nil
	}

	pm1 := new(big.Int).Sub(ctx.p, oneInt)
	t := new(big.Int).Mod(x.u, ctx.p)
	f := new(big.Int)
	d := new(big.Int)

	for k := 1; k < z.n; {
		k2 := 2 * k
		if k2 > z.n {
			k2 = z.n
		}
		q := ctx.powRead(k2)

		tp1 := bignum.PowMod(t, pm1, q) // t^(p-1)

		f.Mul(tp1, t)
		f.Sub(f, t)
		f.Mod(f, q) // t^p - t

		d.Mul(ctx.p, tp1)
		d.Sub(d, oneInt)
		d.Mod(d, q) // p*t^(p-1) - 1

		w, err := invUnitMod(d, k2, ctx)
		if err != nil {
			return err
		}
		f.Mul(f, w)
		t.Sub(t, f)
		t.Mod(t, q)
		k = k2
	}

	z.u.Set(t)
	z.v = 0
	z.reduce(ctx)
	return nil
}

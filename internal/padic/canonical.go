package padic

import "github.com/agbru/padiccalc/internal/bignum"

// canonicalise factors the maximal power of p out of the unit,
// folding it into the valuation. The unit may be negative or divisible
// by p on entry (intermediate states of add/sub); on exit either u = 0
// and v = 0, or gcd(u, p) = 1.
func (x *Elem) canonicalise(ctx *Ctx) {
	if x.u.Sign() == 0 {
		x.v = 0
		return
	}
	x.v += bignum.Remove(x.u, x.u, ctx.p)
}

// reduce brings a canonical element into reduced form at x's declared
// precision: zero when v >= N, else 0 <= u < p^(N-v).
func (x *Elem) reduce(ctx *Ctx) {
	if x.u.Sign() == 0 {
		x.v = 0
		return
	}
	if x.v >= x.n {
		x.SetZero()
		return
	}
	x.u.Mod(x.u, ctx.powRead(x.n-x.v))
	if x.u.Sign() == 0 {
		x.v = 0
	}
}

// reducePublic canonicalises then reduces; every public operation runs
// its result through here (or reduce, when canonical form is already
// guaranteed) before returning.
func (x *Elem) reducePublic(ctx *Ctx) {
	x.canonicalise(ctx)
	x.reduce(ctx)
}

// Reduce normalizes x in place at its declared precision and returns x.
// Useful after SetPrec lowered the precision.
func (x *Elem) Reduce(ctx *Ctx) *Elem {
	x.reducePublic(ctx)
	return x
}

package padic

import (
	"math/big"

	"github.com/agbru/padiccalc/internal/bignum"
)

// Add sets z to x + y, reduced at z's precision. z may alias x or y.
func (z *Elem) Add(x, y *Elem, ctx *Ctx) *Elem {
	return z.addSub(x, y, false, ctx)
}

// Sub sets z to x - y, reduced at z's precision. z may alias x or y.
func (z *Elem) Sub(x, y *Elem, ctx *Ctx) *Elem {
	return z.addSub(x, y, true, ctx)
}

// addSub aligns the operands at the smaller valuation:
//
//	x + y = p^v1 * (u1 +- p^(v2-v1)*u2)   with v1 <= v2
//
// A subtraction that cancels leading digits raises the valuation in
// canonicalise, shrinking the relative precision; the absolute
// precision of z is untouched.
func (z *Elem) addSub(x, y *Elem, minus bool, ctx *Ctx) *Elem {
	switch {
	case y.zeroToPrec():
		u := new(big.Int).Set(x.u)
		z.u, z.v = u, x.v
		z.reducePublic(ctx)
		return z
	case x.zeroToPrec():
		u := new(big.Int).Set(y.u)
		z.u, z.v = u, y.v
		if minus {
			u.Neg(u)
		}
		z.reducePublic(ctx)
		return z
	}

	u := new(big.Int)
	var v int
	if x.v <= y.v {
		u.Mul(y.u, ctx.powRead(y.v-x.v))
		if minus {
			u.Sub(x.u, u)
		} else {
			u.Add(x.u, u)
		}
		v = x.v
	} else {
		u.Mul(x.u, ctx.powRead(x.v-y.v))
		if minus {
			u.Sub(u, y.u)
		} else {
			u.Add(u, y.u)
		}
		v = y.v
	}
	z.u, z.v = u, v
	z.reducePublic(ctx)
	return z
}

// Neg sets z to -x, reduced at z's precision. z may alias x.
func (z *Elem) Neg(x *Elem, ctx *Ctx) *Elem {
	if x.zeroToPrec() || x.v >= z.n {
		return z.SetZero()
	}
	m := ctx.powRead(z.n - x.v)
	u := new(big.Int).Mod(x.u, m)
	if u.Sign() == 0 {
		return z.SetZero()
	}
	u.Sub(m, u)
	z.u, z.v = u, x.v
	z.reducePublic(ctx)
	return z
}

// Mul sets z to x * y, reduced at z's precision. z may alias x or y.
func (z *Elem) Mul(x, y *Elem, ctx *Ctx) *Elem {
	if x.zeroToPrec() || y.zeroToPrec() {
		return z.SetZero()
	}
	u := new(big.Int).Mul(x.u, y.u)
	z.u, z.v = u, x.v+y.v
	z.reducePublic(ctx)
	return z
}

// Shift sets z to x * p^w, reduced at z's precision. z may alias x.
func (z *Elem) Shift(x *Elem, w int, ctx *Ctx) *Elem {
	if x.zeroToPrec() {
		return z.SetZero()
	}
	if z != x {
		z.u.Set(x.u)
	}
	z.v = x.v + w
	z.reduce(ctx)
	return z
}

// Div sets z to x / y, reduced at z's precision. z may alias x or y.
// It returns ErrDivByZero when y is zero to its tracked precision.
func (z *Elem) Div(x, y *Elem, ctx *Ctx) error {
	if y.zeroToPrec() {
		return ErrDivByZero
	}
	if x.zeroToPrec() {
		z.SetZero()
		return nil
	}

	// The quotient's unit must be known modulo p^(N - v(x) + v(y)).
	m := z.n - x.v + y.v
	if m <= 0 {
		z.SetZero()
		return nil
	}
	w, err := invUnitMod(y.u, m, ctx)
	if err != nil {
		return err
	}
	w.Mul(w, x.u)
	z.u, z.v = w, x.v-y.v
	z.reducePublic(ctx)
	return nil
}

// Pow sets z to x^e, reduced at z's precision. Negative exponents
// invert first and return ErrDivByZero for a zero base.
func (z *Elem) Pow(x *Elem, e int, ctx *Ctx) error {
	switch {
	case e == 0:
		z.SetOne(ctx)
		return nil
	case x.zeroToPrec():
		if e < 0 {
			return ErrDivByZero
		}
		z.SetZero()
		return nil
	case e < 0:
		// The inverse must carry relative precision z.n - e*v(x), so
		// that raising it to -e still has z.n significant digits.
		t := NewWithPrec(z.n + (-e-1)*x.v)
		if err := t.Inv(x, ctx); err != nil {
			return err
		}
		return z.Pow(t, -e, ctx)
	}

	v := x.v * e
	m := z.n - v
	if m <= 0 {
		z.SetZero()
		return nil
	}
	pm := ctx.powRead(m)
	u := bignum.PowMod(x.u, big.NewInt(int64(e)), pm)
	z.u, z.v = u, v
	z.reduce(ctx)
	return nil
}

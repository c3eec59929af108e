package padic

import (
	"math/big"

	"github.com/agbru/padiccalc/internal/bignum"
)

// Sqrt sets z to a square root of x, reduced at z's precision, and
// reports whether x is a square in Q_p. x = u*p^v is a square iff v is
// even and u is a quadratic residue mod p (p odd), or u = 1 mod 8
// (p = 2). On failure z is scrubbed to zero rather than left in an
// intermediate state. z may alias x.
func (z *Elem) Sqrt(x *Elem, ctx *Ctx) bool {
	if x.zeroToPrec() {
		z.SetZero()
		return true
	}
	if x.v&1 != 0 {
		z.SetZero()
		return false
	}

	p2 := ctx.p.Cmp(twoInt) == 0
	if p2 {
		var r big.Int
		if r.And(x.u, big.NewInt(7)); r.Cmp(oneInt) != 0 {
			z.SetZero()
			return false
		}
	} else if big.Jacobi(x.u, ctx.p) != 1 {
		z.SetZero()
		return false
	}

	vh := x.v / 2
	m := z.n - vh
	if m <= 0 {
		z.SetZero()
		return true
	}

	var y *big.Int
	if p2 {
		y = sqrtUnit2(x.u, m, ctx)
	} else {
		y = sqrtUnitOdd(x.u, m, ctx)
	}
	z.u, z.v = y, vh
	z.reduce(ctx)
	return true
}

// sqrtUnitOdd lifts a square root of the unit u from mod p to mod p^m
// by Hensel doubling: y <- y - (y^2 - u) * inv(2y).
func sqrtUnitOdd(u *big.Int, m int, ctx *Ctx) *big.Int {
	y := new(big.Int)
	if !bignum.SqrtModPrime(y, new(big.Int).Mod(u, ctx.p), ctx.p) {
		// The caller verified the Jacobi symbol.
		panic("padic: residue lost its square root")
	}

	t := new(big.Int)
	for k := 1; k < m; {
		k2 := 2 * k
		if k2 > m {
			k2 = m
		}
		q := ctx.powRead(k2)

		t.Mul(y, y)
		t.Sub(t, u)
		t.Mod(t, q)

		d := new(big.Int).Lsh(y, 1)
		w, err := invUnitMod(d, k2, ctx)
		if err != nil {
			panic(err) // 2y is a unit for p odd
		}
		t.Mul(t, w)
		y.Sub(y, t)
		y.Mod(y, q)
		k = k2
	}
	return y
}

// sqrtUnit2 lifts a square root of the 2-adic unit u (u = 1 mod 8)
// starting from y = 1 at precision 3. With y^2 = u mod 2^k, the step
//
//	y <- y - 2^(k-1) * ((y^2 - u) / 2^k) * inv(y)
//
// is valid to precision 2k-2, so the schedule advances k -> 2k-2.
func sqrtUnit2(u *big.Int, m int, ctx *Ctx) *big.Int {
	y := big.NewInt(1)
	t := new(big.Int)
	for k := 3; k < m; {
		k2 := 2*k - 2
		if k2 > m {
			k2 = m
		}
		q := ctx.powRead(k2)

		t.Mul(y, y)
		t.Sub(t, u)
		t.Rsh(t, uint(k)) // exact: y^2 = u mod 2^k
		t.Lsh(t, uint(k-1))

		w, err := invUnitMod(y, k2, ctx)
		if err != nil {
			panic(err) // y is odd
		}
		t.Mul(t, w)
		y.Sub(y, t)
		y.Mod(y, q)
		k = k2
	}
	if m < 3 {
		y.Mod(y, ctx.powRead(m))
	}
	return y
}

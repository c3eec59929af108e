package padic

import (
	"math/big"
	"math/rand"
)

// Randtest sets z to a random element with valuation in
// [-N/2, N/2) and a random unit, reduced at z's precision. Used by the
// property and fuzz tests.
func (z *Elem) Randtest(rng *rand.Rand, ctx *Ctx) *Elem {
	if z.n <= 0 {
		return z.SetZero()
	}
	v := rng.Intn(z.n) - z.n/2
	return z.randWithVal(rng, v, ctx)
}

// RandtestUnit sets z to a random unit, reduced at z's precision.
func (z *Elem) RandtestUnit(rng *rand.Rand, ctx *Ctx) *Elem {
	if z.n <= 0 {
		return z.SetZero()
	}
	return z.randWithVal(rng, 0, ctx)
}

// RandtestInt sets z to a random p-adic integer (valuation >= 0),
// reduced at z's precision.
func (z *Elem) RandtestInt(rng *rand.Rand, ctx *Ctx) *Elem {
	if z.n <= 0 {
		return z.SetZero()
	}
	return z.randWithVal(rng, rng.Intn(z.n), ctx)
}

// randWithVal draws a unit in [1, p^(N-v)) coprime to p and installs
// it at valuation v.
func (z *Elem) randWithVal(rng *rand.Rand, v int, ctx *Ctx) *Elem {
	m := ctx.powRead(z.n - v)
	u := new(big.Int)
	for {
		u.Rand(rng, m)
		if u.Sign() == 0 {
			continue
		}
		var r big.Int
		if r.Mod(u, ctx.p); r.Sign() != 0 {
			break
		}
	}
	z.u, z.v = u, v
	z.reduce(ctx)
	return z
}

package padic

import (
	"math"
	"math/big"

	"github.com/agbru/padiccalc/internal/bignum"
)

// ExpBound returns an M such that ord_p(x^i / i!) >= N for all i >= M,
// given ord_p(x) = v. It is the truncation point of the exponential
// series. For word-sized p the bound is
//
//	ceil(((p-1)*N - 1) / ((p-1)*v - 1))
//
// and for larger p the factorial contributes nothing below N terms, so
// ceil(N / v) suffices. M is not always the least such index: for
// p = 7, v = 2, N = 10 it is 6, while every i >= 5 already qualifies.
func ExpBound(v, n int, ctx *Ctx) int {
	if ctx.wordSized() {
		// Computed over big.Int: pm1*N approaches 2^63 for primes near
		// the word boundary.
		pm1 := new(big.Int).Sub(ctx.p, oneInt)
		num := new(big.Int).Mul(pm1, big.NewInt(int64(n)))
		num.Sub(num, oneInt)
		den := new(big.Int).Mul(pm1, big.NewInt(int64(v)))
		den.Sub(den, oneInt)
		num.Add(num, den)
		num.Sub(num, oneInt)
		num.Quo(num, den)
		return int(num.Int64())
	}
	return (n + v - 1) / v
}

// expConverges reports whether the series converges at valuation v:
// ord_p(x) >= 1 for p odd, >= 2 for p = 2.
func expConverges(v int, ctx *Ctx) bool {
	if ctx.p.Cmp(twoInt) == 0 {
		return v >= 2
	}
	return v >= 1
}

// Exp sets z to exp(x), reduced at z's precision, using the balanced
// algorithm (each chunk's series is summed by the naive kernel). It returns
// ErrNotConvergent when x lies outside the domain of convergence.
// z may alias x.
func (z *Elem) Exp(x *Elem, ctx *Ctx) error {
	return z.expWith(x, ctx, expBalancedKernel)
}

// ExpRectangular is Exp using rectangular splitting: the series is
// evaluated in baby-step/giant-step blocks of size about sqrt(M),
// trading multiplications for table space.
func (z *Elem) ExpRectangular(x *Elem, ctx *Ctx) error {
	return z.expWith(x, ctx, expRectangularKernel)
}

// ExpBalanced is Exp using balanced splitting: x is peeled into
// valuation-doubling chunks, exp(x) = prod exp(chunk), so each chunk's
// series needs half as many terms as the previous one. Quasi-linear in
// the precision for fixed p.
func (z *Elem) ExpBalanced(x *Elem, ctx *Ctx) error {
	return z.expWith(x, ctx, expBalancedKernel)
}

type expKernel func(u *big.Int, v, n int, ctx *Ctx) *big.Int

func (z *Elem) expWith(x *Elem, ctx *Ctx, kern expKernel) error {
	if x.zeroToPrec() {
		z.SetOne(ctx)
		return nil
	}
	if !expConverges(x.v, ctx) {
		return ErrNotConvergent
	}
	if z.n <= 0 {
		z.SetZero()
		return nil
	}
	r := kern(x.u, x.v, z.n, ctx)
	z.u.Set(r)
	z.v = 0
	z.reducePublic(ctx)
	return nil
}

// expNaive evaluates the truncated series by a descending Horner
// recurrence on the value/denominator pair:
//
//	exp(x) ~ 1 + x/1*(1 + x/2*(1 + ... (1 + x/(M-1))))
//	(a, b) <- (i*b + x*a, i*b)
//
// Arithmetic is carried modulo p^(N + w) with w = ord_p((M-1)!), the
// guard needed to survive the final division by (M-1)!.
func expNaive(u *big.Int, v, n int, ctx *Ctx) *big.Int {
	m := ExpBound(v, n, ctx)
	if m <= 1 {
		return big.NewInt(1)
	}

	w := valFacInt(m-1, ctx)
	q := ctx.powRead(n + w)
	x := seriesArg(u, v, q, ctx)

	a := big.NewInt(1)
	b := big.NewInt(1)
	t := new(big.Int)
	ib := new(big.Int)
	for i := int64(m - 1); i >= 1; i-- {
		ib.Mul(b, big.NewInt(i))
		ib.Mod(ib, q)
		t.Mul(x, a)
		a.Add(ib, t)
		a.Mod(a, q)
		b.Set(ib)
	}
	return seriesDivFac(a, b, w, n, ctx)
}

// expRectangularKernel evaluates the same sum as expNaive with the
// factorial-ratio form T = sum f_i * x^i, f_i = (M-1)!/i!, split into
// blocks: powers x^0..x^b are tabulated once and the giant steps
// Horner over x^b. The f_i are produced on the fly by the descending
// recurrence f_{i-1} = f_i * i.
func expRectangularKernel(u *big.Int, v, n int, ctx *Ctx) *big.Int {
	m := ExpBound(v, n, ctx)
	if m <= 4 {
		return expNaive(u, v, n, ctx)
	}

	w := valFacInt(m-1, ctx)
	q := ctx.powRead(n + w)
	x := seriesArg(u, v, q, ctx)

	bs := int(math.Ceil(math.Sqrt(float64(m))))
	xp := powerTable(x, bs, q)

	nb := (m + bs - 1) / bs
	f := big.NewInt(1) // f_{M-1}
	sum := new(big.Int)
	inner := new(big.Int)
	t := new(big.Int)
	for j := nb - 1; j >= 0; j-- {
		hi := bs - 1
		if j*bs+hi > m-1 {
			hi = m - 1 - j*bs
		}
		inner.SetInt64(0)
		for k := hi; k >= 0; k-- {
			i := j*bs + k
			t.Mul(f, xp[k])
			inner.Add(inner, t)
			inner.Mod(inner, q)
			if i > 0 {
				f.Mul(f, big.NewInt(int64(i)))
				f.Mod(f, q)
			}
		}
		if j == nb-1 {
			sum.Set(inner)
			continue
		}
		sum.Mul(sum, xp[bs])
		sum.Add(sum, inner)
		sum.Mod(sum, q)
	}
	// sum = T and f has swept down to (M-1)!/0! = (M-1)!.
	return seriesDivFac(sum, f, w, n, ctx)
}

// expBalancedKernel peels x into chunks of doubling valuation,
// multiplying the partial exponentials: the chunk at valuation w needs
// only ExpBound(w, N) series terms, which halves every round.
func expBalancedKernel(u *big.Int, v, n int, ctx *Ctx) *big.Int {
	pn := ctx.powRead(n)
	r := big.NewInt(1)

	// The representative u*p^v is exact: u < p^(N-v) for reduced input.
	x := new(big.Int).Mul(u, ctx.powRead(v))
	t := new(big.Int)
	for w := v; x.Sign() != 0 && w < n; w *= 2 {
		t.Mod(x, ctx.powRead(2*w))
		if t.Sign() != 0 {
			x.Sub(x, t)
			tv := bignum.Remove(t, t, ctx.p)
			s := expNaive(t, tv, n, ctx)
			r.Mul(r, s)
			r.Mod(r, pn)
		}
	}
	return r
}

// seriesArg returns the representative u*p^v reduced mod q.
func seriesArg(u *big.Int, v int, q *big.Int, ctx *Ctx) *big.Int {
	x := new(big.Int).Mul(u, ctx.powRead(v))
	return x.Mod(x, q)
}

// powerTable returns x^0..x^k reduced mod q.
func powerTable(x *big.Int, k int, q *big.Int) []*big.Int {
	xp := make([]*big.Int, k+1)
	xp[0] = big.NewInt(1)
	for i := 1; i <= k; i++ {
		xp[i] = new(big.Int).Mul(xp[i-1], x)
		xp[i].Mod(xp[i], q)
	}
	return xp
}

// seriesDivFac finishes a series evaluation: given the accumulated
// numerator a and denominator b (a unit times p^w) modulo p^(N+w), it
// strips p^w from both and multiplies by the inverse of the unit part,
// returning the value modulo p^N.
func seriesDivFac(a, b *big.Int, w, n int, ctx *Ctx) *big.Int {
	if w > 0 {
		pw := ctx.powRead(w)
		a = new(big.Int).Quo(a, pw)
		b = new(big.Int).Quo(b, pw)
	}
	pn := ctx.powRead(n)
	inv, err := invUnitMod(b, n, ctx)
	if err != nil {
		panic(err) // b/p^w is a unit by construction
	}
	r := new(big.Int).Mul(a, inv)
	return r.Mod(r, pn)
}

package padic

import (
	"math"
	"math/big"

	"github.com/agbru/padiccalc/internal/bignum"
)

// LogBound returns the least b with b*v - floor(log_p(b)) >= N, given
// ord_p(y) = v: the truncation point of the logarithm series. Since
// ord_p(i) <= floor(log_p(i)) and i*v - floor(log_p(i)) never decreases,
// every i >= b satisfies i*v - ord_p(i) >= N. b is not always the least
// index with that property: for p = 3, v = 1, N = 10 it is 12, while
// every i >= 10 already qualifies. N must be below 2^(word_bits - 2).
func LogBound(v, n int, ctx *Ctx) int {
	b := (n + v - 1) / v
	if b < 1 {
		b = 1
	}
	for b*v-ctx.logFloor(b) < n {
		b++
	}
	return b
}

// logConverges reports whether log converges at x: ord_p(1-x) >= 1 for
// p odd, >= 2 for p = 2.
func logConverges(yv int, ctx *Ctx) bool {
	if ctx.p.Cmp(twoInt) == 0 {
		return yv >= 2
	}
	return yv >= 1
}

// Log sets z to log(x), reduced at z's precision, dispatching on the
// precision: rectangular splitting for moderate N, balanced splitting
// beyond. It returns ErrNotConvergent when ord_p(1-x) is too small.
// z may alias x.
func (z *Elem) Log(x *Elem, ctx *Ctx) error {
	if z.n > 64 {
		return z.logWith(x, ctx, logBalancedKernel)
	}
	return z.logWith(x, ctx, logRectangularKernel)
}

// LogRectangular is Log via baby-step/giant-step evaluation of the
// series, with the per-term p-powers prescaled out.
func (z *Elem) LogRectangular(x *Elem, ctx *Ctx) error {
	return z.logWith(x, ctx, logRectangularKernel)
}

// LogSatoh is Log via Satoh-Skjernaa-Taguchi lifting: since
// ord_p(a^(p^k) - 1) > k, the log of x^(p^k) converges much faster;
// dividing it by p^k recovers log(x) at the cost of k modular p-th
// powers.
func (z *Elem) LogSatoh(x *Elem, ctx *Ctx) error {
	return z.logWith(x, ctx, logSSTKernel)
}

// LogBalanced is Log via multiplicative chunking with doubling
// valuation, the analogue of ExpBalanced.
func (z *Elem) LogBalanced(x *Elem, ctx *Ctx) error {
	return z.logWith(x, ctx, logBalancedKernel)
}

// logKernel computes S = sum_{i>=1} y^i / i mod p^N for y = 1 - x;
// the wrapper negates: log(x) = -S.
type logKernel func(y *big.Int, yv, n int, ctx *Ctx) *big.Int

func (z *Elem) logWith(x *Elem, ctx *Ctx, kern logKernel) error {
	if x.zeroToPrec() || x.v != 0 {
		return ErrNotConvergent
	}
	y := new(big.Int).Sub(oneInt, x.u) // 1 - x, exact
	if y.Sign() == 0 {
		z.SetZero()
		return nil
	}
	yv := bignum.Remove(new(big.Int), y, ctx.p)
	if !logConverges(yv, ctx) {
		return ErrNotConvergent
	}
	if z.n <= 0 {
		z.SetZero()
		return nil
	}

	s := kern(y, yv, z.n, ctx)
	z.u.Set(s)
	z.v = 0
	z.reducePublic(ctx)
	if !z.IsZero() {
		z.Neg(z, ctx)
	}
	return nil
}

// logSeries is the straightforward kernel: each term y^i / i divides
// its p-power out exactly and multiplies by the inverse of the unit
// part of i, working modulo p^(N + g) with g = floor(log_p(M-1)).
// The per-term inversions share one InvState.
func logSeries(y *big.Int, yv, n int, ctx *Ctx) *big.Int {
	m := LogBound(yv, n, ctx)
	g := ctx.logFloor(m - 1)
	q := ctx.powRead(n + g)

	st, err := NewInvState(ctx, n+g)
	if err != nil {
		panic(err)
	}

	yq := new(big.Int).Mod(y, q)
	ypow := new(big.Int).Set(yq)
	sum := new(big.Int)
	term := new(big.Int)
	iv := new(big.Int)
	for i := 1; i < m; i++ {
		e, mi := splitValInt(i, ctx)
		term.Set(ypow)
		if e > 0 {
			term.Quo(term, ctx.powRead(e)) // exact: ord_p(y^i) >= i > e
		}
		if mi != 1 {
			if err := st.Inv(iv, big.NewInt(int64(mi)), ctx); err != nil {
				panic(err)
			}
			term.Mul(term, iv)
		}
		sum.Add(sum, term)
		sum.Mod(sum, q)

		ypow.Mul(ypow, yq)
		ypow.Mod(ypow, q)
	}
	return sum.Mod(sum, ctx.powRead(n))
}

// logRectangularKernel evaluates sum y^i / i in baby-step/giant-step
// form. To keep a single modulus despite the varying p-powers in the
// denominators, every term is prescaled by p^g; the final sum is then
// shifted back down.
func logRectangularKernel(y *big.Int, yv, n int, ctx *Ctx) *big.Int {
	m := LogBound(yv, n, ctx)
	if m <= 4 {
		return logSeries(y, yv, n, ctx)
	}
	g := ctx.logFloor(m - 1)
	q := ctx.powRead(n + 2*g)

	st, err := NewInvState(ctx, n+2*g)
	if err != nil {
		panic(err)
	}

	bs := int(math.Ceil(math.Sqrt(float64(m))))
	yq := new(big.Int).Mod(y, q)
	yp := powerTable(yq, bs, q)

	nb := (m + bs - 1) / bs
	sum := new(big.Int)
	inner := new(big.Int)
	c := new(big.Int)
	iv := new(big.Int)
	for j := nb - 1; j >= 0; j-- {
		hi := bs - 1
		if j*bs+hi > m-1 {
			hi = m - 1 - j*bs
		}
		inner.SetInt64(0)
		for k := hi; k >= 0; k-- {
			i := j*bs + k
			if i == 0 {
				continue
			}
			e, mi := splitValInt(i, ctx)
			// c = p^(g-e) / m_i, the prescaled coefficient of y^i.
			if err := st.Inv(iv, big.NewInt(int64(mi)), ctx); err != nil {
				panic(err)
			}
			c.Mul(iv, ctx.powRead(g-e))
			c.Mod(c, q)
			c.Mul(c, yp[k])
			inner.Add(inner, c)
			inner.Mod(inner, q)
		}
		if j == nb-1 {
			sum.Set(inner)
			continue
		}
		sum.Mul(sum, yp[bs])
		sum.Add(sum, inner)
		sum.Mod(sum, q)
	}
	// sum = p^g * S; shift back and reduce.
	sum.Quo(sum, ctx.powRead(g))
	return sum.Mod(sum, ctx.powRead(n))
}

// logSSTKernel lifts x = 1 - y by k-fold p-th powering, runs the plain
// series on the much smaller 1 - x^(p^k), and divides by p^k.
func logSSTKernel(y *big.Int, yv, n int, ctx *Ctx) *big.Int {
	k := int(math.Sqrt(float64(n)))
	if k < 1 || !ctx.wordSized() {
		k = 1
	}

	nw := n + k
	// Guard for the inner series at the lifted valuation.
	mw := LogBound(yv+k, nw, ctx)
	gw := ctx.logFloor(mw - 1)
	q := ctx.powRead(nw + gw)

	x := new(big.Int).Sub(oneInt, y)
	x.Mod(x, q)
	e := new(big.Int).Exp(ctx.p, big.NewInt(int64(k)), nil)
	x = bignum.PowMod(x, e, q)

	y2 := new(big.Int).Sub(oneInt, x)
	y2.Mod(y2, q)
	if y2.Sign() == 0 {
		return new(big.Int)
	}
	yv2 := bignum.Remove(new(big.Int), y2, ctx.p)

	s := logSeries(y2, yv2, nw, ctx)
	// ord_p(log x^(p^k)) >= k + 1, so the shift is exact.
	s.Quo(s, ctx.powRead(k))
	return s.Mod(s, ctx.powRead(n))
}

// logBalancedKernel factors x = prod (1 + u_j) with ord_p(u_j)
// doubling, accumulating the series of each factor: after dividing a
// factor out, the remainder is congruent to 1 modulo the next power.
func logBalancedKernel(y *big.Int, yv, n int, ctx *Ctx) *big.Int {
	// Working guard: the first chunk has the smallest valuation and
	// therefore the largest series; its guard dominates.
	g := ctx.logFloor(LogBound(yv, n, ctx) - 1)
	w := ctx.powRead(n + g)

	z := new(big.Int).Sub(oneInt, y) // x
	z.Mod(z, w)
	sum := new(big.Int)
	u := new(big.Int)
	for wv := yv; wv < n; wv *= 2 {
		u.Sub(z, oneInt)
		u.Mod(u, ctx.powRead(min(2*wv, n+g)))
		if u.Sign() != 0 {
			uv := bignum.Remove(new(big.Int), u, ctx.p)
			// The factor is 1 + u = 1 - (-u).
			s := logSeries(new(big.Int).Neg(u), uv, n, ctx)
			sum.Add(sum, s)

			c := new(big.Int).Add(oneInt, u)
			ci, err := invUnitMod(c, n+g, ctx)
			if err != nil {
				panic(err) // c = 1 mod p
			}
			z.Mul(z, ci)
			z.Mod(z, w)
		}
	}
	return sum.Mod(sum, ctx.powRead(n))
}

// splitValInt splits i into p^e * m with m coprime to p.
func splitValInt(i int, ctx *Ctx) (e, m int) {
	if !ctx.p.IsUint64() {
		return 0, i
	}
	p := ctx.p.Uint64()
	u := uint64(i)
	for u%p == 0 {
		u /= p
		e++
	}
	return e, int(u)
}

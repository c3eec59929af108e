package padic

import "math/big"

// InvState carries the precomputed doubling schedule and scratch
// integers for repeated Hensel inversions at a fixed target precision.
// The exp and log inner loops invert many units at the same modulus;
// reusing a state avoids reallocating the p^(a_i) table every call.
//
// An InvState is mutated on every call and must not be shared between
// goroutines; keep one per logical work stream.
type InvState struct {
	prec int
	a    []int
	pow  []*big.Int
	t    *big.Int
	s    *big.Int
}

// NewInvState prepares a state for inversions modulo p^prec. The
// schedule is a_0 = prec, a_{i+1} = ceil(a_i / 2), ..., 1; the powers
// p^(a_i) are resolved through the context cache once.
func NewInvState(ctx *Ctx, prec int) (*InvState, error) {
	if prec < 1 {
		return nil, ErrInvalidArg
	}
	a := []int{prec}
	for a[len(a)-1] > 1 {
		a = append(a, (a[len(a)-1]+1)/2)
	}
	pow := make([]*big.Int, len(a))
	for i, e := range a {
		pow[i] = ctx.powRead(e)
	}
	return &InvState{
		prec: prec,
		a:    a,
		pow:  pow,
		t:    new(big.Int),
		s:    new(big.Int),
	}, nil
}

// Prec returns the target precision of the state.
func (st *InvState) Prec() int { return st.prec }

// Inv sets z to u^(-1) mod p^prec by Hensel doubling: starting from
// the inverse modulo p, each step x <- x*(2 - u*x) doubles the number
// of valid digits. u must be a unit; ErrNotUnit is returned otherwise.
// z and u may alias.
func (st *InvState) Inv(z, u *big.Int, ctx *Ctx) error {
	n := len(st.a)
	x := st.t
	x.Mod(u, ctx.p)
	if x.ModInverse(x, ctx.p) == nil {
		return ErrNotUnit
	}

	for i := n - 2; i >= 0; i-- {
		s := st.s
		s.Mul(u, x)
		s.Sub(twoInt, s)
		s.Mul(x, s)
		x.Mod(s, st.pow[i])
	}
	z.Set(x)
	return nil
}

// invUnitMod returns u^(-1) mod p^prec as a fresh integer, building a
// transient state. Kernels that invert in a loop hold an InvState
// instead.
func invUnitMod(u *big.Int, prec int, ctx *Ctx) (*big.Int, error) {
	st, err := NewInvState(ctx, prec)
	if err != nil {
		return nil, err
	}
	z := new(big.Int)
	if err := st.Inv(z, u, ctx); err != nil {
		return nil, err
	}
	return z, nil
}

// Inv sets z to x^(-1), reduced at z's precision. For x = u*p^v at
// precision N the result is inv(u) mod p^(N+v) at valuation -v; when
// v < -N there are no significant digits left and ErrPrecisionLost is
// returned. ErrDivByZero is returned when x is zero to its precision.
// z may alias x.
func (z *Elem) Inv(x *Elem, ctx *Ctx) error {
	if x.zeroToPrec() {
		return ErrDivByZero
	}
	if x.v < -z.n {
		return ErrPrecisionLost
	}
	m := z.n + x.v
	if m <= 0 {
		z.SetZero()
		return nil
	}
	w, err := invUnitMod(x.u, m, ctx)
	if err != nil {
		return err
	}
	z.u, z.v = w, -x.v
	z.reduce(ctx)
	return nil
}

var twoInt = big.NewInt(2)

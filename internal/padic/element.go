package padic

import (
	"fmt"
	"math/big"
)

// DefaultPrec is the absolute precision of elements created by New.
const DefaultPrec = 20

// Elem is an element of Q_p: the class of u*p^v modulo p^N. The zero
// value is not usable; create elements with New or NewWithPrec.
//
// An Elem owns its unit integer exclusively. It is safe to read a
// reduced element from several goroutines, but mutation requires
// exclusive access.
type Elem struct {
	u *big.Int
	v int
	n int
}

// New creates a zero element with the default precision.
func New() *Elem { return NewWithPrec(DefaultPrec) }

// NewWithPrec creates a zero element with absolute precision prec.
func NewWithPrec(prec int) *Elem {
	return &Elem{u: new(big.Int), n: prec}
}

// Unit returns the unit part of x. The caller must not mutate it.
func (x *Elem) Unit() *big.Int { return x.u }

// Valuation returns the valuation of x. For the zero element the
// valuation is 0 by convention.
func (x *Elem) Valuation() int { return x.v }

// Prec returns the absolute precision of x.
func (x *Elem) Prec() int { return x.n }

// SetPrec swaps the declared absolute precision of x. The stored digits
// are not re-reduced; call Reduce to normalize at the new precision.
func (x *Elem) SetPrec(prec int) { x.n = prec }

// RelPrec returns the relative precision N - v. A value <= 0 means x is
// zero to the tracked precision.
func (x *Elem) RelPrec() int { return x.n - x.v }

// IsZero reports whether x is exactly the zero class (u = 0).
func (x *Elem) IsZero() bool { return x.u.Sign() == 0 }

// zeroToPrec reports whether x is zero to its own tracked precision.
func (x *Elem) zeroToPrec() bool { return x.u.Sign() == 0 || x.v >= x.n }

// IsOne reports whether x is the class of 1, assuming x is reduced.
func (x *Elem) IsOne() bool {
	return x.v == 0 && x.u.Cmp(oneInt) == 0
}

// Equal reports whether x and y are the same class. Both are assumed
// reduced; precision is not compared.
func (x *Elem) Equal(y *Elem) bool {
	return x.v == y.v && x.u.Cmp(y.u) == 0
}

// Set copies the value of y into z, leaving z's precision unchanged,
// and re-reduces at z's precision.
func (z *Elem) Set(y *Elem, ctx *Ctx) *Elem {
	if z != y {
		z.u.Set(y.u)
		z.v = y.v
	}
	z.reducePublic(ctx)
	return z
}

// SetZero sets z to zero, keeping its precision.
func (z *Elem) SetZero() *Elem {
	z.u.SetInt64(0)
	z.v = 0
	return z
}

// SetOne sets z to one, reduced at z's precision.
func (z *Elem) SetOne(ctx *Ctx) *Elem {
	z.u.SetInt64(1)
	z.v = 0
	z.reduce(ctx)
	return z
}

// DebugString renders the raw triple as "(u v N)".
func (x *Elem) DebugString() string {
	return fmt.Sprintf("(%s %d %d)", x.u.String(), x.v, x.n)
}

var oneInt = big.NewInt(1)

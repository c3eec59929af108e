package padic

import (
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Fprint writes x to w in the context's print mode and returns the
// number of bytes written.
func (x *Elem) Fprint(w io.Writer, ctx *Ctx) (int, error) {
	return io.WriteString(w, x.String(ctx))
}

// String renders x in the context's print mode.
//
// Terse prints the rational representative built from the nonnegative
// unit: "23", or "12/7" for negative valuation. Series prints the
// base-p expansion "d_v*p^v + ... + d_k*p^k" with digits in [0, p).
// ValUnit prints "u*p^v", simplified when u or v is trivial.
func (x *Elem) String(ctx *Ctx) string {
	switch ctx.mode {
	case Series:
		return x.stringSeries(ctx)
	case ValUnit:
		return x.stringValUnit(ctx)
	default:
		return x.stringTerse(ctx)
	}
}

func (x *Elem) stringTerse(ctx *Ctx) string {
	if x.zeroToPrec() {
		return "0"
	}
	if x.v >= 0 {
		n := new(big.Int).Mul(x.u, ctx.powRead(x.v))
		return n.String()
	}
	return x.u.String() + "/" + ctx.powRead(-x.v).String()
}

func (x *Elem) stringValUnit(ctx *Ctx) string {
	if x.zeroToPrec() {
		return "0"
	}
	p := ctx.p.String()
	one := x.u.Cmp(oneInt) == 0
	switch {
	case x.v == 0:
		return x.u.String()
	case one && x.v == 1:
		return p
	case one:
		return fmt.Sprintf("%s^%d", p, x.v)
	case x.v == 1:
		return fmt.Sprintf("%s*%s", x.u.String(), p)
	default:
		return fmt.Sprintf("%s*%s^%d", x.u.String(), p, x.v)
	}
}

func (x *Elem) stringSeries(ctx *Ctx) string {
	if x.zeroToPrec() {
		return "0"
	}

	var (
		terms []string
		d, t  big.Int
		p     = ctx.p.String()
	)
	t.Set(x.u)
	for i := x.v; t.Sign() != 0; i++ {
		t.QuoRem(&t, ctx.p, &d)
		if d.Sign() == 0 {
			continue
		}
		switch {
		case i == 0:
			terms = append(terms, d.String())
		case i == 1:
			terms = append(terms, d.String()+"*"+p)
		default:
			terms = append(terms, fmt.Sprintf("%s*%s^%d", d.String(), p, i))
		}
	}
	return strings.Join(terms, " + ")
}

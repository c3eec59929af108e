package padic

import (
	"fmt"
	"math/big"
)

// PrintMode selects how an element is rendered by Fprint and String.
type PrintMode int

const (
	// Terse prints the unique rational representative, e.g. "12/7" or "23".
	Terse PrintMode = iota
	// Series prints the base-p expansion, e.g. "5*7^-1 + 1".
	Series
	// ValUnit prints the unit/valuation decomposition, e.g. "2*7^2".
	ValUnit
)

// String returns the lowercase name of the print mode.
func (m PrintMode) String() string {
	switch m {
	case Terse:
		return "terse"
	case Series:
		return "series"
	case ValUnit:
		return "valunit"
	}
	return fmt.Sprintf("PrintMode(%d)", int(m))
}

// ParsePrintMode parses a print mode name as accepted on the command
// line. It returns ErrInvalidArg for unknown names.
func ParsePrintMode(s string) (PrintMode, error) {
	switch s {
	case "terse":
		return Terse, nil
	case "series":
		return Series, nil
	case "valunit", "val-unit", "val_unit":
		return ValUnit, nil
	}
	return 0, fmt.Errorf("%w: unknown print mode %q", ErrInvalidArg, s)
}

// maxWordPrime is the exclusive upper bound on primes for which the
// context keeps a floating-point reciprocal; from 2^53 on the
// reciprocal would not be exact enough to be useful.
const maxWordPrime = 1 << 53

// Ctx holds the shared, read-mostly state for arithmetic in Q_p: the
// prime, a dense cache of its powers, and the active print mode.
//
// The power cache p^min..p^max is populated by NewCtx and never
// mutated afterwards, so a Ctx may be shared by concurrent readers.
type Ctx struct {
	p    *big.Int
	pinv float64 // 1/p when p is word-sized, else 0
	pow  []*big.Int
	min  int
	max  int
	mode PrintMode
}

// NewCtx creates a context for the prime p with powers p^min..p^max
// precomputed. p is assumed prime and is not verified here. It returns
// ErrInvalidArg when p < 2, min or max is negative, min > max, or mode
// is not one of the recognized values.
func NewCtx(p *big.Int, min, max int, mode PrintMode) (*Ctx, error) {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("%w: prime must be >= 2", ErrInvalidArg)
	}
	if min < 0 || max < 0 || min > max {
		return nil, fmt.Errorf("%w: power cache range [%d, %d]", ErrInvalidArg, min, max)
	}
	if mode != Terse && mode != Series && mode != ValUnit {
		return nil, fmt.Errorf("%w: print mode %d", ErrInvalidArg, int(mode))
	}

	ctx := &Ctx{
		p:    new(big.Int).Set(p),
		min:  min,
		max:  max,
		mode: mode,
	}
	if p.IsUint64() && p.Uint64() < maxWordPrime {
		ctx.pinv = 1 / float64(p.Uint64())
	}

	ctx.pow = make([]*big.Int, max-min+1)
	t := new(big.Int).Exp(ctx.p, big.NewInt(int64(min)), nil)
	for i := range ctx.pow {
		ctx.pow[i] = new(big.Int).Set(t)
		t.Mul(t, ctx.p)
	}
	return ctx, nil
}

// Prime returns the prime of the context. The caller must not mutate it.
func (c *Ctx) Prime() *big.Int { return c.p }

// PrintMode returns the active print mode.
func (c *Ctx) PrintMode() PrintMode { return c.mode }

// SetPrintMode changes the print mode used by Fprint and String.
func (c *Ctx) SetPrintMode(m PrintMode) error {
	if m != Terse && m != Series && m != ValUnit {
		return fmt.Errorf("%w: print mode %d", ErrInvalidArg, int(m))
	}
	c.mode = m
	return nil
}

// wordSized reports whether p fits comfortably in a machine word; the
// exp/log truncation bounds use the sharper word formula in that case.
func (c *Ctx) wordSized() bool { return c.pinv != 0 }

// PowUI returns p^e together with an ownership flag. For e inside the
// cached range the returned value is the cache entry itself: the
// caller must treat it as read-only and must not retain it past the
// context's lifetime (owned = false). Outside the range a fresh value
// is allocated and handed to the caller (owned = true).
//
// e must be nonnegative.
func (c *Ctx) PowUI(e int) (pe *big.Int, owned bool) {
	if e < 0 {
		panic("padic: PowUI with negative exponent")
	}
	if e >= c.min && e <= c.max {
		return c.pow[e-c.min], false
	}
	return new(big.Int).Exp(c.p, big.NewInt(int64(e)), nil), true
}

// powRead returns p^e for read-only use, preferring the cache.
func (c *Ctx) powRead(e int) *big.Int {
	pe, _ := c.PowUI(e)
	return pe
}

// logFloor returns floor(log_p(n)) for n >= 1.
func (c *Ctx) logFloor(n int) int {
	if n < 1 {
		return 0
	}
	if !c.p.IsUint64() {
		// p exceeds a word, so p > n for any int argument.
		return 0
	}
	p := c.p.Uint64()
	k := 0
	for m := uint64(n) / p; m > 0; m /= p {
		k++
	}
	return k
}

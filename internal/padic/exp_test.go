package padic

import (
	"math/big"
	"math/rand"
	"testing"
)

// expReference evaluates the truncated exponential series of x over
// the rationals and converts it at precision prec. It is deliberately
// independent of the kernel under test.
func expReference(t *testing.T, x *big.Int, terms, prec int, ctx *Ctx) *Elem {
	t.Helper()
	sum := new(big.Rat)
	pow := new(big.Rat).SetInt64(1)
	fac := new(big.Rat).SetInt64(1)
	xr := new(big.Rat).SetInt(x)
	for i := 0; i < terms; i++ {
		if i > 0 {
			pow.Mul(pow, xr)
			fac.Mul(fac, new(big.Rat).SetInt64(int64(i)))
		}
		term := new(big.Rat).Quo(pow, fac)
		sum.Add(sum, term)
	}
	return NewWithPrec(prec).SetRat(sum, ctx)
}

// TestExp_Scenario_FortyNineModSeven pins the concrete scenario:
// exp(49) in Q_7 at N = 10 equals the series truncated at ExpBound,
// reduced mod 7^10.
func TestExp_Scenario_FortyNineModSeven(t *testing.T) {
	t.Parallel()
	ctx := mustCtx(t, 7, 0, 60)

	x := NewWithPrec(10).SetInt64(49, ctx)
	z := NewWithPrec(10)
	if err := z.Exp(x, ctx); err != nil {
		t.Fatal(err)
	}
	checkReduced(t, z, ctx)

	terms := ExpBound(2, 10, ctx)
	want := expReference(t, big.NewInt(49), terms, 10, ctx)
	if !z.Equal(want) {
		t.Errorf("exp(49) = %s, want %s", z.DebugString(), want.DebugString())
	}
}

// TestExp_Scenario_TwoAdicDomain pins the p = 2 domain boundary:
// exp(4) converges, exp(2) does not.
func TestExp_Scenario_TwoAdicDomain(t *testing.T) {
	t.Parallel()
	ctx := mustCtx(t, 2, 0, 60)

	x := NewWithPrec(10).SetInt64(4, ctx)
	z := NewWithPrec(10)
	if err := z.Exp(x, ctx); err != nil {
		t.Fatalf("exp(4) in Q_2 should converge: %v", err)
	}

	terms := ExpBound(2, 10, ctx)
	want := expReference(t, big.NewInt(4), terms, 10, ctx)
	if !z.Equal(want) {
		t.Errorf("exp(4) = %s, want %s", z.DebugString(), want.DebugString())
	}

	y := NewWithPrec(10).SetInt64(2, ctx)
	if err := NewWithPrec(10).Exp(y, ctx); err != ErrNotConvergent {
		t.Errorf("exp(2) in Q_2: error = %v, want ErrNotConvergent", err)
	}
}

func TestExp_DomainOdd(t *testing.T) {
	t.Parallel()
	ctx := mustCtx(t, 7, 0, 60)

	// Units are outside the domain for p odd.
	x := NewWithPrec(10).SetInt64(3, ctx)
	if err := NewWithPrec(10).Exp(x, ctx); err != ErrNotConvergent {
		t.Errorf("exp(3) in Q_7: error = %v, want ErrNotConvergent", err)
	}

	// exp(0) = 1.
	z := NewWithPrec(10)
	if err := z.Exp(NewWithPrec(10), ctx); err != nil {
		t.Fatal(err)
	}
	if !z.IsOne() {
		t.Errorf("exp(0) = %s, want 1", z.DebugString())
	}
}

func TestExp_MatchesReference(t *testing.T) {
	t.Parallel()
	ctx := mustCtx(t, 5, 0, 80)

	for _, n := range []int64{5, 10, 50, 75, 625, 30} {
		x := NewWithPrec(12).SetInt64(n, ctx)
		if !expConverges(x.Valuation(), ctx) {
			continue
		}
		z := NewWithPrec(12)
		if err := z.Exp(x, ctx); err != nil {
			t.Fatalf("Exp(%d): %v", n, err)
		}
		terms := ExpBound(x.Valuation(), 12, ctx)
		want := expReference(t, big.NewInt(n), terms, 12, ctx)
		if !z.Equal(want) {
			t.Errorf("exp(%d) = %s, want %s", n, z.DebugString(), want.DebugString())
		}
	}
}

// TestExp_CrossAlgorithmAgreement verifies that the three variants
// produce identical reduced results across random convergent inputs
// and precisions.
func TestExp_CrossAlgorithmAgreement(t *testing.T) {
	t.Parallel()

	for _, p := range []int64{2, 3, 7, 101} {
		ctx := mustCtx(t, p, 0, 120)
		rng := rand.New(rand.NewSource(p))
		minV := 1
		if p == 2 {
			minV = 2
		}

		for i := 0; i < 40; i++ {
			v := minV + rng.Intn(3)
			prec := v + 2 + rng.Intn(26)
			x := NewWithPrec(prec)
			x.randWithVal(rng, v, ctx)

			a := NewWithPrec(prec)
			b := NewWithPrec(prec)
			c := NewWithPrec(prec)
			if err := a.Exp(x, ctx); err != nil {
				t.Fatalf("Exp(%s): %v", x.DebugString(), err)
			}
			if err := b.ExpRectangular(x, ctx); err != nil {
				t.Fatalf("ExpRectangular(%s): %v", x.DebugString(), err)
			}
			if err := c.ExpBalanced(x, ctx); err != nil {
				t.Fatalf("ExpBalanced(%s): %v", x.DebugString(), err)
			}
			if !a.Equal(b) || !a.Equal(c) {
				t.Fatalf("variants disagree at p=%d prec=%d x=%s:\n  exp  = %s\n  rect = %s\n  bal  = %s",
					p, prec, x.DebugString(), a.DebugString(), b.DebugString(), c.DebugString())
			}

			// The naive kernel is the reference the others refine.
			naive := expNaive(x.Unit(), x.Valuation(), prec, ctx)
			if naive.Cmp(a.Unit()) != 0 {
				t.Fatalf("naive kernel disagrees at p=%d prec=%d x=%s", p, prec, x.DebugString())
			}
		}
	}
}

func TestExpBound_WordFormula(t *testing.T) {
	t.Parallel()
	ctx := mustCtx(t, 7, 0, 20)

	cases := []struct {
		v, n, want int
	}{
		{2, 10, 6},  // ceil(59/11)
		{1, 10, 12}, // ceil(59/5)
		{1, 1, 1},   // ceil(5/5)
	}
	for _, tc := range cases {
		if got := ExpBound(tc.v, tc.n, ctx); got != tc.want {
			t.Errorf("ExpBound(%d, %d) = %d, want %d", tc.v, tc.n, got, tc.want)
		}
	}
}

func TestExpBound_LargePrime(t *testing.T) {
	t.Parallel()

	p, _ := new(big.Int).SetString("340282366920938463463374607431768211507", 10)
	ctx, err := NewCtx(p, 0, 2, Terse)
	if err != nil {
		t.Fatal(err)
	}
	// For p beyond a word the bound degenerates to ceil(N/v).
	if got := ExpBound(2, 11, ctx); got != 6 {
		t.Errorf("ExpBound(2, 11) = %d, want 6", got)
	}
}

package padic

import (
	"math/big"
	"testing"
)

func elem(t *testing.T, ctx *Ctx, prec int, num, den int64) *Elem {
	t.Helper()
	return NewWithPrec(prec).SetRat(big.NewRat(num, den), ctx)
}

func TestAdd_KnownValues(t *testing.T) {
	t.Parallel()
	ctx := mustCtx(t, 7, 0, 40)

	cases := []struct {
		name   string
		x, y   int64
		want   int64
	}{
		{"units", 3, 5, 8},
		{"carry into valuation", 3, 4, 7},
		{"zero left", 0, 13, 13},
		{"zero right", 13, 0, 13},
		{"mixed valuation", 49, 3, 52},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			x := elem(t, ctx, 10, tc.x, 1)
			y := elem(t, ctx, 10, tc.y, 1)
			z := NewWithPrec(10).Add(x, y, ctx)
			checkReduced(t, z, ctx)

			got, err := z.GetBigInt(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if got.Int64() != tc.want {
				t.Errorf("%d + %d = %s, want %d", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestSub_CancellationRaisesValuation(t *testing.T) {
	t.Parallel()
	ctx := mustCtx(t, 7, 0, 40)

	// 52 - 3 = 49: the difference has valuation 2 and loses two digits
	// of relative precision while keeping N.
	x := elem(t, ctx, 10, 52, 1)
	y := elem(t, ctx, 10, 3, 1)
	z := NewWithPrec(10).Sub(x, y, ctx)
	checkReduced(t, z, ctx)

	if z.Valuation() != 2 {
		t.Errorf("valuation = %d, want 2", z.Valuation())
	}
	if z.Prec() != 10 {
		t.Errorf("precision = %d, want 10", z.Prec())
	}
	if z.RelPrec() != 8 {
		t.Errorf("relative precision = %d, want 8", z.RelPrec())
	}
}

func TestNeg_AdditiveInverse(t *testing.T) {
	t.Parallel()
	ctx := mustCtx(t, 7, 0, 40)

	for _, n := range []int64{1, 3, 49, 52, 1000} {
		x := elem(t, ctx, 10, n, 1)
		nx := NewWithPrec(10).Neg(x, ctx)
		checkReduced(t, nx, ctx)

		sum := NewWithPrec(10).Add(x, nx, ctx)
		if !sum.IsZero() {
			t.Errorf("%d + (-%d) = %s, want 0", n, n, sum.DebugString())
		}
	}
}

func TestMul_NegativeValuations(t *testing.T) {
	t.Parallel()
	ctx := mustCtx(t, 7, 0, 40)

	// (3/7) * (7/3) = 1. The unit of y is known only mod 7^9, so the
	// product is determined to min(10+1, 10-1) = 9 digits.
	x := elem(t, ctx, 10, 3, 7)
	y := elem(t, ctx, 10, 7, 3)
	z := NewWithPrec(9).Mul(x, y, ctx)
	if !z.IsOne() {
		t.Errorf("(3/7)*(7/3) = %s, want 1", z.DebugString())
	}
}

func TestShift_Valuation(t *testing.T) {
	t.Parallel()
	ctx := mustCtx(t, 7, 0, 40)

	x := elem(t, ctx, 10, 3, 1)
	z := NewWithPrec(10).Shift(x, 2, ctx)
	checkReduced(t, z, ctx)
	if z.Valuation() != 2 || z.Unit().Int64() != 3 {
		t.Errorf("shift(3, 2) = %s, want 3*7^2", z.DebugString())
	}

	down := NewWithPrec(10).Shift(z, -2, ctx)
	if !down.Equal(x) {
		t.Errorf("shift back = %s, want %s", down.DebugString(), x.DebugString())
	}
}

func TestShift_PastPrecisionIsZero(t *testing.T) {
	t.Parallel()
	ctx := mustCtx(t, 7, 0, 40)

	x := elem(t, ctx, 10, 3, 1)
	z := NewWithPrec(10).Shift(x, 10, ctx)
	if !z.IsZero() {
		t.Errorf("shift past precision = %s, want 0", z.DebugString())
	}
}

func TestDiv_KnownValues(t *testing.T) {
	t.Parallel()
	ctx := mustCtx(t, 7, 0, 40)

	// 98 / 14 = 7.
	x := elem(t, ctx, 10, 98, 1)
	y := elem(t, ctx, 10, 14, 1)
	z := NewWithPrec(10)
	if err := z.Div(x, y, ctx); err != nil {
		t.Fatal(err)
	}
	checkReduced(t, z, ctx)
	got, err := z.GetBigInt(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Int64() != 7 {
		t.Errorf("98/14 = %s, want 7", got)
	}
}

func TestDiv_ByZero(t *testing.T) {
	t.Parallel()
	ctx := mustCtx(t, 7, 0, 40)

	x := elem(t, ctx, 10, 3, 1)
	zero := NewWithPrec(10)
	if err := NewWithPrec(10).Div(x, zero, ctx); err != ErrDivByZero {
		t.Errorf("division by zero error = %v, want ErrDivByZero", err)
	}
}

func TestPow_MatchesRepeatedMul(t *testing.T) {
	t.Parallel()
	ctx := mustCtx(t, 7, 0, 60)

	x := elem(t, ctx, 10, 10, 1)
	want := NewWithPrec(10).SetOne(ctx)
	for e := 0; e <= 6; e++ {
		z := NewWithPrec(10)
		if err := z.Pow(x, e, ctx); err != nil {
			t.Fatalf("Pow(x, %d): %v", e, err)
		}
		if !z.Equal(want) {
			t.Errorf("x^%d = %s, want %s", e, z.DebugString(), want.DebugString())
		}
		want.Mul(want, x, ctx)
	}
}

func TestPow_NegativeExponent(t *testing.T) {
	t.Parallel()
	ctx := mustCtx(t, 7, 0, 60)

	x := elem(t, ctx, 10, 3, 1)
	z := NewWithPrec(10)
	if err := z.Pow(x, -2, ctx); err != nil {
		t.Fatal(err)
	}

	// z * x^2 = 1.
	x2 := NewWithPrec(10)
	if err := x2.Pow(x, 2, ctx); err != nil {
		t.Fatal(err)
	}
	prod := NewWithPrec(10).Mul(z, x2, ctx)
	if !prod.IsOne() {
		t.Errorf("x^-2 * x^2 = %s, want 1", prod.DebugString())
	}
}

func TestAdd_ResultPrecisionRules(t *testing.T) {
	t.Parallel()
	ctx := mustCtx(t, 7, 0, 40)

	// The result adopts the receiver's precision regardless of the
	// operands' precision.
	x := elem(t, ctx, 20, 123456, 1)
	y := elem(t, ctx, 5, 1, 1)
	z := NewWithPrec(3).Add(x, y, ctx)
	checkReduced(t, z, ctx)
	if z.Prec() != 3 {
		t.Errorf("result precision = %d, want 3", z.Prec())
	}
	got, err := z.GetBigInt(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := new(big.Int).Mod(big.NewInt(123457), ctx.powRead(3))
	if got.Cmp(want) != 0 {
		t.Errorf("got %s, want %s", got, want)
	}
}

package padic

import (
	"math/big"
	"testing"
)

// ordFactorial computes ord_p(n!) directly from the definition.
func ordFactorial(n, p int64) int64 {
	var ord int64
	for i := int64(2); i <= n; i++ {
		for m := i; m%p == 0; m /= p {
			ord++
		}
	}
	return ord
}

func TestValFac_AgainstDefinition(t *testing.T) {
	t.Parallel()

	for _, p := range []int64{2, 3, 5, 7, 101} {
		ctx := mustCtx(t, p, 0, 4)
		for n := int64(0); n <= 300; n++ {
			want := ordFactorial(n, p)
			if got := ValFac(uint64(n), ctx); int64(got) != want {
				t.Fatalf("ValFac(%d) with p=%d: got %d, want %d", n, p, got, want)
			}
		}
	}
}

func TestValFacBig_MatchesWordVersion(t *testing.T) {
	t.Parallel()

	for _, p := range []int64{2, 7} {
		ctx := mustCtx(t, p, 0, 4)
		for _, n := range []int64{0, 1, 7, 49, 1000, 123456} {
			want := int64(ValFac(uint64(n), ctx))
			got := ValFacBig(big.NewInt(n), ctx)
			if got.Int64() != want {
				t.Errorf("ValFacBig(%d) with p=%d: got %s, want %d", n, p, got, want)
			}
		}
	}
}

func TestValFac_PrimeLargerThanN(t *testing.T) {
	t.Parallel()
	ctx := mustCtx(t, 101, 0, 4)

	if got := ValFac(100, ctx); got != 0 {
		t.Errorf("ValFac(100) with p=101 = %d, want 0", got)
	}
	if got := ValFac(101, ctx); got != 1 {
		t.Errorf("ValFac(101) with p=101 = %d, want 1", got)
	}
}

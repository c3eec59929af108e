package padic

import (
	"fmt"
	"math/big"
)

// ExampleNewCtx demonstrates creating a context and printing the same
// element in the three print modes.
func ExampleNewCtx() {
	ctx, _ := NewCtx(big.NewInt(7), 0, 40, Terse)

	x := New().SetBigInt(big.NewInt(52), ctx)
	fmt.Println(x.String(ctx))

	ctx.SetPrintMode(Series)
	fmt.Println(x.String(ctx))

	ctx.SetPrintMode(ValUnit)
	fmt.Println(x.String(ctx))
	// Output:
	// 52
	// 3 + 1*7^2
	// 52
}

// ExampleElem_Inv computes 2^-1 in Q_7 at precision 5.
func ExampleElem_Inv() {
	ctx, _ := NewCtx(big.NewInt(7), 0, 20, Terse)

	x := NewWithPrec(5).SetInt64(2, ctx)
	z := NewWithPrec(5)
	if err := z.Inv(x, ctx); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(z.String(ctx))
	// Output:
	// 8404
}

// ExampleElem_SetRat shows the series expansion of a rational with a
// pole at p.
func ExampleElem_SetRat() {
	ctx, _ := NewCtx(big.NewInt(7), 0, 40, Series)

	x := NewWithPrec(3).SetRat(big.NewRat(12, 7), ctx)
	fmt.Println(x.String(ctx))
	// Output:
	// 5*7^-1 + 1
}

// ExampleElem_Exp checks the domain of convergence in Q_2.
func ExampleElem_Exp() {
	ctx, _ := NewCtx(big.NewInt(2), 0, 40, Terse)

	z := NewWithPrec(10)
	err := z.Exp(NewWithPrec(10).SetInt64(2, ctx), ctx)
	fmt.Println(err)

	err = z.Exp(NewWithPrec(10).SetInt64(4, ctx), ctx)
	fmt.Println(err)
	// Output:
	// padic: series does not converge
	// <nil>
}

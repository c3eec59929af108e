// Package tui implements the interactive p-adic explorer: a small
// bubbletea program that evaluates one operation per line and shows
// the result in all three print modes.
package tui

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/agbru/padiccalc/internal/padic"
)

// evaluate parses a single explorer line ("exp 49", "div 3 5",
// "sqrt 6", ...) and runs it against the context at the given
// precision. It returns a rendering of the result in every print mode.
func evaluate(line string, pctx *padic.Ctx, prec int) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty input")
	}
	op := fields[0]
	args := fields[1:]

	operand := func(i int) (*padic.Elem, error) {
		if i >= len(args) {
			return nil, fmt.Errorf("%s needs %d operand(s)", op, i+1)
		}
		q, ok := new(big.Rat).SetString(args[i])
		if !ok {
			return nil, fmt.Errorf("cannot parse operand %q", args[i])
		}
		return padic.NewWithPrec(prec).SetRat(q, pctx), nil
	}

	z := padic.NewWithPrec(prec)
	var err error
	switch op {
	case "add", "sub", "mul", "div":
		var x, y *padic.Elem
		if x, err = operand(0); err != nil {
			return "", err
		}
		if y, err = operand(1); err != nil {
			return "", err
		}
		switch op {
		case "add":
			z.Add(x, y, pctx)
		case "sub":
			z.Sub(x, y, pctx)
		case "mul":
			z.Mul(x, y, pctx)
		case "div":
			err = z.Div(x, y, pctx)
		}
	case "neg", "inv", "exp", "log", "teich", "sqrt":
		var x *padic.Elem
		if x, err = operand(0); err != nil {
			return "", err
		}
		switch op {
		case "neg":
			z.Neg(x, pctx)
		case "inv":
			err = z.Inv(x, pctx)
		case "exp":
			err = z.Exp(x, pctx)
		case "log":
			err = z.Log(x, pctx)
		case "teich":
			err = z.Teichmuller(x, pctx)
		case "sqrt":
			if !z.Sqrt(x, pctx) {
				err = padic.ErrNotASquare
			}
		}
	default:
		return "", fmt.Errorf("unknown operation %q", op)
	}
	if err != nil {
		return "", err
	}
	return renderAllModes(z, pctx), nil
}

// renderAllModes renders x in the three print modes without disturbing
// the context's configured mode.
func renderAllModes(x *padic.Elem, pctx *padic.Ctx) string {
	saved := pctx.PrintMode()
	defer pctx.SetPrintMode(saved)

	var sb strings.Builder
	for _, m := range []padic.PrintMode{padic.Terse, padic.Series, padic.ValUnit} {
		pctx.SetPrintMode(m)
		fmt.Fprintf(&sb, "%-8s %s\n", m.String()+":", x.String(pctx))
	}
	return strings.TrimRight(sb.String(), "\n")
}

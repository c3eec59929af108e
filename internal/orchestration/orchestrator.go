package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/padiccalc/internal/errors"
	"github.com/agbru/padiccalc/internal/padic"
)

// Variant is a named implementation of a kernel operation. Apply
// computes the operation of x into z at z's precision.
type Variant struct {
	// Name identifies the variant in reports, e.g. "exp balanced".
	Name string
	// Apply runs the variant.
	Apply func(z, x *padic.Elem, pctx *padic.Ctx) error
}

// ExpVariants returns the three exponential entry points.
func ExpVariants() []Variant {
	return []Variant{
		{Name: "exp", Apply: func(z, x *padic.Elem, pctx *padic.Ctx) error { return z.Exp(x, pctx) }},
		{Name: "exp rectangular", Apply: func(z, x *padic.Elem, pctx *padic.Ctx) error { return z.ExpRectangular(x, pctx) }},
		{Name: "exp balanced", Apply: func(z, x *padic.Elem, pctx *padic.Ctx) error { return z.ExpBalanced(x, pctx) }},
	}
}

// LogVariants returns the four logarithm entry points.
func LogVariants() []Variant {
	return []Variant{
		{Name: "log", Apply: func(z, x *padic.Elem, pctx *padic.Ctx) error { return z.Log(x, pctx) }},
		{Name: "log rectangular", Apply: func(z, x *padic.Elem, pctx *padic.Ctx) error { return z.LogRectangular(x, pctx) }},
		{Name: "log satoh", Apply: func(z, x *padic.Elem, pctx *padic.Ctx) error { return z.LogSatoh(x, pctx) }},
		{Name: "log balanced", Apply: func(z, x *padic.Elem, pctx *padic.Ctx) error { return z.LogBalanced(x, pctx) }},
	}
}

// VariantResult encapsulates the outcome of one variant run.
type VariantResult struct {
	// Name is the variant identifier.
	Name string
	// Result is the computed element. It is nil if an error occurred.
	Result *padic.Elem
	// Duration is the time taken to complete the run.
	Duration time.Duration
	// Err contains any error that occurred during the run.
	Err error
}

// ResultPresenter renders the comparison outcome; the CLI provides the
// concrete implementation.
type ResultPresenter interface {
	PresentComparisonTable(results []VariantResult, out io.Writer)
	PresentResult(res VariantResult, pctx *padic.Ctx, out io.Writer)
}

// ExecuteVariants runs every variant concurrently, each into its own
// result element at precision prec. The context bounds the whole
// batch; a variant observing cancellation reports the context error.
func ExecuteVariants(ctx context.Context, variants []Variant, x *padic.Elem, prec int, pctx *padic.Ctx) []VariantResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]VariantResult, len(variants))

	for i, v := range variants {
		idx, variant := i, v
		g.Go(func() error {
			start := time.Now()
			z := padic.NewWithPrec(prec)
			err := ctx.Err()
			if err == nil {
				err = variant.Apply(z, x, pctx)
			}
			res := VariantResult{Name: variant.Name, Duration: time.Since(start), Err: err}
			if err == nil {
				res.Result = z
			}
			results[idx] = res
			return nil
		})
	}

	g.Wait()
	return results
}

// AnalyzeAgreement validates consistency across successful runs,
// presents the comparison, and maps the outcome to an exit code. All
// successful variants must return the same reduced element.
func AnalyzeAgreement(results []VariantResult, pctx *padic.Ctx, presenter ResultPresenter, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var first *VariantResult
	var firstErr error
	for i := range results {
		if results[i].Err != nil {
			if firstErr == nil {
				firstErr = results[i].Err
			}
			continue
		}
		if first == nil {
			first = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if first == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No variant could complete the operation: %v\n", firstErr)
		if apperrors.IsContextError(firstErr) {
			return apperrors.ExitErrorTimeout
		}
		return apperrors.ExitErrorDomain
	}

	for _, res := range results {
		if res.Err == nil && !res.Result.Equal(first.Result) {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! Variants disagree on the reduced result.\n")
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All variants agree.\n")
	presenter.PresentResult(*first, pctx, out)
	return apperrors.ExitSuccess
}

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/padiccalc/internal/cli"
	"github.com/agbru/padiccalc/internal/config"
	apperrors "github.com/agbru/padiccalc/internal/errors"
	"github.com/agbru/padiccalc/internal/logging"
	"github.com/agbru/padiccalc/internal/metrics"
	"github.com/agbru/padiccalc/internal/orchestration"
	"github.com/agbru/padiccalc/internal/padic"
	"github.com/agbru/padiccalc/internal/sysmon"
)

// tracerName identifies the application tracer; without a configured
// SDK the spans are no-ops.
const tracerName = "github.com/agbru/padiccalc"

// runCalculate performs the configured one-shot operation.
func (a *Application) runCalculate(ctx context.Context, pctx *padic.Ctx, out io.Writer) int {
	cfg := a.Config

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "calculate", trace.WithAttributes(
		attribute.String("op", cfg.Op),
		attribute.String("p", cfg.Prime),
		attribute.Int("prec", cfg.Prec),
	))
	defer span.End()

	if cfg.AllVariants && (cfg.Op == "exp" || cfg.Op == "log") {
		return a.runAllVariants(ctx, pctx, out)
	}

	x, y, code := a.parseOperands(pctx)
	if code != apperrors.ExitSuccess {
		return code
	}

	before := metrics.NewMemoryCollector().Snapshot()
	stop := cli.StartSpinner(a.ErrWriter, cfg.Op, cfg.Quiet)
	start := time.Now()
	z, err := a.applyWithTimeout(ctx, pctx, x, y)
	duration := time.Since(start)
	stop()

	if err != nil {
		return a.reportOperationError(err)
	}

	outCfg := cli.OutputConfig{OutputFile: cfg.OutputFile, Quiet: cfg.Quiet, Verbose: cfg.Verbose}
	cli.DisplayResult(out, cfg.Op, z, pctx, duration, outCfg)
	if err := cli.WriteResultToFile(z, pctx, cfg.Op, duration, outCfg); err != nil {
		a.Log.Error("failed to write output file", err)
		return apperrors.ExitErrorGeneric
	}

	if cfg.Verbose {
		after := metrics.NewMemoryCollector().Snapshot()
		stats := sysmon.Sample()
		a.Log.Debug("operation finished",
			logging.String("op", cfg.Op),
			logging.Float64("duration_ms", float64(duration.Milliseconds())),
			logging.Uint64("heap_delta_bytes", metrics.Delta(before, after)),
			logging.Float64("cpu_percent", stats.CPUPercent),
			logging.Float64("mem_percent", stats.MemPercent),
		)
	}
	return apperrors.ExitSuccess
}

// parseOperands builds the operand elements from the configuration.
func (a *Application) parseOperands(pctx *padic.Ctx) (x, y *padic.Elem, code int) {
	cfg := a.Config

	q, err := config.ParseOperand(cfg.X)
	if err != nil {
		a.Log.Error("invalid first operand", err)
		return nil, nil, apperrors.ExitErrorConfig
	}
	x = padic.NewWithPrec(cfg.Prec).SetRat(q, pctx)

	if needsSecondOperand(cfg.Op) {
		q, err := config.ParseOperand(cfg.Y)
		if err != nil {
			a.Log.Error("invalid second operand", err)
			return nil, nil, apperrors.ExitErrorConfig
		}
		y = padic.NewWithPrec(cfg.Prec).SetRat(q, pctx)
	}
	return x, y, apperrors.ExitSuccess
}

func needsSecondOperand(op string) bool {
	switch op {
	case "add", "sub", "mul", "div":
		return true
	}
	return false
}

// applyWithTimeout runs the operation on a worker goroutine so the
// synchronous kernel can be abandoned on timeout or interrupt.
func (a *Application) applyWithTimeout(ctx context.Context, pctx *padic.Ctx, x, y *padic.Elem) (*padic.Elem, error) {
	ctx, cancel := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancel()

	type outcome struct {
		z   *padic.Elem
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		z, err := applyOperation(a.Config.Op, x, y, pctx, a.Config.Prec)
		ch <- outcome{z: z, err: err}
	}()

	select {
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return nil, apperrors.TimeoutError{Operation: a.Config.Op, Limit: a.Config.Timeout}
		}
		return nil, ctx.Err()
	case res := <-ch:
		if res.err != nil {
			return nil, apperrors.CalculationError{Cause: res.err}
		}
		return res.z, nil
	}
}

// applyOperation dispatches a single kernel operation.
func applyOperation(op string, x, y *padic.Elem, pctx *padic.Ctx, prec int) (*padic.Elem, error) {
	z := padic.NewWithPrec(prec)
	switch op {
	case "add":
		z.Add(x, y, pctx)
	case "sub":
		z.Sub(x, y, pctx)
	case "mul":
		z.Mul(x, y, pctx)
	case "div":
		return z, z.Div(x, y, pctx)
	case "neg":
		z.Neg(x, pctx)
	case "inv":
		return z, z.Inv(x, pctx)
	case "sqrt":
		if !z.Sqrt(x, pctx) {
			return nil, padic.ErrNotASquare
		}
	case "teichmuller":
		return z, z.Teichmuller(x, pctx)
	case "exp":
		return z, z.Exp(x, pctx)
	case "log":
		return z, z.Log(x, pctx)
	case "valfac":
		n, err := x.GetBigInt(pctx)
		if err != nil {
			return nil, err
		}
		z.SetBigInt(padic.ValFacBig(n, pctx), pctx)
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
	return z, nil
}

// runAllVariants executes every algorithmic variant of exp or log
// concurrently and cross-checks the reduced results.
func (a *Application) runAllVariants(ctx context.Context, pctx *padic.Ctx, out io.Writer) int {
	cfg := a.Config

	q, err := config.ParseOperand(cfg.X)
	if err != nil {
		a.Log.Error("invalid operand", err)
		return apperrors.ExitErrorConfig
	}
	x := padic.NewWithPrec(cfg.Prec).SetRat(q, pctx)

	variants := orchestration.ExpVariants()
	if cfg.Op == "log" {
		variants = orchestration.LogVariants()
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	stop := cli.StartSpinner(a.ErrWriter, cfg.Op+" (all variants)", cfg.Quiet)
	results := orchestration.ExecuteVariants(ctx, variants, x, cfg.Prec, pctx)
	stop()

	return orchestration.AnalyzeAgreement(results, pctx, cli.CLIResultPresenter{}, out)
}

// reportOperationError maps kernel errors to exit codes.
func (a *Application) reportOperationError(err error) int {
	a.Log.Error("operation failed", err, logging.String("op", a.Config.Op))
	switch {
	case apperrors.IsContextError(err):
		return apperrors.ExitErrorCanceled
	case isTimeout(err):
		return apperrors.ExitErrorTimeout
	case isDomainError(err):
		return apperrors.ExitErrorDomain
	}
	return apperrors.ExitErrorGeneric
}

func isTimeout(err error) bool {
	var te apperrors.TimeoutError
	return errors.As(err, &te)
}

func isDomainError(err error) bool {
	for _, kind := range []error{
		padic.ErrNotConvergent, padic.ErrNotASquare, padic.ErrNotUnit,
		padic.ErrDivByZero, padic.ErrPrecisionLost, padic.ErrNotInteger,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

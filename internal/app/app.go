// Package app wires configuration, kernel context and presentation
// into the padiccalc application.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"math/big"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/padiccalc/internal/config"
	apperrors "github.com/agbru/padiccalc/internal/errors"
	"github.com/agbru/padiccalc/internal/logging"
	"github.com/agbru/padiccalc/internal/padic"
	"github.com/agbru/padiccalc/internal/tui"
	"github.com/agbru/padiccalc/internal/ui"
)

// Application represents the padiccalc application instance.
type Application struct {
	Config    config.AppConfig
	Log       logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Log = l }
}

// New creates a new Application instance by parsing command-line
// arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Log == nil {
		app.Log = logging.NewDefaultLogger()
	}

	programName := "padiccalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	pctx, err := a.kernelContext()
	if err != nil {
		a.Log.Error("invalid kernel parameters", err)
		return apperrors.ExitErrorConfig
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.TUI {
		return a.runTUI(ctx, pctx)
	}
	return a.runCalculate(ctx, pctx, out)
}

// kernelContext builds the padic.Ctx for the configured prime. The
// power cache covers the series working moduli, whose guard terms stay
// well inside four times the precision.
func (a *Application) kernelContext() (*padic.Ctx, error) {
	p, ok := new(big.Int).SetString(a.Config.Prime, 10)
	if !ok {
		return nil, apperrors.NewConfigError("invalid prime %q", a.Config.Prime)
	}
	mode, err := padic.ParsePrintMode(a.Config.Mode)
	if err != nil {
		return nil, err
	}
	maxPow := 4*a.Config.Prec + 16
	return padic.NewCtx(p, 0, maxPow, mode)
}

// runTUI launches the interactive explorer.
func (a *Application) runTUI(ctx context.Context, pctx *padic.Ctx) int {
	if err := tui.Run(ctx, pctx, a.Config.Prec); err != nil {
		if apperrors.IsContextError(err) {
			return apperrors.ExitErrorCanceled
		}
		a.Log.Error("explorer terminated", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was
// used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

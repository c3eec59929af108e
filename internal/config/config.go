// Package config parses command-line flags and environment overrides
// into the application configuration.
//
// Resolution chain (highest priority first):
//  1. CLI flags (-p, -prec, ...)
//  2. Environment variables (PADICCALC_P, ...)
//  3. Static defaults below
package config

import (
	"flag"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	apperrors "github.com/agbru/padiccalc/internal/errors"
	"github.com/agbru/padiccalc/internal/padic"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "PADICCALC_"

// Operations recognized by the -op flag.
var Operations = []string{
	"add", "sub", "mul", "div", "neg", "inv",
	"sqrt", "teichmuller", "exp", "log", "valfac",
}

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Prime is the decimal representation of p.
	Prime string
	// Prec is the absolute precision N of results.
	Prec int
	// Mode is the print mode name (terse, series, valunit).
	Mode string
	// Op is the operation to perform.
	Op string
	// X is the first operand, an integer or a rational "a/b".
	X string
	// Y is the second operand for binary operations.
	Y string
	// AllVariants runs every algorithmic variant of exp/log and
	// cross-checks the results.
	AllVariants bool
	// Timeout bounds a single operation.
	Timeout time.Duration
	// OutputFile receives a copy of the result when non-empty.
	OutputFile string
	// Quiet suppresses everything but the result.
	Quiet bool
	// Verbose adds kernel diagnostics and resource usage.
	Verbose bool
	// NoColor disables ANSI colors.
	NoColor bool
	// TUI opens the interactive explorer instead of a one-shot run.
	TUI bool
}

// Defaults mirror the concrete scenarios of the test suite: Q_7 at
// precision 10.
func defaultConfig() AppConfig {
	return AppConfig{
		Prime:   "7",
		Prec:    10,
		Mode:    "terse",
		Op:      "exp",
		Timeout: 5 * time.Minute,
	}
}

// ParseConfig parses the command line into an AppConfig, applies
// environment overrides for flags left unset, and validates the
// result.
func ParseConfig(progName string, args []string, errW io.Writer) (AppConfig, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(errW)
	fs.StringVar(&cfg.Prime, "p", cfg.Prime, "prime p of Q_p")
	fs.IntVar(&cfg.Prec, "prec", cfg.Prec, "absolute precision N")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "print mode: terse, series, valunit")
	fs.StringVar(&cfg.Op, "op", cfg.Op, "operation: "+strings.Join(Operations, ", "))
	fs.StringVar(&cfg.X, "x", cfg.X, "first operand (integer or rational a/b)")
	fs.StringVar(&cfg.Y, "y", cfg.Y, "second operand")
	fs.BoolVar(&cfg.AllVariants, "all-variants", cfg.AllVariants, "run all exp/log variants and cross-check")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "operation timeout")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "write the result to a file")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "print only the result")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "print kernel diagnostics")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "open the interactive explorer")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	applyEnvOverrides(&cfg, fs)

	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the semantic constraints the flag package cannot.
func Validate(cfg AppConfig) error {
	p, ok := new(big.Int).SetString(cfg.Prime, 10)
	if !ok || p.Cmp(big.NewInt(2)) < 0 {
		return apperrors.ValidationError{Field: "p", Message: fmt.Sprintf("%q is not a valid prime", cfg.Prime)}
	}
	if !isProbablePrime(p) {
		return apperrors.ValidationError{Field: "p", Message: fmt.Sprintf("%s is composite", cfg.Prime)}
	}
	if cfg.Prec < 1 {
		return apperrors.ValidationError{Field: "prec", Message: "must be at least 1"}
	}
	if _, err := padic.ParsePrintMode(cfg.Mode); err != nil {
		return apperrors.ValidationError{Field: "mode", Message: fmt.Sprintf("unknown mode %q", cfg.Mode)}
	}
	found := false
	for _, op := range Operations {
		if op == cfg.Op {
			found = true
			break
		}
	}
	if !found {
		return apperrors.ValidationError{Field: "op", Message: fmt.Sprintf("unknown operation %q", cfg.Op)}
	}
	if cfg.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	return nil
}

// ParseOperand parses an operand string as an integer or a rational
// "a/b".
func ParseOperand(s string) (*big.Rat, error) {
	if s == "" {
		return nil, apperrors.NewConfigError("empty operand")
	}
	q, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, apperrors.NewConfigError("cannot parse operand %q", s)
	}
	return q, nil
}

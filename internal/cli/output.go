// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on
// their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Format* functions return a formatted string without performing
//     I/O. They are pure functions suitable for composition.
//   - Write* functions write data to files on the filesystem.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/padiccalc/internal/format"
	"github.com/agbru/padiccalc/internal/padic"
	"github.com/agbru/padiccalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses everything but the result.
	Quiet bool
	// Verbose shows the raw (u v N) triple alongside the result.
	Verbose bool
}

// FormatResult renders the result in the context's print mode.
func FormatResult(x *padic.Elem, pctx *padic.Ctx) string {
	return x.String(pctx)
}

// DisplayResult writes the result of an operation, colorized unless
// quiet.
func DisplayResult(out io.Writer, op string, x *padic.Elem, pctx *padic.Ctx, duration time.Duration, cfg OutputConfig) {
	if cfg.Quiet {
		fmt.Fprintln(out, FormatResult(x, pctx))
		return
	}

	fmt.Fprintf(out, "%s%s(x)%s = %s%s%s\n",
		ui.ColorBold(), op, ui.ColorReset(),
		ui.ColorPrimary(), FormatResult(x, pctx), ui.ColorReset())
	if cfg.Verbose {
		fmt.Fprintf(out, "%sraw: %s  computed in %s%s\n",
			ui.ColorSecondary(), x.DebugString(),
			format.FormatExecutionDuration(duration), ui.ColorReset())
	}
}

// WriteResultToFile writes an operation result to a file, creating
// parent directories as needed.
func WriteResultToFile(x *padic.Elem, pctx *padic.Ctx, op string, duration time.Duration, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# p-adic Calculation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Operation: %s\n", op)
	fmt.Fprintf(file, "# Prime: %s\n", pctx.Prime().String())
	fmt.Fprintf(file, "# Precision: %d\n", x.Prec())
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "\n%s\n", FormatResult(x, pctx))

	return nil
}

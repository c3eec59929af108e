package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/padiccalc/internal/format"
	"github.com/agbru/padiccalc/internal/orchestration"
	"github.com/agbru/padiccalc/internal/padic"
	"github.com/agbru/padiccalc/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for CLI
// output. It provides formatted, colorized output for cross-variant
// comparison runs.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays the comparison summary table with
// variant names, durations, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.VariantResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Variant Comparison ---\n")

	maxNameLen := len("Variant")
	maxDurationLen := len("Duration")
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		if d := format.FormatExecutionDuration(res.Duration); len(d) > maxDurationLen {
			maxDurationLen = len(d)
		}
	}

	fmt.Fprintf(out, "%sVariant%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-len("Variant")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		status := fmt.Sprintf("%sok%s", ui.ColorGreen(), ui.ColorReset())
		if res.Err != nil {
			status = fmt.Sprintf("%sfailed (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		}
		duration := format.FormatExecutionDuration(res.Duration)
		fmt.Fprintf(out, "%s%s   %s%s   %s\n",
			res.Name, padRight("", maxNameLen-len(res.Name)),
			duration, padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// PresentResult displays the agreed result of a comparison run.
func (CLIResultPresenter) PresentResult(res orchestration.VariantResult, pctx *padic.Ctx, out io.Writer) {
	fmt.Fprintf(out, "%s%s%s = %s%s%s\n",
		ui.ColorBold(), res.Name, ui.ColorReset(),
		ui.ColorPrimary(), res.Result.String(pctx), ui.ColorReset())
}

// padRight appends n spaces to s; s is returned unchanged when n <= 0.
func padRight(s string, n int) string {
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}

package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// StartSpinner starts an indeterminate spinner for a long-running
// kernel operation, writing to out unless quiet is set. The returned
// stop function is safe to call unconditionally.
func StartSpinner(out io.Writer, label string, quiet bool) (stop func()) {
	if quiet {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
		spinner.WithWriter(out), spinner.WithSuffix(" "+label))
	s.Start()
	return s.Stop
}

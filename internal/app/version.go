package app

import (
	"fmt"
	"io"
)

// Version is the application version, overridable at build time via
// -ldflags "-X github.com/agbru/padiccalc/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether the arguments request the version.
func HasVersionFlag(args []string) bool {
	for _, a := range args {
		if a == "-version" || a == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "padiccalc %s\n", Version)
}

// Package format holds small presentation helpers shared by the CLI
// and TUI front ends.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display. It
// shows microseconds for durations less than a millisecond,
// milliseconds for durations less than a second, and the default
// string representation otherwise, which keeps short kernel timings
// readable.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

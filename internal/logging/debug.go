package logging

import (
	"fmt"
	"os"
)

// DebugEnabled returns true if debug tracing is enabled via the GTIMER_DEBUG
// environment variable
func DebugEnabled() bool {
	return os.Getenv("GTIMER_DEBUG") != ""
}

// Debugf prints a formatted trace message only if debug tracing is enabled.
// Traces go to stderr so they never disturb the countdown line the run
// command keeps rewriting on stdout
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// Debugln prints a trace message followed by a newline only if debug tracing
// is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(os.Stderr, args...)
	}
}

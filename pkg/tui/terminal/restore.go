// ABOUTME: RestoreOnPanic recovers from panics, clears the screen, restores the terminal mode.
// ABOUTME: Intended for use as a deferred call in the goroutine that owns the terminal.

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// resetScreen clears the screen, homes the cursor and makes it visible.
const resetScreen = "\x1b[2J\x1b[H\x1b[?25h"

// RestoreOnPanic should be deferred by the goroutine that owns the
// terminal. On panic it resets the screen, exits raw mode, prints the
// panic value and stack trace to stderr, then exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}
	restoreAfterPanic(t, os.Stderr, r)
	os.Exit(1)
}

func restoreAfterPanic(t Terminal, diag io.Writer, r any) {
	// Best-effort: the mode must be restored before the diagnostic is written.
	_, _ = t.Write([]byte(resetScreen))
	_ = t.ExitRawMode()

	fmt.Fprintf(diag, "\npanic: %v\n\n%s\n", r, debug.Stack())
}

// ABOUTME: Sentinel errors for terminal mode and geometry operations.
// ABOUTME: Callers wrap them with the failing operation and match with errors.Is.

package terminal

import "errors"

var (
	// ErrModeQuery reports that the current terminal mode could not be read.
	ErrModeQuery = errors.New("terminal mode query failed")

	// ErrModeApply reports that a terminal mode could not be applied.
	ErrModeApply = errors.New("terminal mode apply failed")

	// ErrGeometryUnavailable reports that neither the driver nor the
	// cursor-position fallback yielded a usable screen size.
	ErrGeometryUnavailable = errors.New("terminal geometry unavailable")
)

// ABOUTME: ProcessTerminal implements Terminal on the process tty using x/sys termios and x/term.
// ABOUTME: Owns the original mode snapshot and restores it at most once per raw-mode entry.

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// DefaultReadTimeout is the raw-mode read timeout in tenths of a second.
const DefaultReadTimeout = 1

// ProcessTerminal is a real terminal backed by the process tty.
type ProcessTerminal struct {
	in          *os.File
	out         *os.File
	readTimeout uint8
	state       *modeState
}

// Option configures a ProcessTerminal.
type Option func(*ProcessTerminal)

// WithReadTimeout sets how long a raw-mode Read waits for input, in
// tenths of a second. Values outside 1..255 fall back to DefaultReadTimeout.
func WithReadTimeout(deciseconds int) Option {
	return func(t *ProcessTerminal) {
		if deciseconds < 1 || deciseconds > 255 {
			deciseconds = DefaultReadTimeout
		}
		t.readTimeout = uint8(deciseconds)
	}
}

// NewProcessTerminal returns a ProcessTerminal reading from in and
// writing to out, typically os.Stdin and os.Stdout.
func NewProcessTerminal(in, out *os.File, opts ...Option) *ProcessTerminal {
	t := &ProcessTerminal{
		in:          in,
		out:         out,
		readTimeout: DefaultReadTimeout,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// EnterRawMode snapshots the current mode of the input device and
// switches it to raw mode with a bounded read timeout.
func (t *ProcessTerminal) EnterRawMode() error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("%w: %s is not a terminal", ErrModeQuery, t.in.Name())
	}

	state, err := getMode(fd)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrModeQuery, err)
	}

	raw := state.raw(t.readTimeout)
	if err := setMode(fd, raw); err != nil {
		return fmt.Errorf("%w: %w", ErrModeApply, err)
	}
	t.state = state
	return nil
}

// ExitRawMode reapplies the snapshot taken by EnterRawMode. Calls
// without a pending snapshot are no-ops.
func (t *ProcessTerminal) ExitRawMode() error {
	if t.state == nil {
		return nil
	}
	state := t.state
	t.state = nil
	if err := setMode(int(t.in.Fd()), state); err != nil {
		return fmt.Errorf("%w: %w", ErrModeApply, err)
	}
	return nil
}

// Size returns the window size reported by the terminal driver.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Read reads from the input device. In raw mode it returns (0, nil)
// once the read timeout elapses without input.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	return readRaw(int(t.in.Fd()), p)
}

// Write sends bytes to the output device.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to %s: %w", t.out.Name(), err)
	}
	return n, nil
}

// ABOUTME: termios snapshot, raw-mode derivation, and timeout-aware reads for unix ttys.
// ABOUTME: Uses golang.org/x/sys/unix ioctls; request codes come from the per-OS ioctl files.

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package terminal

import (
	"errors"

	"golang.org/x/sys/unix"
)

// modeState is an opaque copy of the device's line-discipline settings.
type modeState struct {
	termios unix.Termios
}

func getMode(fd int) (*modeState, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}
	return &modeState{termios: *termios}, nil
}

// setMode applies s, discarding pending input first (TCSAFLUSH).
func setMode(fd int, s *modeState) error {
	termios := s.termios
	return unix.IoctlSetTermios(fd, ioctlSetTermiosFlush, &termios)
}

// raw derives the raw-mode settings from s without modifying it.
func (s *modeState) raw(readTimeout uint8) *modeState {
	r := &modeState{termios: s.termios}
	makeRaw(&r.termios, readTimeout)
	return r
}

func makeRaw(t *unix.Termios, readTimeout uint8) {
	// Input:
	// - BRKINT: no SIGINT on break
	// - ICRNL: keep carriage return as 0x0d
	// - INPCK, ISTRIP: no parity checking, keep the 8th bit
	// - IXON: Ctrl-S and Ctrl-Q arrive as bytes
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON

	// Output: no post-processing, the caller writes "\r\n" itself.
	t.Oflag &^= unix.OPOST

	// Control: 8-bit characters.
	t.Cflag |= unix.CS8

	// Local:
	// - ECHO: typed bytes are not echoed
	// - ICANON: deliver bytes without waiting for Enter
	// - IEXTEN: Ctrl-V and Ctrl-O arrive as bytes
	// - ISIG: Ctrl-C and Ctrl-Z arrive as bytes
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG

	// read(2) returns as soon as any byte is available, or with zero
	// bytes after readTimeout tenths of a second.
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = readTimeout
}

// readRaw reads from fd, reporting "no data yet" as (0, nil).
func readRaw(fd int, p []byte) (int, error) {
	n, err := unix.Read(fd, p)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}

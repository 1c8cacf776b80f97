// ABOUTME: Defines the Terminal interface for raw mode, size queries, and byte I/O.
// ABOUTME: Abstracts the tty device so the editor can target a real or virtual terminal.

package terminal

// Terminal abstracts the controlling terminal device: raw mode
// transitions, the driver's window size, and the byte streams in both
// directions.
//
// Read follows the raw-mode polling contract: it returns (0, nil) when no
// byte arrived within the device read timeout. Any non-nil error is a
// genuine failure, including io.EOF.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
}

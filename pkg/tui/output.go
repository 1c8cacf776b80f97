// ABOUTME: OutputBuffer batches one frame of escape sequences and text into a single write.
// ABOUTME: Buffers are recycled through sync.Pool; content never outlives a frame.

package tui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
)

// ErrOutputWrite reports a failed or short write of a frame.
var ErrOutputWrite = errors.New("output write failed")

// Escape sequences emitted by the renderer and the editor.
const (
	seqClearScreen = "\x1b[2J"
	seqCursorHome  = "\x1b[H"
	seqClearLine   = "\x1b[K"
	seqHideCursor  = "\x1b[?25l"
	seqShowCursor  = "\x1b[?25h"
	seqCursorQuery = "\x1b[6n"
)

var outputPool = sync.Pool{
	New: func() any {
		return &OutputBuffer{buf: make([]byte, 0, 4096)}
	},
}

// AcquireOutputBuffer gets an empty OutputBuffer from the pool.
func AcquireOutputBuffer() *OutputBuffer {
	b := outputPool.Get().(*OutputBuffer)
	b.Reset()
	return b
}

// ReleaseOutputBuffer returns b to the pool.
func ReleaseOutputBuffer(b *OutputBuffer) {
	if b == nil {
		return
	}
	b.Reset()
	outputPool.Put(b)
}

// OutputBuffer is an append-only byte sequence for one frame.
type OutputBuffer struct {
	buf []byte
}

// Append adds p to the frame.
func (b *OutputBuffer) Append(p []byte) {
	b.buf = append(b.buf, p...)
}

// AppendString adds s to the frame.
func (b *OutputBuffer) AppendString(s string) {
	b.buf = append(b.buf, s...)
}

// ClearScreen erases the whole display.
func (b *OutputBuffer) ClearScreen() { b.AppendString(seqClearScreen) }

// CursorHome moves the cursor to the top-left cell.
func (b *OutputBuffer) CursorHome() { b.AppendString(seqCursorHome) }

// ClearLine erases from the cursor to the end of the line.
func (b *OutputBuffer) ClearLine() { b.AppendString(seqClearLine) }

// HideCursor makes the cursor invisible.
func (b *OutputBuffer) HideCursor() { b.AppendString(seqHideCursor) }

// ShowCursor makes the cursor visible.
func (b *OutputBuffer) ShowCursor() { b.AppendString(seqShowCursor) }

// MoveTo places the cursor at the one-based row and column.
func (b *OutputBuffer) MoveTo(row, col int) {
	b.buf = append(b.buf, "\x1b["...)
	b.buf = strconv.AppendInt(b.buf, int64(row), 10)
	b.buf = append(b.buf, ';')
	b.buf = strconv.AppendInt(b.buf, int64(col), 10)
	b.buf = append(b.buf, 'H')
}

// CursorForward moves the cursor n columns right, stopping at the edge.
func (b *OutputBuffer) CursorForward(n int) { b.appendCSI(n, 'C') }

// CursorDown moves the cursor n rows down, stopping at the edge.
func (b *OutputBuffer) CursorDown(n int) { b.appendCSI(n, 'B') }

// RequestCursorPosition asks the terminal to report the cursor position.
func (b *OutputBuffer) RequestCursorPosition() { b.AppendString(seqCursorQuery) }

func (b *OutputBuffer) appendCSI(n int, final byte) {
	b.buf = append(b.buf, "\x1b["...)
	b.buf = strconv.AppendInt(b.buf, int64(n), 10)
	b.buf = append(b.buf, final)
}

// Bytes returns the pending frame. The slice is valid until the next
// modification.
func (b *OutputBuffer) Bytes() []byte { return b.buf }

// Len returns the number of pending bytes.
func (b *OutputBuffer) Len() int { return len(b.buf) }

// Reset discards pending content and keeps the backing array.
func (b *OutputBuffer) Reset() { b.buf = b.buf[:0] }

// Flush writes the whole frame to w in one call and resets the buffer,
// whether or not the write succeeded.
func (b *OutputBuffer) Flush(w io.Writer) error {
	defer b.Reset()
	if len(b.buf) == 0 {
		return nil
	}
	n, err := w.Write(b.buf)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	if n != len(b.buf) {
		return fmt.Errorf("%w: short write (%d of %d bytes)", ErrOutputWrite, n, len(b.buf))
	}
	return nil
}

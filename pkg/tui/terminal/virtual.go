// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Captures output, replays scripted input chunks, and tracks raw-mode restores.

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests.
//
// Input is scripted as chunks: a non-empty chunk is delivered across one
// or more Reads, an empty chunk is a single read timeout (0, nil). Once
// the script is exhausted Read returns io.EOF.
type VirtualTerminal struct {
	mu           sync.Mutex
	buf          bytes.Buffer
	width        int
	height       int
	rawMode      bool
	enterCount   int
	exitCount    int
	restoreCount int
	writeCount   int
	input        []string

	enterErr error
	exitErr  error
	sizeErr  error
	readErr  error
	writeErr error
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:  width,
		height: height,
	}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.enterCount++
	if v.enterErr != nil {
		return v.enterErr
	}
	v.rawMode = true
	return nil
}

// ExitRawMode records a raw-mode exit. Like ProcessTerminal, only a call
// with raw mode active restores anything.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.exitCount++
	if !v.rawMode {
		return nil
	}
	if v.exitErr != nil {
		return v.exitErr
	}
	v.rawMode = false
	v.restoreCount++
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sizeErr != nil {
		return 0, 0, v.sizeErr
	}
	return v.width, v.height, nil
}

// Read delivers the next scripted input chunk.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.input) == 0 {
		if v.readErr != nil {
			return 0, v.readErr
		}
		return 0, io.EOF
	}

	chunk := v.input[0]
	if chunk == "" {
		v.input = v.input[1:]
		return 0, nil
	}
	n := copy(p, chunk)
	if n == len(chunk) {
		v.input = v.input[1:]
	} else {
		v.input[0] = chunk[n:]
	}
	return n, nil
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeCount++
	if v.writeErr != nil {
		return 0, v.writeErr
	}
	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// --- Test helpers (not part of Terminal interface) ---

// QueueInput appends chunks to the input script. An empty chunk stands
// for one read timeout.
func (v *VirtualTerminal) QueueInput(chunks ...string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.input = append(v.input, chunks...)
}

// FailEnter makes EnterRawMode return err.
func (v *VirtualTerminal) FailEnter(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.enterErr = err
}

// FailExit makes ExitRawMode return err while raw mode is active.
func (v *VirtualTerminal) FailExit(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.exitErr = err
}

// FailSize makes Size return err.
func (v *VirtualTerminal) FailSize(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sizeErr = err
}

// FailRead makes Read return err once the input script is exhausted.
func (v *VirtualTerminal) FailRead(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.readErr = err
}

// FailWrite makes every Write return err.
func (v *VirtualTerminal) FailWrite(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeErr = err
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
	v.writeCount = 0
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// RestoreCount returns how many times the original mode was reapplied.
func (v *VirtualTerminal) RestoreCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.restoreCount
}

// WriteCount returns how many Write calls were made since the last Reset.
func (v *VirtualTerminal) WriteCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.writeCount
}

// SetSize updates the terminal dimensions.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = width
	v.height = height
}

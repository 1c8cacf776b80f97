// ABOUTME: Tests for raw-mode derivation on a termios value.
// ABOUTME: Verifies every flag the editor depends on without touching a real device.

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package terminal

import (
	"testing"

	"golang.org/x/sys/unix"
)

func cookedTermios() unix.Termios {
	var t unix.Termios
	t.Iflag = unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON | unix.IMAXBEL
	t.Oflag = unix.OPOST | unix.ONLCR
	t.Cflag = unix.CREAD
	t.Lflag = unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG | unix.ECHOE
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	return t
}

func TestMakeRaw_ClearsInputProcessing(t *testing.T) {
	t.Parallel()

	tm := cookedTermios()
	makeRaw(&tm, 1)

	flags := []struct {
		name string
		flag uint64
	}{
		{name: "BRKINT", flag: uint64(unix.BRKINT)},
		{name: "ICRNL", flag: uint64(unix.ICRNL)},
		{name: "INPCK", flag: uint64(unix.INPCK)},
		{name: "ISTRIP", flag: uint64(unix.ISTRIP)},
		{name: "IXON", flag: uint64(unix.IXON)},
	}
	for _, f := range flags {
		if uint64(tm.Iflag)&f.flag != 0 {
			t.Errorf("Iflag %s still set after makeRaw", f.name)
		}
	}
	if uint64(tm.Iflag)&uint64(unix.IMAXBEL) == 0 {
		t.Error("makeRaw cleared unrelated Iflag IMAXBEL")
	}
}

func TestMakeRaw_ClearsLocalModes(t *testing.T) {
	t.Parallel()

	tm := cookedTermios()
	makeRaw(&tm, 1)

	flags := []struct {
		name string
		flag uint64
	}{
		{name: "ECHO", flag: uint64(unix.ECHO)},
		{name: "ICANON", flag: uint64(unix.ICANON)},
		{name: "IEXTEN", flag: uint64(unix.IEXTEN)},
		{name: "ISIG", flag: uint64(unix.ISIG)},
	}
	for _, f := range flags {
		if uint64(tm.Lflag)&f.flag != 0 {
			t.Errorf("Lflag %s still set after makeRaw", f.name)
		}
	}
}

func TestMakeRaw_OutputAndControl(t *testing.T) {
	t.Parallel()

	tm := cookedTermios()
	makeRaw(&tm, 1)

	if uint64(tm.Oflag)&uint64(unix.OPOST) != 0 {
		t.Error("OPOST still set after makeRaw")
	}
	if uint64(tm.Cflag)&uint64(unix.CS8) != uint64(unix.CS8) {
		t.Error("CS8 not set after makeRaw")
	}
	if uint64(tm.Cflag)&uint64(unix.CREAD) == 0 {
		t.Error("makeRaw cleared unrelated Cflag CREAD")
	}
}

func TestMakeRaw_ReadTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		timeout uint8
	}{
		{name: "100ms", timeout: 1},
		{name: "1s", timeout: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tm := cookedTermios()
			makeRaw(&tm, tt.timeout)

			if tm.Cc[unix.VMIN] != 0 {
				t.Errorf("VMIN = %d, want 0", tm.Cc[unix.VMIN])
			}
			if tm.Cc[unix.VTIME] != tt.timeout {
				t.Errorf("VTIME = %d, want %d", tm.Cc[unix.VTIME], tt.timeout)
			}
		})
	}
}

func TestModeState_RawLeavesSnapshotUntouched(t *testing.T) {
	t.Parallel()

	orig := &modeState{termios: cookedTermios()}
	want := orig.termios

	_ = orig.raw(1)

	if orig.termios != want {
		t.Error("raw() modified the original snapshot")
	}
}

// ABOUTME: Decoder turns the raw-mode byte stream into Key events, one ReadKey at a time.
// ABOUTME: A small state machine decides how many bytes to collect; legacy.go maps the result.

package key

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrInputRead reports a read failure other than "no data within timeout".
var ErrInputRead = errors.New("input read failed")

// maxSequenceLen bounds the scratch buffer: ESC, introducer, digit, '~'.
const maxSequenceLen = 4

// Decoder reads Key events from a raw-mode input stream.
//
// The reader must follow the polling contract of terminal.Terminal: a
// read that times out without data returns (0, nil).
type Decoder struct {
	r   io.Reader
	one [1]byte
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadKey blocks until a key arrives or ctx is done. Read timeouts before
// the first byte are retried; ctx is checked between attempts.
func (d *Decoder) ReadKey(ctx context.Context) (Key, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Key{}, err
		}
		b, ok, err := d.readByte()
		if err != nil {
			return Key{}, err
		}
		if !ok {
			continue
		}
		if b != escByte {
			return Byte(b), nil
		}
		return d.readEscape()
	}
}

// readEscape decodes what follows an ESC byte. Running out of input at
// any point means the user pressed Escape on its own.
func (d *Decoder) readEscape() (Key, error) {
	var scratch [maxSequenceLen]byte
	seq := append(scratch[:0], escByte)

	for len(seq) < 3 {
		b, ok, err := d.readByte()
		if err != nil {
			return Key{}, err
		}
		if !ok {
			return Key{Type: KeyEscape}, nil
		}
		seq = append(seq, b)
	}

	if seq[1] == '[' && isDigit(seq[2]) {
		b, ok, err := d.readByte()
		if err != nil {
			return Key{}, err
		}
		if !ok {
			return Key{Type: KeyEscape}, nil
		}
		seq = append(seq, b)
	}

	return lookupSequence(seq), nil
}

// readByte performs one bounded-timeout read. ok is false when the read
// timed out without data.
func (d *Decoder) readByte() (b byte, ok bool, err error) {
	n, err := d.r.Read(d.one[:])
	if n == 1 {
		return d.one[0], true, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrInputRead, err)
	}
	return 0, false, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

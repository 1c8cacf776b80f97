// ABOUTME: ProbeSize determines the screen extent from the driver or, failing that,
// ABOUTME: by pushing the cursor to the far corner and parsing the position report.

package terminal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mauromedda/pi-edit/internal/log"
	"github.com/mauromedda/pi-edit/pkg/tui"
)

const (
	// farEdge is large enough to reach the bottom-right cell of any screen;
	// terminals stop cursor motion at the edge.
	farEdge = 999

	// reportCapacity bounds the position reply; longer replies fail.
	reportCapacity = 32
)

// ProbeSize returns the usable screen size in columns and rows. The
// driver size is used when it reports a non-zero width; otherwise the
// terminal is asked for the cursor position after moving it as far
// right and down as it goes. Must be called in raw mode.
func ProbeSize(ctx context.Context, t Terminal) (cols, rows int, err error) {
	w, h, err := t.Size()
	if err == nil && w > 0 {
		log.Debug("geometry from driver: %dx%d", w, h)
		return w, h, nil
	}
	if err != nil {
		log.Warn("driver size unavailable, using cursor report: %v", err)
	} else {
		log.Warn("driver reported zero columns, using cursor report")
	}

	if err := send(t, func(b *tui.OutputBuffer) {
		b.CursorForward(farEdge)
		b.CursorDown(farEdge)
	}); err != nil {
		return 0, 0, err
	}
	rows, cols, err = cursorPosition(ctx, t)
	if err != nil {
		return 0, 0, err
	}
	log.Debug("geometry from cursor report: %dx%d", cols, rows)
	return cols, rows, nil
}

// cursorPosition requests and parses a cursor position report.
func cursorPosition(ctx context.Context, t Terminal) (row, col int, err error) {
	if err := send(t, (*tui.OutputBuffer).RequestCursorPosition); err != nil {
		return 0, 0, err
	}

	var scratch [reportCapacity]byte
	var one [1]byte
	n := 0
	terminated := false
	for !terminated {
		if n == len(scratch) {
			return 0, 0, fmt.Errorf("%w: position report exceeds %d bytes", ErrGeometryUnavailable, reportCapacity)
		}
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}
		got, err := t.Read(one[:])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: reading position report: %w", ErrGeometryUnavailable, err)
		}
		switch {
		case got == 0:
			return 0, 0, fmt.Errorf("%w: position report %q not terminated by R", ErrGeometryUnavailable, scratch[:n])
		case one[0] == 'R':
			terminated = true
		default:
			scratch[n] = one[0]
			n++
		}
	}

	return parseCursorReport(scratch[:n])
}

// parseCursorReport parses "ESC [ row ; col" with the trailing R removed.
func parseCursorReport(reply []byte) (row, col int, err error) {
	body, ok := bytes.CutPrefix(reply, []byte("\x1b["))
	if !ok {
		return 0, 0, fmt.Errorf("%w: malformed position report %q", ErrGeometryUnavailable, reply)
	}
	r, c, ok := bytes.Cut(body, []byte(";"))
	if !ok {
		return 0, 0, fmt.Errorf("%w: malformed position report %q", ErrGeometryUnavailable, reply)
	}
	row, err = parsePositive(r)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row in %q: %w", ErrGeometryUnavailable, reply, err)
	}
	col, err = parsePositive(c)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column in %q: %w", ErrGeometryUnavailable, reply, err)
	}
	return row, col, nil
}

// parsePositive accepts only unsigned decimal digits.
func parsePositive(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, errors.New("empty number")
	}
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%q is not a decimal number", b)
		}
	}
	v, err := strconv.Atoi(string(b))
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%d is not positive", v)
	}
	return v, nil
}

// send builds one request in a pooled buffer and writes it in a single
// call.
func send(w io.Writer, build func(*tui.OutputBuffer)) error {
	buf := tui.AcquireOutputBuffer()
	defer tui.ReleaseOutputBuffer(buf)

	build(buf)
	if err := buf.Flush(w); err != nil {
		return fmt.Errorf("%w: %w", ErrGeometryUnavailable, err)
	}
	return nil
}

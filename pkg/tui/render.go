// ABOUTME: Renderer draws the fixed viewport: tilde rows, a centered welcome banner, and the cursor.
// ABOUTME: Each frame is assembled in a pooled OutputBuffer and written with a single Write.

package tui

import (
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/pi-edit/pkg/tui/width"
)

// Geometry is the usable screen extent in cells.
type Geometry struct {
	Rows int
	Cols int
}

// Cursor is a zero-based screen position.
type Cursor struct {
	Col int
	Row int
}

// Renderer redraws the whole viewport on every call.
type Renderer struct {
	w       io.Writer
	welcome string
}

// NewRenderer returns a Renderer writing frames to w. The welcome text is
// stripped of escape sequences and control characters and normalized to
// NFC so that its measured width matches what the terminal shows.
func NewRenderer(w io.Writer, welcome string) *Renderer {
	return &Renderer{w: w, welcome: sanitize(welcome)}
}

// Welcome returns the banner text as it will be drawn before clipping.
func (r *Renderer) Welcome() string { return r.welcome }

// Render draws one frame for g with the cursor parked at c.
func (r *Renderer) Render(g Geometry, c Cursor) error {
	buf := AcquireOutputBuffer()
	defer ReleaseOutputBuffer(buf)

	buf.HideCursor()
	buf.CursorHome()
	r.drawRows(buf, g)
	buf.MoveTo(c.Row+1, c.Col+1)
	buf.ShowCursor()

	return buf.Flush(r.w)
}

// Clear erases the screen and homes the cursor.
func (r *Renderer) Clear() error {
	buf := AcquireOutputBuffer()
	defer ReleaseOutputBuffer(buf)

	buf.ClearScreen()
	buf.CursorHome()
	return buf.Flush(r.w)
}

func (r *Renderer) drawRows(buf *OutputBuffer, g Geometry) {
	bannerRow := g.Rows / 3
	for y := range g.Rows {
		if y == bannerRow {
			r.drawBanner(buf, g.Cols)
		} else {
			buf.AppendString("~")
		}
		buf.ClearLine()
		if y < g.Rows-1 {
			buf.AppendString("\r\n")
		}
	}
}

func (r *Renderer) drawBanner(buf *OutputBuffer, cols int) {
	text, w := width.ClipToWidth(r.welcome, cols)
	padding := (cols - w) / 2
	if padding > 0 {
		buf.AppendString("~")
		buf.AppendString(strings.Repeat(" ", padding-1))
	}
	buf.AppendString(text)
}

func sanitize(s string) string {
	s = width.StripANSI(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return norm.NFC.String(s)
}

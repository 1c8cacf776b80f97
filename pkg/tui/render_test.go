// ABOUTME: Tests for Renderer frame layout, banner centering and clipping, and cursor encoding
// ABOUTME: Frames are captured with an in-memory writer and compared byte for byte

package tui

import (
	"errors"
	"strings"
	"testing"
)

func frame(rows []string, cursor string) string {
	var b strings.Builder
	b.WriteString("\x1b[?25l\x1b[H")
	for i, row := range rows {
		b.WriteString(row)
		b.WriteString("\x1b[K")
		if i < len(rows)-1 {
			b.WriteString("\r\n")
		}
	}
	b.WriteString(cursor)
	b.WriteString("\x1b[?25h")
	return b.String()
}

func TestRenderer_Frame(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		welcome string
		g       Geometry
		c       Cursor
		want    string
	}{
		{
			name:    "three rows",
			welcome: "hi",
			g:       Geometry{Rows: 3, Cols: 20},
			want:    frame([]string{"~", "~        hi", "~"}, "\x1b[1;1H"),
		},
		{
			name:    "banner on first row",
			welcome: "hi",
			g:       Geometry{Rows: 2, Cols: 6},
			want:    frame([]string{"~ hi", "~"}, "\x1b[1;1H"),
		},
		{
			name:    "single row",
			welcome: "hi",
			g:       Geometry{Rows: 1, Cols: 4},
			want:    frame([]string{"~hi"}, "\x1b[1;1H"),
		},
		{
			name:    "banner exactly fills row",
			welcome: "hi",
			g:       Geometry{Rows: 1, Cols: 2},
			want:    frame([]string{"hi"}, "\x1b[1;1H"),
		},
		{
			name:    "banner clipped",
			welcome: "hello world",
			g:       Geometry{Rows: 1, Cols: 5},
			want:    frame([]string{"hello"}, "\x1b[1;1H"),
		},
		{
			name:    "wide banner clipped on cluster boundary",
			welcome: "你好世界",
			g:       Geometry{Rows: 1, Cols: 5},
			want:    frame([]string{"你好"}, "\x1b[1;1H"),
		},
		{
			name:    "cursor one based",
			welcome: "x",
			g:       Geometry{Rows: 6, Cols: 3},
			c:       Cursor{Col: 2, Row: 5},
			want:    frame([]string{"~", "~", "~x", "~", "~", "~"}, "\x1b[6;3H"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var w countingWriter
			r := NewRenderer(&w, tt.welcome)

			if err := r.Render(tt.g, tt.c); err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got := w.String(); got != tt.want {
				t.Errorf("Render() =\n%q\nwant\n%q", got, tt.want)
			}
			if w.calls != 1 {
				t.Errorf("Write calls = %d, want 1", w.calls)
			}
		})
	}
}

func TestRenderer_RowCount(t *testing.T) {
	t.Parallel()

	var w countingWriter
	r := NewRenderer(&w, "pi-edit")
	if err := r.Render(Geometry{Rows: 24, Cols: 80}, Cursor{}); err != nil {
		t.Fatal(err)
	}

	out := w.String()
	if n := strings.Count(out, "\r\n"); n != 23 {
		t.Errorf("line breaks = %d, want 23", n)
	}
	if n := strings.Count(out, "\x1b[K"); n != 24 {
		t.Errorf("line clears = %d, want 24", n)
	}
	if !strings.Contains(out, "~"+strings.Repeat(" ", 35)+"pi-edit\x1b[K") {
		t.Errorf("banner not centered in %q", out)
	}
}

func TestRenderer_Sanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		welcome string
		want    string
	}{
		{name: "plain", welcome: "pi-edit", want: "pi-edit"},
		{name: "escape sequences", welcome: "\x1b[1mbold\x1b[0m", want: "bold"},
		{name: "control characters", welcome: "a\tb\nc\x07", want: "abc"},
		{name: "decomposed accent", welcome: "cafe\u0301", want: "caf\u00e9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := NewRenderer(nil, tt.welcome)
			if got := r.Welcome(); got != tt.want {
				t.Errorf("Welcome() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderer_Clear(t *testing.T) {
	t.Parallel()

	var w countingWriter
	if err := NewRenderer(&w, "").Clear(); err != nil {
		t.Fatalf("Clear() unexpected error: %v", err)
	}
	if got := w.String(); got != "\x1b[2J\x1b[H" {
		t.Errorf("Clear() wrote %q, want %q", got, "\x1b[2J\x1b[H")
	}
}

func TestRenderer_WriteError(t *testing.T) {
	t.Parallel()

	r := NewRenderer(failingWriter{err: errors.New("eio")}, "hi")
	if err := r.Render(Geometry{Rows: 2, Cols: 10}, Cursor{}); !errors.Is(err, ErrOutputWrite) {
		t.Errorf("Render() error = %v, want ErrOutputWrite", err)
	}
}

// ABOUTME: Tests for ParseBinding covering named keys, aliases, control combos, and errors.

package key

import "testing"

func TestParseBinding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    Key
		wantErr bool
	}{
		{name: "ctrl+q", in: "ctrl+q", want: Byte(0x11)},
		{name: "ctrl upper", in: "Ctrl+Q", want: Byte(0x11)},
		{name: "up", in: "up", want: Key{Type: KeyUp}},
		{name: "pgup", in: "pgup", want: Key{Type: KeyPageUp}},
		{name: "pageup alias", in: "PageUp", want: Key{Type: KeyPageUp}},
		{name: "pgdown", in: "pgdown", want: Key{Type: KeyPageDown}},
		{name: "home", in: "home", want: Key{Type: KeyHome}},
		{name: "end", in: "end", want: Key{Type: KeyEnd}},
		{name: "delete", in: "delete", want: Key{Type: KeyDelete}},
		{name: "esc alias", in: "esc", want: Key{Type: KeyEscape}},
		{name: "enter", in: "enter", want: Byte('\r')},
		{name: "single char", in: "k", want: Byte('k')},
		{name: "single upper char", in: "K", want: Byte('K')},
		{name: "padded", in: " left ", want: Key{Type: KeyLeft}},
		{name: "empty", in: "", wantErr: true},
		{name: "unknown", in: "hyper+x", wantErr: true},
		{name: "ctrl digit", in: "ctrl+1", wantErr: true},
		{name: "ctrl word", in: "ctrl+tab", wantErr: true},
		{name: "control char", in: "\x01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseBinding(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseBinding(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBinding(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseBinding(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

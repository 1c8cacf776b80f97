// ABOUTME: Defines the Key type: a literal input byte or one of the decoded navigation keys.
// ABOUTME: Provides Ctrl for control-combination bytes and String for logs and bindings.

package key

import "fmt"

// Key is a logical key event produced by the Decoder.
type Key struct {
	Type KeyType
	Byte byte // For KeyByte only
}

// KeyType enumerates the closed set of key events the editor can receive.
type KeyType int

const (
	KeyByte     KeyType = iota // Literal byte (printable or control)
	KeyUp                      // Arrow up
	KeyDown                    // Arrow down
	KeyLeft                    // Arrow left
	KeyRight                   // Arrow right
	KeyHome                    // Home
	KeyEnd                     // End
	KeyPageUp                  // Page Up
	KeyPageDown                // Page Down
	KeyDelete                  // Delete
	KeyEscape                  // Lone Escape or an unrecognized sequence
)

// escByte starts every escape sequence.
const escByte = 0x1b

// Byte returns the literal key event for b.
func Byte(b byte) Key {
	return Key{Type: KeyByte, Byte: b}
}

// Ctrl returns the byte a terminal sends for Ctrl plus the given letter.
func Ctrl(c byte) byte {
	return c & 0x1f
}

// keyTypeNames provides human-readable labels for each non-byte KeyType.
var keyTypeNames = map[KeyType]string{
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyDelete:   "Delete",
	KeyEscape:   "Escape",
}

// String returns a human-readable representation of the Key for debug display.
func (k Key) String() string {
	if k.Type == KeyByte {
		return formatByte(k.Byte)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}

// formatByte names control bytes as Ctrl combinations where one exists.
func formatByte(b byte) string {
	switch {
	case b == 0x00:
		return "Ctrl+@"
	case b >= 0x01 && b <= 0x1a:
		return fmt.Sprintf("Ctrl+%c", 'A'+b-1)
	case b == 0x7f:
		return "Backspace"
	case b >= 0x20 && b < 0x7f:
		return string(rune(b))
	}
	return fmt.Sprintf("0x%02x", b)
}

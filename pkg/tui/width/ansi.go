// ABOUTME: StripANSI removes terminal escape sequences from configured text.
// ABOUTME: Recognizes CSI, OSC, string-terminated, and two-byte ESC sequences.

package width

import "strings"

// StripANSI removes all ANSI escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			i = skipANSISequence(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// skipANSISequence returns the index of the first byte after the escape
// sequence starting at s[i]. Unterminated sequences run to the end of s.
func skipANSISequence(s string, i int) int {
	if i >= len(s) || s[i] != '\x1b' {
		return i
	}
	i++
	if i >= len(s) {
		return i
	}

	switch s[i] {
	case '[':
		// CSI: parameters then a final byte in 0x40-0x7E.
		for i++; i < len(s); i++ {
			if b := s[i]; b >= 0x40 && b <= 0x7E {
				return i + 1
			}
		}
		return i
	case ']':
		// OSC: terminated by BEL or ST.
		for i++; i < len(s); i++ {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return i
	case '_', 'P', '^':
		// APC, DCS, PM: terminated by ST.
		for i++; i < len(s); i++ {
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return i
	case '(', ')':
		// Character set designation carries one more byte.
		if i+1 < len(s) {
			return i + 2
		}
		return i + 1
	default:
		return i + 1
	}
}

// ABOUTME: Legacy escape sequence mappings for CSI and SS3 terminal key codes.
// ABOUTME: Maps complete raw escape strings to Key values; anything absent decodes as Escape.

package key

// legacySequences maps the recognized CSI and SS3 escape sequences to Key
// values. The Decoder collects either three or four bytes and looks the
// result up here.
var legacySequences = map[string]Key{
	// CSI letter sequences
	"\x1b[A": {Type: KeyUp},
	"\x1b[B": {Type: KeyDown},
	"\x1b[C": {Type: KeyRight},
	"\x1b[D": {Type: KeyLeft},
	"\x1b[H": {Type: KeyHome},
	"\x1b[F": {Type: KeyEnd},

	// CSI digit-tilde sequences (vt and xterm/rxvt variants)
	"\x1b[1~": {Type: KeyHome},
	"\x1b[3~": {Type: KeyDelete},
	"\x1b[4~": {Type: KeyEnd},
	"\x1b[5~": {Type: KeyPageUp},
	"\x1b[6~": {Type: KeyPageDown},
	"\x1b[7~": {Type: KeyHome},
	"\x1b[8~": {Type: KeyEnd},

	// SS3 variants (sent by some terminals in application mode)
	"\x1bOH": {Type: KeyHome},
	"\x1bOF": {Type: KeyEnd},
}

// lookupSequence returns the Key for a complete escape sequence, or
// Escape if the sequence is not recognized.
func lookupSequence(seq []byte) Key {
	if k, ok := legacySequences[string(seq)]; ok {
		return k
	}
	return Key{Type: KeyEscape}
}

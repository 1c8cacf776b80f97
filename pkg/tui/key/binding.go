// ABOUTME: ParseBinding turns keybinding names such as "ctrl+q" or "pgup" into Key values.
// ABOUTME: Used to resolve user-configured keybindings against decoded key events.

package key

import (
	"fmt"
	"strings"
)

// bindingNames maps named keys, including common aliases, to Key values.
var bindingNames = map[string]Key{
	"up":        {Type: KeyUp},
	"down":      {Type: KeyDown},
	"left":      {Type: KeyLeft},
	"right":     {Type: KeyRight},
	"home":      {Type: KeyHome},
	"end":       {Type: KeyEnd},
	"pgup":      {Type: KeyPageUp},
	"pageup":    {Type: KeyPageUp},
	"pgdown":    {Type: KeyPageDown},
	"pagedown":  {Type: KeyPageDown},
	"delete":    {Type: KeyDelete},
	"del":       {Type: KeyDelete},
	"escape":    {Type: KeyEscape},
	"esc":       {Type: KeyEscape},
	"enter":     Byte('\r'),
	"tab":       Byte('\t'),
	"space":     Byte(' '),
	"backspace": Byte(0x7f),
}

// ParseBinding parses a key name. Accepted forms are the named keys in
// bindingNames, "ctrl+<letter>" and single printable ASCII characters.
func ParseBinding(name string) (Key, error) {
	if len(name) == 1 {
		c := name[0]
		if c < 0x20 || c >= 0x7f {
			return Key{}, fmt.Errorf("unprintable key name %q", name)
		}
		return Byte(c), nil
	}

	lower := strings.ToLower(strings.TrimSpace(name))
	if k, ok := bindingNames[lower]; ok {
		return k, nil
	}

	if letter, ok := strings.CutPrefix(lower, "ctrl+"); ok {
		if len(letter) == 1 && letter[0] >= 'a' && letter[0] <= 'z' {
			return Byte(Ctrl(letter[0])), nil
		}
		return Key{}, fmt.Errorf("unsupported control combination %q", name)
	}

	return Key{}, fmt.Errorf("unknown key name %q", name)
}

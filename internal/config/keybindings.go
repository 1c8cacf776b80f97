// ABOUTME: Editor actions and their default key names
// ABOUTME: Configured bindings replace the defaults of the actions they name

package config

import (
	"maps"
	"slices"
)

// KeyAction represents an action that can be bound to keys.
type KeyAction string

const (
	ActionQuit        KeyAction = "quit"
	ActionCursorUp    KeyAction = "cursorUp"
	ActionCursorDown  KeyAction = "cursorDown"
	ActionCursorLeft  KeyAction = "cursorLeft"
	ActionCursorRight KeyAction = "cursorRight"
	ActionHome        KeyAction = "home"
	ActionEnd         KeyAction = "end"
	ActionPageUp      KeyAction = "pageUp"
	ActionPageDown    KeyAction = "pageDown"
)

var defaultBindings = map[KeyAction][]string{
	ActionQuit:        {"ctrl+q"},
	ActionCursorUp:    {"up"},
	ActionCursorDown:  {"down"},
	ActionCursorLeft:  {"left"},
	ActionCursorRight: {"right"},
	ActionHome:        {"home"},
	ActionEnd:         {"end"},
	ActionPageUp:      {"pgup"},
	ActionPageDown:    {"pgdown"},
}

// Valid reports whether a is a known action.
func (a KeyAction) Valid() bool {
	_, ok := defaultBindings[a]
	return ok
}

// Actions returns every known action in a stable order.
func Actions() []KeyAction {
	return slices.Sorted(maps.Keys(defaultBindings))
}

// DefaultKeybindings returns a fresh copy of the built-in bindings.
func DefaultKeybindings() map[KeyAction][]string {
	kb := make(map[KeyAction][]string, len(defaultBindings))
	for action, keys := range defaultBindings {
		kb[action] = slices.Clone(keys)
	}
	return kb
}

// ResolvedKeybindings returns the defaults with every configured action
// replaced by its configured keys. An empty list unbinds the action.
func (s *Settings) ResolvedKeybindings() map[KeyAction][]string {
	kb := DefaultKeybindings()
	for action, keys := range s.Keybindings {
		a := KeyAction(action)
		if a.Valid() {
			kb[a] = slices.Clone(keys)
		}
	}
	return kb
}

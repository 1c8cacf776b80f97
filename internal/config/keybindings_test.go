// ABOUTME: Tests for editor actions, default bindings, and configured overrides

package config

import (
	"slices"
	"testing"
)

func TestDefaultKeybindings(t *testing.T) {
	t.Parallel()

	kb := DefaultKeybindings()
	for _, action := range Actions() {
		if len(kb[action]) == 0 {
			t.Errorf("no default binding for %q", action)
		}
	}
	if !slices.Equal(kb[ActionQuit], []string{"ctrl+q"}) {
		t.Errorf("quit = %v, want [ctrl+q]", kb[ActionQuit])
	}

	kb[ActionQuit][0] = "x"
	if DefaultKeybindings()[ActionQuit][0] != "ctrl+q" {
		t.Error("DefaultKeybindings returned shared slices")
	}
}

func TestKeyAction_Valid(t *testing.T) {
	t.Parallel()

	for _, action := range Actions() {
		if !action.Valid() {
			t.Errorf("%q.Valid() = false", action)
		}
	}
	if KeyAction("paste").Valid() {
		t.Error(`"paste".Valid() = true, want false`)
	}
}

func TestActions_Sorted(t *testing.T) {
	t.Parallel()

	got := Actions()
	if len(got) != 9 {
		t.Fatalf("len(Actions()) = %d, want 9", len(got))
	}
	if !slices.IsSorted(got) {
		t.Errorf("Actions() = %v, want sorted", got)
	}
}

func TestResolvedKeybindings(t *testing.T) {
	t.Parallel()

	s := &Settings{Keybindings: map[string][]string{
		"quit":     {"ctrl+x", "ctrl+c"},
		"pageDown": {},
	}}
	kb := s.ResolvedKeybindings()

	if !slices.Equal(kb[ActionQuit], []string{"ctrl+x", "ctrl+c"}) {
		t.Errorf("quit = %v, want [ctrl+x ctrl+c]", kb[ActionQuit])
	}
	if len(kb[ActionPageDown]) != 0 {
		t.Errorf("pageDown = %v, want unbound", kb[ActionPageDown])
	}
	if !slices.Equal(kb[ActionCursorUp], []string{"up"}) {
		t.Errorf("cursorUp = %v, want default [up]", kb[ActionCursorUp])
	}
}

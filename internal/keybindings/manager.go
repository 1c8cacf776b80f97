// ABOUTME: Keybindings manager with O(1) key-to-action lookup
// ABOUTME: Parses configured key names, rejects conflicts, and formats the table for --list-keys

package keybindings

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mauromedda/pi-edit/internal/config"
	"github.com/mauromedda/pi-edit/pkg/tui/key"
	"github.com/mauromedda/pi-edit/pkg/tui/width"
)

// minKeyColumn is the narrowest key column FormatAll pads to.
const minKeyColumn = 20

// ConflictInfo describes a key bound to more than one action.
type ConflictInfo struct {
	Key     key.Key
	Actions []config.KeyAction
}

func (c ConflictInfo) String() string {
	names := make([]string, len(c.Actions))
	for i, a := range c.Actions {
		names[i] = string(a)
	}
	return fmt.Sprintf("%s bound to %s", c.Key, strings.Join(names, " and "))
}

// Manager provides O(1) key-to-action lookup.
type Manager struct {
	bindings map[config.KeyAction][]string
	lookup   map[key.Key]config.KeyAction
}

// New builds a Manager from action -> key name bindings, typically
// Settings.ResolvedKeybindings. Unknown key names and conflicts are errors.
func New(bindings map[config.KeyAction][]string) (*Manager, error) {
	keyActions, err := parseAll(bindings)
	if err != nil {
		return nil, err
	}
	if conflicts := findConflicts(keyActions); len(conflicts) > 0 {
		msgs := make([]string, len(conflicts))
		for i, c := range conflicts {
			msgs[i] = c.String()
		}
		return nil, fmt.Errorf("conflicting keybindings: %s", strings.Join(msgs, "; "))
	}

	m := &Manager{
		bindings: bindings,
		lookup:   make(map[key.Key]config.KeyAction, len(keyActions)),
	}
	for k, actions := range keyActions {
		m.lookup[k] = actions[0]
	}
	return m, nil
}

// Default returns a Manager with the built-in bindings.
func Default() *Manager {
	m, err := New(config.DefaultKeybindings())
	if err != nil {
		panic(fmt.Sprintf("default keybindings: %v", err))
	}
	return m
}

// ActionForKey returns the action bound to k, or "" if unbound.
func (m *Manager) ActionForKey(k key.Key) config.KeyAction {
	return m.lookup[k]
}

// FormatAll returns a formatted table of all keybindings. The key column
// is measured in display cells.
func (m *Manager) FormatAll() string {
	var b strings.Builder
	b.WriteString("Keybindings:\n\n")

	column := minKeyColumn
	for _, keys := range m.bindings {
		column = max(column, width.VisibleWidth(strings.Join(keys, ", ")))
	}

	categories := []struct {
		name    string
		actions []config.KeyAction
	}{
		{"Navigation", []config.KeyAction{
			config.ActionCursorUp, config.ActionCursorDown,
			config.ActionCursorLeft, config.ActionCursorRight,
			config.ActionHome, config.ActionEnd,
		}},
		{"Scrolling", []config.KeyAction{
			config.ActionPageUp, config.ActionPageDown,
		}},
		{"Control", []config.KeyAction{
			config.ActionQuit,
		}},
	}

	for _, cat := range categories {
		fmt.Fprintf(&b, "## %s\n", cat.name)
		for _, action := range cat.actions {
			keys := m.bindings[action]
			if len(keys) == 0 {
				continue
			}
			names := strings.Join(keys, ", ")
			pad := strings.Repeat(" ", column-width.VisibleWidth(names))
			fmt.Fprintf(&b, "  %s%s %s\n", names, pad, action)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// parseAll resolves every key name, grouping actions by the key they
// produce. Actions are visited in sorted order so results are stable.
func parseAll(bindings map[config.KeyAction][]string) (map[key.Key][]config.KeyAction, error) {
	keyActions := make(map[key.Key][]config.KeyAction)
	for _, action := range config.Actions() {
		for _, name := range bindings[action] {
			k, err := key.ParseBinding(name)
			if err != nil {
				return nil, fmt.Errorf("binding %s: %w", action, err)
			}
			if !slices.Contains(keyActions[k], action) {
				keyActions[k] = append(keyActions[k], action)
			}
		}
	}
	return keyActions, nil
}

func findConflicts(keyActions map[key.Key][]config.KeyAction) []ConflictInfo {
	var conflicts []ConflictInfo
	for k, actions := range keyActions {
		if len(actions) > 1 {
			conflicts = append(conflicts, ConflictInfo{Key: k, Actions: actions})
		}
	}
	slices.SortFunc(conflicts, func(a, b ConflictInfo) int {
		return strings.Compare(a.Key.String(), b.Key.String())
	})
	return conflicts
}

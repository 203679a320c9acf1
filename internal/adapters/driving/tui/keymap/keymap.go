// Package keymap defines keybindings for the review TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the review TUI.
type KeyMap struct {
	// Accept saves the extraction as shown.
	Accept key.Binding

	// Reject discards the extraction.
	Reject key.Binding

	// Edit starts editing the report field name.
	Edit key.Binding

	// Up scrolls the review up.
	Up key.Binding

	// Down scrolls the review down.
	Down key.Binding

	// Confirm applies the edited field name.
	Confirm key.Binding

	// Cancel leaves edit mode without changes.
	Cancel key.Binding

	// Quit aborts from any mode.
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept"),
		),
		Reject: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "reject"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit field"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ReviewHelp returns the keybindings shown while reviewing.
func (k *KeyMap) ReviewHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Accept, k.Reject, k.Up}
}

// EditHelp returns the keybindings shown while editing the field name.
func (k *KeyMap) EditHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}

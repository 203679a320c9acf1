// Package status provides the status bar of the review TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/aaltjes/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/aaltjes/internal/adapters/driving/tui/styles"
)

// State represents the review mode for display.
type State string

const (
	StateReviewing State = "reviewing"
	StateEditing   State = "editing"
)

// Bar displays the review status and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	state    State
	message  string
	warnings int
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReviewing,
		width:  80,
	}
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := b.width - b.styles.StatusBar.GetHorizontalPadding() -
		lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (b *Bar) renderLeft() string {
	if b.message != "" {
		return b.styles.Value.Render(b.message)
	}
	if b.state == StateEditing {
		return b.styles.Muted.Render("Editing field name")
	}
	switch b.warnings {
	case 0:
		return b.styles.Muted.Render("No warnings")
	case 1:
		return b.styles.Warning.Render("1 warning")
	default:
		return b.styles.Warning.Render(fmt.Sprintf("%d warnings", b.warnings))
	}
}

func (b *Bar) renderRight() string {
	var bindings []key.Binding
	if b.state == StateEditing {
		bindings = b.keymap.EditHelp()
	} else {
		bindings = b.keymap.ReviewHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (b *Bar) SetState(state State) {
	b.state = state
}

// State returns the current state.
func (b *Bar) State() State {
	return b.state
}

// SetMessage sets a transient message shown instead of the warning count.
func (b *Bar) SetMessage(message string) {
	b.message = message
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetWarnings sets the number of parser warnings.
func (b *Bar) SetWarnings(count int) {
	b.warnings = count
}

// Warnings returns the number of parser warnings.
func (b *Bar) Warnings() int {
	return b.warnings
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Width returns the current width.
func (b *Bar) Width() int {
	return b.width
}

// Package input provides text input components for the review TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/aaltjes/internal/adapters/driving/tui/styles"
)

// fieldNameLimit bounds the length of an edited field name.
const fieldNameLimit = 128

// FieldNameInput wraps a bubbles textinput for editing a report field name.
// It starts blurred; Focus enters edit mode.
type FieldNameInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewFieldNameInput creates a field name editor holding value.
func NewFieldNameInput(s *styles.Styles, value string) *FieldNameInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Perceelnaam"
	ti.CharLimit = fieldNameLimit
	ti.Width = 40
	ti.SetValue(value)

	return &FieldNameInput{
		textinput: ti,
		styles:    s,
		width:     40,
	}
}

// Update handles input messages.
func (f *FieldNameInput) Update(msg tea.Msg) (*FieldNameInput, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the editor.
func (f *FieldNameInput) View() string {
	label := f.styles.Label.Render("Perceel")
	input := f.styles.InputField.Render(f.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Value returns the current input value.
func (f *FieldNameInput) Value() string {
	return f.textinput.Value()
}

// SetValue replaces the input value.
func (f *FieldNameInput) SetValue(value string) {
	f.textinput.SetValue(value)
}

// Focus sets focus on the input and moves the cursor to the end.
func (f *FieldNameInput) Focus() tea.Cmd {
	cmd := f.textinput.Focus()
	f.textinput.CursorEnd()
	return cmd
}

// Blur removes focus from the input.
func (f *FieldNameInput) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the input is focused.
func (f *FieldNameInput) Focused() bool {
	return f.textinput.Focused()
}

// SetWidth sets the width of the editor.
func (f *FieldNameInput) SetWidth(width int) {
	f.width = width
	// Account for label and border
	inputWidth := width - 22
	if inputWidth < 20 {
		inputWidth = 20
	}
	f.textinput.Width = inputWidth
}

// Width returns the current width.
func (f *FieldNameInput) Width() int {
	return f.width
}

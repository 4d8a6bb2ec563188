// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/discreta/internal/adapters/driving/tui/styles"
)

// defaultPlaceholder is shown before an operation is chosen.
const defaultPlaceholder = "Enter whole numbers, e.g. 5, 2"

// NumberInput wraps a bubbles textinput for whole-number operands.
type NumberInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewNumberInput creates a new number input component.
func NewNumberInput(s *styles.Styles) *NumberInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = defaultPlaceholder
	ti.CharLimit = 128
	ti.Width = 40

	return &NumberInput{
		textinput: ti,
		styles:    s,
		width:     40,
	}
}

// Init initialises the input.
func (n *NumberInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (n *NumberInput) Update(msg tea.Msg) (*NumberInput, tea.Cmd) {
	var cmd tea.Cmd
	n.textinput, cmd = n.textinput.Update(msg)
	return n, cmd
}

// View renders the input with its label.
func (n *NumberInput) View() string {
	label := n.styles.Title.Render("Input: ")
	field := n.styles.InputField.Render(n.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (n *NumberInput) Value() string {
	return n.textinput.Value()
}

// SetValue sets the input value.
func (n *NumberInput) SetValue(value string) {
	n.textinput.SetValue(value)
}

// SetPlaceholder shows the expected input format of the selected operation.
func (n *NumberInput) SetPlaceholder(placeholder string) {
	if placeholder == "" {
		placeholder = defaultPlaceholder
	}
	n.textinput.Placeholder = placeholder
}

// Placeholder returns the current placeholder.
func (n *NumberInput) Placeholder() string {
	return n.textinput.Placeholder
}

// Focus sets focus on the input.
func (n *NumberInput) Focus() tea.Cmd {
	return n.textinput.Focus()
}

// Blur removes focus from the input.
func (n *NumberInput) Blur() {
	n.textinput.Blur()
}

// Focused returns whether the input is focused.
func (n *NumberInput) Focused() bool {
	return n.textinput.Focused()
}

// SetWidth sets the width of the input.
func (n *NumberInput) SetWidth(width int) {
	n.width = width
	// Account for label and padding
	inputWidth := width - 12
	if inputWidth < 20 {
		inputWidth = 20
	}
	n.textinput.Width = inputWidth
}

// Width returns the current width.
func (n *NumberInput) Width() int {
	return n.width
}

// Reset clears the input.
func (n *NumberInput) Reset() {
	n.textinput.Reset()
}

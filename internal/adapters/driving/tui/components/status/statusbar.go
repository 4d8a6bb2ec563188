// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/discreta/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/discreta/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/discreta/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateReady       State = "ready"
	StateCalculating State = "calculating"
	StateResult      State = "result"
	StateError       State = "error"
)

// Bar displays the calculator state, output options and keybinding hints.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	message   string
	notation  domain.Notation
	showSteps bool
	typing    bool
	width     int
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
		styles:    s,
		keymap:    km,
		state:     StateReady,
		notation:  domain.NotationPlain,
		showSteps: true,
		width:     80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state and output options.
func (s *Bar) renderLeft() string {
	var state string
	switch s.state {
	case StateCalculating:
		state = s.styles.Muted.Render("Calculating...")
	case StateError:
		state = s.styles.Error.Render(s.label("Error"))
	case StateResult:
		state = s.styles.Normal.Render(s.label("Done"))
	default:
		state = s.styles.Muted.Render("Ready")
	}

	steps := "steps off"
	if s.showSteps {
		steps = "steps on"
	}
	return state + s.styles.Muted.Render(fmt.Sprintf("  %s · %s", s.notation, steps))
}

func (s *Bar) label(fallback string) string {
	if s.message != "" {
		return s.message
	}
	return fallback
}

// renderRight renders keybinding hints for the focused pane.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.typing {
		bindings = s.keymap.InputHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetOutput records the notation and step visibility shown in the bar.
func (s *Bar) SetOutput(notation domain.Notation, showSteps bool) {
	s.notation = notation
	s.showSteps = showSteps
}

// SetTyping switches the hints between list and input bindings.
func (s *Bar) SetTyping(typing bool) {
	s.typing = typing
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to the ready state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}

// Package list provides list display components for the TUI.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/discreta/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/discreta/internal/core/domain"
)

// OperationList displays the operation catalogue in a navigable list.
type OperationList struct {
	operations []domain.OperationInfo
	selected   int
	styles     *styles.Styles
	width      int
	height     int
}

// NewOperationList creates a new operation list component.
func NewOperationList(s *styles.Styles) *OperationList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &OperationList{
		styles: s,
		width:  28,
		height: 12,
	}
}

// Init initialises the list.
func (l *OperationList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *OperationList) Update(msg tea.Msg) (*OperationList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the list.
func (l *OperationList) View() string {
	if len(l.operations) == 0 {
		return l.styles.Muted.Render("No operations")
	}

	lines := make([]string, 0, len(l.operations)+2)
	lines = append(lines, l.styles.Title.Render("Operations"), "")

	// One line per operation; scroll when the pane is shorter than the list.
	visible := l.height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.operations) {
		end = len(l.operations)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderOperation(i))
	}
	return strings.Join(lines, "\n")
}

func (l *OperationList) renderOperation(index int) string {
	name := l.operations[index].Title
	maxLen := l.width - 2
	if maxLen < 8 {
		maxLen = 8
	}
	if len(name) > maxLen {
		name = name[:maxLen-3] + "..."
	}

	if index == l.selected {
		return l.styles.Selected.Render("> " + name)
	}
	return l.styles.Normal.Render("  " + name)
}

// SetOperations replaces the catalogue and selects the first entry.
func (l *OperationList) SetOperations(ops []domain.OperationInfo) {
	l.operations = ops
	l.selected = 0
}

// Operations returns the catalogue.
func (l *OperationList) Operations() []domain.OperationInfo {
	return l.operations
}

// Selected returns the index of the selected operation.
func (l *OperationList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *OperationList) SetSelected(index int) {
	if index >= 0 && index < len(l.operations) {
		l.selected = index
	}
}

// SelectedOperation returns the selected operation, or nil if the list is empty.
func (l *OperationList) SelectedOperation() *domain.OperationInfo {
	if len(l.operations) == 0 {
		return nil
	}
	return &l.operations[l.selected]
}

// MoveUp moves selection up.
func (l *OperationList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *OperationList) MoveDown() {
	if l.selected < len(l.operations)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *OperationList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *OperationList) Width() int {
	return l.width
}

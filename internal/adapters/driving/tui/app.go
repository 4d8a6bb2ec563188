package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/discreta/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/discreta/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/discreta/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/discreta/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/discreta/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/discreta/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/discreta/internal/core/domain"
	"github.com/custodia-labs/discreta/internal/formatter"
	"github.com/custodia-labs/discreta/internal/logger"
)

// listPaneWidth is the width of the operation list pane.
const listPaneWidth = 32

// App is the calculator TUI following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	operations *list.OperationList
	input      *input.NumberInput
	statusBar  *status.Bar

	// focus decides which pane receives key input.
	focus    messages.FocusArea
	showHelp bool

	// notation and showSteps are sent with every request.
	notation  domain.Notation
	showSteps bool

	// calculation is the last successful result, err the last rejection.
	calculation *domain.Calculation
	err         error
	pending     bool

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		keymap:     km,
		help:       help.New(),
		operations: list.NewOperationList(s),
		input:      input.NewNumberInput(s),
		statusBar:  status.NewBar(s, km),
		focus:      messages.FocusOperations,
		notation:   domain.NotationPlain,
		showSteps:  true,
	}

	a.operations.SetOperations(ports.Calculator.Operations())
	a.syncPlaceholder()
	a.loadSettings()

	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("discreta"),
		a.input.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.operations.SetDimensions(listPaneWidth-4, msg.Height-6)
		a.input.SetWidth(msg.Width - listPaneWidth - 4)
		a.statusBar.SetWidth(msg.Width)
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.CalculationCompleted:
		a.pending = false
		if msg.Err != nil {
			a.err = msg.Err
			a.calculation = nil
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage("")
			return a, nil
		}
		a.err = nil
		a.calculation = msg.Calculation
		a.statusBar.SetState(status.StateResult)
		if msg.Calculation.Profile != nil {
			a.statusBar.SetMessage(msg.Calculation.Summary())
		} else {
			a.statusBar.SetMessage(msg.Calculation.ValueString())
		}
		return a, nil

	case messages.SettingsReloaded:
		a.loadSettings()
		return a, nil
	}

	// Forward other messages (cursor blink) to the input
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.ForceQuit):
		return a, tea.Quit
	case key.Matches(msg, a.keymap.SwitchFocus):
		return a, a.toggleFocus()
	case key.Matches(msg, a.keymap.ToggleNotation):
		if a.notation == domain.NotationLaTeX {
			a.notation = domain.NotationPlain
		} else {
			a.notation = domain.NotationLaTeX
		}
		a.statusBar.SetOutput(a.notation, a.showSteps)
		return a, a.recompute()
	case key.Matches(msg, a.keymap.ToggleSteps):
		a.showSteps = !a.showSteps
		a.statusBar.SetOutput(a.notation, a.showSteps)
		return a, a.recompute()
	}

	if a.focus == messages.FocusOperations {
		return a.handleListKey(msg)
	}
	return a.handleInputKey(msg)
}

func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keymap.Help):
		a.showHelp = !a.showHelp
		return a, nil
	case key.Matches(msg, a.keymap.Compute):
		return a, a.setFocus(messages.FocusInput)
	case key.Matches(msg, a.keymap.Up), key.Matches(msg, a.keymap.Down):
		before := a.operations.Selected()
		a.operations, _ = a.operations.Update(msg)
		if a.operations.Selected() != before {
			a.clearResult()
			a.syncPlaceholder()
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Compute):
		return a, a.compute()
	case key.Matches(msg, a.keymap.Clear):
		if a.input.Value() == "" && a.calculation == nil && a.err == nil {
			return a, a.setFocus(messages.FocusOperations)
		}
		a.input.Reset()
		a.clearResult()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// compute runs the selected operation on the current input.
func (a *App) compute() tea.Cmd {
	op := a.operations.SelectedOperation()
	if op == nil {
		return nil
	}

	showSteps := a.showSteps
	req := domain.Request{
		Operation: op.Operation,
		RawInput:  a.input.Value(),
		Notation:  a.notation,
		ShowSteps: &showSteps,
	}

	a.pending = true
	a.statusBar.SetState(status.StateCalculating)
	a.statusBar.SetMessage("")

	ctx := a.ctx
	calculator := a.ports.Calculator
	return func() tea.Msg {
		calc, err := calculator.Calculate(ctx, req)
		return messages.CalculationCompleted{Calculation: calc, Err: err}
	}
}

// recompute repeats the last successful calculation with the current options.
func (a *App) recompute() tea.Cmd {
	if a.calculation == nil {
		return nil
	}
	return a.compute()
}

func (a *App) toggleFocus() tea.Cmd {
	if a.focus == messages.FocusOperations {
		return a.setFocus(messages.FocusInput)
	}
	return a.setFocus(messages.FocusOperations)
}

func (a *App) setFocus(focus messages.FocusArea) tea.Cmd {
	a.focus = focus
	a.statusBar.SetTyping(focus == messages.FocusInput)
	if focus == messages.FocusInput {
		return a.input.Focus()
	}
	a.input.Blur()
	return nil
}

func (a *App) clearResult() {
	a.calculation = nil
	a.err = nil
	a.statusBar.Clear()
}

func (a *App) syncPlaceholder() {
	if op := a.operations.SelectedOperation(); op != nil {
		a.input.SetPlaceholder(op.InputFormat)
	}
}

// loadSettings applies the configured output options.
func (a *App) loadSettings() {
	if a.ports.Settings != nil {
		settings, err := a.ports.Settings.Get()
		if err != nil {
			logger.Warn("Using default output settings: %v", err)
		} else {
			a.notation = settings.Output.Notation
			a.showSteps = settings.Output.ShowSteps
		}
	}
	a.statusBar.SetOutput(a.notation, a.showSteps)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	header := a.styles.Title.Render("discreta") + "  " +
		a.styles.Muted.Render("exact combinatorics and number theory")

	left := a.styles.Panel.Width(listPaneWidth).Render(a.operations.View())
	right := lipgloss.JoinVertical(lipgloss.Left,
		a.viewOperationCard(),
		"",
		a.input.View(),
		"",
		a.viewResult(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	sections := []string{header, "", body}
	if a.showHelp {
		sections = append(sections, "", a.help.FullHelpView(a.keymap.FullHelp()))
	}
	sections = append(sections, "", a.statusBar.View())
	return strings.Join(sections, "\n")
}

func (a *App) viewOperationCard() string {
	op := a.operations.SelectedOperation()
	if op == nil {
		return ""
	}
	lines := formatter.Operation(*op, a.notation)
	rendered := make([]string, len(lines))
	rendered[0] = a.styles.Title.Render(lines[0])
	for i, line := range lines[1:] {
		rendered[i+1] = a.styles.Muted.Render(line)
	}
	return strings.Join(rendered, "\n")
}

func (a *App) viewResult() string {
	switch {
	case a.pending:
		return a.styles.Muted.Render("Calculating...")
	case a.err != nil:
		return a.styles.Error.Render("Error: " + a.err.Error())
	case a.calculation == nil:
		return a.styles.Muted.Render("Press enter to compute")
	}

	lines := a.calculation.Lines
	rendered := make([]string, 0, len(lines))
	for i, line := range lines {
		if i == 0 {
			rendered = append(rendered, a.styles.Formula.Render(line))
			continue
		}
		rendered = append(rendered, a.styles.Normal.Render(line))
	}
	return strings.Join(rendered, "\n")
}

// Focus returns the focused pane.
func (a *App) Focus() messages.FocusArea {
	return a.focus
}

// Calculation returns the last successful calculation.
func (a *App) Calculation() *domain.Calculation {
	return a.calculation
}

// Err returns the last rejection.
func (a *App) Err() error {
	return a.err
}

// Notation returns the notation sent with requests.
func (a *App) Notation() domain.Notation {
	return a.notation
}

// ShowSteps reports whether derivation steps are requested.
func (a *App) ShowSteps() bool {
	return a.showSteps
}

// SelectedOperation returns the highlighted operation.
func (a *App) SelectedOperation() domain.Operation {
	if op := a.operations.SelectedOperation(); op != nil {
		return op.Operation
	}
	return ""
}

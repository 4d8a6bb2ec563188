package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/discreta/internal/adapters/driving/tui"
	"github.com/custodia-labs/discreta/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/discreta/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	Long: `Launch the interactive terminal calculator.

Pick an operation from the list, type its input and press enter to see the
value together with its derivation.

Controls:
  ↑/k, ↓/j - Choose operation
  Tab      - Switch between list and input
  Enter    - Compute
  Esc      - Clear input / back to list
  Ctrl+L   - Toggle plain/LaTeX
  Ctrl+S   - Toggle steps
  ?        - Toggle help
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(calculatorService, settingsService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if configWatcher != nil {
		err := configWatcher.Watch(ctx, func() {
			p.Send(messages.SettingsReloaded{})
		})
		if err != nil {
			logger.Warn("Config changes will not be picked up: %v", err)
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/discreta/internal/adapters/driving/tui/styles"
)

var cliStyles = styles.DefaultStyles()

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// title renders s as a heading when writing to a terminal.
func title(cmd *cobra.Command, s string) string {
	if isTerminal(cmd.OutOrStdout()) {
		return cliStyles.Title.Render(s)
	}
	return s
}

// muted renders s dimmed when writing to a terminal.
func muted(cmd *cobra.Command, s string) string {
	if isTerminal(cmd.OutOrStdout()) {
		return cliStyles.Muted.Render(s)
	}
	return s
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

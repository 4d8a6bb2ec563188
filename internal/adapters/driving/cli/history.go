package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent calculations",
	Long: `Show recent calculations, most recent first.

History is kept in ~/.discreta/data/history.db and trimmed to the
history.size setting after every calculation.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent calculations",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded calculations",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	for _, c := range []*cobra.Command{historyCmd, historyListCmd} {
		c.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
		c.Flags().BoolVar(&historyJSON, "json", false, "output entries as JSON")
	}
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errNotConfigured("history")
	}

	entries, err := historyService.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	if historyJSON {
		if entries == nil {
			entries = []domain.HistoryEntry{}
		}
		return printJSON(cmd, entries)
	}

	if len(entries) == 0 {
		cmd.Println("No calculations recorded.")
		return nil
	}

	for i := range entries {
		e := &entries[i]
		cmd.Printf("  [%d] %s  %s(%s)\n", i+1,
			muted(cmd, e.CreatedAt.Local().Format("2006-01-02 15:04")), e.Operation, e.RawInput)
		if e.Summary != "" {
			cmd.Printf("      %s\n", e.Summary)
		}
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errNotConfigured("history")
	}

	if err := historyService.Clear(cmd.Context()); err != nil {
		return err
	}
	cmd.Println("History cleared.")
	return nil
}

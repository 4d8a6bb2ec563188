package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change limits, output notation, analysis and history options.

Settings are stored in ~/.discreta/config.toml.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting by its dotted key, for example:

  discreta settings set output.notation latex
  discreta settings set limits.max_combinatorial_n 5000
  discreta settings set analysis.totient_method scan`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsSetCmd.ValidArgsFunction = completeSettingKey
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println(title(cmd, "Current Settings"))
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Limits]")
	cmd.Printf("  Max n (combinatorics): %d\n", settings.Limits.MaxCombinatorialN)
	cmd.Printf("  Max n (Stirling, Bell): %d\n", settings.Limits.MaxTableN)
	cmd.Printf("  Max n (sequences): %d\n", settings.Limits.MaxSequenceN)
	cmd.Printf("  Max n (analysis): %d\n", settings.Limits.MaxAnalysisN)
	cmd.Printf("  Max n (totient scan): %d\n", settings.Limits.MaxTotientScanN)
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Notation: %s\n", settings.Output.Notation)
	cmd.Printf("  Show steps: %s\n", onOff(settings.Output.ShowSteps))
	cmd.Println()

	cmd.Println("[Analysis]")
	cmd.Printf("  Totient method: %s\n", settings.Analysis.TotientMethod.Description())
	cmd.Printf("  Parallel: %s\n", onOff(settings.Analysis.Parallel))
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %s\n", onOff(settings.History.Enabled))
	cmd.Printf("  Size: %d\n", settings.History.Size)
	cmd.Println()

	cmd.Println("[MCP]")
	cmd.Printf("  Rate: %g requests/s (burst %d)\n", settings.MCP.RatePerSecond, settings.MCP.Burst)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("unknown setting %q (valid keys: %s)", key,
				strings.Join(settingsService.Keys(), ", "))
		}
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("%s = %s\n", key, value)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	if err := settingsService.Reset(); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	cmd.Println("Settings restored to defaults.")
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func completeSettingKey(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 && settingsService != nil {
		return settingsService.Keys(), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

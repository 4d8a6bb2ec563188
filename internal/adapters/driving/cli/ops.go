package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/discreta/internal/core/domain"
	"github.com/custodia-labs/discreta/internal/formatter"
)

var (
	opsJSON  bool
	opsLaTeX bool
)

var opsCmd = &cobra.Command{
	Use:     "ops",
	Aliases: []string{"operations"},
	Short:   "List supported operations",
	Args:    cobra.NoArgs,
	RunE:    runOps,
}

func init() {
	opsCmd.Flags().BoolVar(&opsJSON, "json", false, "output the catalogue as JSON")
	opsCmd.Flags().BoolVar(&opsLaTeX, "latex", false, "show formulas as LaTeX markup")
	rootCmd.AddCommand(opsCmd)
}

func runOps(cmd *cobra.Command, _ []string) error {
	if calculatorService == nil {
		return errNotConfigured("calculator")
	}

	infos := calculatorService.Operations()
	if opsJSON {
		return printJSON(cmd, infos)
	}

	notation := notationFor(opsLaTeX)
	for i, info := range infos {
		if i > 0 {
			cmd.Println()
		}
		lines := formatter.Operation(info, notation)
		cmd.Printf("%s %s\n", title(cmd, lines[0]), muted(cmd, "("+info.Operation.String()+")"))
		for _, line := range lines[1:] {
			cmd.Printf("  %s\n", line)
		}
	}
	return nil
}

// operationNames lists the canonical operation names for shell completion.
func operationNames() []string {
	ops := domain.Operations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}
	return names
}

// completeOperation completes the first argument of calc.
func completeOperation(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return operationNames(), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

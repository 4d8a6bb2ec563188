package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

var (
	calcJSON  bool
	calcLaTeX bool
	calcSteps bool

	analyseJSON  bool
	analyseLaTeX bool
)

var calcCmd = &cobra.Command{
	Use:   "calc <operation> <input...>",
	Short: "Run a calculation",
	Long: `Run one operation on whole-number input. Values may be separated by
commas, spaces or both, and "5.0" counts as 5.

Operations:
  combination, permutation, binomial, stirling2   two values: n, k
  catalan, bell, fibonacci, lucas, analyze         one value: n

Examples:
  discreta calc combination 5,2
  discreta calc stirling2 5 2 --latex
  discreta calc fibonacci 30 --steps=false`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeOperation,
	RunE:              runCalc,
}

var analyseCmd = &cobra.Command{
	Use:     "analyse <n>",
	Aliases: []string{"analyze"},
	Short:   "Describe a positive integer",
	Long: `Show primality, parity, divisors, prime factorization and Euler's
totient for a positive integer.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyse,
}

func init() {
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "output the calculation as JSON")
	calcCmd.Flags().BoolVar(&calcLaTeX, "latex", false, "render formulas as LaTeX markup")
	calcCmd.Flags().BoolVar(&calcSteps, "steps", true, "include derivation steps")
	rootCmd.AddCommand(calcCmd)

	analyseCmd.Flags().BoolVar(&analyseJSON, "json", false, "output the profile as JSON")
	analyseCmd.Flags().BoolVar(&analyseLaTeX, "latex", false, "render lines as LaTeX markup")
	rootCmd.AddCommand(analyseCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	req := domain.Request{
		Operation: domain.Operation(args[0]),
		RawInput:  strings.Join(args[1:], " "),
	}
	if cmd.Flags().Changed("latex") {
		req.Notation = notationFor(calcLaTeX)
	}
	if cmd.Flags().Changed("steps") {
		steps := calcSteps
		req.ShowSteps = &steps
	}
	return calculate(cmd, req, calcJSON)
}

func runAnalyse(cmd *cobra.Command, args []string) error {
	req := domain.Request{
		Operation: domain.OpAnalyze,
		RawInput:  args[0],
	}
	if cmd.Flags().Changed("latex") {
		req.Notation = notationFor(analyseLaTeX)
	}
	return calculate(cmd, req, analyseJSON)
}

func notationFor(latex bool) domain.Notation {
	if latex {
		return domain.NotationLaTeX
	}
	return domain.NotationPlain
}

func calculate(cmd *cobra.Command, req domain.Request, asJSON bool) error {
	if calculatorService == nil {
		return errNotConfigured("calculator")
	}

	calc, err := calculatorService.Calculate(cmd.Context(), req)
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(cmd, calc)
	}
	printCalculation(cmd, calc)
	return nil
}

func printCalculation(cmd *cobra.Command, calc *domain.Calculation) {
	heading := fmt.Sprintf("%s (%s)", calc.Operation.Info().Title, joinValues(calc.Input.Values))
	cmd.Println(title(cmd, heading))
	for _, line := range calc.Lines {
		cmd.Printf("  %s\n", line)
	}
}

func joinValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

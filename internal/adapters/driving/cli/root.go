// Package cli provides the cobra command tree for discreta.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/discreta/internal/core/ports/driving"
	"github.com/custodia-labs/discreta/internal/logger"
)

// version is set at build time via -ldflags or by SetVersion.
var version = "dev"

// Services wired by the composition root.
var (
	calculatorService driving.CalculatorService
	historyService    driving.HistoryService
	settingsService   driving.SettingsService
	configWatcher     ConfigWatcher
)

// Global flags.
var (
	verbose   bool
	configDir string
	noHistory bool
)

// ConfigWatcher reloads configuration when the file changes on disk.
type ConfigWatcher interface {
	Watch(ctx context.Context, onChange func()) error
}

// Services groups the driving ports the commands use.
type Services struct {
	Calculator driving.CalculatorService
	History    driving.HistoryService
	Settings   driving.SettingsService
	Watcher    ConfigWatcher
}

// Options carries global flag values to the service builder.
type Options struct {
	ConfigDir string
	NoHistory bool
}

// Builder creates the services once global flags are parsed.
// The returned cleanup func releases them and may be nil.
type Builder func(opts Options) (*Services, func(), error)

var (
	builder Builder
	release func()
)

var rootCmd = &cobra.Command{
	Use:   "discreta",
	Short: "Exact combinatorics and number theory with derivation traces",
	Long: `discreta computes combinations, permutations, binomial coefficients,
Stirling numbers of the second kind, Catalan and Bell numbers, Fibonacci and
Lucas numbers, and number profiles. Every value is exact and comes with the
steps that produced it, in plain text or LaTeX markup.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupServices,
}

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print derivation and diagnostic output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.discreta)")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "keep history in memory only for this run")
}

// SetServices injects services directly, bypassing the builder.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	calculatorService = s.Calculator
	historyService = s.History
	settingsService = s.Settings
	configWatcher = s.Watcher
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. Services come from b once flags are parsed.
func Execute(b Builder) error {
	builder = b
	defer func() {
		if release != nil {
			release()
			release = nil
		}
	}()

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func setupServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if builder == nil {
		return nil
	}

	services, cleanup, err := builder(Options{ConfigDir: configDir, NoHistory: noHistory})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(services)
	release = cleanup
	return nil
}

// errNotConfigured reports a missing service.
func errNotConfigured(name string) error {
	return errors.New(name + " service not configured")
}

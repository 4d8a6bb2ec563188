package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/discreta/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/discreta/internal/core/services"
)

// testServices holds the real services wired over in-memory stores.
type testServices struct {
	calculator *services.CalculatorService
	history    *services.HistoryService
	settings   *services.SettingsService
}

func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	settings := services.NewSettingsService(memory.NewConfigStore())
	store := memory.NewHistoryStore()
	ts := &testServices{
		calculator: services.NewCalculatorService(settings, store),
		history:    services.NewHistoryService(store),
		settings:   settings,
	}

	SetServices(&Services{
		Calculator: ts.calculator,
		History:    ts.history,
		Settings:   ts.settings,
	})
	t.Cleanup(func() { SetServices(nil) })
	return ts
}

// resetFlags restores every flag in the tree to its default so values
// parsed by one test do not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Metadata(t *testing.T) {
	assert.Equal(t, "discreta", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
	assert.NotNil(t, rootCmd.PersistentPreRunE)
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "no-history"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"calc", "analyse", "ops", "history", "settings", "mcp", "tui", "version"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

func TestSetServices_Nil(t *testing.T) {
	setupTestServices(t)

	SetServices(nil)

	assert.Nil(t, calculatorService)
	assert.Nil(t, historyService)
	assert.Nil(t, settingsService)
	assert.Nil(t, configWatcher)
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)

	SetVersion("")
	assert.Equal(t, "1.2.3", version)
}

func TestExecute_PassesOptionsToBuilder(t *testing.T) {
	resetFlags(rootCmd)
	t.Cleanup(func() {
		builder = nil
		SetServices(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})

	dir := t.TempDir()
	var got Options
	released := false
	b := func(opts Options) (*Services, func(), error) {
		got = opts
		settings := services.NewSettingsService(memory.NewConfigStore())
		return &Services{Settings: settings}, func() { released = true }, nil
	}

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"--config-dir", dir, "--no-history", "version"})

	err := Execute(b)

	require.NoError(t, err)
	assert.Equal(t, Options{ConfigDir: dir, NoHistory: true}, got)
	assert.NotNil(t, settingsService)
	assert.True(t, released)
}

func TestExecute_BuilderError(t *testing.T) {
	resetFlags(rootCmd)
	t.Cleanup(func() {
		builder = nil
		rootCmd.SetArgs(nil)
	})

	errBuf := new(bytes.Buffer)
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(errBuf)
	rootCmd.SetArgs([]string{"version"})

	err := Execute(func(Options) (*Services, func(), error) {
		return nil, nil, errors.New("disk full")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialising: disk full")
	assert.Contains(t, errBuf.String(), "Error: initialising: disk full")
}

func TestErrNotConfigured(t *testing.T) {
	assert.EqualError(t, errNotConfigured("calculator"), "calculator service not configured")
}

// Command discreta computes exact combinatorial values and number profiles
// from the command line, an MCP server or an interactive TUI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/discreta/internal/adapters/driven/config/file"
	"github.com/custodia-labs/discreta/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/discreta/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/discreta/internal/adapters/driving/cli"
	"github.com/custodia-labs/discreta/internal/core/ports/driven"
	"github.com/custodia-labs/discreta/internal/core/services"
	"github.com/custodia-labs/discreta/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(build); err != nil {
		os.Exit(1)
	}
}

// build wires the driven adapters into the core services.
func build(opts cli.Options) (*cli.Services, func(), error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	logger.Debug("Config: %s", configStore.Path())

	settingsService := services.NewSettingsService(configStore)

	var (
		historyStore driven.HistoryStore
		cleanup      func()
	)
	if opts.NoHistory {
		historyStore = memory.NewHistoryStore()
	} else {
		dataDir := ""
		if opts.ConfigDir != "" {
			dataDir = filepath.Join(opts.ConfigDir, "data")
		}
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("history: %w", err)
		}
		logger.Debug("History: %s", store.Path())
		historyStore = store.HistoryStore()
		cleanup = func() {
			if err := store.Close(); err != nil {
				logger.Warn("Failed to close history store: %v", err)
			}
		}
	}

	return &cli.Services{
		Calculator: services.NewCalculatorService(settingsService, historyStore),
		History:    services.NewHistoryService(historyStore),
		Settings:   settingsService,
		Watcher:    configStore,
	}, cleanup, nil
}

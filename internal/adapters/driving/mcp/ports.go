package mcp

import (
	"github.com/custodia-labs/discreta/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Calculator evaluates requests.
	Calculator driving.CalculatorService

	// History exposes recorded calculations.
	History driving.HistoryService

	// Settings supplies notation and rate limit defaults.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	// History and Settings are optional
	return nil
}

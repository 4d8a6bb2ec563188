// Package tui provides an interactive terminal calculator for discreta.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/discreta/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Calculator evaluates requests.
	Calculator driving.CalculatorService

	// Settings supplies the initial notation and step visibility.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(calculator driving.CalculatorService, settings driving.SettingsService) *Ports {
	return &Ports{
		Calculator: calculator,
		Settings:   settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	// Settings is optional
	return nil
}

// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/discreta/internal/core/domain"
)

// CalculationRequested asks the app to run an operation.
type CalculationRequested struct {
	Request domain.Request
}

// CalculationCompleted carries the outcome of a calculation back to the model.
type CalculationCompleted struct {
	Calculation *domain.Calculation
	Err         error
}

// OperationSelected is sent when the highlighted operation changes.
type OperationSelected struct {
	Operation domain.OperationInfo
}

// SettingsReloaded is sent when the config file changes on disk.
type SettingsReloaded struct{}

// FocusArea identifies which pane receives key input.
type FocusArea int

const (
	// FocusOperations is the operation list.
	FocusOperations FocusArea = iota
	// FocusInput is the number input.
	FocusInput
)

// String returns the focus area name.
func (f FocusArea) String() string {
	switch f {
	case FocusOperations:
		return "operations"
	case FocusInput:
		return "input"
	default:
		return "unknown"
	}
}

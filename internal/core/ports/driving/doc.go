// Package driving defines interfaces that external actors (CLI, MCP, TUI) use
// to interact with core services. These are the "driving" ports in hexagonal
// architecture terminology - they drive the application.
//
//   - CalculatorService: evaluate a request and list the operation catalogue
//   - HistoryService: read and clear recorded calculations
//   - SettingsService: read and change application settings
//
// Implementations of these interfaces live in internal/core/services.
package driving

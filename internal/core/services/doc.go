// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The CalculatorService drives the pure compute packages (normaliser,
// combinatorics, sequences, numtheory, formatter) and records history as a
// side channel. Services are pure Go with no CGO.
package services

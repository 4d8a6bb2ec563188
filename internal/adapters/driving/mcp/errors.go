// Package mcp provides an MCP (Model Context Protocol) server adapter for discreta.
// It lets AI assistants run exact combinatorial and number-theoretic
// calculations and read the operation catalogue.
package mcp

import "errors"

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("mcp: calculator service is required")

// Package logger provides verbose logging for discreta.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to show how a request moves through the
// normaliser, the compute modules and the formatter.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// printf writes one line when verbose mode is enabled.
func printf(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, format+"\n", args...)
}

// Debug prints a diagnostic message.
func Debug(format string, args ...any) {
	printf("[DEBUG] "+format, args...)
}

// Info prints an informational message.
func Info(format string, args ...any) {
	printf("[INFO] "+format, args...)
}

// Warn prints a warning. Like every level it is shown only in verbose mode.
func Warn(format string, args ...any) {
	printf("[WARN] "+format, args...)
}

// Section prints a section header such as "=== Calculation ===".
func Section(name string) {
	printf("\n=== %s ===", name)
}

// Step prints one numbered derivation line.
func Step(n int, line string) {
	printf("  %2d. %s", n, line)
}

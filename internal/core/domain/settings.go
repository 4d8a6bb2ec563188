package domain

import "fmt"

// Notation selects how display strings are rendered.
type Notation string

// Available notations.
const (
	// NotationPlain renders formulas as plain text.
	NotationPlain Notation = "plain"

	// NotationLaTeX renders formulas as LaTeX markup.
	NotationLaTeX Notation = "latex"
)

// IsValid returns true if the notation is recognised.
func (n Notation) IsValid() bool {
	return n == NotationPlain || n == NotationLaTeX
}

// String returns the string representation.
func (n Notation) String() string {
	return string(n)
}

// TotientMethod selects how Euler's totient is computed.
type TotientMethod string

// Available totient methods. Both produce identical values.
const (
	// TotientProduct uses φ(n) = n·Π(1 − 1/p) over the distinct prime factors.
	TotientProduct TotientMethod = "product"

	// TotientScan counts i in [1, n] with gcd(i, n) = 1.
	TotientScan TotientMethod = "scan"
)

// IsValid returns true if the method is recognised.
func (m TotientMethod) IsValid() bool {
	return m == TotientProduct || m == TotientScan
}

// Description returns a human-readable description of the method.
func (m TotientMethod) Description() string {
	switch m {
	case TotientProduct:
		return "Product formula over distinct primes, O(√n)"
	case TotientScan:
		return "Brute-force gcd scan, O(n log n)"
	default:
		return unknownDescription
	}
}

// Limits bounds the inputs a request may carry, so the exact computations stay
// within bounded latency.
type Limits struct {
	// MaxCombinatorialN bounds n for combination, permutation, binomial
	// and Catalan.
	MaxCombinatorialN int

	// MaxTableN bounds n for Stirling and Bell, whose tables grow with n·k
	// and n² respectively.
	MaxTableN int

	// MaxSequenceN bounds n for Fibonacci and Lucas.
	MaxSequenceN int

	// MaxAnalysisN bounds n for number analysis.
	MaxAnalysisN int

	// MaxTotientScanN bounds n when the scan totient method is selected.
	MaxTotientScanN int
}

// OutputSettings configures rendering.
type OutputSettings struct {
	Notation  Notation
	ShowSteps bool
}

// AnalysisSettings configures number analysis.
type AnalysisSettings struct {
	TotientMethod TotientMethod
	Parallel      bool
}

// HistorySettings configures calculation history.
type HistorySettings struct {
	Enabled bool
	Size    int
}

// MCPSettings configures the MCP HTTP transport.
type MCPSettings struct {
	RatePerSecond float64
	Burst         int
}

// AppSettings contains all application settings.
type AppSettings struct {
	Limits   Limits
	Output   OutputSettings
	Analysis AnalysisSettings
	History  HistorySettings
	MCP      MCPSettings
}

// DefaultAppSettings returns the default settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Limits: Limits{
			MaxCombinatorialN: 2000,
			MaxTableN:         500,
			MaxSequenceN:      10000,
			MaxAnalysisN:      1_000_000_000_000,
			MaxTotientScanN:   10_000_000,
		},
		Output: OutputSettings{
			Notation:  NotationPlain,
			ShowSteps: true,
		},
		Analysis: AnalysisSettings{
			TotientMethod: TotientProduct,
			Parallel:      true,
		},
		History: HistorySettings{
			Enabled: true,
			Size:    100,
		},
		MCP: MCPSettings{
			RatePerSecond: 20,
			Burst:         40,
		},
	}
}

// Validate checks the settings for values the engine cannot honour.
func (s *AppSettings) Validate() error {
	if s.Limits.MaxCombinatorialN <= 0 || s.Limits.MaxTableN <= 0 || s.Limits.MaxSequenceN <= 0 ||
		s.Limits.MaxAnalysisN <= 0 || s.Limits.MaxTotientScanN <= 0 {
		return fmt.Errorf("%w: limits must be positive", ErrInvalidInput)
	}
	if !s.Output.Notation.IsValid() {
		return fmt.Errorf("%w: unknown notation %q", ErrInvalidInput, s.Output.Notation)
	}
	if !s.Analysis.TotientMethod.IsValid() {
		return fmt.Errorf("%w: unknown totient method %q", ErrInvalidInput, s.Analysis.TotientMethod)
	}
	if s.History.Size < 0 {
		return fmt.Errorf("%w: history size must not be negative", ErrInvalidInput)
	}
	if s.MCP.RatePerSecond <= 0 || s.MCP.Burst <= 0 {
		return fmt.Errorf("%w: mcp rate and burst must be positive", ErrInvalidInput)
	}
	return nil
}

// LimitFor returns the configured bound on n for an operation.
func (l Limits) LimitFor(op Operation) int {
	switch {
	case op == OpAnalyze:
		return l.MaxAnalysisN
	case op.IsSequence():
		return l.MaxSequenceN
	case op == OpStirling2 || op == OpBell:
		return l.MaxTableN
	default:
		return l.MaxCombinatorialN
	}
}

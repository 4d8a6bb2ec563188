package domain

import (
	"fmt"
	"math/big"
	"time"
)

// IntegerInput is the ordered sequence of non-negative integers extracted from
// a request's raw text. Arity is validated by whoever consumes it.
type IntegerInput struct {
	Values []int `json:"values"`
}

// Len returns the number of values.
func (in IntegerInput) Len() int {
	return len(in.Values)
}

// Expression is one display formula in both plain text and LaTeX markup.
type Expression struct {
	Plain string `json:"plain"`
	LaTeX string `json:"latex"`
}

// Text returns a plain-only expression, used for prose lines.
func Text(s string) Expression {
	return Expression{Plain: s, LaTeX: `\text{` + s + `}`}
}

// CombinatorialResult is the exact value of a combinatorial or sequence
// operation together with its derivation.
type CombinatorialResult struct {
	Operation   Operation    `json:"operation"`
	Args        []int        `json:"args"`
	Value       *big.Int     `json:"value"`
	Formula     Expression   `json:"formula"`
	Steps       []Expression `json:"steps"`
	Explanation string       `json:"explanation"`
}

// PrimePower is one (prime, exponent) pair of a factorization.
type PrimePower struct {
	Prime    int `json:"prime"`
	Exponent int `json:"exponent"`
}

// NumberProfile describes one positive integer. All fields derive from N.
type NumberProfile struct {
	N                  int          `json:"n"`
	IsPrime            bool         `json:"is_prime"`
	IsEven             bool         `json:"is_even"`
	IsOdd              bool         `json:"is_odd"`
	IsPerfectSquare    bool         `json:"is_perfect_square"`
	IsPerfect          bool         `json:"is_perfect"`
	Divisors           []int        `json:"divisors"`
	DivisorCount       int          `json:"divisor_count"`
	DivisorSum         int          `json:"divisor_sum"`
	PrimeFactorization []PrimePower `json:"prime_factorization"`
	Totient            int          `json:"totient"`
}

// Request is one call into the engine. Notation and ShowSteps override the
// configured output settings when set.
type Request struct {
	Operation Operation `json:"operation"`
	RawInput  string    `json:"raw_input"`
	Notation  Notation  `json:"notation,omitempty"`
	ShowSteps *bool     `json:"show_steps,omitempty"`
}

// Calculation is a successful response. Exactly one of Result and Profile is set.
type Calculation struct {
	ID        string               `json:"id"`
	Operation Operation            `json:"operation"`
	Input     IntegerInput         `json:"input"`
	Result    *CombinatorialResult `json:"result,omitempty"`
	Profile   *NumberProfile       `json:"profile,omitempty"`
	Lines     []string             `json:"lines"`
	CreatedAt time.Time            `json:"created_at"`
}

// Summary returns a short one-line description of the calculation.
func (c *Calculation) Summary() string {
	if c.Profile != nil {
		return fmt.Sprintf("Number analysis of %d", c.Profile.N)
	}
	if len(c.Lines) == 0 {
		return ""
	}
	return c.Lines[0]
}

// ValueString returns the decimal value, or "profile" for number analysis.
func (c *Calculation) ValueString() string {
	if c.Result != nil && c.Result.Value != nil {
		return c.Result.Value.String()
	}
	if c.Profile != nil {
		return "profile"
	}
	return ""
}

// HistoryEntry is a persisted record of one calculation.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Operation Operation `json:"operation"`
	RawInput  string    `json:"raw_input"`
	Value     string    `json:"value"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

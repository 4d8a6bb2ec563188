// Package sequences computes Fibonacci and Lucas numbers exactly.
//
// Both sequences share the recurrence a_n = a_{n-1} + a_{n-2} and differ only
// in their seeds. Values are computed iteratively with two running
// *big.Int values.
package sequences

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

// SequenceMaxN is the largest n whose trace lists every term.
const SequenceMaxN = 10

// Fibonacci returns F_n with F_0 = 0, F_1 = 1.
func Fibonacci(n int) (*big.Int, error) {
	return nth(0, 1, n)
}

// Lucas returns L_n with L_0 = 2, L_1 = 1.
func Lucas(n int) (*big.Int, error) {
	return nth(2, 1, n)
}

func nth(seed0, seed1 int64, n int) (*big.Int, error) {
	if n < 0 {
		return nil, domain.DomainError(domain.ReasonNegative, "")
	}
	a, b := big.NewInt(seed0), big.NewInt(seed1)
	if n == 0 {
		return a, nil
	}
	for i := 2; i <= n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return b, nil
}

// terms returns a_0..a_n.
func terms(seed0, seed1 int64, n int) []*big.Int {
	out := make([]*big.Int, 0, n+1)
	out = append(out, big.NewInt(seed0))
	if n >= 1 {
		out = append(out, big.NewInt(seed1))
	}
	for i := 2; i <= n; i++ {
		out = append(out, new(big.Int).Add(out[i-1], out[i-2]))
	}
	return out
}

type sequence struct {
	op     domain.Operation
	symbol string
	name   string
	seed0  int64
	seed1  int64
	note   string
}

var fibonacci = sequence{op: domain.OpFibonacci, symbol: "F", name: "Fibonacci", seed0: 0, seed1: 1}

var lucas = sequence{
	op: domain.OpLucas, symbol: "L", name: "Lucas", seed0: 2, seed1: 1,
	note: " Lucas numbers follow the Fibonacci recurrence with starting values L_0 = 2, L_1 = 1.",
}

// trace returns the derivation of a_n = value: the seeds, the recurrence,
// the full sequence for small n, and the value.
func (s sequence) trace(n int, value *big.Int) []domain.Expression {
	x := s.symbol
	steps := []domain.Expression{
		{
			Plain: fmt.Sprintf("%s_0 = %d, %s_1 = %d", x, s.seed0, x, s.seed1),
			LaTeX: fmt.Sprintf("%s_0 = %d, %s_1 = %d", x, s.seed0, x, s.seed1),
		},
		{
			Plain: fmt.Sprintf("%s_n = %s_{n-1} + %s_{n-2} for n ≥ 2", x, x, x),
			LaTeX: fmt.Sprintf(`%s_n = %s_{n-1} + %s_{n-2} \text{ for } n \geq 2`, x, x, x),
		},
	}

	if n <= SequenceMaxN {
		ts := terms(s.seed0, s.seed1, n)
		cells := make([]string, len(ts))
		for i, v := range ts {
			cells[i] = v.String()
		}
		joined := strings.Join(cells, ", ")
		steps = append(steps, domain.Expression{
			Plain: "Sequence: " + joined,
			LaTeX: `\text{Sequence: } ` + joined,
		})
	}

	return append(steps, domain.Expression{
		Plain: fmt.Sprintf("%s_%d = %s", x, n, value),
		LaTeX: fmt.Sprintf("%s_{%d} = %s", x, n, value),
	})
}

func (s sequence) describe(n int) (*domain.CombinatorialResult, error) {
	v, err := nth(s.seed0, s.seed1, n)
	if err != nil {
		return nil, err
	}
	return &domain.CombinatorialResult{
		Operation: s.op,
		Args:      []int{n},
		Value:     v,
		Formula: domain.Expression{
			Plain: fmt.Sprintf("%s_%d = %s", s.symbol, n, v),
			LaTeX: fmt.Sprintf("%s_{%d} = %s", s.symbol, n, v),
		},
		Steps:       s.trace(n, v),
		Explanation: fmt.Sprintf("The %s number %s_%d is %s.%s", s.name, s.symbol, n, v, s.note),
	}, nil
}

// FibonacciTrace returns the derivation of F_n = value.
func FibonacciTrace(n int, value *big.Int) []domain.Expression {
	return fibonacci.trace(n, value)
}

// LucasTrace returns the derivation of L_n = value.
func LucasTrace(n int, value *big.Int) []domain.Expression {
	return lucas.trace(n, value)
}

// DescribeFibonacci computes F_n with its formula, trace and explanation.
func DescribeFibonacci(n int) (*domain.CombinatorialResult, error) {
	return fibonacci.describe(n)
}

// DescribeLucas computes L_n with its formula, trace and explanation.
func DescribeLucas(n int) (*domain.CombinatorialResult, error) {
	return lucas.describe(n)
}

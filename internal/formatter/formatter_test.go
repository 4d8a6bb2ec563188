package formatter

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/discreta/internal/core/domain"
	"github.com/custodia-labs/discreta/internal/numtheory"
)

func sampleResult() *domain.CombinatorialResult {
	return &domain.CombinatorialResult{
		Operation: domain.OpCombination,
		Args:      []int{5, 2},
		Value:     big.NewInt(10),
		Formula:   domain.Expression{Plain: "C(5,2) = 10", LaTeX: `C(5,2) = \frac{5!}{2!3!} = 10`},
		Steps: []domain.Expression{
			{Plain: "step one", LaTeX: `\text{step one}`},
			{Plain: "= 10", LaTeX: "= 10"},
		},
		Explanation: "Ten ways.",
	}
}

func TestResult_Plain(t *testing.T) {
	lines := Result(sampleResult(), domain.NotationPlain)

	assert.Equal(t, []string{"C(5,2) = 10", "step one", "= 10", "Ten ways."}, lines)
}

func TestResult_LaTeX(t *testing.T) {
	lines := Result(sampleResult(), domain.NotationLaTeX)

	assert.Equal(t, []string{`C(5,2) = \frac{5!}{2!3!} = 10`, `\text{step one}`, "= 10", "Ten ways."}, lines)
}

func TestResult_NoStepsNoExplanation(t *testing.T) {
	r := sampleResult()
	r.Steps = nil
	r.Explanation = ""

	assert.Equal(t, []string{"C(5,2) = 10"}, Result(r, domain.NotationPlain))
}

func TestResult_Deterministic(t *testing.T) {
	r := sampleResult()
	assert.Equal(t, Result(r, domain.NotationPlain), Result(r, domain.NotationPlain))
}

func TestProfile_Plain(t *testing.T) {
	p, err := numtheory.Analyse(28)
	require.NoError(t, err)

	lines := Profile(p, domain.NotationPlain)

	assert.Equal(t, []string{
		"Prime: no",
		"Even: yes",
		"Odd: no",
		"Perfect square: no",
		"Perfect number: yes",
		"Divisors: 1, 2, 4, 7, 14, 28",
		"Divisor count: 6",
		"Divisor sum: 56",
		"Prime factorization: 2^2 · 7",
		"Totient φ(28): 12",
	}, lines)
}

func TestProfile_LaTeX(t *testing.T) {
	p, err := numtheory.Analyse(28)
	require.NoError(t, err)

	lines := Profile(p, domain.NotationLaTeX)

	require.Len(t, lines, 10)
	assert.Equal(t, `\text{Prime: } no`, lines[0])
	assert.Equal(t, `\text{Prime factorization: } 2^{2} \cdot 7`, lines[8])
	assert.Equal(t, `\varphi(28) = 12`, lines[9])
}

func TestOperation(t *testing.T) {
	lines := Operation(domain.OpFibonacci.Info(), domain.NotationPlain)

	require.Len(t, lines, 4)
	assert.Equal(t, "Fibonacci Numbers", lines[0])
	assert.Equal(t, "Formula: F_n = F_{n-1} + F_{n-2}, F_0 = 0, F_1 = 1", lines[2])
	assert.Equal(t, "Input: n (example: 10)", lines[3])

	lines = Operation(domain.OpFibonacci.Info(), domain.NotationLaTeX)
	assert.Contains(t, lines[2], `\quad`)
}

package numtheory

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

// Analyse computes the full profile of n sequentially.
func Analyse(n int) (*domain.NumberProfile, error) {
	divisors, err := Divisors(n)
	if err != nil {
		return nil, err
	}
	factors, err := PrimeFactorization(n)
	if err != nil {
		return nil, err
	}
	return NewProfile(n, divisors, factors, totientFromFactors(n, factors))
}

// NewProfile assembles a profile from independently computed parts. It lets
// callers compute divisors, factorization and totient concurrently.
func NewProfile(n int, divisors []int, factors []domain.PrimePower, totient int) (*domain.NumberProfile, error) {
	if err := requirePositive(n); err != nil {
		return nil, err
	}
	divisorSum, err := sum(divisors)
	if err != nil {
		return nil, err
	}
	return &domain.NumberProfile{
		N:                  n,
		IsPrime:            IsPrime(n),
		IsEven:             n%2 == 0,
		IsOdd:              n%2 != 0,
		IsPerfectSquare:    IsPerfectSquare(n),
		IsPerfect:          divisorSum-n == n,
		Divisors:           divisors,
		DivisorCount:       len(divisors),
		DivisorSum:         divisorSum,
		PrimeFactorization: factors,
		Totient:            totient,
	}, nil
}

// FormatFactorization renders factors as "2^2 · 7" and "2^{2} \cdot 7".
// Exponents of 1 are omitted. An empty factorization (n = 1) renders as "1".
func FormatFactorization(factors []domain.PrimePower) domain.Expression {
	if len(factors) == 0 {
		return domain.Expression{Plain: "1", LaTeX: "1"}
	}
	plain := make([]string, len(factors))
	latex := make([]string, len(factors))
	for i, f := range factors {
		if f.Exponent == 1 {
			plain[i] = fmt.Sprint(f.Prime)
			latex[i] = plain[i]
			continue
		}
		plain[i] = fmt.Sprintf("%d^%d", f.Prime, f.Exponent)
		latex[i] = fmt.Sprintf("%d^{%d}", f.Prime, f.Exponent)
	}
	return domain.Expression{
		Plain: strings.Join(plain, " · "),
		LaTeX: strings.Join(latex, ` \cdot `),
	}
}

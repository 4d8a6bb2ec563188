package combinatorics

import (
	"fmt"
	"math/big"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

// DescribeCombination computes C(n,k) with its formula, trace and explanation.
func DescribeCombination(n, k int) (*domain.CombinatorialResult, error) {
	v, err := Combination(n, k)
	if err != nil {
		return nil, err
	}
	return &domain.CombinatorialResult{
		Operation: domain.OpCombination,
		Args:      []int{n, k},
		Value:     v,
		Formula: expr(
			fmt.Sprintf("C(%d,%d) = %d!/(%d!·%d!) = %s", n, k, n, k, n-k, v),
			fmt.Sprintf(`C(%d,%d) = \frac{%d!}{%d!(%d-%d)!} = %s`, n, k, n, k, n, k, v),
		),
		Steps: CombinationTrace(n, k, v),
		Explanation: fmt.Sprintf(
			"The number of ways to choose %d elements from a set of %d elements without regard to order is %s.",
			k, n, v),
	}, nil
}

// DescribeBinomial computes the binomial coefficient (n choose k).
func DescribeBinomial(n, k int) (*domain.CombinatorialResult, error) {
	v, err := BinomialCoefficient(n, k)
	if err != nil {
		return nil, err
	}
	return &domain.CombinatorialResult{
		Operation: domain.OpBinomial,
		Args:      []int{n, k},
		Value:     v,
		Formula: expr(
			fmt.Sprintf("(%d choose %d) = %s", n, k, v),
			fmt.Sprintf(`\binom{%d}{%d} = %s`, n, k, v),
		),
		Steps: CombinationTrace(n, k, v),
		Explanation: fmt.Sprintf(
			"The binomial coefficient (%d choose %d) is the coefficient of x^%d in the expansion of (1+x)^%d, which is %s.",
			n, k, k, n, v),
	}, nil
}

// DescribePermutation computes P(n,k).
func DescribePermutation(n, k int) (*domain.CombinatorialResult, error) {
	v, err := Permutation(n, k)
	if err != nil {
		return nil, err
	}
	return &domain.CombinatorialResult{
		Operation: domain.OpPermutation,
		Args:      []int{n, k},
		Value:     v,
		Formula: expr(
			fmt.Sprintf("P(%d,%d) = %d!/(%d-%d)! = %s", n, k, n, n, k, v),
			fmt.Sprintf(`P(%d,%d) = \frac{%d!}{(%d-%d)!} = %s`, n, k, n, n, k, v),
		),
		Steps: PermutationTrace(n, k, v),
		Explanation: fmt.Sprintf(
			"The number of ways to arrange %d elements taken from a set of %d elements is %s.",
			k, n, v),
	}, nil
}

// DescribeStirling2 computes S(n,k).
func DescribeStirling2(n, k int) (*domain.CombinatorialResult, error) {
	v, prev, err := stirling2(n, k)
	if err != nil {
		return nil, err
	}
	return &domain.CombinatorialResult{
		Operation: domain.OpStirling2,
		Args:      []int{n, k},
		Value:     v,
		Formula: expr(
			fmt.Sprintf("S(%d,%d) = %s", n, k, v),
			fmt.Sprintf(`S(%d,%d) = %s`, n, k, v),
		),
		Steps: stirling2Steps(n, k, prev, v),
		Explanation: fmt.Sprintf(
			"The Stirling number of the second kind S(%d,%d) counts the ways to partition a set of %d elements into %d non-empty subsets, which is %s.",
			n, k, n, k, v),
	}, nil
}

// DescribeCatalan computes C_n.
func DescribeCatalan(n int) (*domain.CombinatorialResult, error) {
	v, err := Catalan(n)
	if err != nil {
		return nil, err
	}
	return &domain.CombinatorialResult{
		Operation: domain.OpCatalan,
		Args:      []int{n},
		Value:     v,
		Formula: expr(
			fmt.Sprintf("C_%d = 1/(%d+1)·C(2·%d,%d) = %s", n, n, n, n, v),
			fmt.Sprintf(`C_{%d} = \frac{1}{%d+1}\binom{2 \cdot %d}{%d} = %s`, n, n, n, n, v),
		),
		Steps: CatalanTrace(n, v),
		Explanation: fmt.Sprintf(
			"The Catalan number C_%d is %s. These numbers appear in many counting problems, such as the number of ways to triangulate a polygon with %d sides.",
			n, v, n+2),
	}, nil
}

// DescribeBell computes B_n.
func DescribeBell(n int) (*domain.CombinatorialResult, error) {
	v, err := Bell(n)
	if err != nil {
		return nil, err
	}
	var rows [][]*big.Int
	if n <= BellRowsMaxN {
		if rows, err = BellTriangle(n); err != nil {
			return nil, err
		}
	}
	return &domain.CombinatorialResult{
		Operation: domain.OpBell,
		Args:      []int{n},
		Value:     v,
		Formula: expr(
			fmt.Sprintf("B_%d = %s", n, v),
			fmt.Sprintf(`B_{%d} = %s`, n, v),
		),
		Steps: BellTrace(n, rows, v),
		Explanation: fmt.Sprintf(
			"The Bell number B_%d counts the ways to partition a set of %d elements, which is %s.",
			n, n, v),
	}, nil
}

package combinatorics

import (
	"fmt"
	"math"
	"math/big"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

func checkNonNegative(values ...int) error {
	for _, v := range values {
		if v < 0 {
			return domain.DomainError(domain.ReasonNegative, "")
		}
	}
	return nil
}

// Factorial returns n! exactly.
func Factorial(n int) (*big.Int, error) {
	if err := checkNonNegative(n); err != nil {
		return nil, err
	}
	result := big.NewInt(1)
	for i := 2; i <= n; i++ {
		result.Mul(result, big.NewInt(int64(i)))
	}
	return result, nil
}

// Combination returns C(n,k), the number of k-element subsets of an
// n-element set.
//
// The product Π_{i=1..k} (n-(k-i))/i is evaluated left to right with
// k = min(k, n-k). Multiplying before dividing at each step keeps the running
// value an exact binomial coefficient, so every division is exact.
func Combination(n, k int) (*big.Int, error) {
	if err := checkNonNegative(n, k); err != nil {
		return nil, err
	}
	if k > n {
		return nil, domain.DomainError(domain.ReasonKGreaterThanN, "")
	}
	if k > n-k {
		k = n - k
	}

	result := big.NewInt(1)
	factor := new(big.Int)
	for i := 1; i <= k; i++ {
		result.Mul(result, factor.SetInt64(int64(n-(k-i))))
		result.Quo(result, factor.SetInt64(int64(i)))
	}
	return result, nil
}

// BinomialCoefficient returns the coefficient of x^k in (1+x)^n. It has the
// same value and error policy as Combination.
func BinomialCoefficient(n, k int) (*big.Int, error) {
	return Combination(n, k)
}

// Permutation returns P(n,k) = Π_{i=0..k-1} (n-i).
func Permutation(n, k int) (*big.Int, error) {
	if err := checkNonNegative(n, k); err != nil {
		return nil, err
	}
	if k > n {
		return nil, domain.DomainError(domain.ReasonKGreaterThanN, "")
	}

	result := big.NewInt(1)
	factor := new(big.Int)
	for i := 0; i < k; i++ {
		result.Mul(result, factor.SetInt64(int64(n-i)))
	}
	return result, nil
}

// Stirling2 returns S(n,k), the number of ways to partition n elements into
// k non-empty unlabelled subsets.
//
// S(0,0) is 1 and S(n,0), S(0,k) are 0 for positive arguments. k > n fails
// with KOutOfRange.
func Stirling2(n, k int) (*big.Int, error) {
	v, _, err := stirling2(n, k)
	return v, err
}

// stirling2 returns S(n,k) together with row n-1 of the table when one was
// built, so a trace can read its neighbours without refilling the table.
func stirling2(n, k int) (*big.Int, []*big.Int, error) {
	if err := checkNonNegative(n, k); err != nil {
		return nil, nil, err
	}
	if n == 0 && k == 0 {
		return big.NewInt(1), nil, nil
	}
	if n == 0 || k == 0 {
		return big.NewInt(0), nil, nil
	}
	if k > n {
		return nil, nil, domain.DomainError(domain.ReasonKOutOfRange, "")
	}
	prev, row := stirlingRows(n, k)
	return row[k], prev, nil
}

// stirlingRows returns rows n-1 and n of the table S(i,j), 0 <= j <= k.
// Only two rows are kept while filling. For n == 0 the previous row is nil.
func stirlingRows(n, k int) (prev, row []*big.Int) {
	newRow := func() []*big.Int {
		r := make([]*big.Int, k+1)
		for j := range r {
			r[j] = new(big.Int)
		}
		return r
	}
	row = newRow()
	row[0].SetInt64(1)
	if n == 0 {
		return nil, row
	}
	prev = newRow()

	term := new(big.Int)
	for i := 1; i <= n; i++ {
		prev, row = row, prev
		row[0].SetInt64(0)
		for j := 1; j <= k; j++ {
			if j > i {
				row[j].SetInt64(0)
				continue
			}
			term.Mul(big.NewInt(int64(j)), prev[j])
			row[j].Add(term, prev[j-1])
		}
	}
	return prev, row
}

// Catalan returns C_n = C(2n,n)/(n+1).
func Catalan(n int) (*big.Int, error) {
	if err := checkNonNegative(n); err != nil {
		return nil, err
	}
	if n > math.MaxInt/2 {
		return nil, domain.Overflow(fmt.Sprintf("2·%d does not fit in a machine integer", n))
	}
	central, err := Combination(2*n, n)
	if err != nil {
		return nil, err
	}

	quo, rem := new(big.Int).QuoRem(central, big.NewInt(int64(n+1)), new(big.Int))
	if rem.Sign() != 0 {
		return nil, domain.Overflow("catalan division was not exact")
	}
	return quo, nil
}

// BellTriangle returns rows 0..n of the Bell triangle. Row 0 is [1]; row i
// starts with the last entry of row i-1, and each later entry is the
// previous entry in the row plus the entry above it.
func BellTriangle(n int) ([][]*big.Int, error) {
	if err := checkNonNegative(n); err != nil {
		return nil, err
	}
	rows := make([][]*big.Int, 0, n+1)
	rows = append(rows, []*big.Int{big.NewInt(1)})

	for i := 1; i <= n; i++ {
		prev := rows[i-1]
		row := make([]*big.Int, i+1)
		row[0] = new(big.Int).Set(prev[i-1])
		for j := 1; j <= i; j++ {
			row[j] = new(big.Int).Add(row[j-1], prev[j-1])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Bell returns B_n, the number of partitions of an n-element set. It is the
// first entry of row n of the Bell triangle, built one row at a time.
func Bell(n int) (*big.Int, error) {
	if err := checkNonNegative(n); err != nil {
		return nil, err
	}
	row := []*big.Int{big.NewInt(1)}
	for i := 1; i <= n; i++ {
		next := make([]*big.Int, i+1)
		next[0] = row[i-1]
		for j := 1; j <= i; j++ {
			next[j] = new(big.Int).Add(next[j-1], row[j-1])
		}
		row = next
	}
	return row[0], nil
}

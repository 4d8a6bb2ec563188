package combinatorics

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

// FullExpansionMaxN is the largest n whose trace spells out the factorial
// values. Larger n get the product formula instead.
const FullExpansionMaxN = 12

// BellRowsMaxN is the largest n whose trace lists the Bell triangle rows.
const BellRowsMaxN = 8

// OverflowNote introduces the product-formula path of a trace.
const OverflowNote = "To avoid overflow with large factorials, compute the product directly:"

func expr(plain, latex string) domain.Expression {
	return domain.Expression{Plain: plain, LaTeX: latex}
}

func equals(v *big.Int) domain.Expression {
	s := "= " + v.String()
	return expr(s, s)
}

func factorialString(n int) string {
	f, _ := Factorial(n)
	return f.String()
}

// CombinationTrace returns the derivation of C(n,k) = value.
func CombinationTrace(n, k int, value *big.Int) []domain.Expression {
	steps := []domain.Expression{
		expr(
			fmt.Sprintf("C(%d,%d) = %d!/(%d!·%d!)", n, k, n, k, n-k),
			fmt.Sprintf(`C(%d,%d) = \frac{%d!}{%d!(%d-%d)!}`, n, k, n, k, n, k),
		),
	}

	if n <= FullExpansionMaxN {
		nf, kf, rf := factorialString(n), factorialString(k), factorialString(n-k)
		steps = append(steps,
			expr(
				fmt.Sprintf("= %s/(%s·%s)", nf, kf, rf),
				fmt.Sprintf(`= \frac{%s}{%s \cdot %s}`, nf, kf, rf),
			),
			equals(value),
		)
		return steps
	}

	return append(steps,
		domain.Text(OverflowNote),
		expr(
			fmt.Sprintf("C(%d,%d) = Π_{i=1..%d} (%d-(%d-i))/i", n, k, k, n, k),
			fmt.Sprintf(`C(%d,%d) = \prod_{i=1}^{%d} \frac{%d-(%d-i)}{i}`, n, k, k, n, k),
		),
		equals(value),
	)
}

// PermutationTrace returns the derivation of P(n,k) = value.
func PermutationTrace(n, k int, value *big.Int) []domain.Expression {
	steps := []domain.Expression{
		expr(
			fmt.Sprintf("P(%d,%d) = %d!/(%d-%d)!", n, k, n, n, k),
			fmt.Sprintf(`P(%d,%d) = \frac{%d!}{(%d-%d)!}`, n, k, n, n, k),
		),
	}

	if n <= FullExpansionMaxN {
		nf, rf := factorialString(n), factorialString(n-k)
		steps = append(steps,
			expr(
				fmt.Sprintf("= %s/%s", nf, rf),
				fmt.Sprintf(`= \frac{%s}{%s}`, nf, rf),
			),
			equals(value),
		)
		return steps
	}

	return append(steps,
		domain.Text(OverflowNote),
		expr(
			fmt.Sprintf("P(%d,%d) = Π_{i=0..%d-1} (%d-i)", n, k, k, n),
			fmt.Sprintf(`P(%d,%d) = \prod_{i=0}^{%d-1} (%d-i)`, n, k, k, n),
		),
		equals(value),
	)
}

// Stirling2Trace returns the derivation of S(n,k) = value. For k >= 2 it
// shows one step of the recurrence with the neighbouring table values.
func Stirling2Trace(n, k int, value *big.Int) []domain.Expression {
	var prev []*big.Int
	if k >= 2 && k <= n {
		prev, _ = stirlingRows(n, k)
	}
	return stirling2Steps(n, k, prev, value)
}

// stirling2Steps renders the trace from row n-1 of the table.
func stirling2Steps(n, k int, prev []*big.Int, value *big.Int) []domain.Expression {
	steps := []domain.Expression{
		expr(
			"S(n,k) = k·S(n-1,k) + S(n-1,k-1), S(n,n) = 1, S(n,1) = 1",
			`S(n,k) = k \cdot S(n-1,k) + S(n-1,k-1), \quad S(n,n) = 1, S(n,1) = 1`,
		),
	}

	if k >= 2 && k <= n && len(prev) > k {
		a, b := prev[k], prev[k-1]
		steps = append(steps, expr(
			fmt.Sprintf("S(%d,%d) = %d·S(%d,%d) + S(%d,%d) = %d·%s + %s", n, k, k, n-1, k, n-1, k-1, k, a, b),
			fmt.Sprintf(`S(%d,%d) = %d \cdot S(%d,%d) + S(%d,%d) = %d \cdot %s + %s`, n, k, k, n-1, k, n-1, k-1, k, a, b),
		))
	}

	return append(steps, equals(value))
}

// CatalanTrace returns the derivation of C_n = value.
func CatalanTrace(n int, value *big.Int) []domain.Expression {
	return []domain.Expression{
		expr(
			fmt.Sprintf("C_%d = 1/(%d+1)·C(2·%d,%d)", n, n, n, n),
			fmt.Sprintf(`C_{%d} = \frac{1}{%d+1}\binom{2 \cdot %d}{%d}`, n, n, n, n),
		),
		expr(
			fmt.Sprintf("= 1/%d·(2·%d)!/(%d!(2·%d-%d)!)", n+1, n, n, n, n),
			fmt.Sprintf(`= \frac{1}{%d}\frac{(2 \cdot %d)!}{%d!(2 \cdot %d-%d)!}`, n+1, n, n, n, n),
		),
		expr(
			fmt.Sprintf("= 1/%d·(2·%d)!/(%d!·%d!)", n+1, n, n, n),
			fmt.Sprintf(`= \frac{1}{%d}\frac{(2 \cdot %d)!}{%d!%d!}`, n+1, n, n, n),
		),
		equals(value),
	}
}

// BellTrace returns the derivation of B_n = value. Small n list the triangle.
func BellTrace(n int, rows [][]*big.Int, value *big.Int) []domain.Expression {
	steps := []domain.Expression{
		expr(
			"B_n = Σ_{k=0..n-1} C(n-1,k)·B_k",
			`B_n = \sum_{k=0}^{n-1} \binom{n-1}{k} B_k`,
		),
	}

	if n <= BellRowsMaxN {
		for i, row := range rows {
			cells := make([]string, len(row))
			for j, v := range row {
				cells[j] = v.String()
			}
			joined := strings.Join(cells, ", ")
			steps = append(steps, expr(
				fmt.Sprintf("Row %d: %s", i, joined),
				fmt.Sprintf(`\text{Row } %d: %s`, i, joined),
			))
		}
	}

	return append(steps, expr(
		fmt.Sprintf("B_%d = %s", n, value),
		fmt.Sprintf(`B_{%d} = %s`, n, value),
	))
}

// Package formatter maps results and profiles to ordered display lines.
//
// Output is markup text in the requested notation, never rendered output.
// Every function is deterministic: the same input always yields the same
// lines.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/discreta/internal/core/domain"
	"github.com/custodia-labs/discreta/internal/numtheory"
)

func pick(e domain.Expression, notation domain.Notation) string {
	if notation == domain.NotationLaTeX {
		return e.LaTeX
	}
	return e.Plain
}

// Result returns the formula line, each derivation step, then the
// explanation.
func Result(r *domain.CombinatorialResult, notation domain.Notation) []string {
	lines := make([]string, 0, len(r.Steps)+2)
	lines = append(lines, pick(r.Formula, notation))
	for _, s := range r.Steps {
		lines = append(lines, pick(s, notation))
	}
	if r.Explanation != "" {
		lines = append(lines, r.Explanation)
	}
	return lines
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// Profile returns one labelled line per property of p.
func Profile(p *domain.NumberProfile, notation domain.Notation) []string {
	type field struct {
		label string
		value string
	}
	factorization := numtheory.FormatFactorization(p.PrimeFactorization)
	fields := []field{
		{"Prime", yesNo(p.IsPrime)},
		{"Even", yesNo(p.IsEven)},
		{"Odd", yesNo(p.IsOdd)},
		{"Perfect square", yesNo(p.IsPerfectSquare)},
		{"Perfect number", yesNo(p.IsPerfect)},
		{"Divisors", joinInts(p.Divisors)},
		{"Divisor count", strconv.Itoa(p.DivisorCount)},
		{"Divisor sum", strconv.Itoa(p.DivisorSum)},
		{"Prime factorization", pick(factorization, notation)},
	}

	lines := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		if notation == domain.NotationLaTeX {
			lines = append(lines, fmt.Sprintf(`\text{%s: } %s`, f.label, f.value))
			continue
		}
		lines = append(lines, f.label+": "+f.value)
	}

	if notation == domain.NotationLaTeX {
		lines = append(lines, fmt.Sprintf(`\varphi(%d) = %d`, p.N, p.Totient))
	} else {
		lines = append(lines, fmt.Sprintf("Totient φ(%d): %d", p.N, p.Totient))
	}
	return lines
}

// Operation returns the catalogue card for an operation: title,
// description, general formula and input format.
func Operation(info domain.OperationInfo, notation domain.Notation) []string {
	return []string{
		info.Title,
		info.Description,
		"Formula: " + pick(info.Formula, notation),
		"Input: " + info.InputFormat,
	}
}

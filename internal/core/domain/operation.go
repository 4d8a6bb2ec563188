package domain

import "strings"

// Operation selects which module and arity rule a request uses.
type Operation string

// Available operations.
const (
	OpCombination Operation = "combination"
	OpPermutation Operation = "permutation"
	OpBinomial    Operation = "binomial"
	OpStirling2   Operation = "stirling2"
	OpCatalan     Operation = "catalan"
	OpBell        Operation = "bell"
	OpFibonacci   Operation = "fibonacci"
	OpLucas       Operation = "lucas"
	OpAnalyze     Operation = "analyze"
)

// Operations lists every operation in catalogue order.
func Operations() []Operation {
	return []Operation{
		OpCombination, OpPermutation, OpBinomial, OpStirling2,
		OpCatalan, OpBell, OpFibonacci, OpLucas, OpAnalyze,
	}
}

var operationAliases = map[string]Operation{
	"binomial_coefficient": OpBinomial,
	"binomialcoefficient":  OpBinomial,
	"stirling":             OpStirling2,
	"analyse":              OpAnalyze,
	"number_analysis":      OpAnalyze,
	"numberanalysis":       OpAnalyze,
	"nCr":                  OpCombination,
	"nPr":                  OpPermutation,
}

// ParseOperation resolves a name or alias, case-insensitively.
func ParseOperation(name string) (Operation, error) {
	name = strings.TrimSpace(name)
	for alias, op := range operationAliases {
		if strings.EqualFold(alias, name) {
			return op, nil
		}
	}
	op := Operation(strings.ToLower(name))
	if !op.IsValid() {
		return "", &CalcError{Kind: ErrUnknownOperation, Reason: ReasonUnknownOperation, Detail: name}
	}
	return op, nil
}

// IsValid returns true if the operation is recognised.
func (o Operation) IsValid() bool {
	switch o {
	case OpCombination, OpPermutation, OpBinomial, OpStirling2,
		OpCatalan, OpBell, OpFibonacci, OpLucas, OpAnalyze:
		return true
	default:
		return false
	}
}

// Arity returns how many integers the operation requires.
func (o Operation) Arity() int {
	switch o {
	case OpCombination, OpPermutation, OpBinomial, OpStirling2:
		return 2
	default:
		return 1
	}
}

// IsSequence reports whether the operation is a linear recurrence.
func (o Operation) IsSequence() bool {
	return o == OpFibonacci || o == OpLucas
}

// String returns the string representation.
func (o Operation) String() string {
	return string(o)
}

// OperationInfo is the catalogue card shown next to an operation.
type OperationInfo struct {
	Operation   Operation  `json:"operation"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	InputFormat string     `json:"input_format"`
	Formula     Expression `json:"formula"`
}

// Info returns the catalogue card for the operation.
func (o Operation) Info() OperationInfo {
	info, ok := catalogue[o]
	if !ok {
		return OperationInfo{Operation: o, Title: unknownDescription}
	}
	info.Operation = o
	return info
}

const unknownDescription = "Unknown"

var catalogue = map[Operation]OperationInfo{
	OpCombination: {
		Title:       "Combinations",
		Description: "Number of ways to choose k elements from a set of n elements, ignoring order.",
		InputFormat: "n,k (example: 5,2)",
		Formula:     Expression{Plain: "C(n,k) = n!/(k!(n-k)!)", LaTeX: `C(n,k) = \frac{n!}{k!(n-k)!}`},
	},
	OpPermutation: {
		Title:       "Permutations",
		Description: "Number of ways to arrange k elements taken from a set of n elements.",
		InputFormat: "n,k (example: 5,2)",
		Formula:     Expression{Plain: "P(n,k) = n!/(n-k)!", LaTeX: `P(n,k) = \frac{n!}{(n-k)!}`},
	},
	OpBinomial: {
		Title:       "Binomial Coefficient",
		Description: "Coefficient of x^k in the expansion of (1+x)^n.",
		InputFormat: "n,k (example: 5,2)",
		Formula:     Expression{Plain: "(n k) = n!/(k!(n-k)!)", LaTeX: `\binom{n}{k} = \frac{n!}{k!(n-k)!}`},
	},
	OpStirling2: {
		Title:       "Stirling Numbers (2nd kind)",
		Description: "Number of ways to partition a set of n elements into k non-empty subsets.",
		InputFormat: "n,k (example: 5,2)",
		Formula:     Expression{Plain: "S(n,k) = k·S(n-1,k) + S(n-1,k-1)", LaTeX: `S(n,k) = k \cdot S(n-1,k) + S(n-1,k-1)`},
	},
	OpCatalan: {
		Title:       "Catalan Numbers",
		Description: "Sequence that appears in many counting problems, such as balanced parentheses.",
		InputFormat: "n (example: 5)",
		Formula:     Expression{Plain: "C_n = 1/(n+1)·C(2n,n)", LaTeX: `C_n = \frac{1}{n+1}\binom{2n}{n}`},
	},
	OpBell: {
		Title:       "Bell Numbers",
		Description: "Number of partitions of a set of n elements.",
		InputFormat: "n (example: 5)",
		Formula:     Expression{Plain: "B_n = Σ_{k=0..n-1} C(n-1,k)·B_k", LaTeX: `B_n = \sum_{k=0}^{n-1} \binom{n-1}{k} B_k`},
	},
	OpFibonacci: {
		Title:       "Fibonacci Numbers",
		Description: "Sequence in which each number is the sum of the two before it.",
		InputFormat: "n (example: 10)",
		Formula:     Expression{Plain: "F_n = F_{n-1} + F_{n-2}, F_0 = 0, F_1 = 1", LaTeX: `F_n = F_{n-1} + F_{n-2}, \quad F_0 = 0, F_1 = 1`},
	},
	OpLucas: {
		Title:       "Lucas Numbers",
		Description: "Sequence related to Fibonacci but with different starting values.",
		InputFormat: "n (example: 10)",
		Formula:     Expression{Plain: "L_n = L_{n-1} + L_{n-2}, L_0 = 2, L_1 = 1", LaTeX: `L_n = L_{n-1} + L_{n-2}, \quad L_0 = 2, L_1 = 1`},
	},
	OpAnalyze: {
		Title:       "Number Analysis",
		Description: "Primality, divisors, prime factorization, perfect-number check and Euler's totient of a positive integer.",
		InputFormat: "n (example: 28)",
		Formula:     Expression{Plain: "φ(n) = n·Π(1 - 1/p)", LaTeX: `\varphi(n) = n \prod_{p \mid n} \left(1 - \frac{1}{p}\right)`},
	},
}

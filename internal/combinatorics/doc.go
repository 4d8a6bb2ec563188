// Package combinatorics computes exact combinatorial counts and the
// derivation traces shown alongside them.
//
// Every value is a *big.Int so results such as C(60,2), large Catalan
// numbers and large Bell numbers are exact. Functions are pure and safe to
// call concurrently. Failures are *domain.CalcError values.
//
// Counts:
//   - Combination, BinomialCoefficient: C(n,k)
//   - Permutation: P(n,k)
//   - Stirling2: S(n,k), tabulated bottom-up
//   - Catalan: C_n
//   - Bell: B_n, via the Bell triangle
//
// Describe* functions pair a count with its formula, trace and explanation.
package combinatorics

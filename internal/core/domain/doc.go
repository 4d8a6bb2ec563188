// Package domain defines the core entities for discreta.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Operation: which computation a request selects
//   - IntegerInput: the normalised non-negative integers of a request
//   - CombinatorialResult: an exact value plus its derivation
//   - NumberProfile: the number-theoretic analysis of one positive integer
//   - CalcError: a rejected request, classified by kind and reason
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

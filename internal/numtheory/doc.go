// Package numtheory analyses a single positive integer: primality, divisors,
// prime factorization, perfect-number check and Euler's totient.
//
// Arguments are machine ints. Operations that require a positive integer
// fail with a NotPositive domain error for n <= 0, and sums that would not
// fit in an int fail with an Overflow error instead of wrapping.
package numtheory

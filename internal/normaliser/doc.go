// Package normaliser turns free-form request text into an ordered list of
// non-negative integers.
//
// Values may be separated by commas, whitespace, or any run of both. A value
// written with a fractional part of zeros ("5.0") is accepted as the integer
// it denotes. Arity is not checked here; callers use RequireArity once they
// know which operation the input is for.
package normaliser

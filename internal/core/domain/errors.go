package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure surfaced by the engine wraps exactly one of these,
// so callers can branch with errors.Is.
var (
	// ErrInvalidInput indicates malformed text, a wrong count of values, or a
	// value outside what the request accepts.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDomain indicates a mathematically undefined or out-of-range request.
	ErrDomain = errors.New("domain error")

	// ErrOverflow indicates a value that cannot be represented exactly.
	ErrOverflow = errors.New("overflow")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnknownOperation indicates an operation name that is not in the catalogue.
	ErrUnknownOperation = errors.New("unknown operation")
)

// Reason refines an error kind.
type Reason string

// Failure reasons.
const (
	ReasonNonInteger       Reason = "non_integer"
	ReasonNegative         Reason = "negative"
	ReasonWrongArity       Reason = "wrong_arity"
	ReasonTooLarge         Reason = "too_large"
	ReasonKGreaterThanN    Reason = "k_greater_than_n"
	ReasonKOutOfRange      Reason = "k_out_of_range"
	ReasonNotPositive      Reason = "not_positive"
	ReasonNotRepresentable Reason = "not_representable"
	ReasonUnknownOperation Reason = "unknown_operation"
)

// CalcError is a rejected single request. It carries the kind (one of the
// sentinels above), the reason, and for arity failures the expected and actual
// counts.
type CalcError struct {
	Kind     error
	Reason   Reason
	Expected int
	Actual   int
	Detail   string
}

func (e *CalcError) Error() string {
	msg := e.message()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *CalcError) message() string {
	switch e.Reason {
	case ReasonNonInteger:
		return "all values must be whole numbers"
	case ReasonNegative:
		return "values must be non-negative"
	case ReasonWrongArity:
		return fmt.Sprintf("expected %d value(s), got %d", e.Expected, e.Actual)
	case ReasonTooLarge:
		return "value exceeds the configured limit"
	case ReasonKGreaterThanN:
		return "k cannot be greater than n"
	case ReasonKOutOfRange:
		return "k must be between 1 and n"
	case ReasonNotPositive:
		return "n must be a positive integer"
	case ReasonNotRepresentable:
		return "result does not fit in a machine integer"
	case ReasonUnknownOperation:
		return "operation is not supported"
	default:
		return string(e.Reason)
	}
}

// Unwrap returns the error kind.
func (e *CalcError) Unwrap() error {
	return e.Kind
}

// InvalidInput builds an ErrInvalidInput failure.
func InvalidInput(reason Reason, detail string) *CalcError {
	return &CalcError{Kind: ErrInvalidInput, Reason: reason, Detail: detail}
}

// WrongArity builds an ErrInvalidInput failure for a value count mismatch.
func WrongArity(expected, actual int) *CalcError {
	return &CalcError{Kind: ErrInvalidInput, Reason: ReasonWrongArity, Expected: expected, Actual: actual}
}

// DomainError builds an ErrDomain failure.
func DomainError(reason Reason, detail string) *CalcError {
	return &CalcError{Kind: ErrDomain, Reason: reason, Detail: detail}
}

// Overflow builds an ErrOverflow failure.
func Overflow(detail string) *CalcError {
	return &CalcError{Kind: ErrOverflow, Reason: ReasonNotRepresentable, Detail: detail}
}

// ReasonOf extracts the reason from err, or "" if err is not a CalcError.
func ReasonOf(err error) Reason {
	var ce *CalcError
	if errors.As(err, &ce) {
		return ce.Reason
	}
	return ""
}

// IsUserError reports whether err is a rejected request rather than an
// infrastructure failure.
func IsUserError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrDomain) ||
		errors.Is(err, ErrOverflow) || errors.Is(err, ErrUnknownOperation)
}

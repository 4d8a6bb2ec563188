package normaliser

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

var (
	separators = regexp.MustCompile(`[\s,]+`)
	integerTok = regexp.MustCompile(`^([+-]?)(\d+)(?:\.0*)?$`)
)

// Normalise parses raw into an IntegerInput.
//
// Errors are *domain.CalcError: NonInteger for tokens that are not whole
// numbers, Negative for values below zero, and Overflow for digit strings
// that do not fit in an int.
func Normalise(raw string) (domain.IntegerInput, error) {
	trimmed := strings.Trim(separators.ReplaceAllString(raw, " "), " ")
	if trimmed == "" {
		return domain.IntegerInput{Values: []int{}}, nil
	}

	tokens := strings.Split(trimmed, " ")
	values := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		v, err := parseToken(tok)
		if err != nil {
			return domain.IntegerInput{}, err
		}
		values = append(values, v)
	}
	return domain.IntegerInput{Values: values}, nil
}

func parseToken(tok string) (int, error) {
	m := integerTok.FindStringSubmatch(tok)
	if m == nil {
		return 0, domain.InvalidInput(domain.ReasonNonInteger, strconv.Quote(tok))
	}
	sign, digits := m[1], m[2]

	v, err := strconv.Atoi(digits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, domain.Overflow(strconv.Quote(tok))
		}
		return 0, domain.InvalidInput(domain.ReasonNonInteger, strconv.Quote(tok))
	}
	if sign == "-" && v != 0 {
		return 0, domain.InvalidInput(domain.ReasonNegative, strconv.Quote(tok))
	}
	return v, nil
}

// RequireArity fails with WrongArity unless in holds exactly expected values.
func RequireArity(in domain.IntegerInput, expected int) error {
	if in.Len() != expected {
		return domain.WrongArity(expected, in.Len())
	}
	return nil
}

package normaliser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

func TestNormalise(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int
	}{
		{"comma", "5,2", []int{5, 2}},
		{"comma and space", "5, 2", []int{5, 2}},
		{"spaces only", "5 2", []int{5, 2}},
		{"mixed runs", " 10 ,,  3\t,\n4 ", []int{10, 3, 4}},
		{"single", "28", []int{28}},
		{"zero fraction", "5.0", []int{5}},
		{"bare dot", "7.", []int{7}},
		{"explicit plus", "+6", []int{6}},
		{"negative zero", "-0", []int{0}},
		{"leading zeros", "007", []int{7}},
		{"empty", "", []int{}},
		{"separators only", " , ,", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := Normalise(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, in.Values)
		})
	}
}

func TestNormalise_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   error
		reason domain.Reason
	}{
		{"fraction", "5.5", domain.ErrInvalidInput, domain.ReasonNonInteger},
		{"word", "abc", domain.ErrInvalidInput, domain.ReasonNonInteger},
		{"mixed token", "5a", domain.ErrInvalidInput, domain.ReasonNonInteger},
		{"second token bad", "5,x", domain.ErrInvalidInput, domain.ReasonNonInteger},
		{"exponent", "1e3", domain.ErrInvalidInput, domain.ReasonNonInteger},
		{"negative", "-3", domain.ErrInvalidInput, domain.ReasonNegative},
		{"negative in list", "5,-2", domain.ErrInvalidInput, domain.ReasonNegative},
		{"too many digits", "99999999999999999999", domain.ErrOverflow, domain.ReasonNotRepresentable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalise(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind))
			assert.Equal(t, tt.reason, domain.ReasonOf(err))
		})
	}
}

func TestRequireArity(t *testing.T) {
	in := domain.IntegerInput{Values: []int{5}}

	require.NoError(t, RequireArity(in, 1))

	err := RequireArity(in, 2)
	require.Error(t, err)

	var ce *domain.CalcError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, domain.ReasonWrongArity, ce.Reason)
	assert.Equal(t, 2, ce.Expected)
	assert.Equal(t, 1, ce.Actual)
}

package cli

import (
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

func TestCalcCmd_Flags(t *testing.T) {
	for _, name := range []string{"json", "latex", "steps"} {
		assert.NotNil(t, calcCmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "true", calcCmd.Flags().Lookup("steps").DefValue)
}

func TestCalcCmd_Combination(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "calc", "combination", "5,2")

	require.NoError(t, err)
	assert.Contains(t, out, "Combinations (5, 2)")
	assert.Contains(t, out, "C(5,2) = 5!/(2!·3!) = 10")
}

func TestCalcCmd_InputAcrossArgs(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "calc", "stirling2", "5", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "S(5,2) = 15")
}

func TestCalcCmd_LaTeX(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "calc", "combination", "5,2", "--latex")

	require.NoError(t, err)
	assert.Contains(t, out, `\frac{5!}{2!(5-2)!}`)
}

func TestCalcCmd_NoSteps(t *testing.T) {
	setupTestServices(t)

	withSteps, err := executeCommand(t, "calc", "fibonacci", "10")
	require.NoError(t, err)
	withoutSteps, err := executeCommand(t, "calc", "fibonacci", "10", "--steps=false")
	require.NoError(t, err)

	assert.Greater(t, len(withSteps), len(withoutSteps))
	assert.Contains(t, withoutSteps, "55")
}

func TestCalcCmd_JSON(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "calc", "catalan", "5", "--json")

	require.NoError(t, err)
	var calc struct {
		ID        string           `json:"id"`
		Operation domain.Operation `json:"operation"`
		Lines     []string         `json:"lines"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &calc))
	assert.Equal(t, domain.OpCatalan, calc.Operation)
	assert.NotEmpty(t, calc.ID)
	assert.NotEmpty(t, calc.Lines)
}

func TestCalcCmd_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		reason domain.Reason
		kind   error
	}{
		{"k greater than n", []string{"calc", "combination", "2,5"}, domain.ReasonKGreaterThanN, domain.ErrDomain},
		{"non integer", []string{"calc", "catalan", "5.5"}, domain.ReasonNonInteger, domain.ErrInvalidInput},
		{"wrong arity", []string{"calc", "permutation", "5"}, domain.ReasonWrongArity, domain.ErrInvalidInput},
		{"unknown operation", []string{"calc", "integrate", "5"}, "", domain.ErrUnknownOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestServices(t)

			_, err := executeCommand(t, tt.args...)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
			if tt.reason != "" {
				assert.Equal(t, tt.reason, domain.ReasonOf(err))
			}
		})
	}
}

func TestCalcCmd_RequiresOperation(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "calc")

	require.Error(t, err)
}

func TestCalcCmd_NotConfigured(t *testing.T) {
	SetServices(nil)

	_, err := executeCommand(t, "calc", "catalan", "5")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "calculator service not configured")
}

func TestAnalyseCmd(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "analyse", "28")

	require.NoError(t, err)
	assert.Contains(t, out, "Number Analysis (28)")
	assert.Contains(t, out, "Perfect number: yes")
	assert.Contains(t, out, "Prime factorization: 2^2 · 7")
	assert.Contains(t, out, "Totient φ(28): 12")
}

func TestAnalyseCmd_Alias(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "analyze", "7", "--latex")

	require.NoError(t, err)
	assert.Contains(t, out, `\varphi(7) = 6`)
}

func TestAnalyseCmd_RejectsZero(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "analyse", "0")

	require.Error(t, err)
	assert.Equal(t, domain.ReasonNotPositive, domain.ReasonOf(err))
}

func TestCompleteOperation(t *testing.T) {
	names, directive := completeOperation(calcCmd, nil, "")
	assert.Contains(t, names, "combination")
	assert.Contains(t, names, "analyze")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	names, _ = completeOperation(calcCmd, []string{"combination"}, "")
	assert.Empty(t, names)
}

func TestJoinValues(t *testing.T) {
	assert.Equal(t, "5, 2", joinValues([]int{5, 2}))
	assert.Equal(t, "", joinValues(nil))
}

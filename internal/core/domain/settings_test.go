package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotation_IsValid(t *testing.T) {
	assert.True(t, NotationPlain.IsValid())
	assert.True(t, NotationLaTeX.IsValid())
	assert.False(t, Notation("").IsValid())
	assert.False(t, Notation("mathml").IsValid())
}

func TestTotientMethod_IsValid(t *testing.T) {
	assert.True(t, TotientProduct.IsValid())
	assert.True(t, TotientScan.IsValid())
	assert.False(t, TotientMethod("sieve").IsValid())
}

func TestTotientMethod_Description(t *testing.T) {
	assert.Contains(t, TotientProduct.Description(), "Product")
	assert.Contains(t, TotientScan.Description(), "scan")
	assert.Equal(t, "Unknown", TotientMethod("x").Description())
}

func TestDefaultAppSettings_AreValid(t *testing.T) {
	settings := DefaultAppSettings()

	require.NoError(t, settings.Validate())
	assert.Equal(t, NotationPlain, settings.Output.Notation)
	assert.True(t, settings.Output.ShowSteps)
	assert.Equal(t, TotientProduct, settings.Analysis.TotientMethod)
	assert.Equal(t, 500, settings.Limits.MaxTableN)
	assert.True(t, settings.History.Enabled)
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *AppSettings)
	}{
		{"zero combinatorial limit", func(s *AppSettings) { s.Limits.MaxCombinatorialN = 0 }},
		{"zero table limit", func(s *AppSettings) { s.Limits.MaxTableN = 0 }},
		{"negative sequence limit", func(s *AppSettings) { s.Limits.MaxSequenceN = -1 }},
		{"unknown notation", func(s *AppSettings) { s.Output.Notation = "html" }},
		{"unknown totient method", func(s *AppSettings) { s.Analysis.TotientMethod = "sieve" }},
		{"negative history size", func(s *AppSettings) { s.History.Size = -5 }},
		{"zero mcp rate", func(s *AppSettings) { s.MCP.RatePerSecond = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultAppSettings()
			tt.modify(&settings)

			err := settings.Validate()

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestLimits_LimitFor(t *testing.T) {
	limits := Limits{MaxCombinatorialN: 1, MaxSequenceN: 2, MaxAnalysisN: 3, MaxTotientScanN: 4, MaxTableN: 5}

	assert.Equal(t, 1, limits.LimitFor(OpCombination))
	assert.Equal(t, 1, limits.LimitFor(OpCatalan))
	assert.Equal(t, 5, limits.LimitFor(OpBell))
	assert.Equal(t, 5, limits.LimitFor(OpStirling2))
	assert.Equal(t, 2, limits.LimitFor(OpFibonacci))
	assert.Equal(t, 2, limits.LimitFor(OpLucas))
	assert.Equal(t, 3, limits.LimitFor(OpAnalyze))
}

package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/discreta/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/discreta/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("limits.max_combinatorial_n", int64(50))
	_ = store.Set("output.notation", "latex")
	_ = store.Set("output.show_steps", false)
	_ = store.Set("analysis.totient_method", "scan")
	_ = store.Set("mcp.rate_per_second", 5.5)

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, 50, settings.Limits.MaxCombinatorialN)
	assert.Equal(t, domain.NotationLaTeX, settings.Output.Notation)
	assert.False(t, settings.Output.ShowSteps)
	assert.Equal(t, domain.TotientScan, settings.Analysis.TotientMethod)
	assert.Equal(t, 5.5, settings.MCP.RatePerSecond)
}

func TestSettingsService_Get_InvalidEnumsReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("output.notation", "mathml")
	_ = store.Set("analysis.totient_method", "sieve")

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.NotationPlain, settings.Output.Notation)
	assert.Equal(t, domain.TotientProduct, settings.Analysis.TotientMethod)
}

func TestSettingsService_Get_InvalidLimitFails(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("limits.max_sequence_n", -1)

	_, err := NewSettingsService(store).Get()

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Limits.MaxSequenceN = 99
	settings.Output.Notation = domain.NotationLaTeX
	settings.History.Enabled = false

	require.NoError(t, service.Save(&settings))

	loaded, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *loaded)
	assert.Equal(t, "latex", store.GetString("output.notation"))
}

func TestSettingsService_Save_RejectsInvalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	settings := domain.DefaultAppSettings()
	settings.MCP.Burst = 0

	err := service.Save(&settings)

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{"limits.max_combinatorial_n", "300", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 300, s.Limits.MaxCombinatorialN)
		}},
		{"limits.max_totient_scan_n", "1000", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 1000, s.Limits.MaxTotientScanN)
		}},
		{"output.notation", "latex", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, domain.NotationLaTeX, s.Output.Notation)
		}},
		{"output.show_steps", "false", func(t *testing.T, s *domain.AppSettings) {
			assert.False(t, s.Output.ShowSteps)
		}},
		{"analysis.totient_method", "scan", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, domain.TotientScan, s.Analysis.TotientMethod)
		}},
		{"analysis.parallel", "false", func(t *testing.T, s *domain.AppSettings) {
			assert.False(t, s.Analysis.Parallel)
		}},
		{"history.enabled", "false", func(t *testing.T, s *domain.AppSettings) {
			assert.False(t, s.History.Enabled)
		}},
		{"history.size", "5", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 5, s.History.Size)
		}},
		{"mcp.rate_per_second", "0.5", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 0.5, s.MCP.RatePerSecond)
		}},
		{"mcp.burst", "3", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 3, s.MCP.Burst)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			require.NoError(t, service.Set(tt.key, tt.value))

			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Set_Errors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		kind  error
	}{
		{"unknown key", "output.colour", "red", domain.ErrNotFound},
		{"not an integer", "history.size", "ten", domain.ErrInvalidInput},
		{"not a bool", "output.show_steps", "maybe", domain.ErrInvalidInput},
		{"not a float", "mcp.rate_per_second", "fast", domain.ErrInvalidInput},
		{"zero limit", "limits.max_sequence_n", "0", domain.ErrInvalidInput},
		{"bad notation", "output.notation", "html", domain.ErrInvalidInput},
		{"bad totient method", "analysis.totient_method", "sieve", domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.Set(tt.key, tt.value)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind))
			_, exists := store.Get(tt.key)
			assert.False(t, exists, "rejected value must not be stored")
		})
	}
}

func TestSettingsService_Reset(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	require.NoError(t, service.Set("output.notation", "latex"))

	require.NoError(t, service.Reset())

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()

	assert.Len(t, keys, 13)
	assert.Contains(t, keys, "limits.max_table_n")
	assert.Contains(t, keys, "analysis.totient_method")
	keys[0] = "mutated"
	assert.Equal(t, "limits.max_combinatorial_n", service.Keys()[0])
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}

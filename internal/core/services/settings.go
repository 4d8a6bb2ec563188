package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/discreta/internal/core/domain"
	"github.com/custodia-labs/discreta/internal/core/ports/driven"
	"github.com/custodia-labs/discreta/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyMaxCombinatorialN = "limits.max_combinatorial_n"
	keyMaxTableN         = "limits.max_table_n"
	keyMaxSequenceN      = "limits.max_sequence_n"
	keyMaxAnalysisN      = "limits.max_analysis_n"
	keyMaxTotientScanN   = "limits.max_totient_scan_n"
	keyNotation          = "output.notation"
	keyShowSteps         = "output.show_steps"
	keyTotientMethod     = "analysis.totient_method"
	keyParallel          = "analysis.parallel"
	keyHistoryEnabled    = "history.enabled"
	keyHistorySize       = "history.size"
	keyMCPRate           = "mcp.rate_per_second"
	keyMCPBurst          = "mcp.burst"
)

var settingKeys = []string{
	keyMaxCombinatorialN, keyMaxTableN, keyMaxSequenceN, keyMaxAnalysisN, keyMaxTotientScanN,
	keyNotation, keyShowSteps,
	keyTotientMethod, keyParallel,
	keyHistoryEnabled, keyHistorySize,
	keyMCPRate, keyMCPBurst,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing keys take their
// default; unrecognised enum values fall back to the default too.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Limits: domain.Limits{
			MaxCombinatorialN: s.getInt(keyMaxCombinatorialN, defaults.Limits.MaxCombinatorialN),
			MaxTableN:         s.getInt(keyMaxTableN, defaults.Limits.MaxTableN),
			MaxSequenceN:      s.getInt(keyMaxSequenceN, defaults.Limits.MaxSequenceN),
			MaxAnalysisN:      s.getInt(keyMaxAnalysisN, defaults.Limits.MaxAnalysisN),
			MaxTotientScanN:   s.getInt(keyMaxTotientScanN, defaults.Limits.MaxTotientScanN),
		},
		Output: domain.OutputSettings{
			Notation:  s.getNotation(defaults.Output.Notation),
			ShowSteps: s.getBool(keyShowSteps, defaults.Output.ShowSteps),
		},
		Analysis: domain.AnalysisSettings{
			TotientMethod: s.getTotientMethod(defaults.Analysis.TotientMethod),
			Parallel:      s.getBool(keyParallel, defaults.Analysis.Parallel),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
			Size:    s.getInt(keyHistorySize, defaults.History.Size),
		},
		MCP: domain.MCPSettings{
			RatePerSecond: s.getFloat(keyMCPRate, defaults.MCP.RatePerSecond),
			Burst:         s.getInt(keyMCPBurst, defaults.MCP.Burst),
		},
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings in %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyMaxCombinatorialN, settings.Limits.MaxCombinatorialN},
		{keyMaxTableN, settings.Limits.MaxTableN},
		{keyMaxSequenceN, settings.Limits.MaxSequenceN},
		{keyMaxAnalysisN, settings.Limits.MaxAnalysisN},
		{keyMaxTotientScanN, settings.Limits.MaxTotientScanN},
		{keyNotation, settings.Output.Notation.String()},
		{keyShowSteps, settings.Output.ShowSteps},
		{keyTotientMethod, string(settings.Analysis.TotientMethod)},
		{keyParallel, settings.Analysis.Parallel},
		{keyHistoryEnabled, settings.History.Enabled},
		{keyHistorySize, settings.History.Size},
		{keyMCPRate, settings.MCP.RatePerSecond},
		{keyMCPBurst, settings.MCP.Burst},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set updates a single setting by its dotted config key.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	var typed any
	switch key {
	case keyMaxCombinatorialN, keyMaxTableN, keyMaxSequenceN, keyMaxAnalysisN, keyMaxTotientScanN,
		keyHistorySize, keyMCPBurst:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		setInt(settings, key, n)
		typed = n
	case keyShowSteps, keyParallel, keyHistoryEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		setBool(settings, key, b)
		typed = b
	case keyMCPRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, key)
		}
		settings.MCP.RatePerSecond = f
		typed = f
	case keyNotation:
		settings.Output.Notation = domain.Notation(value)
		typed = value
	case keyTotientMethod:
		settings.Analysis.TotientMethod = domain.TotientMethod(value)
		typed = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrNotFound, key)
	}

	if err := settings.Validate(); err != nil {
		return err
	}
	return s.configStore.Set(key, typed)
}

func setInt(settings *domain.AppSettings, key string, n int) {
	switch key {
	case keyMaxCombinatorialN:
		settings.Limits.MaxCombinatorialN = n
	case keyMaxTableN:
		settings.Limits.MaxTableN = n
	case keyMaxSequenceN:
		settings.Limits.MaxSequenceN = n
	case keyMaxAnalysisN:
		settings.Limits.MaxAnalysisN = n
	case keyMaxTotientScanN:
		settings.Limits.MaxTotientScanN = n
	case keyHistorySize:
		settings.History.Size = n
	case keyMCPBurst:
		settings.MCP.Burst = n
	}
}

func setBool(settings *domain.AppSettings, key string, b bool) {
	switch key {
	case keyShowSteps:
		settings.Output.ShowSteps = b
	case keyParallel:
		settings.Analysis.Parallel = b
	case keyHistoryEnabled:
		settings.History.Enabled = b
	}
}

// Reset restores the default settings.
func (s *SettingsService) Reset() error {
	defaults := domain.DefaultAppSettings()
	return s.Save(&defaults)
}

// Keys lists the settable config keys in display order.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getNotation(defaultVal domain.Notation) domain.Notation {
	n := domain.Notation(s.configStore.GetString(keyNotation))
	if !n.IsValid() {
		return defaultVal
	}
	return n
}

func (s *SettingsService) getTotientMethod(defaultVal domain.TotientMethod) domain.TotientMethod {
	m := domain.TotientMethod(s.configStore.GetString(keyTotientMethod))
	if !m.IsValid() {
		return defaultVal
	}
	return m
}

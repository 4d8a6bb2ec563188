package mcp

import (
	"context"
	"math/big"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

// mockCalculatorService is a mock implementation of driving.CalculatorService.
type mockCalculatorService struct {
	calc    *domain.Calculation
	err     error
	lastReq domain.Request
}

func (m *mockCalculatorService) Calculate(_ context.Context, req domain.Request) (*domain.Calculation, error) {
	m.lastReq = req
	return m.calc, m.err
}

func (m *mockCalculatorService) Operations() []domain.OperationInfo {
	ops := domain.Operations()
	infos := make([]domain.OperationInfo, len(ops))
	for i, op := range ops {
		infos[i] = op.Info()
	}
	return infos
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	entries   []domain.HistoryEntry
	err       error
	lastLimit int
}

func (m *mockHistoryService) Recent(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	m.lastLimit = limit
	return m.entries, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return m.err }

func (m *mockSettingsService) Set(_, _ string) error { return m.err }

func (m *mockSettingsService) Reset() error { return m.err }

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }

func combinationCalc() *domain.Calculation {
	return &domain.Calculation{
		ID:        "calc-1",
		Operation: domain.OpCombination,
		Input:     domain.IntegerInput{Values: []int{5, 2}},
		Result: &domain.CombinatorialResult{
			Operation: domain.OpCombination,
			Args:      []int{5, 2},
			Value:     big.NewInt(10),
		},
		Lines: []string{"C(5,2) = 5!/(2!·3!) = 10"},
	}
}

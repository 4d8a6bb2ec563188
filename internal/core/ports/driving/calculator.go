package driving

import (
	"context"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

// CalculatorService evaluates requests against the operation catalogue.
type CalculatorService interface {
	// Calculate normalises the raw input, runs the operation and formats the
	// result. Rejected requests return a *domain.CalcError.
	Calculate(ctx context.Context, req domain.Request) (*domain.Calculation, error)

	// Operations returns the catalogue in display order.
	Operations() []domain.OperationInfo
}

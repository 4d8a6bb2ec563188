package driving

import (
	"context"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

// HistoryService exposes recorded calculations.
type HistoryService interface {
	// Recent returns up to limit entries, most recent first.
	Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes all recorded calculations.
	Clear(ctx context.Context) error
}

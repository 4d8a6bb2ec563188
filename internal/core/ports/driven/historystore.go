package driven

import (
	"context"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

// HistoryStore persists completed calculations.
type HistoryStore interface {
	// Append records one calculation.
	Append(ctx context.Context, entry domain.HistoryEntry) error

	// List returns recent entries, most recent first.
	// A limit of zero or less returns every entry.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error

	// Prune removes old entries beyond the retention limit.
	// Keeps the most recent 'keep' entries.
	Prune(ctx context.Context, keep int) error
}

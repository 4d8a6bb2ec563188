package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/discreta/internal/core/domain"
)

func entry(i int) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:        fmt.Sprintf("id-%d", i),
		Operation: domain.OpFibonacci,
		RawInput:  fmt.Sprint(i),
		Value:     fmt.Sprint(i),
		Summary:   fmt.Sprintf("F_%d", i),
		CreatedAt: time.Unix(int64(i), 0),
	}
}

func TestHistoryStore_AppendAndList(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()

	for i := 1; i <= 3; i++ {
		require.NoError(t, store.Append(ctx, entry(i)))
	}

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "id-3", all[0].ID)
	assert.Equal(t, "id-1", all[2].ID)

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "id-3", limited[0].ID)
	assert.Equal(t, "id-2", limited[1].ID)
}

func TestHistoryStore_ListEmpty(t *testing.T) {
	entries, err := NewHistoryStore().List(context.Background(), 5)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistoryStore_Prune(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()
	for i := 1; i <= 5; i++ {
		require.NoError(t, store.Append(ctx, entry(i)))
	}

	require.NoError(t, store.Prune(ctx, 2))

	entries, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "id-5", entries[0].ID)
	assert.Equal(t, "id-4", entries[1].ID)

	require.NoError(t, store.Prune(ctx, 10))
	entries, _ = store.List(ctx, 0)
	assert.Len(t, entries, 2)
}

func TestHistoryStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()
	require.NoError(t, store.Append(ctx, entry(1)))

	require.NoError(t, store.Clear(ctx))

	entries, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InvestSim_Go/internal/eventlog"
)

func TestEventLogRepository_LogAndFilter(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewEventLogRepository(pool)
	ctx := context.Background()

	account := uuid.NewString()
	require.NoError(t, repo.LogEvent(ctx, "account.created", &account,
		map[string]interface{}{"account_id": account, "name": "alice"}, nil))
	require.NoError(t, repo.LogEvent(ctx, "purchase.completed", &account,
		map[string]interface{}{"account_id": account, "subtotal": "10"}, nil))
	require.NoError(t, repo.LogEvent(ctx, "catalog.refreshed", nil,
		map[string]interface{}{"cryptos": 3.0}, map[string]interface{}{"source": "admin"}))

	byAccount, err := repo.GetEvents(ctx, eventlog.EventFilter{AccountID: &account})
	require.NoError(t, err)
	require.Len(t, byAccount, 2)
	assert.Equal(t, "purchase.completed", byAccount[0].EventType, "newest first")
	require.NotNil(t, byAccount[0].AccountID)
	assert.Equal(t, account, *byAccount[0].AccountID)
	assert.Equal(t, "10", byAccount[0].Payload["subtotal"])

	kind := "catalog.refreshed"
	catalog, err := repo.GetEvents(ctx, eventlog.EventFilter{EventType: &kind, Limit: 1})
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Nil(t, catalog[0].AccountID)
	assert.Equal(t, "admin", catalog[0].Metadata["source"])
}

func TestEventLogRepository_Cleanup(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewEventLogRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.LogEvent(ctx, "catalog.refreshed", nil, map[string]interface{}{}, nil))
	_, err := pool.Exec(ctx, `UPDATE events SET created_at = NOW() - INTERVAL '40 days' WHERE event_type = 'catalog.refreshed'`)
	require.NoError(t, err)

	deleted, err := repo.CleanupOldEvents(ctx, 30)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, deleted, int64(1))

	kind := "catalog.refreshed"
	left, err := repo.GetEvents(ctx, eventlog.EventFilter{EventType: &kind})
	require.NoError(t, err)
	assert.Empty(t, left)
}

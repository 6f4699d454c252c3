package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metals-tracker/internal/domain"
	"metals-tracker/internal/storage"
)

func TestMarketCycleStore_Get(t *testing.T) {
	db := setupTestDB(t)
	store := NewMarketCycleStore(db)
	ctx := context.Background()

	cycleRow(t, db, domain.MetalGold, "gold_2024_current", 2063.73)
	cycleRow(t, db, domain.MetalGold, "gold_1978_1980", 193.4)

	c, err := store.Get(ctx, domain.MetalGold, "gold_2024_current")
	require.NoError(t, err)
	assert.Equal(t, domain.MetalGold, c.Metal)
	assert.Equal(t, "gold_2024_current", c.CycleName)
	assert.Equal(t, 2063.73, c.StartPrice)

	_, err = store.Get(ctx, domain.MetalSilver, "silver_2024_current")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

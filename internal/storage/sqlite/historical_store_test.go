package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metals-tracker/internal/domain"
	"metals-tracker/internal/storage"
)

func TestHistoricalPriceStore_GetSeriesOrderAndPaging(t *testing.T) {
	db := setupTestDB(t)
	store := NewHistoricalPriceStore(db)
	ctx := context.Background()

	historicalRow(t, db, domain.MetalGold, "gold_1978_1980", "1979-01-02", 220, 0, 0)
	historicalRow(t, db, domain.MetalGold, "gold_1978_1980", "1979-01-03", 225, 1, 0)
	historicalRow(t, db, domain.MetalGold, "gold_1978_1980", "1979-01-04", 230, 2, 0)
	// Different cycle and metal must not leak in.
	historicalRow(t, db, domain.MetalGold, "gold_2008_2011", "2009-01-02", 900, 0, 0)
	historicalRow(t, db, domain.MetalSilver, "silver_1978_1980", "1979-01-02", 6, 0, 0)

	rows, err := store.GetSeries(ctx, domain.MetalGold, "gold_1978_1980", 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Date descending
	assert.Equal(t, "1979-01-04", rows[0].Date)
	assert.Equal(t, "1979-01-03", rows[1].Date)
	assert.Equal(t, "1979-01-02", rows[2].Date)
	assert.Equal(t, 230.0, rows[0].ClosePrice)

	// Paging: offset past the first row
	page, err := store.GetSeries(ctx, domain.MetalGold, "gold_1978_1980", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "1979-01-03", page[0].Date)
}

func TestHistoricalPriceStore_Counts(t *testing.T) {
	db := setupTestDB(t)
	store := NewHistoricalPriceStore(db)
	ctx := context.Background()

	historicalRow(t, db, domain.MetalGold, "gold_1978_1980", "1979-01-02", 220, 0, 0)
	historicalRow(t, db, domain.MetalGold, "gold_2008_2011", "2009-01-02", 900, 0, 0)
	historicalRow(t, db, domain.MetalSilver, "silver_1978_1980", "1979-01-02", 6, 0, 0)

	n, err := store.Count(ctx, domain.MetalGold, "gold_1978_1980")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = store.CountByMetal(ctx, domain.MetalGold)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = store.Count(ctx, domain.MetalGold, "no_such_cycle")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestHistoricalPriceStore_PeakClose(t *testing.T) {
	db := setupTestDB(t)
	store := NewHistoricalPriceStore(db)
	ctx := context.Background()

	historicalRow(t, db, domain.MetalGold, "gold_1978_1980", "1979-01-02", 220, 0, 0)
	historicalRow(t, db, domain.MetalGold, "gold_1978_1980", "1980-01-21", 850, 380, 54)
	historicalRow(t, db, domain.MetalGold, "gold_1978_1980", "1980-03-01", 640, 420, 60)

	peak, err := store.PeakClose(ctx, domain.MetalGold, "gold_1978_1980")
	require.NoError(t, err)
	assert.Equal(t, 850.0, peak)

	_, err = store.PeakClose(ctx, domain.MetalSilver, "silver_1978_1980")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestHistoricalPriceStore_DateRange(t *testing.T) {
	db := setupTestDB(t)
	store := NewHistoricalPriceStore(db)
	ctx := context.Background()

	start, end, err := store.DateRange(ctx)
	require.NoError(t, err)
	assert.Empty(t, start)
	assert.Empty(t, end)

	historicalRow(t, db, domain.MetalGold, "gold_1978_1980", "1978-11-01", 200, 0, 0)
	historicalRow(t, db, domain.MetalSilver, "silver_1978_1980", "1980-03-27", 11, 500, 71)

	start, end, err = store.DateRange(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1978-11-01", start)
	assert.Equal(t, "1980-03-27", end)
}

func TestHistoricalPriceStore_QueryErrorOnMissingTable(t *testing.T) {
	// Schema never applied: the empty database has no tables, which is
	// exactly the state after a failed dataset bootstrap.
	db, err := Open(MemoryDSN("hist_missing_table"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := NewHistoricalPriceStore(db)
	_, err = store.Count(context.Background(), domain.MetalGold, "gold_1978_1980")
	require.Error(t, err)

	var qe *storage.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, storage.TableHistoricalPrices, qe.Table)
}

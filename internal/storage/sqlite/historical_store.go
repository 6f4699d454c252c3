package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"metals-tracker/internal/domain"
	"metals-tracker/internal/storage"
)

// HistoricalPriceStore implements storage.HistoricalPriceStore using SQLite.
type HistoricalPriceStore struct {
	db *DB
}

// NewHistoricalPriceStore creates a new HistoricalPriceStore.
func NewHistoricalPriceStore(db *DB) *HistoricalPriceStore {
	return &HistoricalPriceStore{db: db}
}

// Compile-time interface check.
var _ storage.HistoricalPriceStore = (*HistoricalPriceStore)(nil)

// GetSeries retrieves a page of daily rows for (metal, cycle), ordered by date DESC.
func (s *HistoricalPriceStore) GetSeries(ctx context.Context, metal domain.Metal, cycle string, limit, offset int) ([]*domain.PriceRow, error) {
	query := `
		SELECT ` + priceRowColumns + `
		FROM historical_prices
		WHERE metal = ? AND cycle_name = ?
		ORDER BY date DESC
		LIMIT ? OFFSET ?
	`

	rows, err := s.db.QueryContext(ctx, query, string(metal), cycle, limit, offset)
	if err != nil {
		return nil, &storage.QueryError{Table: storage.TableHistoricalPrices, Err: fmt.Errorf("get historical series: %w", err)}
	}
	defer rows.Close()

	series, err := scanPriceRows(rows)
	if err != nil {
		return nil, &storage.QueryError{Table: storage.TableHistoricalPrices, Err: err}
	}
	return series, nil
}

// Count returns the number of rows matching (metal, cycle).
func (s *HistoricalPriceStore) Count(ctx context.Context, metal domain.Metal, cycle string) (int, error) {
	query := `SELECT COUNT(*) FROM historical_prices WHERE metal = ? AND cycle_name = ?`

	var n int
	if err := s.db.QueryRowContext(ctx, query, string(metal), cycle).Scan(&n); err != nil {
		return 0, &storage.QueryError{Table: storage.TableHistoricalPrices, Err: fmt.Errorf("count historical rows: %w", err)}
	}
	return n, nil
}

// CountByMetal returns the number of rows for a metal across all cycles.
func (s *HistoricalPriceStore) CountByMetal(ctx context.Context, metal domain.Metal) (int, error) {
	query := `SELECT COUNT(*) FROM historical_prices WHERE metal = ?`

	var n int
	if err := s.db.QueryRowContext(ctx, query, string(metal)).Scan(&n); err != nil {
		return 0, &storage.QueryError{Table: storage.TableHistoricalPrices, Err: fmt.Errorf("count historical rows by metal: %w", err)}
	}
	return n, nil
}

// PeakClose returns the highest close price within (metal, cycle).
// Returns ErrNotFound when the cycle has no rows.
func (s *HistoricalPriceStore) PeakClose(ctx context.Context, metal domain.Metal, cycle string) (float64, error) {
	query := `SELECT MAX(close_price) FROM historical_prices WHERE metal = ? AND cycle_name = ?`

	var peak sql.NullFloat64
	err := s.db.QueryRowContext(ctx, query, string(metal), cycle).Scan(&peak)
	if err != nil {
		return 0, &storage.QueryError{Table: storage.TableHistoricalPrices, Err: fmt.Errorf("get peak close: %w", err)}
	}
	if !peak.Valid {
		// MAX over zero rows yields NULL
		return 0, storage.ErrNotFound
	}
	return peak.Float64, nil
}

// DateRange returns the min and max date across the whole table.
func (s *HistoricalPriceStore) DateRange(ctx context.Context) (string, string, error) {
	start, end, err := dateRange(ctx, s.db, storage.TableHistoricalPrices)
	if err != nil {
		return "", "", &storage.QueryError{Table: storage.TableHistoricalPrices, Err: err}
	}
	return start, end, nil
}

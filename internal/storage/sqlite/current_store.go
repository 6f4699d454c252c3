package sqlite

import (
	"context"
	"fmt"

	"metals-tracker/internal/domain"
	"metals-tracker/internal/storage"
)

// CurrentPriceStore implements storage.CurrentPriceStore using SQLite.
type CurrentPriceStore struct {
	db *DB
}

// NewCurrentPriceStore creates a new CurrentPriceStore.
func NewCurrentPriceStore(db *DB) *CurrentPriceStore {
	return &CurrentPriceStore{db: db}
}

// Compile-time interface check.
var _ storage.CurrentPriceStore = (*CurrentPriceStore)(nil)

// GetSeries retrieves a page of daily rows for a metal, ordered by date DESC.
func (s *CurrentPriceStore) GetSeries(ctx context.Context, metal domain.Metal, limit, offset int) ([]*domain.PriceRow, error) {
	query := `
		SELECT ` + priceRowColumns + `
		FROM current_prices
		WHERE metal = ?
		ORDER BY date DESC
		LIMIT ? OFFSET ?
	`

	rows, err := s.db.QueryContext(ctx, query, string(metal), limit, offset)
	if err != nil {
		return nil, &storage.QueryError{Table: storage.TableCurrentPrices, Err: fmt.Errorf("get current series: %w", err)}
	}
	defer rows.Close()

	series, err := scanPriceRows(rows)
	if err != nil {
		return nil, &storage.QueryError{Table: storage.TableCurrentPrices, Err: err}
	}
	return series, nil
}

// Count returns the number of rows for a metal.
func (s *CurrentPriceStore) Count(ctx context.Context, metal domain.Metal) (int, error) {
	query := `SELECT COUNT(*) FROM current_prices WHERE metal = ?`

	var n int
	if err := s.db.QueryRowContext(ctx, query, string(metal)).Scan(&n); err != nil {
		return 0, &storage.QueryError{Table: storage.TableCurrentPrices, Err: fmt.Errorf("count current rows: %w", err)}
	}
	return n, nil
}

// CountAll returns the total number of rows in the table.
func (s *CurrentPriceStore) CountAll(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM current_prices`

	var n int
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, &storage.QueryError{Table: storage.TableCurrentPrices, Err: fmt.Errorf("count current rows: %w", err)}
	}
	return n, nil
}

// Latest retrieves the most recent row for a metal.
// Returns ErrNotFound when the metal has no current data.
func (s *CurrentPriceStore) Latest(ctx context.Context, metal domain.Metal) (*domain.PriceRow, error) {
	query := `
		SELECT ` + priceRowColumns + `
		FROM current_prices
		WHERE metal = ?
		ORDER BY date DESC
		LIMIT 1
	`

	row := s.db.QueryRowContext(ctx, query, string(metal))
	r, err := scanPriceRow(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, &storage.QueryError{Table: storage.TableCurrentPrices, Err: fmt.Errorf("get latest current row: %w", err)}
	}
	return r, nil
}

// CountLimitUp returns the number of limit-up days for a metal.
func (s *CurrentPriceStore) CountLimitUp(ctx context.Context, metal domain.Metal) (int, error) {
	query := `SELECT COUNT(*) FROM current_prices WHERE metal = ? AND is_limit_up = 1`

	var n int
	if err := s.db.QueryRowContext(ctx, query, string(metal)).Scan(&n); err != nil {
		return 0, &storage.QueryError{Table: storage.TableCurrentPrices, Err: fmt.Errorf("count limit-up days: %w", err)}
	}
	return n, nil
}

// DateRange returns the min and max date across the whole table.
func (s *CurrentPriceStore) DateRange(ctx context.Context) (string, string, error) {
	start, end, err := dateRange(ctx, s.db, storage.TableCurrentPrices)
	if err != nil {
		return "", "", &storage.QueryError{Table: storage.TableCurrentPrices, Err: err}
	}
	return start, end, nil
}

package sqlite

import (
	"context"
	"fmt"

	"metals-tracker/internal/domain"
	"metals-tracker/internal/storage"
)

// MarketCycleStore implements storage.MarketCycleStore using SQLite.
type MarketCycleStore struct {
	db *DB
}

// NewMarketCycleStore creates a new MarketCycleStore.
func NewMarketCycleStore(db *DB) *MarketCycleStore {
	return &MarketCycleStore{db: db}
}

// Compile-time interface check.
var _ storage.MarketCycleStore = (*MarketCycleStore)(nil)

// Get retrieves a cycle definition. Returns ErrNotFound if the
// (metal, cycle) pair is not defined.
func (s *MarketCycleStore) Get(ctx context.Context, metal domain.Metal, cycle string) (*domain.MarketCycle, error) {
	query := `
		SELECT metal, cycle_name, start_price
		FROM market_cycles
		WHERE metal = ? AND cycle_name = ?
	`

	var c domain.MarketCycle
	var metalStr string
	err := s.db.QueryRowContext(ctx, query, string(metal), cycle).Scan(&metalStr, &c.CycleName, &c.StartPrice)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, &storage.QueryError{Table: storage.TableMarketCycles, Err: fmt.Errorf("get market cycle: %w", err)}
	}

	c.Metal = domain.Metal(metalStr)
	return &c, nil
}

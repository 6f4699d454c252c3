package storage

import (
	"errors"
	"fmt"
)

// Storage errors for the read-only dataset stores.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)

// Dataset tables. Table selection in queries is restricted to these
// constants; caller-supplied identifiers are never interpolated into SQL.
const (
	TableHistoricalPrices = "historical_prices"
	TableCurrentPrices    = "current_prices"
	TableWeeklyAggregates = "weekly_aggregates"
	TableMarketCycles     = "market_cycles"
)

// QueryError wraps a store-level failure with the table it hit.
type QueryError struct {
	Table string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s: %v", e.Table, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

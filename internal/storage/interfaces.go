package storage

import (
	"context"

	"metals-tracker/internal/domain"
)

// HistoricalPriceStore provides access to historical_prices storage.
type HistoricalPriceStore interface {
	// GetSeries retrieves a page of daily rows for (metal, cycle),
	// ordered by date DESC.
	GetSeries(ctx context.Context, metal domain.Metal, cycle string, limit, offset int) ([]*domain.PriceRow, error)

	// Count returns the number of rows matching (metal, cycle).
	Count(ctx context.Context, metal domain.Metal, cycle string) (int, error)

	// CountByMetal returns the number of rows for a metal across all cycles.
	CountByMetal(ctx context.Context, metal domain.Metal) (int, error)

	// PeakClose returns the highest close price within (metal, cycle).
	// Returns ErrNotFound when the cycle has no rows.
	PeakClose(ctx context.Context, metal domain.Metal, cycle string) (float64, error)

	// DateRange returns the min and max date across the whole table.
	// Both are empty strings when the table is empty.
	DateRange(ctx context.Context) (start, end string, err error)
}

// CurrentPriceStore provides access to current_prices storage.
type CurrentPriceStore interface {
	// GetSeries retrieves a page of daily rows for a metal, ordered by date DESC.
	GetSeries(ctx context.Context, metal domain.Metal, limit, offset int) ([]*domain.PriceRow, error)

	// Count returns the number of rows for a metal.
	Count(ctx context.Context, metal domain.Metal) (int, error)

	// CountAll returns the total number of rows in the table.
	CountAll(ctx context.Context) (int, error)

	// Latest retrieves the most recent row for a metal.
	// Returns ErrNotFound when the metal has no current data.
	Latest(ctx context.Context, metal domain.Metal) (*domain.PriceRow, error)

	// CountLimitUp returns the number of limit-up days for a metal.
	CountLimitUp(ctx context.Context, metal domain.Metal) (int, error)

	// DateRange returns the min and max date across the whole table.
	// Both are empty strings when the table is empty.
	DateRange(ctx context.Context) (start, end string, err error)
}

// WeeklyAggregateStore provides access to weekly_aggregates storage.
type WeeklyAggregateStore interface {
	// GetSeries retrieves all weekly rows for (metal, cycle), ordered
	// ascending by weeks_from_start. An empty slice is a valid result.
	GetSeries(ctx context.Context, metal domain.Metal, cycle string) ([]*domain.WeeklyAggregate, error)

	// CountAll returns the total number of rows in the table.
	CountAll(ctx context.Context) (int, error)
}

// MarketCycleStore provides access to market_cycles storage.
type MarketCycleStore interface {
	// Get retrieves a cycle definition. Returns ErrNotFound if the
	// (metal, cycle) pair is not defined.
	Get(ctx context.Context, metal domain.Metal, cycle string) (*domain.MarketCycle, error)
}

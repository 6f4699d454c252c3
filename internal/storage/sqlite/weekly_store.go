package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"metals-tracker/internal/domain"
	"metals-tracker/internal/storage"
)

// WeeklyAggregateStore implements storage.WeeklyAggregateStore using SQLite.
type WeeklyAggregateStore struct {
	db *DB
}

// NewWeeklyAggregateStore creates a new WeeklyAggregateStore.
func NewWeeklyAggregateStore(db *DB) *WeeklyAggregateStore {
	return &WeeklyAggregateStore{db: db}
}

// Compile-time interface check.
var _ storage.WeeklyAggregateStore = (*WeeklyAggregateStore)(nil)

// GetSeries retrieves all weekly rows for (metal, cycle), ordered
// ascending by weeks_from_start.
func (s *WeeklyAggregateStore) GetSeries(ctx context.Context, metal domain.Metal, cycle string) ([]*domain.WeeklyAggregate, error) {
	query := `
		SELECT metal, cycle_name, weeks_from_start, week_start_date, close_price,
		       cycle_change_pct, week_over_week_pct, limit_up_days, limit_down_days,
		       volatility_indicator, total_trading_days
		FROM weekly_aggregates
		WHERE metal = ? AND cycle_name = ?
		ORDER BY weeks_from_start
	`

	rows, err := s.db.QueryContext(ctx, query, string(metal), cycle)
	if err != nil {
		return nil, &storage.QueryError{Table: storage.TableWeeklyAggregates, Err: fmt.Errorf("get weekly series: %w", err)}
	}
	defer rows.Close()

	series, err := scanWeeklyAggregates(rows)
	if err != nil {
		return nil, &storage.QueryError{Table: storage.TableWeeklyAggregates, Err: err}
	}
	return series, nil
}

// CountAll returns the total number of rows in the table.
func (s *WeeklyAggregateStore) CountAll(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM weekly_aggregates`

	var n int
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, &storage.QueryError{Table: storage.TableWeeklyAggregates, Err: fmt.Errorf("count weekly rows: %w", err)}
	}
	return n, nil
}

// scanWeeklyAggregates scans all rows of a weekly aggregate query.
func scanWeeklyAggregates(rows *sql.Rows) ([]*domain.WeeklyAggregate, error) {
	var series []*domain.WeeklyAggregate

	for rows.Next() {
		var w domain.WeeklyAggregate
		var metal string
		var cyclePct, wowPct sql.NullFloat64
		var indicator sql.NullString

		err := rows.Scan(
			&metal,
			&w.CycleName,
			&w.WeeksFromStart,
			&w.WeekStartDate,
			&w.ClosePrice,
			&cyclePct,
			&wowPct,
			&w.LimitUpDays,
			&w.LimitDownDays,
			&indicator,
			&w.TotalTradingDays,
		)
		if err != nil {
			return nil, fmt.Errorf("scan weekly row: %w", err)
		}

		w.Metal = domain.Metal(metal)
		w.CycleChangePct = cyclePct.Float64
		if wowPct.Valid {
			v := wowPct.Float64
			w.WeekOverWeekPct = &v
		}
		w.VolatilityIndicator = indicator.String
		series = append(series, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weekly rows: %w", err)
	}

	return series, nil
}

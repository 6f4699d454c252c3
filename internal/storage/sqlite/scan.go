package sqlite

import (
	"database/sql"
	"fmt"

	"metals-tracker/internal/domain"
)

// priceRowColumns is the shared column list for both price tables.
const priceRowColumns = `date, open_price, high_price, low_price, close_price,
	daily_change_pct, is_limit_up, is_limit_down,
	days_from_start, weeks_from_start, volume`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanPriceRow scans a single price row. Nullable numeric columns
// (daily_change_pct, volume) default to zero.
func scanPriceRow(row rowScanner) (*domain.PriceRow, error) {
	var r domain.PriceRow
	var changePct sql.NullFloat64
	var volume sql.NullInt64

	err := row.Scan(
		&r.Date,
		&r.OpenPrice,
		&r.HighPrice,
		&r.LowPrice,
		&r.ClosePrice,
		&changePct,
		&r.IsLimitUp,
		&r.IsLimitDown,
		&r.DaysFromStart,
		&r.WeeksFromStart,
		&volume,
	)
	if err != nil {
		return nil, err
	}

	r.DailyChangePct = changePct.Float64
	r.Volume = volume.Int64
	return &r, nil
}

// scanPriceRows scans all rows of a price query.
func scanPriceRows(rows *sql.Rows) ([]*domain.PriceRow, error) {
	var series []*domain.PriceRow

	for rows.Next() {
		r, err := scanPriceRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan price row: %w", err)
		}
		series = append(series, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate price rows: %w", err)
	}

	return series, nil
}

package sqlite

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"metals-tracker/internal/domain"
)

// testSchema mirrors the tables created by the dataset dump script.
const testSchema = `
CREATE TABLE historical_prices (
	metal            TEXT NOT NULL,
	cycle_name       TEXT NOT NULL,
	date             TEXT NOT NULL,
	open_price       REAL,
	high_price       REAL,
	low_price        REAL,
	close_price      REAL,
	daily_change_pct REAL,
	is_limit_up      INTEGER DEFAULT 0,
	is_limit_down    INTEGER DEFAULT 0,
	days_from_start  INTEGER,
	weeks_from_start INTEGER,
	volume           INTEGER
);

CREATE TABLE current_prices (
	metal            TEXT NOT NULL,
	date             TEXT NOT NULL,
	open_price       REAL,
	high_price       REAL,
	low_price        REAL,
	close_price      REAL,
	daily_change_pct REAL,
	is_limit_up      INTEGER DEFAULT 0,
	is_limit_down    INTEGER DEFAULT 0,
	days_from_start  INTEGER,
	weeks_from_start INTEGER,
	volume           INTEGER
);

CREATE TABLE weekly_aggregates (
	metal                TEXT NOT NULL,
	cycle_name           TEXT NOT NULL,
	weeks_from_start     INTEGER NOT NULL,
	week_start_date      TEXT NOT NULL,
	close_price          REAL,
	cycle_change_pct     REAL,
	week_over_week_pct   REAL,
	limit_up_days        INTEGER DEFAULT 0,
	limit_down_days      INTEGER DEFAULT 0,
	volatility_indicator TEXT,
	total_trading_days   INTEGER
);

CREATE TABLE market_cycles (
	metal       TEXT NOT NULL,
	cycle_name  TEXT NOT NULL,
	start_price REAL NOT NULL
);
`

// setupTestDB opens a fresh named in-memory database and applies the
// test schema. The name is derived from the test so parallel tests do
// not share state.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", "#", "_").Replace(t.Name())
	db, err := Open(MemoryDSN(strings.ToLower(name)))
	require.NoError(t, err, "failed to open sqlite")
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.ExecScript(context.Background(), testSchema), "failed to apply schema")
	return db
}

// historicalRow inserts one historical_prices row.
func historicalRow(t *testing.T, db *DB, metal domain.Metal, cycle, date string, close float64, day, week int) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO historical_prices
			(metal, cycle_name, date, open_price, high_price, low_price, close_price,
			 daily_change_pct, is_limit_up, is_limit_down, days_from_start, weeks_from_start, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, 0, ?, ?, ?)
	`, string(metal), cycle, date, close, close, close, close, 0.5, day, week, 1000)
	require.NoError(t, err)
}

// currentRow inserts one current_prices row.
func currentRow(t *testing.T, db *DB, metal domain.Metal, date string, close float64, limitUp, day, week int) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO current_prices
			(metal, date, open_price, high_price, low_price, close_price,
			 daily_change_pct, is_limit_up, is_limit_down, days_from_start, weeks_from_start, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?, ?)
	`, string(metal), date, close, close, close, close, 1.2, limitUp, day, week, 2000)
	require.NoError(t, err)
}

// weeklyRow inserts one weekly_aggregates row. A nil wow leaves
// week_over_week_pct NULL.
func weeklyRow(t *testing.T, db *DB, metal domain.Metal, cycle string, week int, date string, close float64, wow *float64) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO weekly_aggregates
			(metal, cycle_name, weeks_from_start, week_start_date, close_price,
			 cycle_change_pct, week_over_week_pct, limit_up_days, limit_down_days,
			 volatility_indicator, total_trading_days)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1, 0, 'normal', 5)
	`, string(metal), cycle, week, date, close, 10.0, wow)
	require.NoError(t, err)
}

// cycleRow inserts one market_cycles row.
func cycleRow(t *testing.T, db *DB, metal domain.Metal, cycle string, startPrice float64) {
	t.Helper()

	_, err := db.Exec(`INSERT INTO market_cycles (metal, cycle_name, start_price) VALUES (?, ?, ?)`,
		string(metal), cycle, startPrice)
	require.NoError(t, err)
}

// ptr is a helper to create pointers to values.
func ptr[T any](v T) *T {
	return &v
}

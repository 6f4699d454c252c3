// Package query implements the read-side operations of the API:
// it composes the dataset stores with the derivation layer to produce
// response-shaped records.
package query

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"metals-tracker/internal/derive"
	"metals-tracker/internal/domain"
	"metals-tracker/internal/observability"
	"metals-tracker/internal/storage"
)

// Queries runs the API's read operations over the dataset stores.
type Queries struct {
	historical storage.HistoricalPriceStore
	current    storage.CurrentPriceStore
	weekly     storage.WeeklyAggregateStore
	cycles     storage.MarketCycleStore
}

// New creates a Queries instance over the given stores.
func New(historical storage.HistoricalPriceStore, current storage.CurrentPriceStore, weekly storage.WeeklyAggregateStore, cycles storage.MarketCycleStore) *Queries {
	return &Queries{
		historical: historical,
		current:    current,
		weekly:     weekly,
		cycles:     cycles,
	}
}

// WeeklySeries returns the weekly points for (metal, cycle), ordered by
// week ascending. An unknown cycle yields an empty slice, not an error.
func (q *Queries) WeeklySeries(ctx context.Context, metal domain.Metal, cycle string) ([]WeeklyPoint, error) {
	start := time.Now()
	points, err := q.weeklySeries(ctx, metal, cycle)
	observability.RecordQuery("weekly_series", time.Since(start).Seconds(), err)
	return points, err
}

func (q *Queries) weeklySeries(ctx context.Context, metal domain.Metal, cycle string) ([]WeeklyPoint, error) {
	aggs, err := q.weekly.GetSeries(ctx, metal, cycle)
	if err != nil {
		return nil, err
	}

	points := make([]WeeklyPoint, 0, len(aggs))
	for _, a := range aggs {
		wow := 0.0
		if a.WeekOverWeekPct != nil {
			wow = *a.WeekOverWeekPct
		}
		v := derive.ClassifyVolatility(a.WeekOverWeekPct)

		points = append(points, WeeklyPoint{
			Week:               a.WeeksFromStart,
			Date:               a.WeekStartDate,
			Price:              a.ClosePrice,
			PercentChange:      a.CycleChangePct,
			WeekOverWeekChange: wow,
			LimitUpDays:        a.LimitUpDays,
			LimitDownDays:      a.LimitDownDays,
			TradingDays:        a.TotalTradingDays,
			DotColor:           v.DotColor,
			VolatilityLevel:    v.Level,
			// Every point is rendered; there is no suppression policy.
			ShowDot: true,
		})
	}
	return points, nil
}

// RawSeries returns one page of daily rows for (metal, cycle). Cycle
// names ending in the current suffix read the current-prices table
// filtered by metal only; all others read historical_prices filtered by
// metal and cycle. Table choice is an allow-list, never derived from
// query text.
func (q *Queries) RawSeries(ctx context.Context, metal domain.Metal, cycle string, limit, offset int) (*RawPage, error) {
	start := time.Now()
	page, err := q.rawSeries(ctx, metal, cycle, limit, offset)
	observability.RecordQuery("raw_series", time.Since(start).Seconds(), err)
	return page, err
}

func (q *Queries) rawSeries(ctx context.Context, metal domain.Metal, cycle string, limit, offset int) (*RawPage, error) {
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("%w: limit and offset must be non-negative", storage.ErrInvalidInput)
	}

	var (
		rows  []*domain.PriceRow
		total int
		err   error
	)

	if strings.HasSuffix(cycle, domain.CurrentCycleSuffix) {
		total, err = q.current.Count(ctx, metal)
		if err != nil {
			return nil, err
		}
		rows, err = q.current.GetSeries(ctx, metal, limit, offset)
	} else {
		total, err = q.historical.Count(ctx, metal, cycle)
		if err != nil {
			return nil, err
		}
		rows, err = q.historical.GetSeries(ctx, metal, cycle, limit, offset)
	}
	if err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []*domain.PriceRow{}
	}

	return &RawPage{
		Rows:    rows,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: derive.HasMore(offset, limit, total),
	}, nil
}

// MarketSummary returns the dashboard summary, keyed by lowercase metal
// name. A metal without current data or without a current-cycle
// definition is omitted rather than reported as an error.
func (q *Queries) MarketSummary(ctx context.Context) (map[string]*MetalSummary, error) {
	start := time.Now()
	summary, err := q.marketSummary(ctx)
	observability.RecordQuery("market_summary", time.Since(start).Seconds(), err)
	return summary, err
}

func (q *Queries) marketSummary(ctx context.Context) (map[string]*MetalSummary, error) {
	summary := make(map[string]*MetalSummary)

	for _, metal := range domain.Metals() {
		s, err := q.metalSummary(ctx, metal)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, err
		}
		summary[metal.Key()] = s
	}

	return summary, nil
}

func (q *Queries) metalSummary(ctx context.Context, metal domain.Metal) (*MetalSummary, error) {
	latest, err := q.current.Latest(ctx, metal)
	if err != nil {
		return nil, err
	}

	cycle, err := q.cycles.Get(ctx, metal, metal.CurrentCycleName())
	if err != nil {
		return nil, err
	}

	currentReturn, err := derive.CycleReturn(latest.ClosePrice, cycle.StartPrice)
	if err != nil {
		return nil, fmt.Errorf("current return for %s: %w", metal, err)
	}

	peak, peakStart := q.referencePeak(ctx, metal)

	limitUp, err := q.current.CountLimitUp(ctx, metal)
	if err != nil {
		return nil, err
	}

	return &MetalSummary{
		CurrentPrice:         latest.ClosePrice,
		CurrentReturn:        currentReturn,
		DaysInCycle:          latest.DaysFromStart,
		WeeksInCycle:         latest.WeeksFromStart,
		LastUpdate:           latest.Date,
		HistoricalPeak:       peak,
		HistoricalPeakReturn: derive.PeakReturn(peak, peakStart),
		LimitUpDays:          limitUp,
	}, nil
}

// referencePeak looks up the reference cycle's peak close and start
// price. Both default to 0 when unavailable: the peak comparison is
// supplementary and its absence never fails the summary.
func (q *Queries) referencePeak(ctx context.Context, metal domain.Metal) (peak, start float64) {
	ref := metal.ReferenceCycleName()

	peak, err := q.historical.PeakClose(ctx, metal, ref)
	if err != nil {
		return 0, 0
	}

	cycle, err := q.cycles.Get(ctx, metal, ref)
	if err != nil {
		return peak, 0
	}
	return peak, cycle.StartPrice
}

// DatabaseStats returns row counts per metal and table plus the date
// span of each price table.
func (q *Queries) DatabaseStats(ctx context.Context) (*Stats, error) {
	start := time.Now()
	stats, err := q.databaseStats(ctx)
	observability.RecordQuery("database_stats", time.Since(start).Seconds(), err)
	return stats, err
}

func (q *Queries) databaseStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	var err error

	if stats.GoldHistorical, err = q.historical.CountByMetal(ctx, domain.MetalGold); err != nil {
		return nil, err
	}
	if stats.SilverHistorical, err = q.historical.CountByMetal(ctx, domain.MetalSilver); err != nil {
		return nil, err
	}
	if stats.GoldCurrent, err = q.current.Count(ctx, domain.MetalGold); err != nil {
		return nil, err
	}
	if stats.SilverCurrent, err = q.current.Count(ctx, domain.MetalSilver); err != nil {
		return nil, err
	}
	if stats.WeeklyAggregates, err = q.weekly.CountAll(ctx); err != nil {
		return nil, err
	}

	if stats.HistoricalRange.Start, stats.HistoricalRange.End, err = q.historical.DateRange(ctx); err != nil {
		return nil, err
	}
	if stats.CurrentRange.Start, stats.CurrentRange.End, err = q.current.DateRange(ctx); err != nil {
		return nil, err
	}

	return &stats, nil
}

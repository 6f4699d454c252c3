package query

import "metals-tracker/internal/domain"

// WeeklyPoint is one chart-ready point of a metal's weekly series.
// Field names follow the front-end chart contract.
type WeeklyPoint struct {
	Week               int     `json:"week"`
	Date               string  `json:"date"`
	Price              float64 `json:"price"`
	PercentChange      float64 `json:"percentChange"`
	WeekOverWeekChange float64 `json:"weekOverWeekChange"`
	LimitUpDays        int     `json:"limitUpDays"`
	LimitDownDays      int     `json:"limitDownDays"`
	TradingDays        int     `json:"tradingDays"`
	DotColor           string  `json:"dotColor"`
	VolatilityLevel    string  `json:"volatilityLevel"`
	ShowDot            bool    `json:"showDot"`
}

// RawPage is one page of a metal's daily price series.
type RawPage struct {
	Rows    []*domain.PriceRow
	Total   int
	Limit   int
	Offset  int
	HasMore bool
}

// MetalSummary is the dashboard summary for one metal.
type MetalSummary struct {
	CurrentPrice         float64 `json:"currentPrice"`
	CurrentReturn        float64 `json:"currentReturn"`
	DaysInCycle          int     `json:"daysInCycle"`
	WeeksInCycle         int     `json:"weeksInCycle"`
	LastUpdate           string  `json:"lastUpdate"`
	HistoricalPeak       float64 `json:"historicalPeak"`
	HistoricalPeakReturn float64 `json:"historicalPeakReturn"`
	LimitUpDays          int     `json:"limitUpDays"`
}

// DateRange is the min/max date span of one price table.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Stats describes the dataset contents per metal and table.
type Stats struct {
	GoldHistorical   int       `json:"gold_historical"`
	SilverHistorical int       `json:"silver_historical"`
	GoldCurrent      int       `json:"gold_current"`
	SilverCurrent    int       `json:"silver_current"`
	WeeklyAggregates int       `json:"weekly_aggregates"`
	HistoricalRange  DateRange `json:"historical_range"`
	CurrentRange     DateRange `json:"current_range"`
}

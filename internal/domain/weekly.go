package domain

// WeeklyAggregate represents one week of a metal's cycle, pre-aggregated
// by the dataset build step. Corresponds to the weekly_aggregates table.
type WeeklyAggregate struct {
	Metal               Metal
	CycleName           string
	WeeksFromStart      int
	WeekStartDate       string // YYYY-MM-DD
	ClosePrice          float64
	CycleChangePct      float64
	WeekOverWeekPct     *float64 // nil when not recorded (first week of a cycle)
	LimitUpDays         int
	LimitDownDays       int
	VolatilityIndicator string
	TotalTradingDays    int
}

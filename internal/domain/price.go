package domain

// PriceRow represents one trading day of a metal's price series.
// Corresponds to rows in the historical_prices and current_prices tables.
// JSON field names mirror the column names so the raw-data endpoint
// serves rows in table shape.
type PriceRow struct {
	Date           string  `json:"date"`             // trading day, YYYY-MM-DD
	OpenPrice      float64 `json:"open_price"`
	HighPrice      float64 `json:"high_price"`
	LowPrice       float64 `json:"low_price"`
	ClosePrice     float64 `json:"close_price"`
	DailyChangePct float64 `json:"daily_change_pct"` // 0 when not recorded
	IsLimitUp      int     `json:"is_limit_up"`      // stored as 0/1
	IsLimitDown    int     `json:"is_limit_down"`    // stored as 0/1
	DaysFromStart  int     `json:"days_from_start"`
	WeeksFromStart int     `json:"weeks_from_start"`
	Volume         int64   `json:"volume"`           // 0 when not recorded
}

// Package derive computes the per-row and per-summary fields that are
// not stored in the dataset: volatility classification of weekly
// points, cycle return percentages, and pagination metadata.
package derive

import "math"

// Volatility levels and the chart marker colors paired with them.
const (
	LevelHighVolatility = "high_volatility"
	LevelVolatile       = "volatile"
	LevelNormal         = "normal"

	ColorHighVolatility = "#ef4444" // red
	ColorVolatile       = "#eab308" // amber
	ColorNormal         = "#22c55e" // green
)

// Tier thresholds on the absolute week-over-week percentage change.
const (
	highVolatilityThreshold = 5.0
	volatileThreshold       = 2.0
)

// Volatility is the classification of one weekly point.
type Volatility struct {
	Level    string
	DotColor string
}

// ClassifyVolatility buckets a week-over-week percentage change into
// one of three tiers. A nil value means the change was not recorded
// (first week of a cycle) and is explicitly treated as 0, which lands
// in the normal tier. Boundaries are inclusive upward: exactly 2 is
// volatile, exactly 5 is high_volatility.
func ClassifyVolatility(weekOverWeekPct *float64) Volatility {
	w := 0.0
	if weekOverWeekPct != nil {
		w = *weekOverWeekPct
	}

	switch a := math.Abs(w); {
	case a >= highVolatilityThreshold:
		return Volatility{Level: LevelHighVolatility, DotColor: ColorHighVolatility}
	case a >= volatileThreshold:
		return Volatility{Level: LevelVolatile, DotColor: ColorVolatile}
	default:
		return Volatility{Level: LevelNormal, DotColor: ColorNormal}
	}
}

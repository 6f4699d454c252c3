package derive

import (
	"errors"
	"math"
)

// ErrZeroStartPrice is returned when a cycle return cannot be computed
// because the cycle's start price is zero or missing.
var ErrZeroStartPrice = errors.New("cycle start price is zero or missing")

// CycleReturn computes the percent return of the current price over the
// cycle's start price, rounded to one decimal place.
func CycleReturn(current, start float64) (float64, error) {
	if start == 0 {
		return 0, ErrZeroStartPrice
	}
	return round1((current - start) / start * 100), nil
}

// PeakReturn computes the percent return of a historical peak over its
// own cycle's start price. Unlike CycleReturn, an unavailable peak or
// start price yields 0 rather than an error: the field is supplementary.
func PeakReturn(peak, start float64) float64 {
	if peak == 0 || start == 0 {
		return 0
	}
	return round1((peak - start) / start * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

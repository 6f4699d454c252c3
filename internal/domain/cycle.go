package domain

// MarketCycle defines a named, bounded price series for one metal.
// Corresponds to the market_cycles table.
type MarketCycle struct {
	Metal      Metal
	CycleName  string
	StartPrice float64
}

package domain

import "strings"

// Metal identifies a tracked precious metal.
type Metal string

const (
	MetalGold   Metal = "GOLD"
	MetalSilver Metal = "SILVER"
)

// CurrentCycleSuffix marks cycle names that refer to the ongoing market
// period rather than a finished historical series.
const CurrentCycleSuffix = "_current"

// String returns the string representation of Metal.
func (m Metal) String() string {
	return string(m)
}

// IsValid checks if the metal is a supported value.
func (m Metal) IsValid() bool {
	return m == MetalGold || m == MetalSilver
}

// Key returns the lowercase identifier used as a JSON map key.
func (m Metal) Key() string {
	return strings.ToLower(string(m))
}

// CurrentCycleName returns the canonical cycle name for the metal's
// ongoing market period.
func (m Metal) CurrentCycleName() string {
	return m.Key() + "_2024" + CurrentCycleSuffix
}

// ReferenceCycleName returns the canonical historical reference cycle
// used for peak comparisons (the 1978-1980 bull run).
func (m Metal) ReferenceCycleName() string {
	return m.Key() + "_1978_1980"
}

// ParseMetal normalizes a caller-supplied metal identifier. Matching is
// case-insensitive; the second return is false for anything that is not
// gold or silver.
func ParseMetal(s string) (Metal, bool) {
	m := Metal(strings.ToUpper(strings.TrimSpace(s)))
	return m, m.IsValid()
}

// Metals returns all supported metals in canonical order.
func Metals() []Metal {
	return []Metal{MetalGold, MetalSilver}
}

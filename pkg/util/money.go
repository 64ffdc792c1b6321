package util

import "math"

// RoundCents rounds a dollar amount to the nearest cent.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// RoundRatio rounds a percentage value to two decimal places.
func RoundRatio(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

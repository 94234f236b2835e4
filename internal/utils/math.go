package utils

import "math"

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampByte truncates a 0..255 channel value the way int() would, saturating
// out-of-range input instead of wrapping.
func ClampByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Approach moves cur a fixed fraction of the remaining distance towards target.
func Approach(cur, target, fraction float64) float64 {
	return cur + (target-cur)*fraction
}

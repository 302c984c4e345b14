package gamemath

import "math"

// Clamp limits v to [min, max]. When max < min the range is empty and min wins,
// which pins oversized sprites to the top-left corner.
func Clamp(v, min, max float64) float64 {
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}

// ClampElapsed sanitises a frame delta in seconds: NaN and negative values
// become 0 and anything above max becomes max.
func ClampElapsed(dt, max float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if max > 0 && dt > max {
		return max
	}
	return dt
}

// HorizontalSign returns -1, 0 or 1 for the direction from fromX to toX.
func HorizontalSign(fromX, toX float64) int {
	switch {
	case toX > fromX:
		return 1
	case toX < fromX:
		return -1
	}
	return 0
}

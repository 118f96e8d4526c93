package coloring

import "math"

// isInteger reports whether v is within eps of its nearest integer.
func isInteger(v, eps float64) bool {
	return math.Abs(v-math.Round(v)) <= eps
}

// round01 rounds v (expected in [0,1]) to its nearest bit.
func round01(v float64) int {
	if v >= 0.5 {
		return 1
	}

	return 0
}

// round01f is round01 with a float64 result, for building rounded bit pairs.
func round01f(v float64) float64 {
	return float64(round01(v))
}

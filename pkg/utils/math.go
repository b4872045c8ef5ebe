package utils

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampMin limits v to be at least lo.
func ClampMin(v, lo float64) float64 {
	if v < lo {
		return lo
	}
	return v
}

// Min returns the minimum of two floats.
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

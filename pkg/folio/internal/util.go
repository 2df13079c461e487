package internal

// Max32 returns the larger of two int32 values.
func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// Min32 returns the smaller of two int32 values.
func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Clamp32 constrains v to the inclusive range [lo, hi].
func Clamp32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampF constrains v to the inclusive range [lo, hi].
func ClampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

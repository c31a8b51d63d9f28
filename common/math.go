package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// MoveToward steps v toward zero by at most step without crossing it.
func MoveToward(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	if v > 0 {
		return math.Max(0, v-step)
	}
	if v < 0 {
		return math.Min(0, v+step)
	}
	return 0
}

package impair

import "math"

// EaseOutQuad maps [0,1] onto [0,1], rising fast then flattening.
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Sigmoid is the logistic curve with steepness k centered at x0.
func Sigmoid(x, k, x0 float64) float64 {
	return 1 / (1 + math.Exp(-k*(x-x0)))
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package vmath provides the small amount of 2D geometry the simulation needs
package vmath

// Clamp limits v to [lo, hi]; NaN maps to lo
func Clamp(v, lo, hi float64) float64 {
	if v < lo || v != v {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Within reports whether a and b are strictly closer than radius
// Compares squared distances, equivalent to a.Distance(b) < radius
func Within(a, b Vec2, radius float64) bool {
	return a.DistanceSq(b) < radius*radius
}

// Wrap returns v modulo m in [0, m)
func Wrap(v, m float64) float64 {
	if m <= 0 {
		return v
	}
	for v >= m {
		v -= m
	}
	for v < 0 {
		v += m
	}
	return v
}

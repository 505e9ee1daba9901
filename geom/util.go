package geom

import "math"

const Tolerance = 1e-9

// To compensate for imprecision in floats, equality is tolerance based.
// Derived quantities (angles, side lengths) accumulate rounding error, so
// exact comparison would reject geometrically identical configurations.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

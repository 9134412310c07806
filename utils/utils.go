package utils

import (
	"fmt"
	"math"
)

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

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Normalize returns the unit vector of (dx, dy) and its length.
// A zero vector is returned as-is with length 0; callers pick their own fallback.
func Normalize(dx, dy float64) (nx, ny, length float64) {
	length = math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0, 0
	}
	return dx / length, dy / length, length
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// AssertFinite panics when any value is non-finite. Positions can only become
// non-finite through a programming error in the physics parameters, so this is
// a contract violation, not a runtime condition to recover from.
func AssertFinite(name string, values ...float64) {
	for _, v := range values {
		if !IsFinite(v) {
			panic(fmt.Sprintf("non-finite %s: %v", name, values))
		}
	}
}

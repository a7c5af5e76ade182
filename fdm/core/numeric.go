package core

import "math"

// closeEnoughUlps is the number of machine epsilons CloseEnough tolerates.
const closeEnoughUlps = 42

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// CloseEnough reports whether x and y agree to within a few ulps relative to
// either operand. Exact zero only matches an exact zero.
func CloseEnough(x, y float64) bool {
	if x == y {
		return true
	}

	diff := math.Abs(x - y)
	tol := closeEnoughUlps * epsilon

	if x == 0 || y == 0 {
		return diff < tol*tol
	}

	return diff <= tol*math.Abs(x) || diff <= tol*math.Abs(y)
}

// IsUndefined reports whether v marks an undefined value (NaN).
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}

// Undefined returns the sentinel used for values that do not exist, such as
// the spacing beyond the last grid node.
func Undefined() float64 {
	return math.NaN()
}

const epsilon = 2.220446049250313e-16

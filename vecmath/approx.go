package vecmath

import "math"

// Tolerances governing every approximate float comparison in the
// simulation core (spec §4.1). distTol2 is applied inside the collision
// solver to absorb cancellation error in squared-distance arithmetic.
const (
	RelativeTolerance  = 1e-5
	AbsoluteTolerance  = 1e-8
	DistanceTolerance2 = 1e-12
)

func tolerance(a, b float64) float64 {
	m := math.Abs(a)
	if ab := math.Abs(b); ab > m {
		m = ab
	}
	t := RelativeTolerance * m
	if AbsoluteTolerance > t {
		return AbsoluteTolerance
	}
	return t
}

// ApproxEq reports whether a and b are equal within the relative/absolute
// tolerance pair.
func ApproxEq(a, b float64) bool {
	return math.Abs(a-b) <= tolerance(a, b)
}

// ApproxLt reports whether a is strictly less than b and not merely close
// to it.
func ApproxLt(a, b float64) bool {
	return a < b && !ApproxEq(a, b)
}

// ApproxGt reports whether a is strictly greater than b and not merely
// close to it.
func ApproxGt(a, b float64) bool {
	return a > b && !ApproxEq(a, b)
}

// ApproxRound snaps a to target if the two are within tolerance of each
// other, otherwise returns a unchanged.
func ApproxRound(a, target float64) float64 {
	if ApproxEq(a, target) {
		return target
	}
	return a
}

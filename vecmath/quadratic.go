package vecmath

import "math"

// QuadraticRoots holds the real roots of a*t^2 + b*t + c, unsorted.
type QuadraticRoots struct {
	Count int // 0, 1, or 2
	R0, R1 float64
}

// SolveQuadratic returns the real roots of a*t^2 + b*t + c, where a must be
// non-zero (degenerate a == 0 is the caller's responsibility to detect and
// handle — spec §4.2). A negative discriminant yields Count == 0; a zero
// discriminant yields a single root in R0.
func SolveQuadratic(a, b, c float64) QuadraticRoots {
	disc := b*b - 4*a*c
	if disc < 0 {
		return QuadraticRoots{}
	}
	if disc == 0 {
		return QuadraticRoots{Count: 1, R0: -b / (2 * a)}
	}
	sq := math.Sqrt(disc)
	return QuadraticRoots{
		Count: 2,
		R0:    (-b - sq) / (2 * a),
		R1:    (-b + sq) / (2 * a),
	}
}

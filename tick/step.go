// Package tick implements Step: a disk plus a desired translation over one
// simulation tick, together with the boundary and pairwise
// time-of-collision solvers the arena drains (spec §4.4).
package tick

import (
	"math"

	"github.com/a1ts-a1t/kennelclub/disk"
	"github.com/a1ts-a1t/kennelclub/vecmath"
)

// Step represents the line segment traced by a disk's center as a time
// parameter t runs from 0 to 1. The disk must already be inside the unit
// square at construction time — enforced by the arena's caller, not by
// Step itself.
type Step struct {
	Disk  disk.Disk
	Delta vecmath.Vec2
}

// Resolve returns the disk at time t: center + t*delta, radius unchanged.
func (s Step) Resolve(t float64) disk.Disk {
	return disk.Disk{
		Center: s.Disk.Center.Add(s.Delta.Scale(t)),
		Radius: s.Disk.Radius,
	}
}

// Lerp returns a new Step with the same starting disk but with Delta
// scaled by t, so that the collapsed step's Resolve(1) equals the
// original step's Resolve(t).
func (s Step) Lerp(t float64) Step {
	return Step{Disk: s.Disk, Delta: s.Delta.Scale(t)}
}

const maxBoundaryBackoffSteps = 64

// UnitBoundCollisionTime returns the earliest time in [0, 1] at which the
// swept disk would touch the unit-square boundary, or ok == false if the
// step finishes entirely inside the unit square.
func (s Step) UnitBoundCollisionTime() (t float64, ok bool) {
	lo := s.Disk.Radius
	hi := 1 - s.Disk.Radius

	axisTime := func(c0, d, lo, hi float64) float64 {
		final := c0 + d
		switch {
		case vecmath.ApproxLt(final, lo):
			if d == 0 {
				return 1
			}
			return (lo - c0) / d
		case vecmath.ApproxGt(final, hi):
			if d == 0 {
				return 1
			}
			return (hi - c0) / d
		default:
			return 1
		}
	}

	tx := axisTime(s.Disk.Center.X, s.Delta.X, lo, hi)
	ty := axisTime(s.Disk.Center.Y, s.Delta.Y, lo, hi)

	t = math.Min(tx, ty)
	if t >= 1 {
		return 0, false
	}

	// Numerical hygiene: clamp downward bit-by-bit until the resolved disk
	// is no longer reported out of bounds, absorbing floating-point drift
	// right at the wall (spec §4.4.1).
	for i := 0; i < maxBoundaryBackoffSteps && t > 0; i++ {
		if !s.Resolve(t).IsOutsideUnitBounds() {
			break
		}
		t = math.Nextafter(t, math.Inf(-1))
	}
	if t <= 0 {
		t = 0
	}
	return t, true
}

// CollisionTime returns the earliest time in [0, 1) at which s and other's
// swept disks first touch, or ok == false if they never touch within the
// tick (spec §4.4.2).
func (s Step) CollisionTime(other Step) (t float64, ok bool) {
	deltaD := s.Delta.Sub(other.Delta)
	deltaP := s.Disk.Center.Sub(other.Disk.Center)
	radiusSum := s.Disk.Radius + other.Disk.Radius

	a := deltaD.SquaredNorm()
	b := 2 * deltaD.Dot(deltaP)
	c := deltaP.SquaredNorm() - radiusSum*radiusSum - vecmath.DistanceTolerance2

	if a == 0 {
		return 0, false
	}

	roots := vecmath.SolveQuadratic(a, b, c)
	if roots.Count == 0 {
		return 0, false
	}

	t1, t2 := roots.R0, roots.R1
	if roots.Count == 1 {
		t2 = t1
	}
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	bothBelowZero := t1 < 0 && t2 < 0
	bothAtOrAboveOne := t1 >= 1 && t2 >= 1
	if bothBelowZero || bothAtOrAboveOne {
		return 0, false
	}
	if t1 < 0 && t2 > 1 {
		// Disks are (nearly) always in contact across the tick: treat as
		// non-blocking rather than locking up.
		return 0, false
	}

	chosen := t1
	if chosen < 0 {
		chosen = t2
	}

	chosen = nudgeToNonOverlapping(chosen, a, b, c)

	return chosen, true
}

// nudgeToNonOverlapping steps t by the smallest representable increment,
// in the direction indicated by the sign of f(t)*f'(t), until
// f(t) = a*t^2 + b*t + c is non-negative (i.e. the disks are no longer
// reported overlapping at t). This is a numerical hygiene step, not a
// search: the root is already extremely close to exact.
func nudgeToNonOverlapping(t, a, b, c float64) float64 {
	f := func(t float64) float64 { return a*t*t + b*t + c }
	df := func(t float64) float64 { return 2*a*t + b }

	for i := 0; i < maxBoundaryBackoffSteps; i++ {
		if f(t) >= 0 {
			break
		}
		if df(t) >= 0 {
			t = math.Nextafter(t, math.Inf(1))
		} else {
			t = math.Nextafter(t, math.Inf(-1))
		}
	}
	return t
}

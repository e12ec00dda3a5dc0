// Package disk implements the Disk type: a circle in the unit square,
// along with overlap and in-bounds predicates (spec §4.3).
package disk

import "github.com/a1ts-a1t/kennelclub/vecmath"

// Disk is a closed 2-D ball defined by a center and a radius.
type Disk struct {
	Center vecmath.Vec2
	Radius float64
}

// Overlaps reports whether d and other's disks overlap: their center
// distance is strictly less than the sum of their radii. Touching disks do
// not overlap.
func (d Disk) Overlaps(other Disk) bool {
	diff := d.Center.Sub(other.Center)
	radiusSum := d.Radius + other.Radius
	return vecmath.ApproxLt(diff.SquaredNorm(), radiusSum*radiusSum)
}

// IsOutsideUnitBounds reports whether d's center lies outside
// [radius, 1-radius] on either axis, i.e. whether d pokes through the
// boundary of the unit square.
func (d Disk) IsOutsideUnitBounds() bool {
	lo, hi := d.Radius, 1-d.Radius
	return vecmath.ApproxLt(d.Center.X, lo) || vecmath.ApproxGt(d.Center.X, hi) ||
		vecmath.ApproxLt(d.Center.Y, lo) || vecmath.ApproxGt(d.Center.Y, hi)
}

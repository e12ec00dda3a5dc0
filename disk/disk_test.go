package disk

import (
	"testing"

	"github.com/a1ts-a1t/kennelclub/vecmath"
)

func TestOverlapsStrict(t *testing.T) {
	a := Disk{Center: vecmath.Vec2{X: 0, Y: 0}, Radius: 0.5}
	b := Disk{Center: vecmath.Vec2{X: 1, Y: 0}, Radius: 0.5}
	if a.Overlaps(b) {
		t.Errorf("touching disks should not count as overlapping")
	}

	c := Disk{Center: vecmath.Vec2{X: 0.9, Y: 0}, Radius: 0.5}
	if !a.Overlaps(c) {
		t.Errorf("expected overlap")
	}

	d := Disk{Center: vecmath.Vec2{X: 1.1, Y: 0}, Radius: 0.5}
	if a.Overlaps(d) {
		t.Errorf("expected no overlap")
	}
}

func TestIsOutsideUnitBounds(t *testing.T) {
	inside := Disk{Center: vecmath.Vec2{X: 0.5, Y: 0.5}, Radius: 0.1}
	if inside.IsOutsideUnitBounds() {
		t.Errorf("center disk should be in bounds")
	}

	onEdge := Disk{Center: vecmath.Vec2{X: 0.1, Y: 0.5}, Radius: 0.1}
	if onEdge.IsOutsideUnitBounds() {
		t.Errorf("disk exactly at margin should be considered in bounds")
	}

	outside := Disk{Center: vecmath.Vec2{X: 0.05, Y: 0.5}, Radius: 0.1}
	if !outside.IsOutsideUnitBounds() {
		t.Errorf("disk past the margin should be out of bounds")
	}

	outsideY := Disk{Center: vecmath.Vec2{X: 0.5, Y: 0.95}, Radius: 0.1}
	if !outsideY.IsOutsideUnitBounds() {
		t.Errorf("disk past the margin on y should be out of bounds")
	}
}

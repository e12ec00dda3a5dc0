package arena

import (
	"testing"

	"github.com/a1ts-a1t/kennelclub/disk"
	"github.com/a1ts-a1t/kennelclub/tick"
	"github.com/a1ts-a1t/kennelclub/vecmath"
)

func mkStep(cx, cy, r, dx, dy float64) tick.Step {
	return tick.Step{
		Disk:  disk.Disk{Center: vecmath.Vec2{X: cx, Y: cy}, Radius: r},
		Delta: vecmath.Vec2{X: dx, Y: dy},
	}
}

func TestDrainNoCollisionsTakesFullSteps(t *testing.T) {
	a := New()
	a.Insert(mkStep(0.2, 0.2, 0.05, 0.1, 0))
	a.Insert(mkStep(0.8, 0.8, 0.05, -0.1, 0))

	out := a.Drain()
	if len(out) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(out))
	}
	if got := out[0].Resolve(1).Center; !vecmath.ApproxEq(got.X, 0.3) {
		t.Errorf("expected full step taken, got center %v", got)
	}
}

func TestDrainHeadOnStopsBothAtContact(t *testing.T) {
	a := New()
	a.Insert(mkStep(0.1, 0.5, 0.05, 0.8, 0))
	a.Insert(mkStep(0.9, 0.5, 0.05, -0.8, 0))

	out := a.Drain()
	if len(out) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(out))
	}
	da := out[0].Resolve(1)
	db := out[1].Resolve(1)
	dist := da.Center.Sub(db.Center).Norm()
	if !vecmath.ApproxEq(dist, da.Radius+db.Radius) {
		t.Errorf("expected disks to stop at contact, distance = %v", dist)
	}
	if da.Overlaps(db) {
		t.Errorf("resolved disks should not overlap")
	}
}

func TestDrainBoundaryClampsStep(t *testing.T) {
	a := New()
	a.Insert(mkStep(0.15, 0.5, 0.1, -0.5, 0))

	out := a.Drain()
	resolved := out[0].Resolve(1)
	if resolved.IsOutsideUnitBounds() {
		t.Errorf("expected step to be clamped at the wall, got center %v", resolved.Center)
	}
}

func TestDrainFrozenStepNotReopened(t *testing.T) {
	// Three disks in a line: 0 and 1 collide first (t=0.5); 1 and 2 would
	// collide later (t=2/3). Once 1 is frozen by the first event, the second
	// event touching it must be skipped rather than re-truncating 1 again.
	a := New()
	a.Insert(mkStep(0.1, 0.5, 0.05, 0.4, 0))  // step 0: moves right fast
	a.Insert(mkStep(0.3, 0.5, 0.05, 0.2, 0))  // step 1: moves right slowly
	a.Insert(mkStep(0.6, 0.5, 0.05, -0.1, 0)) // step 2: moves left slowly

	out := a.Drain()
	if len(out) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(out))
	}
	d0 := out[0].Resolve(1)
	d1 := out[1].Resolve(1)
	d2 := out[2].Resolve(1)
	if d0.Overlaps(d1) || d1.Overlaps(d2) || d0.Overlaps(d2) {
		t.Errorf("no resolved disks should overlap after drain")
	}
	if !vecmath.ApproxEq(d1.Center.X, 0.4) {
		t.Errorf("expected step 1 to stay truncated at its first collision (x=0.4), got %v", d1.Center.X)
	}
}

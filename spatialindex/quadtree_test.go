package spatialindex

import (
	"testing"

	"github.com/a1ts-a1t/kennelclub/vecmath"
)

func unitBounds() Bounds {
	return Bounds{Min: vecmath.Vec2{X: 0, Y: 0}, Max: vecmath.Vec2{X: 1, Y: 1}}
}

func TestInsertAndQueryWithinCapacity(t *testing.T) {
	q := New(unitBounds(), 4)
	q.Insert(Entry{ID: "a", Center: vecmath.Vec2{X: 0.1, Y: 0.1}, Radius: 0.01})
	q.Insert(Entry{ID: "b", Center: vecmath.Vec2{X: 0.9, Y: 0.9}, Radius: 0.01})

	results := q.Query(Bounds{Min: vecmath.Vec2{X: 0, Y: 0}, Max: vecmath.Vec2{X: 0.5, Y: 0.5}})
	if len(results) != 1 || results[0].ID != "a" {
		t.Errorf("expected only entry a in the lower-left quadrant, got %v", results)
	}
}

func TestInsertSubdividesBeyondCapacity(t *testing.T) {
	q := New(unitBounds(), 2)
	for i := 0; i < 20; i++ {
		x := float64(i) / 40.0
		q.Insert(Entry{ID: "e", Center: vecmath.Vec2{X: x, Y: x}, Radius: 0.01})
	}
	if !q.divided {
		t.Errorf("expected the tree to subdivide after exceeding capacity")
	}

	all := q.Query(unitBounds())
	if len(all) != 20 {
		t.Errorf("expected 20 entries across all quadrants, got %d", len(all))
	}
}

func TestInsertOutsideBoundaryFails(t *testing.T) {
	q := New(unitBounds(), 4)
	if q.Insert(Entry{ID: "outside", Center: vecmath.Vec2{X: 2, Y: 2}}) {
		t.Errorf("expected insert outside the boundary to fail")
	}
}

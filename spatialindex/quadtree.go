// Package spatialindex implements a non-core 2-D quadtree over the
// current disk list (spec Design Notes §9: "a spatial index... is a
// plausible replacement when n grows"). Nothing in the arena or the
// kennel tick constructs one; the arena always does the full O(n^2) scan
// spec §4.6 specifies. This exists for callers that want a broad-phase
// neighbor query outside the core (e.g. a renderer doing culling).
//
// Grounded on other_examples/d249acd3_MRzeczkowski-boids's Quadtree
// (Boundary/Insert/Query/Subdivide over a 2-D Rectangle) merged with the
// bucketing idiom of Gekko3D-gekko/mod_spatialgrid.go, adapted from that
// grid's 3-D float32 cells down to a 2-D float64 unit-square quadtree.
package spatialindex

import "github.com/a1ts-a1t/kennelclub/vecmath"

// Entry is one indexed point stored in the tree.
type Entry struct {
	ID     string
	Center vecmath.Vec2
	Radius float64
}

// Bounds is an axis-aligned rectangle.
type Bounds struct {
	Min, Max vecmath.Vec2
}

// Contains reports whether p lies within b (inclusive of the min edge,
// exclusive of the max edge, matching the boids example's Rectangle).
func (b Bounds) Contains(p vecmath.Vec2) bool {
	return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// Intersects reports whether b and other overlap.
func (b Bounds) Intersects(other Bounds) bool {
	return b.Min.X < other.Max.X && b.Max.X > other.Min.X &&
		b.Min.Y < other.Max.Y && b.Max.Y > other.Min.Y
}

// DefaultCapacity is the number of entries a node holds before it
// subdivides.
const DefaultCapacity = 8

// Quadtree buckets entries inside an axis-aligned boundary, subdividing
// into four children once it holds more than Capacity entries.
type Quadtree struct {
	Boundary Bounds
	Capacity int

	entries  []Entry
	divided  bool
	nw, ne, sw, se *Quadtree
}

// New returns an empty Quadtree over bounds. capacity <= 0 uses
// DefaultCapacity.
func New(bounds Bounds, capacity int) *Quadtree {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Quadtree{Boundary: bounds, Capacity: capacity}
}

// Insert adds e to the tree, subdividing if this node is over capacity.
// Reports false if e's center lies outside the tree's boundary.
func (q *Quadtree) Insert(e Entry) bool {
	if !q.Boundary.Contains(e.Center) {
		return false
	}

	if !q.divided && len(q.entries) < q.Capacity {
		q.entries = append(q.entries, e)
		return true
	}

	if !q.divided {
		q.subdivide()
	}

	switch {
	case q.nw.Insert(e):
	case q.ne.Insert(e):
	case q.sw.Insert(e):
	case q.se.Insert(e):
	default:
		return false
	}
	return true
}

func (q *Quadtree) subdivide() {
	mid := vecmath.Vec2{
		X: (q.Boundary.Min.X + q.Boundary.Max.X) / 2,
		Y: (q.Boundary.Min.Y + q.Boundary.Max.Y) / 2,
	}

	q.nw = New(Bounds{Min: vecmath.Vec2{X: q.Boundary.Min.X, Y: mid.Y}, Max: vecmath.Vec2{X: mid.X, Y: q.Boundary.Max.Y}}, q.Capacity)
	q.ne = New(Bounds{Min: mid, Max: q.Boundary.Max}, q.Capacity)
	q.sw = New(Bounds{Min: q.Boundary.Min, Max: mid}, q.Capacity)
	q.se = New(Bounds{Min: vecmath.Vec2{X: mid.X, Y: q.Boundary.Min.Y}, Max: vecmath.Vec2{X: q.Boundary.Max.X, Y: mid.Y}}, q.Capacity)

	for _, e := range q.entries {
		switch {
		case q.nw.Insert(e):
		case q.ne.Insert(e):
		case q.sw.Insert(e):
		case q.se.Insert(e):
		}
	}
	q.entries = nil
	q.divided = true
}

// Query returns every entry whose center lies within bounds.
func (q *Quadtree) Query(bounds Bounds) []Entry {
	var out []Entry
	q.query(bounds, &out)
	return out
}

func (q *Quadtree) query(bounds Bounds, out *[]Entry) {
	if !q.Boundary.Intersects(bounds) {
		return
	}

	for _, e := range q.entries {
		if bounds.Contains(e.Center) {
			*out = append(*out, e)
		}
	}

	if q.divided {
		q.nw.query(bounds, out)
		q.ne.query(bounds, out)
		q.sw.query(bounds, out)
		q.se.query(bounds, out)
	}
}

// Package arena implements the collision arena (spec §4.6): given a bag of
// Steps, each starting from an in-bounds, non-overlapping configuration, it
// produces a bag of truncated steps that preserves those invariants.
//
// The priority-queue drain is grounded on the container/heap idiom used by
// katalvlaran-lvlath's Dijkstra implementation (a *nodeItem min-heap keyed
// by distance); here the heap is keyed by collision time instead.
package arena

import (
	"container/heap"

	"github.com/a1ts-a1t/kennelclub/tick"
)

// Arena accumulates Steps and the collision events between them.
type Arena struct {
	steps  []tick.Step
	events eventHeap
}

// New returns an empty Arena.
func New() *Arena {
	a := &Arena{}
	heap.Init(&a.events)
	return a
}

// Insert adds a new step to the arena, computing its boundary collision
// time and its pairwise collision time against every step already present.
func (a *Arena) Insert(s tick.Step) {
	n := len(a.steps)

	if t, ok := s.UnitBoundCollisionTime(); ok {
		heap.Push(&a.events, event{kind: eventBoundary, i: n, t: t})
	}

	for k := 0; k < n; k++ {
		if t, ok := a.steps[k].CollisionTime(s); ok {
			heap.Push(&a.events, event{kind: eventPair, i: k, j: n, t: t})
		}
	}

	a.steps = append(a.steps, s)
}

// Drain processes events in ascending time order and returns the
// truncated steps. A step frozen by an earlier event is never reopened by
// a later one; steps untouched by any event before t=1 take their full
// delta.
func (a *Arena) Drain() []tick.Step {
	out := make([]tick.Step, len(a.steps))
	frozen := make([]bool, len(a.steps))

	for a.events.Len() > 0 {
		ev := heap.Pop(&a.events).(event)
		if ev.t >= 1.0 {
			break
		}

		switch ev.kind {
		case eventBoundary:
			if frozen[ev.i] {
				continue
			}
			out[ev.i] = a.steps[ev.i].Lerp(ev.t)
			frozen[ev.i] = true
		case eventPair:
			if frozen[ev.i] || frozen[ev.j] {
				continue
			}
			out[ev.i] = a.steps[ev.i].Lerp(ev.t)
			out[ev.j] = a.steps[ev.j].Lerp(ev.t)
			frozen[ev.i] = true
			frozen[ev.j] = true
		}
	}

	for i, s := range a.steps {
		if !frozen[i] {
			out[i] = s
		}
	}
	return out
}

type eventKind int

const (
	eventBoundary eventKind = iota
	eventPair
)

type event struct {
	kind eventKind
	i, j int
	t    float64
}

// eventHeap implements heap.Interface, ordering events by ascending time
// (min-heap: the earliest collision surfaces first).
type eventHeap []event

func (h eventHeap) Len() int            { return len(h) }
func (h eventHeap) Less(i, j int) bool  { return h[i].t < h[j].t }
func (h eventHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x interface{}) { *h = append(*h, x.(event)) }
func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

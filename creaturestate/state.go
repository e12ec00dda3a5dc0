// Package creaturestate implements the per-creature discrete state machine
// (spec §4.5): a fixed 4x4 weighted transition matrix over
// {Idle, Sleep, Flee, Follow}.
package creaturestate

import "math/rand"

// State is one of the four discrete creature states.
type State int

const (
	Idle State = iota
	Sleep
	Flee
	Follow
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Sleep:
		return "Sleep"
	case Flee:
		return "Flee"
	case Follow:
		return "Follow"
	default:
		return "Unknown"
	}
}

// transitionWeights is the 4x4 table of non-negative integer weights, one
// row per "from" state, columns ordered {Idle, Sleep, Flee, Follow} to
// match the State iota ordering. Treat this as data, not code: widening
// the state machine means widening this table.
var transitionWeights = [4][4]int{
	Idle:   {75, 15, 5, 5},
	Sleep:  {10, 90, 0, 0},
	Flee:   {10, 0, 75, 15},
	Follow: {10, 0, 15, 75},
}

// Next draws the new state reachable from s using rng, weighted by s's row
// of the transition matrix. No package-level RNG is ever consulted: all
// randomness is routed through the caller-provided rng (spec §5).
func Next(s State, rng *rand.Rand) State {
	weights := transitionWeights[s]

	total := 0
	for _, w := range weights {
		total += w
	}

	draw := rng.Intn(total)
	cumulative := 0
	for to, w := range weights {
		cumulative += w
		if draw < cumulative {
			return State(to)
		}
	}
	// Unreachable given a well-formed weight row, but return the last
	// column rather than panicking.
	return State(len(weights) - 1)
}

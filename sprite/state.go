// Package sprite implements animation sprite state selection from a motion
// delta (spec §4.8), plus sprite sheet loading and frame lookup
// (SPEC_FULL §4.9).
package sprite

import (
	"math"

	"github.com/a1ts-a1t/kennelclub/vecmath"
)

// State is one of the ten categorical animation states.
type State int

const (
	Idle State = iota
	Sleep
	East
	Northeast
	North
	Northwest
	West
	Southwest
	South
	Southeast
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Sleep:
		return "Sleep"
	case East:
		return "East"
	case Northeast:
		return "Northeast"
	case North:
		return "North"
	case Northwest:
		return "Northwest"
	case West:
		return "West"
	case Southwest:
		return "Southwest"
	case South:
		return "South"
	case Southeast:
		return "Southeast"
	default:
		return "Unknown"
	}
}

// compassRange is a half-open [lo, hi) bucket of theta values mapped to a
// compass State. Order and bounds mirror the original source's
// SPRITE_STATE_RANGES table exactly: seven ranges of width pi/4 each,
// covering [-7pi/8, 7pi/8); any theta outside all seven lands in West
// (the eighth compass direction, centered on +-pi, is the residual).
type compassRange struct {
	lo, hi float64
	state  State
}

var compassRanges = []compassRange{
	{-7 * math.Pi / 8, -5 * math.Pi / 8, Southwest},
	{-5 * math.Pi / 8, -3 * math.Pi / 8, South},
	{-3 * math.Pi / 8, -1 * math.Pi / 8, Southeast},
	{-1 * math.Pi / 8, 1 * math.Pi / 8, East},
	{1 * math.Pi / 8, 3 * math.Pi / 8, Northeast},
	{3 * math.Pi / 8, 5 * math.Pi / 8, North},
	{5 * math.Pi / 8, 7 * math.Pi / 8, Northwest},
}

// FromDelta maps a motion delta and the creature's current discrete state
// to a sprite state (spec §4.8). isSleeping should be true iff the
// creature's new discrete state is Sleep.
func FromDelta(delta vecmath.Vec2, isSleeping bool) State {
	if delta.IsZero() {
		if isSleeping {
			return Sleep
		}
		return Idle
	}

	theta := math.Atan2(delta.Y, delta.X)
	for _, r := range compassRanges {
		if theta >= r.lo && theta < r.hi {
			return r.state
		}
	}
	return West
}

package creature

import (
	"fmt"
	"image"
	"math/rand"
	"path/filepath"

	"github.com/a1ts-a1t/kennelclub/creaturestate"
	"github.com/a1ts-a1t/kennelclub/disk"
	"github.com/a1ts-a1t/kennelclub/sprite"
	"github.com/a1ts-a1t/kennelclub/tick"
	"github.com/a1ts-a1t/kennelclub/vecmath"
)

// Creature is one agent in the kennel (spec §3). ID, Radius, StepSize, URL
// and SpriteSheet are immutable after construction; State, Position,
// SpriteState and SpriteFrameCounter are updated once per tick.
type Creature struct {
	ID       string
	URL      string
	Radius   float64
	StepSize float64

	State              creaturestate.State
	Position           vecmath.Vec2
	SpriteState        sprite.State
	SpriteFrameCounter int
	SpriteSheet        *sprite.Sheet
}

// Load builds a Creature from its descriptor, resolving and decoding its
// sprite sheet against <dataDir>/<id>/.
func Load(meta Metadata, dataDir string) (Creature, error) {
	initial, err := meta.ParseInitialState()
	if err != nil {
		return Creature{}, err
	}

	sheet, err := meta.SpriteLoader.Load(filepath.Join(dataDir, meta.ID))
	if err != nil {
		return Creature{}, fmt.Errorf("creature %s: %w", meta.ID, err)
	}

	return Creature{
		ID:                 meta.ID,
		URL:                meta.URL,
		Radius:             meta.Radius,
		StepSize:           meta.StepSize,
		State:              initial,
		Position:           vecmath.Vec2{},
		SpriteState:        sprite.Idle,
		SpriteFrameCounter: 0,
		SpriteSheet:        sheet,
	}, nil
}

// WithNextState returns a copy of c with a freshly drawn discrete state.
// Position, sprite state and sprite sheet are untouched — this mirrors the
// source's split between "decide what to do" and "actually move".
func (c Creature) WithNextState(rng *rand.Rand) Creature {
	next := c
	next.State = creaturestate.Next(c.State, rng)
	return next
}

// AsDisk returns c's current position and radius as a disk.Disk.
func (c Creature) AsDisk() disk.Disk {
	return disk.Disk{Center: c.Position, Radius: c.Radius}
}

// NextStep computes c's desired step toward or away from centerOfMass,
// per its current discrete state (spec §4.5).
func (c Creature) NextStep(centerOfMass vecmath.Vec2) tick.Step {
	var delta vecmath.Vec2
	switch c.State {
	case creaturestate.Follow:
		delta = centerOfMass.Sub(c.Position).WithNorm(c.StepSize)
	case creaturestate.Flee:
		delta = c.Position.Sub(centerOfMass).WithNorm(c.StepSize)
	default:
		delta = vecmath.Vec2{}
	}
	return tick.Step{Disk: c.AsDisk(), Delta: delta}
}

// WithResolvedStep applies a truncated step returned by the collision
// arena: the creature's new position becomes resolved.Resolve(1).Center,
// and its sprite bookkeeping is updated from the step's actual delta
// (spec §4.7 step 6, §4.8).
func (c Creature) WithResolvedStep(resolved tick.Step) Creature {
	next := c
	next.Position = resolved.Resolve(1).Center

	newSpriteState := sprite.FromDelta(resolved.Delta, c.State == creaturestate.Sleep)
	if newSpriteState == c.SpriteState {
		next.SpriteFrameCounter = c.SpriteFrameCounter + 1
	} else {
		next.SpriteFrameCounter = 0
	}
	next.SpriteState = newSpriteState

	return next
}

// Sprite returns the current animation frame, or ok == false if the
// creature's sheet has no frames loaded for its current sprite state.
func (c Creature) Sprite() (image.Image, bool) {
	if c.SpriteSheet == nil {
		return nil, false
	}
	return c.SpriteSheet.Frame(c.SpriteState, c.SpriteFrameCounter)
}

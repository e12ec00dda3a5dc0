// Package kennel implements the population container (spec §4.7): dart-
// throw initial placement, per-tick orchestration, and the render-facing
// snapshot query (spec §6).
package kennel

import (
	"fmt"
	"image"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/a1ts-a1t/kennelclub/arena"
	"github.com/a1ts-a1t/kennelclub/creature"
	"github.com/a1ts-a1t/kennelclub/disk"
	"github.com/a1ts-a1t/kennelclub/logging"
	"github.com/a1ts-a1t/kennelclub/sprite"
	"github.com/a1ts-a1t/kennelclub/vecmath"
)

// MaxInitRetries bounds the dart-throw placement attempts per creature
// (spec §4.7).
const MaxInitRetries = 32

// Kennel is an ordered sequence of creatures (spec §3). Outside a call to
// Next, every creature's disk is in-bounds and no two disks overlap.
type Kennel struct {
	creatures []creature.Creature
	log       logging.Logger
}

// New places creatures via dart-throw rejection sampling and returns the
// resulting Kennel. The input order is preserved; positions passed in on
// each creature are discarded and replaced (initial placement is the
// kennel's job, not the caller's).
func New(creatures []creature.Creature, rng *rand.Rand, log logging.Logger) (*Kennel, error) {
	log = logging.OrNop(log)

	placed := make([]creature.Creature, 0, len(creatures))
	for _, c := range creatures {
		if c.Radius*2 > 1 {
			return nil, &ConfigError{CreatureID: c.ID, Radius: c.Radius}
		}

		position, ok := dartThrow(c.Radius, placed, rng)
		if !ok {
			return nil, &PlacementError{CreatureID: c.ID, Retries: MaxInitRetries}
		}

		c.Position = position
		placed = append(placed, c)
		log.Debugf("placed creature %s at %v", c.ID, position)
	}

	return &Kennel{creatures: placed, log: log}, nil
}

func dartThrow(radius float64, placed []creature.Creature, rng *rand.Rand) (vecmath.Vec2, bool) {
	lo, hi := radius, 1-radius
	span := hi - lo

	for attempt := 0; attempt < MaxInitRetries; attempt++ {
		candidate := vecmath.Vec2{
			X: lo + rng.Float64()*span,
			Y: lo + rng.Float64()*span,
		}
		candidateDisk := disk.Disk{Center: candidate, Radius: radius}

		collides := false
		for _, other := range placed {
			if candidateDisk.Overlaps(other.AsDisk()) {
				collides = true
				break
			}
		}
		if !collides {
			return candidate, true
		}
	}
	return vecmath.Vec2{}, false
}

// Load reads <dataDir>/metadata.json, builds a Creature for each
// descriptor (loading its sprite sheet), and constructs a Kennel via New.
func Load(dataDir string, rng *rand.Rand, log logging.Logger) (*Kennel, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("kennel: reading metadata file: %w", err)
	}

	metas, err := creature.ParseMetadataFile(data)
	if err != nil {
		return nil, err
	}

	creatures := make([]creature.Creature, 0, len(metas))
	for _, m := range metas {
		c, err := creature.Load(m, dataDir)
		if err != nil {
			return nil, err
		}
		creatures = append(creatures, c)
	}

	return New(creatures, rng, log)
}

// centerOfMass returns the radius-weighted mean of creature positions, or
// (0.5, 0.5) if the population has zero or one member (spec §4.7).
func (k *Kennel) centerOfMass() vecmath.Vec2 {
	if len(k.creatures) <= 1 {
		return vecmath.Vec2{X: 0.5, Y: 0.5}
	}

	var weightedSum vecmath.Vec2
	var weightSum float64
	for _, c := range k.creatures {
		weightedSum = weightedSum.Add(c.Position.Scale(c.Radius))
		weightSum += c.Radius
	}
	return weightedSum.Div(weightSum)
}

// Next advances the kennel by one tick (spec §4.7): draw new states, compute
// desired steps toward/away from the center of mass, resolve them through a
// fresh collision arena, and apply the truncated steps. Returns the
// resulting Kennel, or the unchanged kennel plus an error if a
// precondition is violated.
func (k *Kennel) Next(rng *rand.Rand) (*Kennel, error) {
	if err := k.checkPreconditions(); err != nil {
		k.log.Warnf("tick precondition violation: %v", err)
		return k, err
	}

	centerOfMass := k.centerOfMass()

	nextStated := make([]creature.Creature, len(k.creatures))
	for i, c := range k.creatures {
		nextStated[i] = c.WithNextState(rng)
	}

	a := arena.New()
	for _, c := range nextStated {
		a.Insert(c.NextStep(centerOfMass))
	}
	resolved := a.Drain()

	repositioned := make([]creature.Creature, len(nextStated))
	for i, c := range nextStated {
		repositioned[i] = c.WithResolvedStep(resolved[i])
	}

	return &Kennel{creatures: repositioned, log: k.log}, nil
}

// checkPreconditions verifies the §3 kennel invariants hold before a tick
// begins. Failure here indicates numerical drift rather than a caller
// mistake (spec §7) — the core does not expect this to ever fire.
func (k *Kennel) checkPreconditions() error {
	for _, c := range k.creatures {
		if c.AsDisk().IsOutsideUnitBounds() {
			return &PreconditionError{Detail: fmt.Sprintf("creature %s is out of bounds", c.ID)}
		}
	}
	for i := 0; i < len(k.creatures); i++ {
		for j := i + 1; j < len(k.creatures); j++ {
			if k.creatures[i].AsDisk().Overlaps(k.creatures[j].AsDisk()) {
				return &PreconditionError{Detail: fmt.Sprintf("creatures %s and %s overlap", k.creatures[i].ID, k.creatures[j].ID)}
			}
		}
	}
	return nil
}

// DiskView is the render-facing, read-only view of one creature (spec §6):
// id, position, radius, sprite state and sprite frame counter. Consumers
// never see the full Creature or mutate the kennel through this type.
type DiskView struct {
	ID                 string
	Position           vecmath.Vec2
	Radius             float64
	SpriteState        sprite.State
	SpriteFrameCounter int
}

// Snapshot returns the current disk list for rendering (spec §6). The
// returned slice is a copy; mutating it has no effect on the kennel.
func (k *Kennel) Snapshot() []DiskView {
	views := make([]DiskView, len(k.creatures))
	for i, c := range k.creatures {
		views[i] = DiskView{
			ID:                 c.ID,
			Position:           c.Position,
			Radius:             c.Radius,
			SpriteState:        c.SpriteState,
			SpriteFrameCounter: c.SpriteFrameCounter,
		}
	}
	return views
}

// Sprite returns the current animation frame for the creature with the
// given id, grounded on original_source/src/kennel/mod.rs's get_sprite.
func (k *Kennel) Sprite(id string) (image.Image, bool) {
	for _, c := range k.creatures {
		if c.ID == id {
			return c.Sprite()
		}
	}
	return nil, false
}

// Package creature implements the Creature aggregate (spec §3) and its
// JSON descriptor (spec §6).
package creature

import (
	"encoding/json"
	"fmt"

	"github.com/a1ts-a1t/kennelclub/creaturestate"
	"github.com/a1ts-a1t/kennelclub/sprite"
)

// Metadata is the deserialized form of one entry in metadata.json. Do not
// construct directly outside tests — Load builds a Creature from it.
type Metadata struct {
	ID           string        `json:"id"`
	DisplayName  string        `json:"display_name"`
	StepSize     float64       `json:"step_size"`
	Radius       float64       `json:"radius"`
	URL          string        `json:"url"`
	SpriteLoader sprite.Loader `json:"sprites"`
	InitialState string        `json:"initial_state"`
}

// ParseInitialState returns the creaturestate.State named by
// m.InitialState, defaulting to Idle when the field is empty.
func (m Metadata) ParseInitialState() (creaturestate.State, error) {
	switch m.InitialState {
	case "", "Idle":
		return creaturestate.Idle, nil
	case "Sleep":
		return creaturestate.Sleep, nil
	case "Follow":
		return creaturestate.Follow, nil
	case "Flee":
		return creaturestate.Flee, nil
	default:
		return 0, fmt.Errorf("creature %s: unknown initial_state %q", m.ID, m.InitialState)
	}
}

// ParseMetadataFile decodes a metadata.json document into its ordered list
// of descriptors.
func ParseMetadataFile(data []byte) ([]Metadata, error) {
	var metas []Metadata
	if err := json.Unmarshal(data, &metas); err != nil {
		return nil, fmt.Errorf("creature: parsing metadata.json: %w", err)
	}
	return metas, nil
}

package sprite

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Loader is the deserialized form of a descriptor's "sprites" object: ten
// path lists, one per sprite state, resolved relative to a creature's data
// directory (spec §6, SPEC_FULL §4.9).
type Loader struct {
	Idle      []string `json:"idle"`
	Sleep     []string `json:"sleep"`
	East      []string `json:"east"`
	Northeast []string `json:"northeast"`
	North     []string `json:"north"`
	Northwest []string `json:"northwest"`
	West      []string `json:"west"`
	Southwest []string `json:"southwest"`
	South     []string `json:"south"`
	Southeast []string `json:"southeast"`
}

func (l Loader) paths() map[State][]string {
	return map[State][]string{
		Idle:      l.Idle,
		Sleep:     l.Sleep,
		East:      l.East,
		Northeast: l.Northeast,
		North:     l.North,
		Northwest: l.Northwest,
		West:      l.West,
		Southwest: l.Southwest,
		South:     l.South,
		Southeast: l.Southeast,
	}
}

// Sheet holds decoded sprite frames for one creature, indexed by sprite
// state. AssetID is an ephemeral cache handle minted the same way the
// teacher's asset server mints mesh/material ids (uuid.NewString()) — it
// identifies an in-memory-only resource, never anything persisted.
type Sheet struct {
	AssetID string
	frames  map[State][]image.Image
}

// Load decodes every path in l, resolved against pathPrefix, into a Sheet.
func (l Loader) Load(pathPrefix string) (*Sheet, error) {
	sheet := &Sheet{
		AssetID: uuid.NewString(),
		frames:  make(map[State][]image.Image),
	}

	for state, paths := range l.paths() {
		frames := make([]image.Image, 0, len(paths))
		for _, p := range paths {
			img, err := decodeSprite(filepath.Join(pathPrefix, p))
			if err != nil {
				return nil, fmt.Errorf("sprite: loading %s frame for %s: %w", state, pathPrefix, err)
			}
			frames = append(frames, img)
		}
		sheet.frames[state] = frames
	}

	return sheet, nil
}

func decodeSprite(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Frame returns the frame for state at the given counter, indexed modulo
// the number of frames loaded for that state. Returns ok == false if no
// frames were loaded for state.
func (s *Sheet) Frame(state State, counter int) (image.Image, bool) {
	frames := s.frames[state]
	if len(frames) == 0 {
		return nil, false
	}
	return frames[counter%len(frames)], true
}

// FrameCount returns the number of frames loaded for state.
func (s *Sheet) FrameCount(state State) int {
	return len(s.frames[state])
}

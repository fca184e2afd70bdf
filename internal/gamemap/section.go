package gamemap

import (
	"errors"
	"fmt"
	"math/rand"
)

// SectionSize is the edge length of a spawn section.
const SectionSize = 10

// sectionSamples bounds the random probing before falling back to a scan.
const sectionSamples = 100

var (
	ErrSectionOutOfBounds = errors.New("gamemap: section outside map")
	ErrNoFloorInSection   = errors.New("gamemap: section has no floor tile")
)

// Sections returns how many whole sections fit across and down the map.
func (m *Map) Sections() (int, int) {
	return m.Width / SectionSize, m.Height / SectionSize
}

// Section returns the rectangle covered by section (sx, sy).
func Section(sx, sy int) Rect {
	return NewRect(sx*SectionSize, sy*SectionSize, SectionSize, SectionSize)
}

// FindEmptyTile picks a random floor tile inside section (sx, sy).
// It probes random offsets first, then scans the section row by row,
// so it terminates even on a section that is entirely wall.
func (m *Map) FindEmptyTile(rng *rand.Rand, sx, sy int) (int, int, error) {
	sec := Section(sx, sy)
	if sx < 0 || sy < 0 || !m.InBounds(sec.X2, sec.Y2) {
		return 0, 0, fmt.Errorf("find empty tile in section (%d,%d): %w", sx, sy, ErrSectionOutOfBounds)
	}

	for range sectionSamples {
		x := sec.X1 + rng.Intn(SectionSize)
		y := sec.Y1 + rng.Intn(SectionSize)
		if m.At(x, y) == TileFloor {
			return x, y, nil
		}
	}

	for y := sec.Y1; y <= sec.Y2; y++ {
		for x := sec.X1; x <= sec.X2; x++ {
			if m.At(x, y) == TileFloor {
				return x, y, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("find empty tile in section (%d,%d): %w", sx, sy, ErrNoFloorInSection)
}

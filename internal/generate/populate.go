package generate

import (
	"context"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"spriggan/internal/gamemap"
	"spriggan/internal/telemetry"
)

// MonsterGlyphs are the looks a monster can roll, each equally likely.
var MonsterGlyphs = []rune{'X', 'O', '*', '^'}

// Monster sections: sx in [MonsterSectionMinX, MonsterSectionMaxX], sy likewise.
const (
	MonsterSectionMinX = 1
	MonsterSectionMaxX = 6
	MonsterSectionMinY = 1
	MonsterSectionMaxY = 3
)

// SpawnPoint holds a world coordinate where an entity should appear.
type SpawnPoint struct {
	X, Y int
}

// MonsterSpawn describes one monster to create.
type MonsterSpawn struct {
	Glyph rune
	SpawnPoint
}

// PopulateResult is the set of spawn locations for a fresh map.
type PopulateResult struct {
	Player   SpawnPoint
	Monsters []MonsterSpawn
}

// Populate picks the player's start in section (0,0) and places monsters on
// random floor tiles of the middle sections.
func Populate(ctx context.Context, m *gamemap.Map, rng *rand.Rand, monsters int) (PopulateResult, error) {
	_, span := telemetry.Tracer("generate").Start(ctx, "game.spawn")
	defer span.End()

	var result PopulateResult

	px, py, err := m.FindEmptyTile(rng, 0, 0)
	if err != nil {
		return result, fmt.Errorf("place player: %w", err)
	}
	result.Player = SpawnPoint{X: px, Y: py}

	for i := range monsters {
		glyph := MonsterGlyphs[rng.Intn(len(MonsterGlyphs))]
		sx := MonsterSectionMinX + rng.Intn(MonsterSectionMaxX-MonsterSectionMinX+1)
		sy := MonsterSectionMinY + rng.Intn(MonsterSectionMaxY-MonsterSectionMinY+1)
		x, y, err := m.FindEmptyTile(rng, sx, sy)
		if err != nil {
			return result, fmt.Errorf("place monster %d: %w", i, err)
		}
		result.Monsters = append(result.Monsters, MonsterSpawn{Glyph: glyph, SpawnPoint: SpawnPoint{X: x, Y: y}})
	}

	span.SetAttributes(attribute.Int("spawn.monsters", len(result.Monsters)))
	return result, nil
}

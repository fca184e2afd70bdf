package generate

import (
	"context"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"spriggan/internal/gamemap"
	"spriggan/internal/telemetry"
)

const (
	DefaultMaxWalls = 15
	DefaultMinSize  = 6
	DefaultMaxSize  = 12
)

// Orientation of a generated wall.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// Config drives wall generation.
type Config struct {
	MapWidth, MapHeight int
	MaxWalls            int // placement attempts; rejected walls are not retried
	MinSize, MaxSize    int // wall length, inclusive
	Padding             int // extra gap required between walls, 0 = touching allowed
	Rand                *rand.Rand
}

// DefaultConfig returns the stock 80×50, 15-wall configuration.
func DefaultConfig(rng *rand.Rand) *Config {
	return &Config{
		MapWidth:  gamemap.DefaultWidth,
		MapHeight: gamemap.DefaultHeight,
		MaxWalls:  DefaultMaxWalls,
		MinSize:   DefaultMinSize,
		MaxSize:   DefaultMaxSize,
		Rand:      rng,
	}
}

// Walls builds a floor map and scatters up to cfg.MaxWalls straight walls on it.
// A candidate that overlaps an already placed wall is dropped, so the result
// holds anywhere from 0 to MaxWalls walls. No connectivity is guaranteed.
func Walls(ctx context.Context, cfg *Config) *gamemap.Map {
	_, span := telemetry.Tracer("generate").Start(ctx, "map.generate")
	defer span.End()

	m := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	rejected := 0
	for range cfg.MaxWalls {
		wall, ok := candidateWall(cfg)
		if !ok {
			rejected++
			continue
		}
		if overlapsAny(wall, m.Walls, cfg.Padding) {
			rejected++
			continue
		}
		m.ApplyWall(wall)
	}

	span.SetAttributes(
		attribute.Int("map.width", m.Width),
		attribute.Int("map.height", m.Height),
		attribute.Int("map.walls", len(m.Walls)),
		attribute.Int("map.walls_rejected", rejected),
	)
	return m
}

// candidateWall rolls orientation, length and an origin that keeps the wall on the grid.
// It reports false when the map is too small to hold a wall of the rolled length.
func candidateWall(cfg *Config) (gamemap.Rect, bool) {
	length := cfg.MinSize + cfg.Rand.Intn(cfg.MaxSize-cfg.MinSize+1)

	if Orientation(cfg.Rand.Intn(2)) == Horizontal {
		if length > cfg.MapWidth {
			return gamemap.Rect{}, false
		}
		x := cfg.Rand.Intn(cfg.MapWidth - length + 1)
		y := cfg.Rand.Intn(cfg.MapHeight)
		return gamemap.NewRect(x, y, length, 1), true
	}
	if length > cfg.MapHeight {
		return gamemap.Rect{}, false
	}
	x := cfg.Rand.Intn(cfg.MapWidth)
	y := cfg.Rand.Intn(cfg.MapHeight - length + 1)
	return gamemap.NewRect(x, y, 1, length), true
}

func overlapsAny(r gamemap.Rect, placed []gamemap.Rect, padding int) bool {
	padded := r.Grow(padding)
	for _, other := range placed {
		if padded.Intersects(other) {
			return true
		}
	}
	return false
}

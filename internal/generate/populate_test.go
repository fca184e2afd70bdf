package generate

import (
	"context"
	"errors"
	"math/rand"
	"slices"
	"testing"

	"spriggan/internal/gamemap"
)

func TestPopulatePlacements(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		m := Walls(context.Background(), DefaultConfig(rng))
		pop, err := Populate(context.Background(), m, rng, 10)
		if err != nil {
			t.Fatalf("seed=%d: %v", seed, err)
		}

		p := pop.Player
		if p.X < 0 || p.X > 9 || p.Y < 0 || p.Y > 9 {
			t.Errorf("seed=%d: player at (%d,%d) outside section (0,0)", seed, p.X, p.Y)
		}
		if !m.IsWalkable(p.X, p.Y) {
			t.Errorf("seed=%d: player spawned on a wall", seed)
		}

		if len(pop.Monsters) != 10 {
			t.Fatalf("seed=%d: %d monsters, want 10", seed, len(pop.Monsters))
		}
		for _, mon := range pop.Monsters {
			if mon.X < 10 || mon.X > 69 || mon.Y < 10 || mon.Y > 39 {
				t.Errorf("seed=%d: monster at (%d,%d) outside sections x1..6 y1..3", seed, mon.X, mon.Y)
			}
			if !m.IsWalkable(mon.X, mon.Y) {
				t.Errorf("seed=%d: monster spawned on a wall at (%d,%d)", seed, mon.X, mon.Y)
			}
			if !slices.Contains(MonsterGlyphs, mon.Glyph) {
				t.Errorf("seed=%d: unexpected glyph %q", seed, mon.Glyph)
			}
		}
	}
}

func TestPopulateFailsOnWalledStart(t *testing.T) {
	m := gamemap.New(gamemap.DefaultWidth, gamemap.DefaultHeight)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			m.Set(x, y, gamemap.TileWall)
		}
	}
	_, err := Populate(context.Background(), m, rand.New(rand.NewSource(1)), 1)
	if !errors.Is(err, gamemap.ErrNoFloorInSection) {
		t.Fatalf("err = %v, want ErrNoFloorInSection", err)
	}
}

package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"spriggan/internal/config"
	"spriggan/internal/ecs"
	"spriggan/internal/factory"
	"spriggan/internal/generate"
	"spriggan/internal/logger"
	"spriggan/internal/system"
	"spriggan/internal/turn"
)

// Session is one playable game: a generated map, its entities and the turn controller.
type Session struct {
	Seed     int64
	PlayerID ecs.EntityID
	Ctrl     *turn.Controller
}

// NewSession generates the map, spawns the player and monsters and returns
// a controller ready for its first tick. A zero cfg.Seed picks one from the clock.
func NewSession(ctx context.Context, cfg config.Config) (*Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	gmap := generate.Walls(ctx, generate.DefaultConfig(rng))
	pop, err := generate.Populate(ctx, gmap, rng, cfg.Monsters)
	if err != nil {
		return nil, fmt.Errorf("populate map: %w", err)
	}

	w := ecs.NewWorld()
	player := factory.Spawn(w, pop)

	logger.Log.WithFields(logrus.Fields{
		"component": "setup",
		"seed":      seed,
		"walls":     len(gmap.Walls),
		"monsters":  len(pop.Monsters),
	}).Info("session created")

	ctrl := turn.New(w, gmap, rng, system.Rules{MonsterWallCollision: cfg.MonsterWallCollision})
	return &Session{Seed: seed, PlayerID: player, Ctrl: ctrl}, nil
}

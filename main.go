package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"spriggan/internal/config"
	"spriggan/internal/game"
	"spriggan/internal/logger"
	"spriggan/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "map and AI seed (0 picks one from the clock)")
	flag.IntVar(&cfg.Monsters, "monsters", cfg.Monsters, "number of monsters to spawn")
	flag.BoolVar(&cfg.MonsterWallCollision, "monster-walls", cfg.MonsterWallCollision, "stop monsters at walls")
	flag.Parse()
	if cfg.Monsters < 0 {
		return fmt.Errorf("-monsters must not be negative, got %d", cfg.Monsters)
	}

	// The terminal belongs to the game, so logs only go to a file.
	if cfg.LogFile != "" {
		f, err := logger.OpenFile(cfg.LogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: f})
	}

	ctx := context.Background()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Log.WithError(err).Warn("tracing disabled")
		} else {
			defer func() {
				sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = shutdown(sctx)
			}()
		}
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		return err
	}
	return g.Run(ctx)
}

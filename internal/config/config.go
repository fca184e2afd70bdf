// Package config reads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every tunable the game and server read at startup.
type Config struct {
	// Seed drives map generation, spawning and monster AI. 0 picks a time-based seed.
	Seed int64
	// Monsters is how many monsters are spawned at startup.
	Monsters int
	// MonsterWallCollision makes monsters respect walls like the player does.
	MonsterWallCollision bool

	LogLevel  string
	LogFormat string
	LogFile   string

	// RunLog enables appending a summary line per finished game.
	RunLog bool
}

// Default returns the stock settings.
func Default() Config {
	return Config{
		Monsters:  10,
		LogLevel:  "info",
		LogFormat: "text",
		LogFile:   filepath.Join(stateDir(), "spriggan.log"),
		RunLog:    true,
	}
}

// Load applies .env (if present) and SPRIGGAN_* variables over Default.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, which has the signature of os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("SPRIGGAN_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("SPRIGGAN_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup("SPRIGGAN_MONSTERS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("SPRIGGAN_MONSTERS: %w", err)
		}
		if n < 0 {
			return Config{}, fmt.Errorf("SPRIGGAN_MONSTERS: must not be negative, got %d", n)
		}
		cfg.Monsters = n
	}
	if v, ok := lookup("SPRIGGAN_MONSTER_WALLS"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("SPRIGGAN_MONSTER_WALLS: %w", err)
		}
		cfg.MonsterWallCollision = b
	}
	if v, ok := lookup("SPRIGGAN_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("SPRIGGAN_LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v, ok := lookup("SPRIGGAN_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup("SPRIGGAN_RUNLOG"); ok && v != "" {
		switch strings.ToLower(v) {
		case "off", "0", "false", "no":
			cfg.RunLog = false
		default:
			cfg.RunLog = true
		}
	}
	return cfg, nil
}

// DataDir is where run logs go: $XDG_DATA_HOME/spriggan, defaulting to ~/.local/share/spriggan.
func DataDir() string {
	return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

func stateDir() string {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func xdgDir(env, fallback string) string {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = os.TempDir()
		}
		base = filepath.Join(home, fallback)
	}
	return filepath.Join(base, "spriggan")
}

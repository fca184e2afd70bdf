package config

import (
	"os"
	"path/filepath"
	"testing"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(nil))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 0 || cfg.Monsters != 10 || cfg.MonsterWallCollision || !cfg.RunLog {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("unexpected log defaults %+v", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{
		"SPRIGGAN_SEED":          "42",
		"SPRIGGAN_MONSTERS":      "3",
		"SPRIGGAN_MONSTER_WALLS": "true",
		"SPRIGGAN_LOG_LEVEL":     "debug",
		"SPRIGGAN_LOG_FORMAT":    "JSON",
		"SPRIGGAN_LOG_FILE":      "",
		"SPRIGGAN_RUNLOG":        "off",
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Seed:                 42,
		Monsters:             3,
		MonsterWallCollision: true,
		LogLevel:             "debug",
		LogFormat:            "json",
		LogFile:              "",
		RunLog:               false,
	}
	if cfg != want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestFromEnvErrors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"bad seed", map[string]string{"SPRIGGAN_SEED": "abc"}},
		{"bad monsters", map[string]string{"SPRIGGAN_MONSTERS": "many"}},
		{"negative monsters", map[string]string{"SPRIGGAN_MONSTERS": "-1"}},
		{"bad walls flag", map[string]string{"SPRIGGAN_MONSTER_WALLS": "sometimes"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromEnv(lookupFrom(tc.env)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SPRIGGAN_SEED=99\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	// godotenv never overrides existing variables; make sure ours is unset.
	t.Setenv("SPRIGGAN_SEED", "")
	os.Unsetenv("SPRIGGAN_SEED")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 99 {
		t.Fatalf("Seed = %d, want 99", cfg.Seed)
	}
}

func TestDataDirHonoursXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	if got := DataDir(); got != filepath.Join("/tmp/xdg", "spriggan") {
		t.Fatalf("DataDir() = %q", got)
	}
}

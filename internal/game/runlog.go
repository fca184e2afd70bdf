package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spriggan/internal/turn"
)

// Outcome is how a game ended.
type Outcome string

const (
	OutcomeDied    Outcome = "died"
	OutcomeCleared Outcome = "cleared"
	OutcomeQuit    Outcome = "quit"
)

// RunLog is the summary written once per finished game.
type RunLog struct {
	Seed        int64     `json:"seed"`
	Outcome     Outcome   `json:"outcome"`
	Turns       int       `json:"turns"`
	Kills       int       `json:"kills"`
	DamageDealt int       `json:"damage_dealt"`
	DamageTaken int       `json:"damage_taken"`
	EndedAt     time.Time `json:"ended_at"`
}

func newRunLog(seed int64, outcome Outcome, st turn.Stats) RunLog {
	return RunLog{
		Seed:        seed,
		Outcome:     outcome,
		Turns:       st.Turns,
		Kills:       st.Kills,
		DamageDealt: st.DamageDealt,
		DamageTaken: st.DamageTaken,
		EndedAt:     time.Now().UTC(),
	}
}

// appendRunLog adds log as one JSON line to dir/runs.jsonl.
func appendRunLog(dir string, log RunLog) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encode run log: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}

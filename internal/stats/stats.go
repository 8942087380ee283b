// Package stats persists aggregate generation statistics per difficulty
// tier, folding each new run into a running total the way the teacher's
// high-score store folds a new game result into a persisted best score.
package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// RunRecord describes the outcome of a single GenerateBoard call.
type RunRecord struct {
	Difficulty    string
	Attempts      int
	Perturbations int
	Restarts      int
	Solved        bool
}

// Aggregate folds together every RunRecord seen for one difficulty tier.
type Aggregate struct {
	Attempts                 int `json:"attempts"`
	TotalPerturbations       int `json:"totalPerturbations"`
	TotalRestarts            int `json:"totalRestarts"`
	MaxPerturbationsInOneRun int `json:"maxPerturbationsInOneRun"`
	Failures                 int `json:"failures"`
}

// fold merges r into the aggregate.
func (a *Aggregate) fold(r RunRecord) {
	a.Attempts++
	a.TotalPerturbations += r.Perturbations
	a.TotalRestarts += r.Restarts
	if r.Perturbations > a.MaxPerturbationsInOneRun {
		a.MaxPerturbationsInOneRun = r.Perturbations
	}
	if !r.Solved {
		a.Failures++
	}
}

// Store manages run-statistics persistence, keyed by difficulty name.
type Store struct {
	path  string
	Stats map[string]*Aggregate
}

// Load reads the stats file from the default location.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads stats from a specific path. If path is empty, uses
// ~/.config/minesweeper-assistant/stats.json.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return &Store{Stats: map[string]*Aggregate{}}, err
		}
		path = filepath.Join(dir, "minesweeper-assistant", "stats.json")
	}

	s := &Store{path: path, Stats: map[string]*Aggregate{}}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserConfigDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Stats); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes the stats to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Stats, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Record folds a run outcome into the aggregate for its difficulty.
func (s *Store) Record(r RunRecord) {
	agg, ok := s.Stats[r.Difficulty]
	if !ok {
		agg = &Aggregate{}
		s.Stats[r.Difficulty] = agg
	}
	agg.fold(r)
}

// Get returns the aggregate for a difficulty, or nil if no run has been
// recorded for it yet.
func (s *Store) Get(difficulty string) *Aggregate {
	return s.Stats[difficulty]
}

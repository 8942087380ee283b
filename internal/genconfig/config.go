// Package genconfig persists the tuning knobs that bound the generator's
// restart/perturbation search and the solver's R5 exhaustive search, the
// same way the teacher's settings package persists user preferences.
package genconfig

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ashgrove-labs/minesweeper-assistant/internal/solver"
)

// Difficulty is a named board size/mine-count preset.
type Difficulty struct {
	Name   string
	Width  int
	Height int
	Mines  int
}

var (
	Beginner     = Difficulty{Name: "beginner", Width: 9, Height: 9, Mines: 10}
	Intermediate = Difficulty{Name: "intermediate", Width: 16, Height: 16, Mines: 40}
	Expert       = Difficulty{Name: "expert", Width: 30, Height: 16, Mines: 99}
)

// Presets lists the named difficulty tiers in display order.
var Presets = []Difficulty{Beginner, Intermediate, Expert}

// ByName looks up a difficulty preset by its lowercase name, reporting ok
// = false for anything else (the caller should treat that as "custom").
func ByName(name string) (Difficulty, bool) {
	for _, d := range Presets {
		if d.Name == name {
			return d, true
		}
	}
	return Difficulty{}, false
}

// Config tunes the generator's restart/perturbation bounds and the
// solver's R5 group-size cap.
type Config struct {
	MaxFullRestarts         int `json:"maxFullRestarts"`
	MaxPerturbationsPerPass int `json:"maxPerturbationsPerPass"`
	MaxShuffleAttempts      int `json:"maxShuffleAttempts"`
	R5GroupCap              int `json:"r5GroupCap"`
}

// DefaultConfig matches the bounds named in the generator's algorithm
// description: five full restarts, ten perturbations per pass before a
// restart, ten shuffle attempts, and the solver's default 15-cell cap.
func DefaultConfig() Config {
	return Config{
		MaxFullRestarts:         5,
		MaxPerturbationsPerPass: 10,
		MaxShuffleAttempts:      10,
		R5GroupCap:              solver.DefaultConfig().GroupCap,
	}
}

// SolverConfig projects the subset relevant to the solver.
func (c Config) SolverConfig() solver.Config {
	return solver.Config{GroupCap: c.R5GroupCap}
}

// Store manages GeneratorConfig persistence.
type Store struct {
	path   string
	Config Config
}

// Load reads the config from the default location under the user's
// config directory.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads the config from a specific path. If path is empty, uses
// ~/.config/minesweeper-assistant/generator.json.
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return &Store{Config: DefaultConfig()}, err
		}
		path = filepath.Join(dir, "minesweeper-assistant", "generator.json")
	}

	s := &Store{path: path, Config: DefaultConfig()}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserConfigDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Config); err != nil {
		return s, err
	}
	s.normalize()
	return s, nil
}

// Save writes the config to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// normalize clamps non-positive tuning values back to their defaults, the
// same way the teacher's settings store falls an out-of-range enum back
// to its default rather than rejecting the whole file.
func (s *Store) normalize() {
	def := DefaultConfig()
	if s.Config.MaxFullRestarts <= 0 {
		s.Config.MaxFullRestarts = def.MaxFullRestarts
	}
	if s.Config.MaxPerturbationsPerPass <= 0 {
		s.Config.MaxPerturbationsPerPass = def.MaxPerturbationsPerPass
	}
	if s.Config.MaxShuffleAttempts <= 0 {
		s.Config.MaxShuffleAttempts = def.MaxShuffleAttempts
	}
	if s.Config.R5GroupCap <= 0 {
		s.Config.R5GroupCap = def.R5GroupCap
	}
}

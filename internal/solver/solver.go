// Package solver implements the deductive hint engine: given a board's
// current reveal/flag state, it finds the next logically forced move (or
// reports that none exists) without ever guessing.
package solver

import (
	"github.com/ashgrove-labs/minesweeper-assistant/internal/board"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/move"
)

// Config tunes the cost bound on the solver's exhaustive subset search
// (rule R5). It never affects which moves the solver is entitled to find,
// only how hard it is willing to look before giving up.
type Config struct {
	// GroupCap is the largest frontier group R5 will exhaustively search.
	// Groups larger than this are left undetermined rather than risking an
	// exponential blowup.
	GroupCap int
}

// DefaultConfig matches the bound the original hint engine used.
func DefaultConfig() Config {
	return Config{GroupCap: 15}
}

// NextMove returns the next forced move on b, trying rules in order of
// increasing cost: local saturation (R1, R2, interleaved in a single
// row-major pass), pairwise subset reasoning (R3), then the two global
// rules (R4, R5). It returns nil if no rule currently applies -- this is
// not an error, it means the board needs a guess or is already solved.
func NextMove(b *board.Board, cfg Config) *move.Move {
	if m := localSaturation(b); m != nil {
		return m
	}
	if m := subsetReasoning(b); m != nil {
		return m
	}
	if m := revealWhenMinesExhausted(b); m != nil {
		return m
	}
	if m := flagFrontierGroups(b, cfg); m != nil {
		return m
	}
	return nil
}

// Package move defines the value types the solver returns: a Move (the
// cells to reveal, flag, or chord-expand) and the ordered HintStep trail
// explaining why.
package move

import (
	"fmt"
	"sort"

	"github.com/ashgrove-labs/minesweeper-assistant/internal/board"
)

// HintStep is one narrated sentence of the solver's explanation, with the
// cells to visually highlight for that step. Equality is structural.
type HintStep struct {
	Text              string
	HighlightRevealed []board.Coord
	HighlightHidden   []board.Coord
}

// NewHintStep builds a HintStep from coordinate sets, normalizing both
// highlight lists into a deterministic row-major order so two
// independently constructed steps with the same content compare equal.
func NewHintStep(text string, revealed, hidden []board.Coord) HintStep {
	return HintStep{
		Text:              text,
		HighlightRevealed: sortedCoords(revealed),
		HighlightHidden:   sortedCoords(hidden),
	}
}

// Move is the value the solver hands back: three disjoint cell sets plus
// the ordered hint trail that justifies them. At least one of ToReveal,
// ToFlag, ToExpand is always non-empty.
type Move struct {
	ToReveal []board.Coord
	ToFlag   []board.Coord
	ToExpand []board.Coord
	Steps    []HintStep
}

// New builds a Move from coordinate sets, normalizing each into
// deterministic row-major order. It panics if all three sets are empty --
// a solver rule that can't populate at least one of them has a bug, not a
// valid "no move" result (callers signal "no move" by returning a nil
// *Move, never an empty one).
func New(toReveal, toFlag, toExpand []board.Coord, steps []HintStep) *Move {
	if len(toReveal) == 0 && len(toFlag) == 0 && len(toExpand) == 0 {
		panic("move: at least one of ToReveal, ToFlag, ToExpand must be non-empty")
	}
	return &Move{
		ToReveal: sortedCoords(toReveal),
		ToFlag:   sortedCoords(toFlag),
		ToExpand: sortedCoords(toExpand),
		Steps:    steps,
	}
}

func sortedCoords(in []board.Coord) []board.Coord {
	out := make([]board.Coord, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

var numberWords = [...]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
}

// ReadableNumber renders small integers as English words, as used in the
// subset-reasoning hint text (R3). Numbers above eight fall back to their
// digit form -- the solver never needs to narrate a count above eight
// since neighborhoods cap at eight cells.
func ReadableNumber(n int) string {
	if n >= 0 && n < len(numberWords) {
		return numberWords[n]
	}
	return fmt.Sprintf("%d", n)
}

// Plural returns suffix when n != 1, matching the "cell(s)"/"mine(s)"
// pluralization used throughout the hint text.
func Plural(n int, suffix string) string {
	if n == 1 {
		return ""
	}
	return suffix
}

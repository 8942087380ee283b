package solver

import (
	"fmt"

	"github.com/ashgrove-labs/minesweeper-assistant/internal/board"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/move"
)

// localSaturation implements R1 (flag the remaining neighbors of a cell
// whose undiscovered mines exactly fill its hidden neighborhood) and R2
// (expand a cell whose mines are already all flagged) in a single
// row-major pass over the revealed numeric cells. For each candidate cell
// R1 is tried before R2, but the scan itself interleaves the two rules
// rather than running two separate passes: the first cell anywhere on the
// board satisfying either rule wins.
func localSaturation(b *board.Board) *move.Move {
	for _, c := range b.RevealedNumeric() {
		hidden := b.HiddenUnflaggedNeighbors(c)
		if len(hidden) == 0 {
			continue
		}
		mines := b.MineCount(c)
		flags := b.FlagCount(c)

		if mines-flags == len(hidden) {
			text := fmt.Sprintf("Flag the remaining cell%s", move.Plural(len(hidden), "s"))
			return move.New(nil, hidden, nil, []move.HintStep{
				move.NewHintStep(text, []board.Coord{c}, hidden),
			})
		}
		if mines == flags {
			text := fmt.Sprintf("Reveal the remaining cell%s", move.Plural(len(hidden), "s"))
			return move.New(hidden, nil, nil, []move.HintStep{
				move.NewHintStep(text, []board.Coord{c}, hidden),
			})
		}
	}
	return nil
}

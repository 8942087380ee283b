package solver

import (
	"fmt"

	"github.com/ashgrove-labs/minesweeper-assistant/internal/board"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/coordset"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/move"
)

func chebyshevDistance(a, b board.Coord) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// subsetReasoning implements R3: for every pair of revealed numeric cells
// close enough to possibly share hidden neighbors, check whether the
// difference in their outstanding mine counts pins down a subset of cells
// as all-mine or all-safe.
func subsetReasoning(b *board.Board) *move.Move {
	cells := b.RevealedNumeric()
	for i := 0; i < len(cells); i++ {
		c1 := cells[i]
		m1 := b.MineCount(c1) - b.FlagCount(c1)
		if m1 <= 0 {
			continue
		}
		a := b.HiddenUnflaggedNeighbors(c1)
		if len(a) == 0 {
			continue
		}
		for j := i + 1; j < len(cells); j++ {
			c2 := cells[j]
			if chebyshevDistance(c1, c2) > 2 {
				continue
			}
			m2 := b.MineCount(c2) - b.FlagCount(c2)
			if m2 <= 0 {
				continue
			}
			bSet := b.HiddenUnflaggedNeighbors(c2)
			if len(bSet) == 0 {
				continue
			}
			if m, ok := intersectPair(c1, a, m1, c2, bSet, m2); ok {
				return m
			}
		}
	}
	return nil
}

// intersectPair applies R3's case-a/case-b logic to a single pair of
// cells, c1 with hidden neighbors aCoords (mA outstanding mines) and c2
// with hidden neighbors bCoords (mB outstanding mines).
func intersectPair(c1 board.Coord, aCoords []board.Coord, mA int, c2 board.Coord, bCoords []board.Coord, mB int) (*move.Move, bool) {
	a := coordset.New(aCoords)
	bSet := coordset.New(bCoords)

	// The bigger set wins ties in favor of c2, matching the deduction the
	// original hint engine actually performs (its strict size comparison
	// falls through to the second cell whenever the two neighborhoods are
	// the same size).
	var x, y coordset.Set
	var mX, mY int
	var bigCell, smallCell board.Coord
	if len(a) > len(bCoords) {
		x, mX, bigCell = a, mA, c1
		y, mY, smallCell = bSet, mB, c2
	} else {
		x, mX, bigCell = bSet, mB, c2
		y, mY, smallCell = a, mA, c1
	}

	d := x.Diff(y)
	i := x.Intersect(y)
	diff := mX - mY

	switch {
	case diff == len(d) && len(d) > 0:
		toFlag := d.Slice()
		toReveal := y.Diff(x).Slice()
		return move.New(toReveal, toFlag, nil, caseAHint(bigCell, smallCell, mY, diff, i, d, toFlag, toReveal)), true
	case diff == 0 && len(d) > 0 && i.Equal(y):
		toReveal := d.Slice()
		return move.New(toReveal, nil, nil, caseBHint(bigCell, smallCell, mY, i, toReveal)), true
	}
	return nil, false
}

func caseAHint(bigCell, smallCell board.Coord, mY, d int, i, diffSet coordset.Set, toFlag, toReveal []board.Coord) []move.HintStep {
	return []move.HintStep{
		move.NewHintStep("Check out these two cells.", []board.Coord{bigCell, smallCell}, nil),
		move.NewHintStep(fmt.Sprintf("There is only %s remaining mine%s in this cell.", move.ReadableNumber(mY), move.Plural(mY, "s")), []board.Coord{smallCell}, i.Slice()),
		move.NewHintStep(fmt.Sprintf("This means there can only be %s remaining mine%s in the cell%s shared by both these numbers.", move.ReadableNumber(mY), move.Plural(mY, "s"), move.Plural(len(i), "s")), []board.Coord{smallCell, bigCell}, i.Slice()),
		move.NewHintStep(fmt.Sprintf("That accounts for %s of the mines, leaving %s more mine%s in the cells unique to this number.", move.ReadableNumber(mY), move.ReadableNumber(d), move.Plural(d, "s")), []board.Coord{bigCell}, diffSet.Slice()),
		move.NewHintStep(fmt.Sprintf("There is only %s cell%s unique to this number, so it should be flagged.", move.ReadableNumber(d), move.Plural(d, "s")), nil, toFlag),
		move.NewHintStep(fmt.Sprintf("Reveal the safe cell%s unique to this number.", move.Plural(len(toReveal), "s")), toReveal, nil),
	}
}

func caseBHint(bigCell, smallCell board.Coord, mY int, i coordset.Set, diffSet []board.Coord) []move.HintStep {
	return []move.HintStep{
		move.NewHintStep("Check out these two cells.", []board.Coord{bigCell, smallCell}, nil),
		move.NewHintStep(fmt.Sprintf("There %s %s remaining mine%s in this cell.", plural01(mY, "is", "are"), move.ReadableNumber(mY), move.Plural(mY, "s")), []board.Coord{smallCell}, i.Slice()),
		move.NewHintStep(fmt.Sprintf("Therefore, there are no remaining mines in %s cell%s.", plural01(len(diffSet), "this", "these"), move.Plural(len(diffSet), "s")), []board.Coord{bigCell}, diffSet),
		move.NewHintStep(fmt.Sprintf("Reveal the safe cell%s unique to this number.", move.Plural(len(diffSet), "s")), diffSet, nil),
	}
}

func plural01(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

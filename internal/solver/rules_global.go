package solver

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/ashgrove-labs/minesweeper-assistant/internal/board"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/coordset"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/move"
)

// revealWhenMinesExhausted implements R4: once every mine is accounted
// for by a flag, every remaining hidden cell is safe.
func revealWhenMinesExhausted(b *board.Board) *move.Move {
	if b.RemainingMines() != 0 {
		return nil
	}
	hidden := b.HiddenUnflagged()
	if len(hidden) == 0 {
		return nil
	}
	return move.New(hidden, nil, nil, []move.HintStep{
		move.NewHintStep("There are no remaining mines to flag. Reveal the remaining squares!", nil, hidden),
	})
}

// flagFrontierGroups implements R5: either every hidden cell is a mine
// (the trivial exact-match case), or the frontier decomposes into
// independent groups whose minimal satisfying mine assignment can be
// pinned down by exhaustive search.
func flagFrontierGroups(b *board.Board, cfg Config) *move.Move {
	universe := b.HiddenUnflagged()
	remaining := b.RemainingMines()

	if len(universe) == 0 {
		return nil
	}
	if remaining == len(universe) {
		text := fmt.Sprintf("Flag the remaining mine%s", move.Plural(len(universe), "s"))
		return move.New(nil, universe, nil, []move.HintStep{
			move.NewHintStep(text, nil, universe),
		})
	}

	groups, borders := frontierGroups(b, universe)

	var allFlags []board.Coord
	for idx, group := range groups {
		if len(group) > cfg.GroupCap {
			return nil
		}
		solution, ok := uniqueMinimalAssignment(b, group, borders[idx])
		if !ok {
			return nil
		}
		allFlags = append(allFlags, solution...)
	}

	if len(allFlags) != remaining || len(allFlags) == 0 {
		return nil
	}

	return move.New(nil, allFlags, nil, []move.HintStep{
		move.NewHintStep("There are only a few remaining mines left", nil, nil),
		move.NewHintStep("This is the only possible configuration that accounts for all of them", nil, allFlags),
	})
}

// frontierGroups partitions universe into connected components under
// "shares a revealed numeric neighbor." Cells with no revealed numeric
// neighbor at all (interior unconstrained cells) are dropped -- R5 can
// never pin those down, so they're excluded from every group rather than
// forming unsatisfiable singleton groups. Each group's bordering revealed
// cells (the constraints it must satisfy) are returned alongside it.
func frontierGroups(b *board.Board, universe []board.Coord) ([][]board.Coord, [][]board.Coord) {
	inUniverse := coordset.New(universe)
	parent := map[board.Coord]board.Coord{}
	var find func(board.Coord) board.Coord
	find = func(c board.Coord) board.Coord {
		if parent[c] != c {
			parent[c] = find(parent[c])
		}
		return parent[c]
	}
	union := func(c1, c2 board.Coord) {
		r1, r2 := find(c1), find(c2)
		if r1 != r2 {
			parent[r1] = r2
		}
	}

	frontierMembers := coordset.Set{}
	borderOf := map[board.Coord][]board.Coord{}

	for _, numeric := range b.RevealedNumeric() {
		hidden := b.HiddenUnflaggedNeighbors(numeric)
		if len(hidden) == 0 {
			continue
		}
		for _, h := range hidden {
			if !inUniverse.Contains(h) {
				continue
			}
			if _, seen := parent[h]; !seen {
				parent[h] = h
			}
			frontierMembers[h] = struct{}{}
			borderOf[numeric] = append(borderOf[numeric], h)
		}
		first := hidden[0]
		for _, h := range hidden[1:] {
			if inUniverse.Contains(first) && inUniverse.Contains(h) {
				union(first, h)
			}
		}
	}

	rootGroups := map[board.Coord][]board.Coord{}
	for c := range frontierMembers {
		r := find(c)
		rootGroups[r] = append(rootGroups[r], c)
	}

	var groups [][]board.Coord
	for _, g := range rootGroups {
		sort.Slice(g, func(i, j int) bool {
			if g[i].Y != g[j].Y {
				return g[i].Y < g[j].Y
			}
			return g[i].X < g[j].X
		})
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i][0].Y != groups[j][0].Y {
			return groups[i][0].Y < groups[j][0].Y
		}
		return groups[i][0].X < groups[j][0].X
	})

	borders := make([][]board.Coord, len(groups))
	for idx, g := range groups {
		groupSet := coordset.New(g)
		borderSet := coordset.Set{}
		for numeric, hidden := range borderOf {
			for _, h := range hidden {
				if groupSet.Contains(h) {
					borderSet[numeric] = struct{}{}
					break
				}
			}
		}
		borders[idx] = borderSet.Slice()
	}

	return groups, borders
}

// uniqueMinimalAssignment exhaustively searches subsets of group in order
// of increasing cardinality for the set of assignments that satisfy every
// bordering cell's mine/flag constraint. It returns the flagged cells of
// the unique smallest-cardinality solution, or ok=false if there is no
// solution or more than one at the smallest cardinality.
func uniqueMinimalAssignment(b *board.Board, group []board.Coord, borderCells []board.Coord) ([]board.Coord, bool) {
	n := len(group)
	if n == 0 {
		return nil, false
	}

	type constraint struct {
		need      int
		neighbors []int // indices into group
	}
	constraints := make([]constraint, 0, len(borderCells))
	for _, bc := range borderCells {
		need := b.MineCount(bc) - b.FlagCount(bc)
		var idxs []int
		for gi, g := range group {
			if chebyshevDistance(bc, g) <= 1 {
				idxs = append(idxs, gi)
			}
		}
		constraints = append(constraints, constraint{need: need, neighbors: idxs})
	}

	total := 1 << n
	masksByCard := make([]int, total)
	for mask := 0; mask < total; mask++ {
		masksByCard[mask] = mask
	}
	sort.Slice(masksByCard, func(i, j int) bool {
		return bits.OnesCount(uint(masksByCard[i])) < bits.OnesCount(uint(masksByCard[j]))
	})

	bestCard := -1
	var bestMasks []int
	for _, mask := range masksByCard {
		card := bits.OnesCount(uint(mask))
		if bestCard != -1 && card > bestCard {
			break
		}
		ok := true
		for _, con := range constraints {
			count := 0
			for _, idx := range con.neighbors {
				if mask&(1<<idx) != 0 {
					count++
				}
			}
			if count != con.need {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if bestCard == -1 {
			bestCard = card
		}
		bestMasks = append(bestMasks, mask)
	}

	if len(bestMasks) != 1 {
		return nil, false
	}

	mask := bestMasks[0]
	var flags []board.Coord
	for gi, g := range group {
		if mask&(1<<gi) != 0 {
			flags = append(flags, g)
		}
	}
	return flags, true
}

package generator

import (
	"math/rand/v2"

	"github.com/ashgrove-labs/minesweeper-assistant/internal/board"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/coordset"
)

// ShuffleRemainingMines enumerates up to maxAttempts combinations of
// placing the board's currently-unflagged, unrevealed mines among its
// currently-hidden cells, then installs one at random (excluding the
// current layout when another option exists). A cheaper alternative to
// perturb for breaking a solver deadlock. Reports false only when the
// remaining mines cannot be placed among the hidden cells; if every
// enumerated combination equals the current layout, that layout is
// reinstalled and true is returned.
func ShuffleRemainingMines(b *board.Board, rng *rand.Rand, maxAttempts int) bool {
	hidden := b.HiddenUnflagged()
	k := b.RemainingMines()
	if k < 0 || k > len(hidden) {
		return false
	}

	current := coordset.Set{}
	for _, loc := range hidden {
		if b.CellAt(loc).IsMine {
			current[loc] = struct{}{}
		}
	}

	combos := combinationsUpTo(len(hidden), k, maxAttempts)
	if len(combos) == 0 {
		return false
	}

	candidates := make([][]int, 0, len(combos))
	for _, combo := range combos {
		if !indicesMatchSet(combo, hidden, current) {
			candidates = append(candidates, combo)
		}
	}
	if len(candidates) == 0 {
		candidates = combos
	}

	chosen := candidates[rng.IntN(len(candidates))]
	chosenSet := make(map[int]struct{}, len(chosen))
	for _, idx := range chosen {
		chosenSet[idx] = struct{}{}
	}
	for idx, loc := range hidden {
		_, isMine := chosenSet[idx]
		b.SetMine(loc, isMine)
	}
	return true
}

func indicesMatchSet(indices []int, universe []board.Coord, set coordset.Set) bool {
	if len(indices) != len(set) {
		return false
	}
	for _, idx := range indices {
		if !set.Contains(universe[idx]) {
			return false
		}
	}
	return true
}

// combinationsUpTo returns up to max lexicographically ordered
// k-combinations of {0,...,n-1}, mirroring itertools.combinations capped
// at a fixed count.
func combinationsUpTo(n, k, max int) [][]int {
	if k < 0 || k > n || max <= 0 {
		if k == 0 && n >= 0 {
			return [][]int{{}}
		}
		return nil
	}
	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}

	var out [][]int
	for {
		combo := make([]int, k)
		copy(combo, indices)
		out = append(out, combo)
		if len(out) >= max {
			break
		}

		i := k - 1
		for i >= 0 && indices[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[i] + (j - i)
		}
	}
	return out
}

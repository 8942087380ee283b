// Package generator builds solver-solvable boards: it seeds a random
// mine layout, then drives the deductive solver against it, perturbing
// and restarting as needed until the whole board falls to pure deduction.
package generator

import (
	"fmt"
	"math/rand/v2"

	"github.com/ashgrove-labs/minesweeper-assistant/internal/board"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/coreerr"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/genconfig"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/move"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/solver"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/stats"
)

// Result reports how much work GenerateBoard had to do, independent of
// the returned board -- the caller typically folds this into a
// stats.Store.
type Result struct {
	Board         *board.Board
	Attempts      int
	Perturbations int
	Restarts      int
}

// GenerateBoard produces a board with exactly mines mines, none within
// the 3x3 block around start, solvable by the deductive solver alone
// from the initial reveal of start.
func GenerateBoard(width, height, mines int, start board.Coord, cfg genconfig.Config, rng *rand.Rand) (*Result, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d", coreerr.ErrInvalidParameters, width, height)
	}
	if start.X < 0 || start.X >= width || start.Y < 0 || start.Y >= height {
		return nil, fmt.Errorf("%w: start %v out of bounds for %dx%d board", coreerr.ErrInvalidParameters, start, width, height)
	}
	maxMines := width*height - 9
	if mines < 0 || mines > maxMines {
		return nil, fmt.Errorf("%w: mines must be within [0,%d], got %d", coreerr.ErrInvalidParameters, maxMines, mines)
	}

	totalPerturbations := 0
	for restart := 0; restart < cfg.MaxFullRestarts; restart++ {
		b, perturbations, solved := attempt(width, height, mines, start, cfg, rng)
		totalPerturbations += perturbations
		if solved {
			b.Conceal()
			return &Result{Board: b, Attempts: restart + 1, Perturbations: totalPerturbations, Restarts: restart}, nil
		}
	}
	return nil, fmt.Errorf("%w: exceeded %d full restarts", coreerr.ErrUnsolvableParameters, cfg.MaxFullRestarts)
}

// attempt seeds one fresh layout and drives it to solved, perturbing on
// each stall until the per-pass perturbation budget is exhausted.
func attempt(width, height, mines int, start board.Coord, cfg genconfig.Config, rng *rand.Rand) (*board.Board, int, bool) {
	b := seedLayout(width, height, mines, start, rng)
	b.Reveal(start)

	solverCfg := cfg.SolverConfig()
	perturbations := 0
	for {
		if solveAsFarAsPossible(b, solverCfg) {
			return b, perturbations, true
		}
		if perturbations >= cfg.MaxPerturbationsPerPass {
			return b, perturbations, false
		}
		if !perturb(b, rng) {
			return b, perturbations, false
		}
		perturbations++
	}
}

// solveAsFarAsPossible applies next_move until the board is solved or the
// solver stalls, reporting whether it reached is_solved.
func solveAsFarAsPossible(b *board.Board, cfg solver.Config) bool {
	for {
		if b.IsSolved() {
			return true
		}
		m := solver.NextMove(b, cfg)
		if m == nil {
			return b.IsSolved()
		}
		apply(b, m)
	}
}

// apply mutates b according to a solver move: reveals, flags, and
// chord-expands its three cell sets in turn.
func apply(b *board.Board, m *move.Move) {
	for _, c := range m.ToReveal {
		b.Reveal(c)
	}
	for _, c := range m.ToFlag {
		b.Flag(c)
	}
	for _, c := range m.ToExpand {
		b.Reveal(c)
	}
}

// seedLayout places mines uniformly at random among cells outside the
// 3x3 block around start, via streaming selection with probability
// remaining_mines/remaining_candidates -- the same decaying-probability
// scheme as the original board generator's basic-grid pass.
func seedLayout(width, height, mines int, start board.Coord, rng *rand.Rand) *board.Board {
	b := board.New(width, height, mines, start)

	var candidates []board.Coord
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			loc := board.Coord{X: x, Y: y}
			if !b.InStartBlock(loc) {
				candidates = append(candidates, loc)
			}
		}
	}

	remainingMines := mines
	remainingCandidates := len(candidates)
	for _, loc := range candidates {
		isMine := remainingMines > 0 && rng.Float64() < float64(remainingMines)/float64(remainingCandidates)
		if isMine {
			b.SetMine(loc, true)
			remainingMines--
		}
		remainingCandidates--
	}
	return b
}

// perturb classifies hidden cells into frontier mines, interior safe,
// and other visible safe, then swaps one frontier mine for one safe
// target to disturb a deadlocked solve. Reports false if no valid
// source/target pair exists.
func perturb(b *board.Board, rng *rand.Rand) bool {
	var frontierMinesUnflagged, frontierMinesFlagged, interiorSafe, otherVisibleSafe []board.Coord

	for _, c := range b.Grid {
		loc := c.Location
		switch {
		case c.IsMine && !c.IsRevealed:
			if hasRevealedNeighbor(b, loc) {
				if c.IsFlagged {
					frontierMinesFlagged = append(frontierMinesFlagged, loc)
				} else {
					frontierMinesUnflagged = append(frontierMinesUnflagged, loc)
				}
			}
		case !c.IsMine && !c.IsRevealed:
			if !hasRevealedNeighbor(b, loc) {
				interiorSafe = append(interiorSafe, loc)
			}
		case !c.IsMine && c.IsRevealed:
			if !b.InStartBlock(loc) {
				otherVisibleSafe = append(otherVisibleSafe, loc)
			}
		}
	}

	var source board.Coord
	switch {
	case len(frontierMinesUnflagged) > 0:
		source = frontierMinesUnflagged[rng.IntN(len(frontierMinesUnflagged))]
	case len(frontierMinesFlagged) > 0:
		source = frontierMinesFlagged[rng.IntN(len(frontierMinesFlagged))]
	default:
		return false
	}

	var target board.Coord
	switch {
	case len(interiorSafe) > 0:
		target = interiorSafe[rng.IntN(len(interiorSafe))]
	case len(otherVisibleSafe) > 0:
		target = otherVisibleSafe[rng.IntN(len(otherVisibleSafe))]
	default:
		return false
	}

	b.SetMine(source, false)
	b.SetMine(target, true)
	for _, loc := range []board.Coord{source, target} {
		cell := b.CellAt(loc)
		cell.IsFlagged = false
		cell.IsRevealed = false
	}
	return true
}

func hasRevealedNeighbor(b *board.Board, loc board.Coord) bool {
	for _, n := range b.Neighbors(loc) {
		if b.CellAt(n).IsRevealed {
			return true
		}
	}
	return false
}

// RecordFor builds the RunRecord a caller folds into a stats.Store after
// a GenerateBoard call, successful or not.
func RecordFor(difficulty string, r *Result, err error) stats.RunRecord {
	if err != nil {
		return stats.RunRecord{Difficulty: difficulty, Solved: false}
	}
	return stats.RunRecord{
		Difficulty:    difficulty,
		Attempts:      r.Attempts,
		Perturbations: r.Perturbations,
		Restarts:      r.Restarts,
		Solved:        true,
	}
}

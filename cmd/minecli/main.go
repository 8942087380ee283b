// Command minecli generates a board and narrates the deductive solver's
// progress against it, one move at a time, until the board is solved or
// the solver gets stuck.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/ashgrove-labs/minesweeper-assistant/internal/board"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/genconfig"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/generator"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/move"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/report"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/solver"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/stats"
)

func main() {
	width := flag.Int("width", 0, "board width (overrides -difficulty)")
	height := flag.Int("height", 0, "board height (overrides -difficulty)")
	mines := flag.Int("mines", 0, "mine count (overrides -difficulty)")
	startX := flag.Int("startX", -1, "safe-start column (defaults to center)")
	startY := flag.Int("startY", -1, "safe-start row (defaults to center)")
	difficulty := flag.String("difficulty", "beginner", "beginner|intermediate|expert")
	seed := flag.Int64("seed", 0, "PRNG seed; 0 means derive one from the current time")
	flag.Parse()

	w, h, m := resolveDimensions(*difficulty, *width, *height, *mines)
	if *startX < 0 {
		*startX = w / 2
	}
	if *startY < 0 {
		*startY = h / 2
	}
	start := board.Coord{X: *startX, Y: *startY}

	seedValue := *seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(seedValue), uint64(seedValue>>1|1)))

	cfgStore, err := genconfig.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: using default generator config: %v\n", err)
	}

	result, err := generator.GenerateBoard(w, h, m, start, cfgStore.Config, rng)
	statsStore, statsErr := stats.Load()
	if statsErr == nil {
		statsStore.Record(generator.RecordFor(*difficulty, result, err))
		if saveErr := statsStore.Save(); saveErr != nil {
			fmt.Fprintf(os.Stderr, "warning: could not save run statistics: %v\n", saveErr)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not generate a board: %v\n", err)
		os.Exit(1)
	}

	b := result.Board
	solverCfg := cfgStore.Config.SolverConfig()
	fmt.Println(report.Board(b, nil, nil))
	fmt.Println()

	for !b.IsSolved() {
		mv := solver.NextMove(b, solverCfg)
		if mv == nil {
			fmt.Println("Stuck: the solver found no further deductive move. Refusing to guess.")
			os.Exit(2)
		}
		fmt.Println(report.HintTrail(b, mv))
		applyMove(b, mv)
	}

	fmt.Println("Solved.")
}

func applyMove(b *board.Board, mv *move.Move) {
	for _, c := range mv.ToReveal {
		b.Reveal(c)
	}
	for _, c := range mv.ToFlag {
		b.Flag(c)
	}
	for _, c := range mv.ToExpand {
		b.Reveal(c)
	}
}

func resolveDimensions(difficulty string, width, height, mines int) (int, int, int) {
	diff, ok := genconfig.ByName(difficulty)
	w, h, m := diff.Width, diff.Height, diff.Mines
	if !ok {
		w, h, m = genconfig.Beginner.Width, genconfig.Beginner.Height, genconfig.Beginner.Mines
	}
	if width > 0 {
		w = width
	}
	if height > 0 {
		h = height
	}
	if mines > 0 {
		m = mines
	}
	return w, h, m
}

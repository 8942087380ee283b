package board

import "testing"

// fromMines builds a width x height board with mines at the given
// locations, all cells hidden. testGrid uses it for this 5x5 layout
// (numbers are neighbor mine counts):
//
//	M 1 0 1 M
//	1 2 1 2 1
//	0 1 M 1 0
//	1 2 1 2 1
//	M 1 0 1 M
func fromMines(width, height int, mines []Coord) *Board {
	b := New(width, height, len(mines), Coord{X: 0, Y: 0})
	for _, m := range mines {
		b.SetMine(m, true)
	}
	return b
}

func testGrid() *Board {
	return fromMines(5, 5, []Coord{{0, 0}, {0, 4}, {4, 0}, {4, 4}, {2, 2}})
}

func TestMineCount(t *testing.T) {
	b := testGrid()

	tests := []struct {
		name string
		loc  Coord
		want int
	}{
		{"edge cell (1,0) near 1 mine", Coord{1, 0}, 1},
		{"center of grid (2,2) is mine", Coord{2, 2}, 0},
		{"cell (1,1) near 2 mines", Coord{1, 1}, 2},
		{"cell (2,1) near 1 mine", Coord{2, 1}, 1},
		{"cell (3,1) near 2 mines", Coord{3, 1}, 2},
		{"edge empty (0,2)", Coord{0, 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.MineCount(tt.loc); got != tt.want {
				t.Errorf("MineCount(%v) = %d, want %d", tt.loc, got, tt.want)
			}
		})
	}
}

func TestRevealFloodFill(t *testing.T) {
	b := testGrid()

	if !b.Reveal(Coord{2, 0}) {
		t.Fatal("Reveal(2,0) returned false, want true (safe)")
	}

	wantRevealed := []Coord{{2, 0}, {1, 0}, {3, 0}, {1, 1}, {2, 1}, {3, 1}}
	for _, loc := range wantRevealed {
		if !b.CellAt(loc).IsRevealed {
			t.Errorf("%v should be revealed after flood-fill", loc)
		}
	}

	wantHidden := []Coord{{0, 0}, {0, 4}, {4, 0}, {4, 4}, {2, 2}, {0, 1}, {4, 1}}
	for _, loc := range wantHidden {
		c := b.CellAt(loc)
		if c.IsRevealed && !c.IsMine {
			t.Errorf("%v should remain hidden, got revealed", loc)
		}
	}
}

func TestRevealMineIsUnsafe(t *testing.T) {
	b := testGrid()
	if b.Reveal(Coord{0, 0}) {
		t.Error("Reveal(0,0) on a mine returned true, want false")
	}
	if !b.CellAt(Coord{0, 0}).IsRevealed {
		t.Error("revealed mine should still be marked revealed")
	}
}

func TestRevealFlaggedCellNoOp(t *testing.T) {
	b := testGrid()
	b.Flag(Coord{0, 0})
	if !b.Reveal(Coord{0, 0}) {
		t.Error("Reveal on a flagged cell should be a no-op returning true")
	}
	if b.CellAt(Coord{0, 0}).IsRevealed {
		t.Error("flagged cell should not become revealed via Reveal")
	}
}

func TestChordingRevealsSafeNeighbors(t *testing.T) {
	b := testGrid()
	// Reveal (1,0): mineCount=1, with (0,0) flagged, chording should
	// reveal every other hidden neighbor.
	b.CellAt(Coord{1, 0}).IsRevealed = true
	b.Flag(Coord{0, 0})

	if !b.Reveal(Coord{1, 0}) {
		t.Fatal("chord on saturated cell should be safe")
	}
	for _, loc := range []Coord{{1, 1}, {2, 0}, {2, 1}} {
		if !b.CellAt(loc).IsRevealed {
			t.Errorf("chording should have revealed %v", loc)
		}
	}
}

func TestChordingUnsaturatedIsNoOp(t *testing.T) {
	b := testGrid()
	b.CellAt(Coord{1, 0}).IsRevealed = true
	// no flags placed: mineCount(1,0)=1 != flagCount=0, chord should not fire.
	if !b.Reveal(Coord{1, 0}) {
		t.Fatal("no-op chord should report safe")
	}
	if b.CellAt(Coord{0, 0}).IsRevealed {
		t.Error("unsaturated chord should not reveal any neighbor")
	}
}

func TestFlagToggle(t *testing.T) {
	b := testGrid()
	b.Flag(Coord{0, 0})
	if !b.CellAt(Coord{0, 0}).IsFlagged {
		t.Fatal("expected flagged after first toggle")
	}
	b.Flag(Coord{0, 0})
	if b.CellAt(Coord{0, 0}).IsFlagged {
		t.Fatal("expected unflagged after second toggle")
	}
}

func TestFlagRevealedCellNoOp(t *testing.T) {
	b := testGrid()
	b.Reveal(Coord{2, 0})
	b.Flag(Coord{2, 0})
	if b.CellAt(Coord{2, 0}).IsFlagged {
		t.Error("flagging a revealed cell should be a no-op")
	}
}

func TestRemainingMines(t *testing.T) {
	b := testGrid()
	if got := b.RemainingMines(); got != 5 {
		t.Fatalf("RemainingMines() = %d, want 5", got)
	}
	b.Flag(Coord{0, 0})
	if got := b.RemainingMines(); got != 4 {
		t.Fatalf("RemainingMines() = %d, want 4", got)
	}
}

func TestIsSolved(t *testing.T) {
	b := testGrid()
	if b.IsSolved() {
		t.Fatal("freshly built board should not be solved")
	}
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			loc := Coord{x, y}
			if !b.CellAt(loc).IsMine {
				b.Reveal(loc)
			}
		}
	}
	if !b.IsSolved() {
		t.Fatal("board with every safe cell revealed should be solved")
	}
}

func TestInStartBlock(t *testing.T) {
	b := New(9, 9, 0, Coord{4, 4})
	for _, loc := range []Coord{{3, 3}, {4, 4}, {5, 5}} {
		if !b.InStartBlock(loc) {
			t.Errorf("%v should be inside the start block", loc)
		}
	}
	for _, loc := range []Coord{{2, 4}, {4, 6}, {6, 6}} {
		if b.InStartBlock(loc) {
			t.Errorf("%v should be outside the start block", loc)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	text := "M.M\n...\nF?."
	b, err := ParseText(text)
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	if b.Width != 3 || b.Height != 3 {
		t.Fatalf("dimensions = %dx%d, want 3x3", b.Width, b.Height)
	}
	if b.Mines != 3 {
		t.Fatalf("Mines = %d, want 3", b.Mines)
	}
	if got := b.Text(); got != text {
		t.Fatalf("Text() round-trip = %q, want %q", got, text)
	}

	b2, err := ParseText(b.Text())
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	for i := range b.Grid {
		if b.Grid[i] != b2.Grid[i] {
			t.Fatalf("cell %d mismatch after round-trip: %+v vs %+v", i, b.Grid[i], b2.Grid[i])
		}
	}
}

func TestParseTextInvalidCharacter(t *testing.T) {
	if _, err := ParseText("X.."); err == nil {
		t.Fatal("expected error for invalid character")
	}
}

func TestParseTextRaggedRow(t *testing.T) {
	if _, err := ParseText("...\n??"); err == nil {
		t.Fatal("expected error for inconsistent row length")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	b := testGrid()
	b.Reveal(Coord{2, 0})
	b.Flag(Coord{4, 4})

	data, err := b.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	b2, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if b2.Width != b.Width || b2.Height != b.Height || b2.Mines != b.Mines || b2.Start != b.Start {
		t.Fatalf("round-tripped board header mismatch: %+v vs %+v", b2, b)
	}
	for i := range b.Grid {
		if b.Grid[i] != b2.Grid[i] {
			t.Fatalf("cell %d mismatch after JSON round-trip: %+v vs %+v", i, b.Grid[i], b2.Grid[i])
		}
	}
}

func TestParseJSONRecomputesMines(t *testing.T) {
	data := []byte(`{"width":2,"height":1,"mines":99,"startX":0,"startY":0,"grid":[[{"isMine":true,"isVisible":false,"isFlagged":false,"location":[0,0]},{"isMine":false,"isVisible":false,"isFlagged":false,"location":[1,0]}]]}`)
	b, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if b.Mines != 1 {
		t.Fatalf("Mines = %d, want recomputed 1", b.Mines)
	}
}

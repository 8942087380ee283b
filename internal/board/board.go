package board

import "fmt"

// Board is the Minesweeper grid: a row-major slice of cells plus the
// dimensions and safe-start square needed to interpret it.
type Board struct {
	Width, Height int
	Mines         int
	Start         Coord
	Grid          []Cell // row-major, len == Width*Height
}

// New allocates an all-hidden, mine-free board of the given size. Callers
// (typically the generator) place mines afterward via SetMine.
func New(width, height, mines int, start Coord) *Board {
	grid := make([]Cell, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			grid[y*width+x] = Cell{Location: Coord{X: x, Y: y}}
		}
	}
	return &Board{Width: width, Height: height, Mines: mines, Start: start, Grid: grid}
}

func (b *Board) index(loc Coord) int {
	return loc.Y*b.Width + loc.X
}

// InBounds reports whether loc lies on the board.
func (b *Board) InBounds(loc Coord) bool {
	return loc.X >= 0 && loc.X < b.Width && loc.Y >= 0 && loc.Y < b.Height
}

// CellAt returns a pointer to the cell at loc, or nil if out of bounds.
func (b *Board) CellAt(loc Coord) *Cell {
	if !b.InBounds(loc) {
		return nil
	}
	return &b.Grid[b.index(loc)]
}

// Neighbors returns the up-to-eight in-bounds cells adjacent to loc.
func (b *Board) Neighbors(loc Coord) []Coord {
	neighbors := make([]Coord, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Coord{X: loc.X + dx, Y: loc.Y + dy}
			if b.InBounds(n) {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

// MineCount returns the number of mined neighbors of loc.
func (b *Board) MineCount(loc Coord) int {
	count := 0
	for _, n := range b.Neighbors(loc) {
		if b.CellAt(n).IsMine {
			count++
		}
	}
	return count
}

// FlagCount returns the number of flagged neighbors of loc.
func (b *Board) FlagCount(loc Coord) int {
	count := 0
	for _, n := range b.Neighbors(loc) {
		if b.CellAt(n).IsFlagged {
			count++
		}
	}
	return count
}

// HiddenUnflaggedNeighbors returns the neighbors of loc that are neither
// revealed nor flagged -- the H(c) set from the solver's rules.
func (b *Board) HiddenUnflaggedNeighbors(loc Coord) []Coord {
	var hidden []Coord
	for _, n := range b.Neighbors(loc) {
		c := b.CellAt(n)
		if !c.IsRevealed && !c.IsFlagged {
			hidden = append(hidden, n)
		}
	}
	return hidden
}

// SetMine sets or clears the mine flag on the cell at loc. Used by the
// generator during seeding and perturbation; reveal/flag state is left
// untouched.
func (b *Board) SetMine(loc Coord, isMine bool) {
	if c := b.CellAt(loc); c != nil {
		c.IsMine = isMine
	}
}

// Reveal uncovers loc. If loc is already revealed, it instead attempts a
// chord: revealing every hidden, unflagged neighbor once the cell's flag
// count matches its mine count. Returns false iff a mine was revealed
// (directly, or transitively during flood fill/chording).
func (b *Board) Reveal(loc Coord) bool {
	c := b.CellAt(loc)
	if c == nil {
		return true
	}
	if c.IsRevealed {
		return b.chord(loc)
	}
	if c.IsFlagged {
		return true
	}
	c.IsRevealed = true
	if c.IsMine {
		return false
	}
	if b.MineCount(loc) == 0 {
		for _, n := range b.Neighbors(loc) {
			nc := b.CellAt(n)
			if !nc.IsRevealed && !nc.IsFlagged {
				b.Reveal(n)
			}
		}
	}
	return true
}

// chord reveals every hidden, unflagged neighbor of an already-revealed
// cell whose flag count saturates its mine count.
func (b *Board) chord(loc Coord) bool {
	if b.MineCount(loc) != b.FlagCount(loc) {
		return true
	}
	safe := true
	for _, n := range b.Neighbors(loc) {
		nc := b.CellAt(n)
		if !nc.IsRevealed && !nc.IsFlagged {
			if !b.Reveal(n) {
				safe = false
			}
		}
	}
	return safe
}

// Flag toggles the flag on a hidden cell. Revealed cells are unaffected.
func (b *Board) Flag(loc Coord) {
	c := b.CellAt(loc)
	if c == nil || c.IsRevealed {
		return
	}
	c.IsFlagged = !c.IsFlagged
}

// FlaggedCount returns the number of currently flagged cells.
func (b *Board) FlaggedCount() int {
	n := 0
	for _, c := range b.Grid {
		if c.IsFlagged {
			n++
		}
	}
	return n
}

// RemainingMines returns the number of mines not yet accounted for by a
// flag.
func (b *Board) RemainingMines() int {
	return b.Mines - b.FlaggedCount()
}

// IsSolved reports whether every mine is hidden and every safe cell is
// revealed.
func (b *Board) IsSolved() bool {
	for _, c := range b.Grid {
		if c.IsRevealed && c.IsMine {
			return false
		}
		if !c.IsRevealed && !c.IsMine {
			return false
		}
	}
	return true
}

// HiddenUnflagged returns the locations of every cell that is neither
// revealed nor flagged -- the U set used by the solver's global rules.
func (b *Board) HiddenUnflagged() []Coord {
	var out []Coord
	for _, c := range b.Grid {
		if !c.IsRevealed && !c.IsFlagged {
			out = append(out, c.Location)
		}
	}
	return out
}

// RevealedNumeric returns the locations of revealed, non-mine cells in
// row-major order -- the candidate set for rules R1-R3.
func (b *Board) RevealedNumeric() []Coord {
	var out []Coord
	for _, c := range b.Grid {
		if c.IsRevealed && !c.IsMine {
			out = append(out, c.Location)
		}
	}
	return out
}

// InStartBlock reports whether loc lies in the 3x3 block centered on the
// board's safe-start square.
func (b *Board) InStartBlock(loc Coord) bool {
	dx := loc.X - b.Start.X
	dy := loc.Y - b.Start.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= 1 && dy <= 1
}

// Clone returns a deep copy of the board. The generator does not use it:
// a full restart seeds a fresh layout instead of rolling back to a copy.
func (b *Board) Clone() *Board {
	grid := make([]Cell, len(b.Grid))
	copy(grid, b.Grid)
	return &Board{Width: b.Width, Height: b.Height, Mines: b.Mines, Start: b.Start, Grid: grid}
}

// Conceal resets every cell to hidden and unflagged, then reveals the
// start cell (which triggers its own flood fill if it borders no mines).
func (b *Board) Conceal() {
	for i := range b.Grid {
		b.Grid[i].IsRevealed = false
		b.Grid[i].IsFlagged = false
	}
	b.Reveal(b.Start)
}

func (b *Board) String() string {
	return fmt.Sprintf("Board{%dx%d, %d mines, start=%v}", b.Width, b.Height, b.Mines, b.Start)
}

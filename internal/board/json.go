package board

import (
	"encoding/json"
	"fmt"

	"github.com/ashgrove-labs/minesweeper-assistant/internal/coreerr"
)

// cellJSON mirrors the wire shape of a single grid cell.
type cellJSON struct {
	IsMine    bool  `json:"isMine"`
	IsVisible bool  `json:"isVisible"`
	IsFlagged bool  `json:"isFlagged"`
	Location  [2]int `json:"location"`
}

// boardJSON mirrors the wire shape of a board, row-major (grid[y][x]).
type boardJSON struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Mines  int          `json:"mines"`
	StartX int          `json:"startX"`
	StartY int          `json:"startY"`
	Grid   [][]cellJSON `json:"grid"`
}

// MarshalJSON encodes the board in the schema consumed by the external
// adapter (see spec section 6, "Board JSON").
func (b *Board) MarshalJSON() ([]byte, error) {
	grid := make([][]cellJSON, b.Height)
	for y := 0; y < b.Height; y++ {
		row := make([]cellJSON, b.Width)
		for x := 0; x < b.Width; x++ {
			c := b.CellAt(Coord{X: x, Y: y})
			row[x] = cellJSON{
				IsMine:    c.IsMine,
				IsVisible: c.IsRevealed,
				IsFlagged: c.IsFlagged,
				Location:  [2]int{x, y},
			}
		}
		grid[y] = row
	}
	return json.Marshal(boardJSON{
		Width:  b.Width,
		Height: b.Height,
		Mines:  b.Mines,
		StartX: b.Start.X,
		StartY: b.Start.Y,
		Grid:   grid,
	})
}

// ParseJSON decodes a board from the wire schema. The mines count is
// recomputed from the grid and any inconsistency with the supplied
// "mines" field is silently corrected, per the parsing tolerance
// required by the spec.
func ParseJSON(data []byte) (*Board, error) {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", coreerr.ErrInvalidBoard, err)
	}
	if raw.Width <= 0 || raw.Height <= 0 {
		return nil, fmt.Errorf("%w: non-positive dimensions", coreerr.ErrInvalidBoard)
	}
	if len(raw.Grid) != raw.Height {
		return nil, fmt.Errorf("%w: grid has %d rows, want %d", coreerr.ErrInvalidBoard, len(raw.Grid), raw.Height)
	}

	b := New(raw.Width, raw.Height, 0, Coord{X: raw.StartX, Y: raw.StartY})
	mines := 0
	for y, row := range raw.Grid {
		if len(row) != raw.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", coreerr.ErrInvalidBoard, y, len(row), raw.Width)
		}
		for x, cj := range row {
			c := b.CellAt(Coord{X: x, Y: y})
			c.IsMine = cj.IsMine
			c.IsRevealed = cj.IsVisible
			c.IsFlagged = cj.IsFlagged
			if cj.IsMine {
				mines++
			}
		}
	}
	b.Mines = mines
	return b, nil
}

// Package board implements the Minesweeper grid: cell state, neighborhood
// queries, reveal/flag primitives, and the text/JSON encodings used to move
// a board across a process boundary.
package board

// Coord is a zero-based cell location; (0,0) is the top-left corner.
type Coord struct {
	X, Y int
}

// Cell holds the state of a single grid square.
type Cell struct {
	IsMine     bool
	IsRevealed bool
	IsFlagged  bool
	Location   Coord
}

package board

import (
	"fmt"
	"strings"

	"github.com/ashgrove-labs/minesweeper-assistant/internal/coreerr"
)

// ParseText decodes the test-fixture ASCII board format: each line is a
// row, each character a cell --
//
//	.  revealed safe
//	?  hidden safe
//	M  hidden mine
//	F  flagged mine
//
// Width is the length of the first non-empty line, height the number of
// non-empty lines. The start square defaults to (0,0).
func ParseText(text string) (*Board, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimRight(line, "\r")
		if trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty board text", coreerr.ErrInvalidBoard)
	}

	width := len(lines[0])
	height := len(lines)
	b := New(width, height, 0, Coord{X: 0, Y: 0})

	mines := 0
	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", coreerr.ErrInvalidBoard, y, len(line), width)
		}
		for x, ch := range line {
			loc := Coord{X: x, Y: y}
			c := b.CellAt(loc)
			switch ch {
			case '.':
				c.IsRevealed = true
			case '?':
				// hidden safe cell, nothing to set
			case 'M':
				c.IsMine = true
				mines++
			case 'F':
				c.IsMine = true
				c.IsFlagged = true
				mines++
			default:
				return nil, fmt.Errorf("%w: invalid character %q at (%d,%d)", coreerr.ErrInvalidBoard, ch, x, y)
			}
		}
	}
	b.Mines = mines
	return b, nil
}

// Text renders the board back into the ASCII fixture format, the inverse
// of ParseText.
func (b *Board) Text() string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.CellAt(Coord{X: x, Y: y})
			sb.WriteRune(cellRune(c))
		}
		if y < b.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func cellRune(c *Cell) rune {
	switch {
	case c.IsFlagged:
		return 'F'
	case !c.IsRevealed && c.IsMine:
		return 'M'
	case !c.IsRevealed:
		return '?'
	default:
		return '.'
	}
}

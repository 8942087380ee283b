// Package report renders a board and a solver hint trail as styled
// terminal text, the way the teacher's minesweeper model renders its
// grid -- but for narrating a solved move rather than driving an input
// loop.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ashgrove-labs/minesweeper-assistant/internal/board"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/move"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	flagStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))

	revealHighlightStyle = lipgloss.NewStyle().
				Bold(true).
				Background(lipgloss.Color("#004400")).
				Foreground(lipgloss.Color("#00E632"))

	hiddenHighlightStyle = lipgloss.NewStyle().
				Bold(true).
				Background(lipgloss.Color("#444400")).
				Foreground(lipgloss.Color("#FFFF00"))

	hiddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))

	mineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))
)

func numberColor(n int) lipgloss.Color {
	switch n {
	case 1:
		return lipgloss.Color("#0000FF")
	case 2:
		return lipgloss.Color("#008200")
	case 3:
		return lipgloss.Color("#FF0000")
	case 4:
		return lipgloss.Color("#000084")
	case 5:
		return lipgloss.Color("#840000")
	case 6:
		return lipgloss.Color("#008284")
	case 7:
		return lipgloss.Color("#840084")
	case 8:
		return lipgloss.Color("#808080")
	default:
		return lipgloss.Color("#FFFFFF")
	}
}

// Board renders the grid as a styled, fixed-width block. highlightRevealed
// and highlightHidden (typically a single HintStep's coordinates) are
// rendered with a distinguishing background so a reader can follow which
// cells a narrated step refers to.
func Board(b *board.Board, highlightRevealed, highlightHidden []board.Coord) string {
	revealed := coordIndex(highlightRevealed)
	hidden := coordIndex(highlightHidden)

	var rows []string
	for y := 0; y < b.Height; y++ {
		var cells []string
		for x := 0; x < b.Width; x++ {
			loc := board.Coord{X: x, Y: y}
			cells = append(cells, renderCell(b, loc, revealed, hidden))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	return strings.Join(rows, "\n")
}

func coordIndex(coords []board.Coord) map[board.Coord]struct{} {
	idx := make(map[board.Coord]struct{}, len(coords))
	for _, c := range coords {
		idx[c] = struct{}{}
	}
	return idx
}

func renderCell(b *board.Board, loc board.Coord, revealed, hidden map[board.Coord]struct{}) string {
	cell := b.CellAt(loc)
	text, style := cellGlyph(b, cell)

	if _, ok := revealed[loc]; ok {
		style = revealHighlightStyle
	} else if _, ok := hidden[loc]; ok {
		style = hiddenHighlightStyle
	}
	return style.Width(3).Render(text)
}

func cellGlyph(b *board.Board, cell *board.Cell) (string, lipgloss.Style) {
	switch {
	case cell.IsFlagged:
		return "F", flagStyle
	case !cell.IsRevealed:
		return "?", hiddenStyle
	case cell.IsMine:
		return "*", mineStyle
	default:
		n := b.MineCount(cell.Location)
		if n == 0 {
			return ".", lipgloss.NewStyle()
		}
		return fmt.Sprintf("%d", n), lipgloss.NewStyle().Foreground(numberColor(n))
	}
}

// HintTrail renders a move's narrated steps, each paired with the board
// state as it stood when the step was produced and the cells that step
// highlights.
func HintTrail(b *board.Board, m *move.Move) string {
	if m == nil {
		return titleStyle.Render("No further move: the board is solved, or stuck.")
	}

	var sections []string
	for i, step := range m.Steps {
		header := stepStyle.Render(fmt.Sprintf("Step %d: %s", i+1, step.Text))
		sections = append(sections, header, Board(b, step.HighlightRevealed, step.HighlightHidden), "")
	}
	sections = append(sections, summary(m))
	return strings.Join(sections, "\n")
}

func summary(m *move.Move) string {
	var parts []string
	if len(m.ToReveal) > 0 {
		parts = append(parts, fmt.Sprintf("reveal %d cell%s", len(m.ToReveal), move.Plural(len(m.ToReveal), "s")))
	}
	if len(m.ToFlag) > 0 {
		parts = append(parts, fmt.Sprintf("flag %d cell%s", len(m.ToFlag), move.Plural(len(m.ToFlag), "s")))
	}
	if len(m.ToExpand) > 0 {
		parts = append(parts, fmt.Sprintf("expand %d cell%s", len(m.ToExpand), move.Plural(len(m.ToExpand), "s")))
	}
	return titleStyle.Render("Move: " + strings.Join(parts, ", "))
}

package move

import (
	"encoding/json"

	"github.com/ashgrove-labs/minesweeper-assistant/internal/board"
)

type hintStepJSON struct {
	Text                      string    `json:"text"`
	RevealedCellsToHighlight  [][2]int  `json:"revealedCellsToHighlight"`
	HiddenCellsToHighlight    [][2]int  `json:"hiddenCellsToHighlight"`
}

type moveJSON struct {
	CellsToReveal [][2]int       `json:"cellsToReveal"`
	CellsToFlag   [][2]int       `json:"cellsToFlag"`
	CellsToExpand [][2]int       `json:"cellsToExpand"`
	HintSteps     []hintStepJSON `json:"hintSteps"`
}

func coordsToJSON(coords []board.Coord) [][2]int {
	out := make([][2]int, len(coords))
	for i, c := range coords {
		out[i] = [2]int{c.X, c.Y}
	}
	return out
}

func coordsFromJSON(pairs [][2]int) []board.Coord {
	out := make([]board.Coord, len(pairs))
	for i, p := range pairs {
		out[i] = board.Coord{X: p[0], Y: p[1]}
	}
	return out
}

// MarshalJSON encodes the move in the schema consumed by the external
// adapter (see spec section 6, "Move JSON").
func (m *Move) MarshalJSON() ([]byte, error) {
	steps := make([]hintStepJSON, len(m.Steps))
	for i, s := range m.Steps {
		steps[i] = hintStepJSON{
			Text:                     s.Text,
			RevealedCellsToHighlight: coordsToJSON(s.HighlightRevealed),
			HiddenCellsToHighlight:   coordsToJSON(s.HighlightHidden),
		}
	}
	return json.Marshal(moveJSON{
		CellsToReveal: coordsToJSON(m.ToReveal),
		CellsToFlag:   coordsToJSON(m.ToFlag),
		CellsToExpand: coordsToJSON(m.ToExpand),
		HintSteps:     steps,
	})
}

// UnmarshalJSON decodes a move from the wire schema.
func (m *Move) UnmarshalJSON(data []byte) error {
	var raw moveJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	steps := make([]HintStep, len(raw.HintSteps))
	for i, s := range raw.HintSteps {
		steps[i] = HintStep{
			Text:              s.Text,
			HighlightRevealed: coordsFromJSON(s.RevealedCellsToHighlight),
			HighlightHidden:   coordsFromJSON(s.HiddenCellsToHighlight),
		}
	}
	m.ToReveal = coordsFromJSON(raw.CellsToReveal)
	m.ToFlag = coordsFromJSON(raw.CellsToFlag)
	m.ToExpand = coordsFromJSON(raw.CellsToExpand)
	m.Steps = steps
	return nil
}

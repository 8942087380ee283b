package move

import (
	"encoding/json"
	"testing"

	"github.com/ashgrove-labs/minesweeper-assistant/internal/board"
)

func TestReadableNumber(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "zero"}, {1, "one"}, {2, "two"}, {8, "eight"}, {9, "9"},
	}
	for _, tt := range tests {
		if got := ReadableNumber(tt.n); got != tt.want {
			t.Errorf("ReadableNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestPlural(t *testing.T) {
	if got := Plural(1, "s"); got != "" {
		t.Errorf("Plural(1,\"s\") = %q, want empty", got)
	}
	if got := Plural(2, "s"); got != "s" {
		t.Errorf("Plural(2,\"s\") = %q, want \"s\"", got)
	}
}

func TestNewPanicsOnEmptyMove(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a move with no cells set")
		}
	}()
	New(nil, nil, nil, nil)
}

func TestMoveJSONRoundTrip(t *testing.T) {
	m := New(
		[]board.Coord{{X: 1, Y: 0}},
		[]board.Coord{{X: 0, Y: 0}, {X: 2, Y: 0}},
		nil,
		[]HintStep{NewHintStep("Flag the remaining cells", []board.Coord{{X: 1, Y: 0}}, []board.Coord{{X: 0, Y: 0}, {X: 2, Y: 0}})},
	)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got Move
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if len(got.ToFlag) != 2 || len(got.ToReveal) != 1 {
		t.Fatalf("round-tripped move has wrong shape: %+v", got)
	}
	if len(got.Steps) != 1 || got.Steps[0].Text != "Flag the remaining cells" {
		t.Fatalf("round-tripped hint steps mismatch: %+v", got.Steps)
	}
}

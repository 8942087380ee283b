package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ashgrove-labs/minesweeper-assistant/internal/board"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/genconfig"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/stats"
)

func jsonBody(data []byte) *bytes.Reader {
	return bytes.NewReader(data)
}

func testServer(t *testing.T) *Server {
	t.Helper()
	st := &stats.Store{Stats: map[string]*stats.Aggregate{}}
	return NewServer(genconfig.DefaultConfig(), st, nil)
}

func TestGetBoardsValidDifficulty(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/boards?difficulty=beginner", nil)
	rec := httptest.NewRecorder()

	s.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	b, err := board.ParseJSON(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if b.Width != 9 || b.Height != 9 || b.Mines != 10 {
		t.Fatalf("got %dx%d/%d mines, want 9x9/10", b.Width, b.Height, b.Mines)
	}
}

func TestGetBoardsInvalidParams(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/boards?width=0&height=9&mines=10", nil)
	rec := httptest.NewRecorder()

	s.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetBoardsMalformedQuery(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/boards?width=nine&height=9&mines=10", nil)
	rec := httptest.NewRecorder()

	s.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPostMovesSolvedBoardReturnsNoContent(t *testing.T) {
	s := testServer(t)
	b := board.New(2, 1, 0, board.Coord{X: 0, Y: 0})
	b.Reveal(board.Coord{X: 0, Y: 0})
	b.Reveal(board.Coord{X: 1, Y: 0})

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/moves", jsonBody(data))
	rec := httptest.NewRecorder()

	s.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestPostMovesMalformedBodyReturnsBadRequest(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodPost, "/moves", jsonBody([]byte("not json")))
	rec := httptest.NewRecorder()

	s.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPostMovesReturnsAMove(t *testing.T) {
	s := testServer(t)
	b := board.New(3, 1, 2, board.Coord{X: 1, Y: 0})
	b.SetMine(board.Coord{X: 0, Y: 0}, true)
	b.SetMine(board.Coord{X: 2, Y: 0}, true)
	b.Reveal(board.Coord{X: 1, Y: 0})

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/moves", jsonBody(data))
	rec := httptest.NewRecorder()

	s.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
}

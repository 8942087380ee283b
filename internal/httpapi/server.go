// Package httpapi exposes the generator and solver over net/http: a thin
// adapter that parses query params and request bodies, delegates to the
// core packages, and maps their error kinds to status codes. No decision
// logic lives here.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ashgrove-labs/minesweeper-assistant/internal/board"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/coreerr"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/genconfig"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/generator"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/solver"
	"github.com/ashgrove-labs/minesweeper-assistant/internal/stats"
)

// Server holds the dependencies the handlers need: the tuning config, a
// logger, and the stats store each generated board's cost is folded into.
type Server struct {
	Config  genconfig.Config
	Logger  *slog.Logger
	Stats   *stats.Store
	Timeout time.Duration
}

// NewServer builds a Server with the given config/stats store. A nil
// logger falls back to slog.Default().
func NewServer(cfg genconfig.Config, st *stats.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if st == nil {
		st = &stats.Store{Stats: map[string]*stats.Aggregate{}}
	}
	return &Server{Config: cfg, Logger: logger, Stats: st, Timeout: 5 * time.Second}
}

// Routes returns the server's handler, wired onto a fresh ServeMux.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /boards", s.withLogging(s.handleGetBoards))
	mux.HandleFunc("POST /moves", s.withLogging(s.handlePostMoves))
	return mux
}

type errorBody struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Message: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// withLogging assigns each request a request ID, recovers from panics
// (mapping them to 500 per the error-handling policy), and logs the
// outcome at info for success or error for failure.
func (s *Server) withLogging(next func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		defer func() {
			if rerr := recover(); rerr != nil {
				s.Logger.Error("panic handling request",
					"requestId", requestID, "method", r.Method, "path", r.URL.Path, "panic", rerr)
				writeError(rec, http.StatusInternalServerError, "internal error")
				return
			}
			logLevel := slog.LevelInfo
			if rec.status >= 400 {
				logLevel = slog.LevelError
			}
			s.Logger.Log(r.Context(), logLevel, "request handled",
				"requestId", requestID, "method", r.Method, "path", r.URL.Path,
				"status", rec.status, "durationMs", time.Since(start).Milliseconds())
		}()

		next(rec, r, requestID)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// handleGetBoards implements GET /boards?width=&height=&mines=&startX=&startY=&difficulty=.
func (s *Server) handleGetBoards(w http.ResponseWriter, r *http.Request, requestID string) {
	ctx, cancel := context.WithTimeout(r.Context(), s.Timeout)
	defer cancel()

	width, height, mines, start, err := parseBoardParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rng := rand.New(rand.NewPCG(seedFromRequestID(requestID), uint64(time.Now().UnixNano())))

	type genOutcome struct {
		result *generator.Result
		err    error
	}
	done := make(chan genOutcome, 1)
	go func() {
		result, err := generator.GenerateBoard(width, height, mines, start, s.Config, rng)
		done <- genOutcome{result, err}
	}()

	select {
	case <-ctx.Done():
		writeError(w, http.StatusServiceUnavailable, "board generation exceeded the request deadline")
	case outcome := <-done:
		s.recordGeneration(r.URL.Query().Get("difficulty"), outcome.result, outcome.err)
		switch {
		case errors.Is(outcome.err, coreerr.ErrInvalidParameters):
			writeError(w, http.StatusBadRequest, outcome.err.Error())
		case outcome.err != nil:
			writeError(w, http.StatusInternalServerError, outcome.err.Error())
		default:
			writeJSON(w, http.StatusOK, outcome.result.Board)
		}
	}
}

func (s *Server) recordGeneration(difficulty string, result *generator.Result, err error) {
	if difficulty == "" {
		return
	}
	s.Stats.Record(generator.RecordFor(difficulty, result, err))
}

func parseBoardParams(r *http.Request) (width, height, mines int, start board.Coord, err error) {
	q := r.URL.Query()

	if name := q.Get("difficulty"); name != "" {
		if diff, ok := genconfig.ByName(name); ok {
			width, height, mines = diff.Width, diff.Height, diff.Mines
		}
	}

	if v := q.Get("width"); v != "" {
		width, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, 0, board.Coord{}, errors.New("width must be an integer")
		}
	}
	if v := q.Get("height"); v != "" {
		height, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, 0, board.Coord{}, errors.New("height must be an integer")
		}
	}
	if v := q.Get("mines"); v != "" {
		mines, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, 0, board.Coord{}, errors.New("mines must be an integer")
		}
	}

	startX, startY := width/2, height/2
	if v := q.Get("startX"); v != "" {
		startX, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, 0, board.Coord{}, errors.New("startX must be an integer")
		}
	}
	if v := q.Get("startY"); v != "" {
		startY, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, 0, board.Coord{}, errors.New("startY must be an integer")
		}
	}

	return width, height, mines, board.Coord{X: startX, Y: startY}, nil
}

func seedFromRequestID(id string) uint64 {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uint64(time.Now().UnixNano())
	}
	hi := uint64(0)
	for _, b := range parsed[:8] {
		hi = hi<<8 | uint64(b)
	}
	return hi
}

// handlePostMoves implements POST /moves: a Board JSON body in, a Move
// JSON body out, or 204 when the solver finds no move.
func (s *Server) handlePostMoves(w http.ResponseWriter, r *http.Request, _ string) {
	defer r.Body.Close()
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	b, err := board.ParseJSON(data)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	m := solver.NextMove(b, s.Config.SolverConfig())
	if m == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

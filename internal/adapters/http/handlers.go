// Package httpadapter exposes the engine as a JSON API.
package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"svw.info/hexkudo/internal/builder"
	"svw.info/hexkudo/internal/domain"
	"svw.info/hexkudo/internal/grid"
	"svw.info/hexkudo/internal/pathgen"
	"svw.info/hexkudo/internal/solver"
	"svw.info/hexkudo/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler {
	return &Handler{UC: uc}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/new", h.handleNew)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/move", h.handleMove)
	mux.HandleFunc("/api/complete", h.handleComplete)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func parseDifficulty(s string) domain.Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return domain.Easy
	case "hard":
		return domain.Hard
	case "expert":
		return domain.Expert
	default:
		return domain.Medium
	}
}

func parseShape(s string) domain.Shape {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "triangle":
		return domain.ShapeTriangle
	case "parallelogram", "rhombus":
		return domain.ShapeParallelogram
	default:
		return domain.ShapeHexagon
	}
}

// toAssignment converts the wire form (a clue list) into the engine form.
func toAssignment(entries []domain.Clue) domain.Assignment {
	out := make(domain.Assignment, len(entries))
	for _, e := range entries {
		out[e.Cell] = e.Number
	}
	return out
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, grid.ErrInvalidShape):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		// The caller gave up or ran out of time, not the server.
		return http.StatusRequestTimeout
	case errors.Is(err, builder.ErrBuilderFailed),
		errors.Is(err, pathgen.ErrGenerationFailed),
		errors.Is(err, solver.ErrBudgetExhausted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ---- New puzzle ----

type newReq struct {
	Shape      string `json:"shape,omitempty"`
	Size       int    `json:"size,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type newResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle,omitempty"`
	DurationMs int64          `json:"durationMs,omitempty"`
	Nodes      int            `json:"nodes,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func (h *Handler) handleNew(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req newReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(newResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Size == 0 {
		req.Size = 2
	}
	// One synchronous build per request; a client disconnect cancels
	// only that client's build.
	p, stats, err := h.UC.NewPuzzle(r.Context(),
		parseShape(req.Shape), req.Size, parseDifficulty(req.Difficulty), req.Seed)
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(newResp{Error: err.Error()})
		return
	}
	p.ID = uuid.NewString()
	_ = json.NewEncoder(w).Encode(newResp{
		Puzzle:     p,
		DurationMs: stats.Duration.Milliseconds(),
		Nodes:      stats.Nodes,
	})
}

// ---- Solve ----

type solveReq struct {
	Puzzle     *domain.Puzzle `json:"puzzle"`
	Assignment []domain.Clue  `json:"assignment,omitempty"`
}

type solveResp struct {
	Outcome    string      `json:"outcome,omitempty"`
	Solution   domain.Path `json:"solution,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Nodes      int         `json:"nodes,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Puzzle == nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON or missing puzzle"})
		return
	}
	res, err := h.UC.Solve(r.Context(), req.Puzzle, toAssignment(req.Assignment))
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error(), Nodes: res.Stats.Nodes})
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		Outcome:    res.Outcome.String(),
		Solution:   res.Solution,
		DurationMs: res.Stats.Duration.Milliseconds(),
		Nodes:      res.Stats.Nodes,
	})
}

// ---- Move ----

type moveReq struct {
	Puzzle     *domain.Puzzle `json:"puzzle"`
	Assignment []domain.Clue  `json:"assignment,omitempty"`
	Cell       domain.Cell    `json:"cell"`
	Number     int            `json:"number"`
}

type moveResp struct {
	Verdict string `json:"verdict,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) handleMove(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req moveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Puzzle == nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(moveResp{Error: "invalid JSON or missing puzzle"})
		return
	}
	verdict, err := h.UC.ValidateMove(req.Puzzle, toAssignment(req.Assignment), req.Cell, req.Number)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(moveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(moveResp{Verdict: verdict.String()})
}

// ---- Complete ----

type completeReq struct {
	Puzzle     *domain.Puzzle `json:"puzzle"`
	Assignment []domain.Clue  `json:"assignment,omitempty"`
}

type completeResp struct {
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req completeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Puzzle == nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(completeResp{Error: "invalid JSON or missing puzzle"})
		return
	}
	status, err := h.UC.CheckComplete(req.Puzzle, toAssignment(req.Assignment))
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(completeResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(completeResp{Status: status.String()})
}

// ---- Hint ----

type hintReq struct {
	Puzzle     *domain.Puzzle `json:"puzzle"`
	Assignment []domain.Clue  `json:"assignment,omitempty"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Puzzle == nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON or missing puzzle"})
		return
	}
	hh, ok, err := h.UC.Hint(req.Puzzle, toAssignment(req.Assignment))
	if err != nil {
		w.WriteHeader(statusFor(err))
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: ok, Hint: hh})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(listResp{Puzzles: ps})
}

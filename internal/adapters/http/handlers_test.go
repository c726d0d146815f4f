package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/hexkudo/internal/builder"
	"svw.info/hexkudo/internal/domain"
	"svw.info/hexkudo/internal/hint"
	"svw.info/hexkudo/internal/infrastructure/storage"
	"svw.info/hexkudo/internal/pathgen"
	"svw.info/hexkudo/internal/solver"
	"svw.info/hexkudo/internal/usecase"
	"svw.info/hexkudo/internal/validator"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	slv := solver.New()
	svc := usecase.NewService(
		slv,
		builder.New(pathgen.New(), slv, builder.Options{}),
		validator.New(),
		hint.NewForced(),
		storage.NewFS(t.TempDir()),
	)
	mux := http.NewServeMux()
	New(svc).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

// ringPuzzle is a solved radius-1 hexagon with two endpoint clues.
func ringPuzzle() *domain.Puzzle {
	return &domain.Puzzle{
		ID:    "ring",
		Shape: domain.ShapeHexagon,
		Size:  1,
		Clues: []domain.Clue{
			{Cell: domain.Cell{Q: -1, R: 0}, Number: 1},
			{Cell: domain.Cell{Q: 0, R: 0}, Number: 7},
		},
		Solution: domain.Path{
			{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
			{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1}, {Q: 0, R: 0},
		},
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/new")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/api/list", struct{}{})
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestNewPuzzleEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/new", newReq{
		Shape: "hexagon", Size: 1, Difficulty: "easy", Seed: 42,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out newResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotNil(t, out.Puzzle)
	assert.NotEmpty(t, out.Puzzle.ID)
	assert.Equal(t, domain.ShapeHexagon, out.Puzzle.Shape)
	assert.Equal(t, int64(42), out.Puzzle.Seed)
	assert.Len(t, out.Puzzle.Solution, 7)
	assert.NotEmpty(t, out.Puzzle.Clues)
}

func TestNewPuzzleConcurrentRequests(t *testing.T) {
	// Independent clients must not cancel each other's builds.
	srv := newTestServer(t)

	const clients = 8
	codes := make([]int, clients)
	errs := make([]error, clients)
	var wg sync.WaitGroup
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body, err := json.Marshal(newReq{
				Shape: "hexagon", Size: 2, Difficulty: "easy", Seed: int64(i + 1),
			})
			if err != nil {
				errs[i] = err
				return
			}
			resp, err := http.Post(srv.URL+"/api/new", "application/json", bytes.NewReader(body))
			if err != nil {
				errs[i] = err
				return
			}
			resp.Body.Close()
			codes[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	for i := 0; i < clients; i++ {
		require.NoErrorf(t, errs[i], "client %d", i)
		assert.Equalf(t, http.StatusOK, codes[i], "client %d", i)
	}
}

func TestNewPuzzleInvalidSize(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/new", newReq{
		Shape: "hexagon", Size: -1, Difficulty: "easy", Seed: 1,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out newResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.Error)
}

func TestMoveEndpoint(t *testing.T) {
	srv := newTestServer(t)
	p := ringPuzzle()

	cases := []struct {
		name    string
		cell    domain.Cell
		number  int
		verdict string
	}{
		{"accepted", domain.Cell{Q: -1, R: 1}, 2, domain.MoveAccepted.String()},
		{"non adjacent successor", domain.Cell{Q: 1, R: 0}, 2, domain.MoveRejectedAdjacency.String()},
		{"number already used", domain.Cell{Q: -1, R: 1}, 7, domain.MoveRejectedDuplicate.String()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/api/move", moveReq{
				Puzzle: p, Cell: tc.cell, Number: tc.number,
			})
			defer resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var out moveResp
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.Equal(t, tc.verdict, out.Verdict)
		})
	}
}

func TestSolveEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/solve", solveReq{Puzzle: ringPuzzle()})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out solveResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEqual(t, domain.Unsolvable.String(), out.Outcome)
}

func TestCompleteEndpoint(t *testing.T) {
	srv := newTestServer(t)
	p := ringPuzzle()

	full := make([]domain.Clue, 0, len(p.Solution))
	for i, c := range p.Solution {
		full = append(full, domain.Clue{Cell: c, Number: i + 1})
	}
	resp := postJSON(t, srv.URL+"/api/complete", completeReq{Puzzle: p, Assignment: full})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out completeResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, domain.Solved.String(), out.Status)
}

func TestHintEndpoint(t *testing.T) {
	srv := newTestServer(t)
	p := ringPuzzle()
	p.Clues = []domain.Clue{
		{Cell: domain.Cell{Q: -1, R: 0}, Number: 1},
		{Cell: domain.Cell{Q: -1, R: 1}, Number: 2},
		{Cell: domain.Cell{Q: 0, R: 1}, Number: 3},
		{Cell: domain.Cell{Q: 1, R: -1}, Number: 5},
		{Cell: domain.Cell{Q: 0, R: -1}, Number: 6},
		{Cell: domain.Cell{Q: 0, R: 0}, Number: 7},
	}

	resp := postJSON(t, srv.URL+"/api/hint", hintReq{Puzzle: p})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out hintResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.True(t, out.Found)
	assert.Equal(t, domain.Cell{Q: 1, R: 0}, out.Hint.Cell)
	assert.Equal(t, 4, out.Hint.Number)
}

func TestSaveLoadListEndpoints(t *testing.T) {
	srv := newTestServer(t)
	p := ringPuzzle()
	p.Difficulty = domain.Easy

	resp := postJSON(t, srv.URL+"/api/save", p)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var saved saveResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&saved))
	resp.Body.Close()
	assert.Equal(t, "ring", saved.ID)

	resp = postJSON(t, srv.URL+"/api/load", loadReq{ID: saved.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var loaded loadResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loaded))
	resp.Body.Close()
	require.NotNil(t, loaded.Puzzle)
	assert.Equal(t, p.Clues, loaded.Puzzle.Clues)

	resp, err := http.Get(srv.URL + "/api/list")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list listResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	require.Len(t, list.Puzzles, 1)
	assert.Equal(t, "ring", list.Puzzles[0].ID)
}

func TestLoadMissingPuzzle(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/load", loadReq{ID: "absent"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Package pathgen builds one full Hamiltonian ordering of a grid's cells.
package pathgen

import (
	"context"
	"errors"
	"math/rand"

	"svw.info/hexkudo/internal/domain"
	"svw.info/hexkudo/internal/grid"
)

// ErrGenerationFailed is returned when the restart budget runs out
// before a full path is found.
var ErrGenerationFailed = errors.New("path generation failed: restart budget exhausted")

// DefaultMaxRestarts bounds the number of fresh walks before giving up.
const DefaultMaxRestarts = 400

// Warnsdorff generates paths with a randomized greedy walk: at each step
// move to the unvisited neighbor with the fewest remaining unvisited
// neighbors, rng-tie-broken. A dead end restarts the walk from a new
// random cell instead of backtracking, so a single attempt is O(N * deg).
type Warnsdorff struct {
	MaxRestarts int
}

// New returns a generator with the default restart budget.
func New() *Warnsdorff { return &Warnsdorff{MaxRestarts: DefaultMaxRestarts} }

// Generate returns a Hamiltonian path over g, deterministic for a given
// (g, seed). Cancellation is checked between restart attempts only.
func (w *Warnsdorff) Generate(ctx context.Context, g *grid.Grid, seed int64) (domain.Path, error) {
	budget := w.MaxRestarts
	if budget <= 0 {
		budget = DefaultMaxRestarts
	}
	rng := rand.New(rand.NewSource(seed))
	n := g.Len()

	visited := make([]bool, n)
	order := make([]int, 0, n)
	cand := make([]int, 0, 6)

	for attempt := 0; attempt < budget; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i := range visited {
			visited[i] = false
		}
		order = order[:0]

		cur := rng.Intn(n)
		visited[cur] = true
		order = append(order, cur)

		for len(order) < n {
			cand = cand[:0]
			best := 7 // more than any hex degree
			for _, nb := range g.NeighborIndices(cur) {
				if visited[nb] {
					continue
				}
				deg := 0
				for _, nn := range g.NeighborIndices(nb) {
					if !visited[nn] {
						deg++
					}
				}
				if deg < best {
					best = deg
					cand = cand[:0]
				}
				if deg == best {
					cand = append(cand, nb)
				}
			}
			if len(cand) == 0 {
				break // dead end, restart
			}
			cur = cand[rng.Intn(len(cand))]
			visited[cur] = true
			order = append(order, cur)
		}

		if len(order) == n {
			path := make(domain.Path, n)
			for i, idx := range order {
				path[i] = g.CellAt(idx)
			}
			return path, nil
		}
	}
	return nil, ErrGenerationFailed
}

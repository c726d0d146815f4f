// Package solver decides whether a partial numbering of a hex grid has
// zero, one, or more completions into a full 1..N adjacency path.
//
// Forced-move propagation is exhausted before any search; when it stalls,
// an explicit-stack backtracking search branches on the most constrained
// number and stops as soon as a second completion is found.
package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/hexkudo/internal/domain"
	"svw.info/hexkudo/internal/grid"
	"svw.info/hexkudo/internal/ports"
)

// ErrBudgetExhausted is returned when the node budget runs out before the
// search reaches a verdict. It is an error, never a solve outcome.
var ErrBudgetExhausted = errors.New("solver node budget exhausted")

// DefaultMaxNodes bounds the number of search placements per Solve call.
const DefaultMaxNodes = 2_000_000

// Options tunes the search.
type Options struct {
	// MaxNodes caps search placements; 0 means DefaultMaxNodes.
	MaxNodes int
	// NoPropagate disables forced-move propagation inside the search,
	// leaving pure backtracking. Diagnostic use only.
	NoPropagate bool
}

// Backtracking is the propagation + backtracking solver.
type Backtracking struct {
	opts Options
}

// New returns a solver with default options.
func New() *Backtracking { return &Backtracking{} }

// NewWithOptions returns a solver with explicit budgets.
func NewWithOptions(opts Options) *Backtracking { return &Backtracking{opts: opts} }

// Solve classifies the clue set over g. The statistics are returned for
// every outcome so the difficulty estimator can grade the puzzle.
func (s *Backtracking) Solve(ctx context.Context, g *grid.Grid, clues domain.Assignment) (ports.SolveResult, error) {
	start := time.Now()
	res := ports.SolveResult{Outcome: domain.Unsolvable}

	st, ok := newState(g, clues)
	if !ok {
		// Clues already violate the bijection or adjacency constraints.
		res.Stats.Duration = time.Since(start)
		return res, nil
	}

	maxNodes := s.opts.MaxNodes
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}

	outcome, solution, err := st.search(ctx, maxNodes, !s.opts.NoPropagate)
	res.Stats = st.stats
	res.Stats.Duration = time.Since(start)
	if err != nil {
		return res, err
	}
	res.Outcome = outcome
	res.Solution = solution
	return res, nil
}

// ForcedMove returns one forced placement for the given assignment: an
// unplaced number whose placed neighbor (k-1 or k+1) leaves exactly one
// consistent cell. This is the single propagation step the hint feature
// exposes. The lowest such number wins, for determinism.
func ForcedMove(g *grid.Grid, asg domain.Assignment) (domain.Cell, int, bool) {
	st, ok := newState(g, asg)
	if !ok {
		return domain.Cell{}, 0, false
	}
	var buf []int
	for k := 1; k <= st.n; k++ {
		if st.cellOf[k] >= 0 || !st.anchored(k) {
			continue
		}
		buf = st.candidatesFor(k, buf[:0])
		if len(buf) == 1 {
			return g.CellAt(buf[0]), k, true
		}
	}
	return domain.Cell{}, 0, false
}

// state is the index-based working representation of a partial numbering.
type state struct {
	g      *grid.Grid
	n      int
	cellOf []int // cellOf[k] = cell index holding number k, or -1; [0] unused
	numOf  []int // numOf[ci] = number at cell ci, or 0
	placed int
	trail  []placement
	stats  ports.Stats
}

type placement struct {
	number int
	cell   int
}

// newState converts an assignment to arrays and verifies it is a partial
// bijection whose consecutive placed numbers sit on adjacent cells.
// ok is false when no completion can exist.
func newState(g *grid.Grid, asg domain.Assignment) (*state, bool) {
	n := g.Len()
	st := &state{
		g:      g,
		n:      n,
		cellOf: make([]int, n+1),
		numOf:  make([]int, n),
	}
	for k := range st.cellOf {
		st.cellOf[k] = -1
	}
	for cell, k := range asg {
		ci, ok := g.Index(cell)
		if !ok || k < 1 || k > n {
			return nil, false
		}
		if st.cellOf[k] >= 0 || st.numOf[ci] != 0 {
			return nil, false // duplicate number or doubly-assigned cell
		}
		st.cellOf[k] = ci
		st.numOf[ci] = k
		st.placed++
	}
	for k := 1; k < n; k++ {
		if st.cellOf[k] >= 0 && st.cellOf[k+1] >= 0 {
			if !adjacentIdx(g, st.cellOf[k], st.cellOf[k+1]) {
				return nil, false
			}
		}
	}
	return st, true
}

func adjacentIdx(g *grid.Grid, a, b int) bool {
	for _, nb := range g.NeighborIndices(a) {
		if nb == b {
			return true
		}
	}
	return false
}

func (st *state) place(k, ci int) {
	st.cellOf[k] = ci
	st.numOf[ci] = k
	st.placed++
	st.trail = append(st.trail, placement{number: k, cell: ci})
}

// undoTo rolls the trail back to length mark.
func (st *state) undoTo(mark int) {
	for len(st.trail) > mark {
		p := st.trail[len(st.trail)-1]
		st.trail = st.trail[:len(st.trail)-1]
		st.cellOf[p.number] = -1
		st.numOf[p.cell] = 0
		st.placed--
	}
}

// anchored reports whether k has a placed numeric neighbor to hang off.
func (st *state) anchored(k int) bool {
	return (k > 1 && st.cellOf[k-1] >= 0) || (k < st.n && st.cellOf[k+1] >= 0)
}

// legal reports whether number k may occupy cell ci given current placements.
func (st *state) legal(k, ci int) bool {
	if st.numOf[ci] != 0 {
		return false
	}
	if k > 1 {
		if prev := st.cellOf[k-1]; prev >= 0 && !adjacentIdx(st.g, prev, ci) {
			return false
		}
	}
	if k < st.n {
		if next := st.cellOf[k+1]; next >= 0 && !adjacentIdx(st.g, next, ci) {
			return false
		}
	}
	return true
}

// candidatesFor appends the legal cells for unplaced number k to buf, in
// ascending cell order (lowest coordinate first). When k has a placed
// numeric neighbor only that neighbor's adjacency needs scanning;
// otherwise every empty cell is a candidate.
func (st *state) candidatesFor(k int, buf []int) []int {
	var anchor = -1
	if k > 1 && st.cellOf[k-1] >= 0 {
		anchor = st.cellOf[k-1]
	} else if k < st.n && st.cellOf[k+1] >= 0 {
		anchor = st.cellOf[k+1]
	}
	if anchor >= 0 {
		for _, ci := range st.g.NeighborIndices(anchor) {
			if st.legal(k, ci) {
				buf = append(buf, ci)
			}
		}
		return buf
	}
	for ci := 0; ci < st.n; ci++ {
		if st.legal(k, ci) {
			buf = append(buf, ci)
		}
	}
	return buf
}

// path materializes the complete numbering as a cell sequence.
func (st *state) path() domain.Path {
	out := make(domain.Path, st.n)
	for k := 1; k <= st.n; k++ {
		out[k-1] = st.g.CellAt(st.cellOf[k])
	}
	return out
}

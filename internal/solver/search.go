package solver

import (
	"context"

	"svw.info/hexkudo/internal/domain"
)

// frame is one level of the explicit backtracking stack: a chosen number,
// its candidate cells in canonical order, and the trail mark to roll back
// to before trying the next candidate.
type frame struct {
	number int
	cands  []int
	next   int
	mark   int
}

// search counts completions up to 2. The stack is explicit rather than
// recursive so depth is observable, memory is bounded by N frames, and
// cancellation is checked between steps.
func (st *state) search(ctx context.Context, maxNodes int, propagate bool) (domain.SolveOutcome, domain.Path, error) {
	if propagate && !st.propagate() {
		return domain.Unsolvable, nil, nil
	}
	if st.placed == st.n {
		// Clues plus propagation leave nothing to search; the single
		// completion is whatever the trail now holds.
		return domain.UniqueSolution, st.path(), nil
	}

	count := 0
	var first domain.Path
	stack := make([]frame, 0, st.n)
	stack = append(stack, st.newFrame())

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return domain.Unsolvable, nil, err
		}
		top := &stack[len(stack)-1]
		st.undoTo(top.mark)

		if top.next >= len(top.cands) {
			stack = stack[:len(stack)-1]
			continue
		}
		ci := top.cands[top.next]
		top.next++

		st.stats.Nodes++
		if st.stats.Nodes > maxNodes {
			return domain.Unsolvable, nil, ErrBudgetExhausted
		}

		st.place(top.number, ci)
		if propagate && !st.propagate() {
			continue
		}
		if st.placed == st.n {
			count++
			if count == 1 {
				first = st.path()
				continue
			}
			// Second distinct completion: uniqueness is settled.
			return domain.MultipleSolutions, nil, nil
		}

		stack = append(stack, st.newFrame())
		if d := len(stack); d > st.stats.MaxDepth {
			st.stats.MaxDepth = d
		}
	}

	switch count {
	case 0:
		return domain.Unsolvable, nil, nil
	default:
		return domain.UniqueSolution, first, nil
	}
}

// newFrame picks the branching number: among unplaced numbers with a
// placed numeric neighbor, the one with the fewest legal cells, lowest
// number on ties. With no anchored number at all (a clue-free board),
// the lowest unplaced number branches over every empty cell.
func (st *state) newFrame() frame {
	bestK := -1
	var bestCands []int
	var buf []int
	for k := 1; k <= st.n; k++ {
		if st.cellOf[k] >= 0 || !st.anchored(k) {
			continue
		}
		buf = st.candidatesFor(k, buf[:0])
		if bestK < 0 || len(buf) < len(bestCands) {
			bestK = k
			bestCands = append([]int(nil), buf...)
			if len(bestCands) <= 1 {
				break
			}
		}
	}
	if bestK < 0 {
		for k := 1; k <= st.n; k++ {
			if st.cellOf[k] < 0 {
				bestK = k
				bestCands = st.candidatesFor(k, nil)
				break
			}
		}
	}
	if len(bestCands) > 1 {
		st.stats.BranchPoints++
	}
	return frame{number: bestK, cands: bestCands, mark: len(st.trail)}
}

// Package hint surfaces one forced move from the solver's propagation
// phase to the UI.
package hint

import (
	"fmt"

	"svw.info/hexkudo/internal/domain"
	"svw.info/hexkudo/internal/grid"
	"svw.info/hexkudo/internal/solver"
)

type Forced struct{}

func NewForced() *Forced { return &Forced{} }

// Hint returns the lowest-numbered forced placement on the merged board,
// if any. A board in a contradictory state yields no hint.
func (h *Forced) Hint(g *grid.Grid, p *domain.Puzzle, asg domain.Assignment) (domain.Hint, bool) {
	board := asg.Clone()
	for _, cl := range p.Clues {
		board[cl.Cell] = cl.Number
	}
	cell, number, ok := solver.ForcedMove(g, board)
	if !ok {
		return domain.Hint{}, false
	}
	return domain.Hint{
		Cell:    cell,
		Number:  number,
		Message: fmt.Sprintf("Forced: only this cell can hold %d", number),
	}, true
}

// Package validator performs fast play-time checks: local move legality
// and whole-board completion, without running a full solve.
package validator

import (
	"errors"

	"svw.info/hexkudo/internal/domain"
	"svw.info/hexkudo/internal/grid"
)

// ErrBadMove rejects calls that are malformed rather than merely illegal:
// a cell outside the grid or a number outside 1..N.
var ErrBadMove = errors.New("move outside the grid or number range")

type Fast struct{}

func New() *Fast { return &Fast{} }

// merged overlays player entries on the clue set; clues win.
func merged(p *domain.Puzzle, asg domain.Assignment) domain.Assignment {
	out := asg.Clone()
	for _, cl := range p.Clues {
		out[cl.Cell] = cl.Number
	}
	return out
}

// ValidateMove checks a single placement against what is already on the
// board. Duplicates (number already used, cell already occupied) beat
// adjacency in the verdict, since the UI treats them differently.
func (v *Fast) ValidateMove(g *grid.Grid, p *domain.Puzzle, asg domain.Assignment, cell domain.Cell, number int) (domain.MoveVerdict, error) {
	if !g.Contains(cell) || number < 1 || number > g.Len() {
		return domain.MoveRejectedDuplicate, ErrBadMove
	}
	board := merged(p, asg)

	if have, ok := board[cell]; ok && have != number {
		return domain.MoveRejectedDuplicate, nil
	}
	for c, n := range board {
		if n == number && c != cell {
			return domain.MoveRejectedDuplicate, nil
		}
	}
	if c, ok := cellWith(board, number-1); ok && !g.Adjacent(c, cell) {
		return domain.MoveRejectedAdjacency, nil
	}
	if c, ok := cellWith(board, number+1); ok && !g.Adjacent(c, cell) {
		return domain.MoveRejectedAdjacency, nil
	}
	return domain.MoveAccepted, nil
}

func cellWith(board domain.Assignment, number int) (domain.Cell, bool) {
	for c, n := range board {
		if n == number {
			return c, true
		}
	}
	return domain.Cell{}, false
}

// CheckComplete reports whether the merged board is a finished, valid
// numbering: a bijection 1..N onto the grid with every consecutive pair
// adjacent.
func (v *Fast) CheckComplete(g *grid.Grid, p *domain.Puzzle, asg domain.Assignment) (domain.Completion, error) {
	board := merged(p, asg)
	n := g.Len()
	if len(board) < n {
		return domain.Incomplete, nil
	}

	cellOf := make([]domain.Cell, n+1)
	seen := make([]bool, n+1)
	filled := 0
	for c, num := range board {
		if !g.Contains(c) || num < 1 || num > n || seen[num] {
			return domain.InvalidCompletion, nil
		}
		seen[num] = true
		cellOf[num] = c
		filled++
	}
	if filled < n {
		return domain.Incomplete, nil
	}
	for k := 1; k < n; k++ {
		if !g.Adjacent(cellOf[k], cellOf[k+1]) {
			return domain.InvalidCompletion, nil
		}
	}
	return domain.Solved, nil
}

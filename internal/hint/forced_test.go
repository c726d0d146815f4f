package hint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"svw.info/hexkudo/internal/domain"
	"svw.info/hexkudo/internal/grid"
)

func hexGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.Build(domain.ShapeHexagon, 1)
	assert.NoError(t, err)
	return g
}

func TestHintReturnsForcedMove(t *testing.T) {
	g := hexGrid(t)
	// Ring solution with 4 hidden: its cell is the only empty one.
	p := &domain.Puzzle{
		Shape: domain.ShapeHexagon,
		Size:  1,
		Clues: []domain.Clue{
			{Cell: domain.Cell{Q: -1, R: 0}, Number: 1},
			{Cell: domain.Cell{Q: -1, R: 1}, Number: 2},
			{Cell: domain.Cell{Q: 0, R: 1}, Number: 3},
			{Cell: domain.Cell{Q: 1, R: -1}, Number: 5},
			{Cell: domain.Cell{Q: 0, R: -1}, Number: 6},
			{Cell: domain.Cell{Q: 0, R: 0}, Number: 7},
		},
	}
	h, ok := NewForced().Hint(g, p, domain.Assignment{})
	assert.True(t, ok)
	assert.Equal(t, 4, h.Number)
	assert.Equal(t, domain.Cell{Q: 1, R: 0}, h.Cell)
	assert.NotEmpty(t, h.Message)
}

func TestHintConsidersPlayerEntries(t *testing.T) {
	g := hexGrid(t)
	p := &domain.Puzzle{
		Shape: domain.ShapeHexagon,
		Size:  1,
		Clues: []domain.Clue{
			{Cell: domain.Cell{Q: -1, R: 0}, Number: 1},
			{Cell: domain.Cell{Q: 0, R: 0}, Number: 7},
		},
	}
	asg := domain.Assignment{
		{Q: -1, R: 1}: 2,
		{Q: 0, R: 1}:  3,
		{Q: 1, R: -1}: 5,
		{Q: 0, R: -1}: 6,
	}
	h, ok := NewForced().Hint(g, p, asg)
	assert.True(t, ok)
	assert.Equal(t, 4, h.Number)
	assert.Equal(t, domain.Cell{Q: 1, R: 0}, h.Cell)
}

func TestHintNoneAvailable(t *testing.T) {
	g := hexGrid(t)
	p := &domain.Puzzle{
		Shape: domain.ShapeHexagon,
		Size:  1,
		Clues: []domain.Clue{{Cell: domain.Cell{Q: 0, R: 0}, Number: 1}},
	}
	_, ok := NewForced().Hint(g, p, domain.Assignment{})
	assert.False(t, ok)
}

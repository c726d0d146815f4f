// Package grid models the finite hex board: which cells exist for a
// shape/size and which cells are adjacent.
package grid

import (
	"errors"
	"fmt"
	"sort"

	"svw.info/hexkudo/internal/domain"
)

// ErrInvalidShape rejects malformed, too-small, or disconnected layouts.
var ErrInvalidShape = errors.New("invalid grid shape")

// Grid is the immutable set of valid cells plus their adjacency.
// Cells are stored row-major (by R, then Q); every index-based API
// refers to that order.
type Grid struct {
	shape     domain.Shape
	size      int
	cells     []domain.Cell
	index     map[domain.Cell]int
	neighbors [][]int // per cell, ascending indices of adjacent cells
}

// Build constructs the grid for the given shape and size.
func Build(shape domain.Shape, size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size %d < 1", ErrInvalidShape, size)
	}
	cells, err := cellsFor(shape, size)
	if err != nil {
		return nil, err
	}
	if len(cells) < 2 {
		return nil, fmt.Errorf("%w: %s/%d has %d cells, need at least 2",
			ErrInvalidShape, shape, size, len(cells))
	}

	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })

	g := &Grid{
		shape:     shape,
		size:      size,
		cells:     cells,
		index:     make(map[domain.Cell]int, len(cells)),
		neighbors: make([][]int, len(cells)),
	}
	for i, c := range cells {
		g.index[c] = i
	}
	for i, c := range cells {
		for d := range domain.Directions {
			if j, ok := g.index[c.Neighbor(d)]; ok {
				g.neighbors[i] = append(g.neighbors[i], j)
			}
		}
		sort.Ints(g.neighbors[i])
	}

	if !g.connected() {
		return nil, fmt.Errorf("%w: %s/%d is disconnected", ErrInvalidShape, shape, size)
	}
	return g, nil
}

// connected checks that every cell is reachable from cell 0.
func (g *Grid) connected() bool {
	seen := make([]bool, len(g.cells))
	queue := []int{0}
	seen[0] = true
	reached := 1
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range g.neighbors[cur] {
			if !seen[nb] {
				seen[nb] = true
				reached++
				queue = append(queue, nb)
			}
		}
	}
	return reached == len(g.cells)
}

func (g *Grid) Shape() domain.Shape { return g.shape }
func (g *Grid) Size() int           { return g.size }

// Len returns the number of cells, i.e. the highest number in a path.
func (g *Grid) Len() int { return len(g.cells) }

// Cells returns a copy of the cells in canonical order.
func (g *Grid) Cells() []domain.Cell {
	out := make([]domain.Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Contains reports whether the cell is part of the grid.
func (g *Grid) Contains(c domain.Cell) bool {
	_, ok := g.index[c]
	return ok
}

// Index returns the canonical index of a cell.
func (g *Grid) Index(c domain.Cell) (int, bool) {
	i, ok := g.index[c]
	return i, ok
}

// CellAt returns the cell at canonical index i.
func (g *Grid) CellAt(i int) domain.Cell { return g.cells[i] }

// Neighbors returns the cells adjacent to c that are present in the grid.
func (g *Grid) Neighbors(c domain.Cell) []domain.Cell {
	i, ok := g.index[c]
	if !ok {
		return nil
	}
	out := make([]domain.Cell, len(g.neighbors[i]))
	for k, j := range g.neighbors[i] {
		out[k] = g.cells[j]
	}
	return out
}

// NeighborIndices returns the adjacency list of cell i in ascending order.
// The returned slice is shared and must not be mutated.
func (g *Grid) NeighborIndices(i int) []int { return g.neighbors[i] }

// Adjacent reports whether a and b are neighboring grid cells.
func (g *Grid) Adjacent(a, b domain.Cell) bool {
	i, ok := g.index[a]
	if !ok {
		return false
	}
	j, ok := g.index[b]
	if !ok {
		return false
	}
	for _, nb := range g.neighbors[i] {
		if nb == j {
			return true
		}
	}
	return false
}

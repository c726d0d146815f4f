package grid

import (
	"fmt"

	"svw.info/hexkudo/internal/domain"
)

// cellsFor enumerates the cells of a shape. Enumeration order does not
// matter; Build sorts into canonical order.
func cellsFor(shape domain.Shape, size int) ([]domain.Cell, error) {
	switch shape {
	case domain.ShapeHexagon:
		// All cells within hex distance `size` of the origin:
		// max(|q|, |r|, |s|) <= size. Yields 3*size*(size+1)+1 cells.
		var cells []domain.Cell
		for q := -size; q <= size; q++ {
			for r := -size; r <= size; r++ {
				c := domain.Cell{Q: q, R: r}
				if abs(c.S()) <= size {
					cells = append(cells, c)
				}
			}
		}
		return cells, nil
	case domain.ShapeTriangle:
		// Rows of decreasing width: size cells per side, size*(size+1)/2 total.
		var cells []domain.Cell
		for r := 0; r < size; r++ {
			for q := 0; q+r < size; q++ {
				cells = append(cells, domain.Cell{Q: q, R: r})
			}
		}
		return cells, nil
	case domain.ShapeParallelogram:
		cells := make([]domain.Cell, 0, size*size)
		for r := 0; r < size; r++ {
			for q := 0; q < size; q++ {
				cells = append(cells, domain.Cell{Q: q, R: r})
			}
		}
		return cells, nil
	default:
		return nil, fmt.Errorf("%w: unknown shape %d", ErrInvalidShape, shape)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ShapeInfo describes a shape family for puzzle selection UIs.
type ShapeInfo struct {
	Shape   domain.Shape `json:"shape"`
	Name    string       `json:"name"`
	MinSize int          `json:"minSize"`
	// Cells reports the cell count at a given size.
	Cells func(size int) int `json:"-"`
}

// Shapes lists the supported shape families. Hexagon size 1 is the
// smallest playable board (7 cells); triangle and parallelogram need
// size 2 to reach two cells.
func Shapes() []ShapeInfo {
	return []ShapeInfo{
		{Shape: domain.ShapeHexagon, Name: "hexagon", MinSize: 1,
			Cells: func(s int) int { return 3*s*(s+1) + 1 }},
		{Shape: domain.ShapeTriangle, Name: "triangle", MinSize: 2,
			Cells: func(s int) int { return s * (s + 1) / 2 }},
		{Shape: domain.ShapeParallelogram, Name: "parallelogram", MinSize: 2,
			Cells: func(s int) int { return s * s }},
	}
}

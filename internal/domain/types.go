package domain

// Cell identifies a position on the hex lattice using axial coordinates.
// The third cube coordinate is implicit: s = -q - r.
type Cell struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (c Cell) S() int { return -c.Q - c.R }

// Directions holds the six axial neighbor offsets, counter-clockwise from east.
var Directions = [6]Cell{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbor returns the adjacent cell in direction i (0..5).
func (c Cell) Neighbor(i int) Cell {
	d := Directions[i]
	return Cell{Q: c.Q + d.Q, R: c.R + d.R}
}

// Less orders cells row-major: by R, then by Q. All deterministic
// tie-breaking in the engine uses this order.
func (c Cell) Less(o Cell) bool {
	if c.R != o.R {
		return c.R < o.R
	}
	return c.Q < o.Q
}

// Clue is a pre-placed number shown to the player at puzzle start.
type Clue struct {
	Cell   Cell `json:"cell"`
	Number int  `json:"number"`
}

// Path is a full visiting order of the grid: Path[i] holds the cell
// numbered i+1. Consecutive entries are adjacent.
type Path []Cell

// Equal reports whether two paths visit the same cells in the same order.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Assignment maps cells to numbers during play or solving. It may be
// partial and, mid-play, inconsistent; the engine validates before
// reporting anything as a solution.
type Assignment map[Cell]int

// Clone returns an independent copy of the assignment.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for c, n := range a {
		out[c] = n
	}
	return out
}

// Hint describes one forced move for the UI.
type Hint struct {
	Cell    Cell   `json:"cell"`
	Number  int    `json:"number"`
	Message string `json:"message,omitempty"`
}

// Puzzle is a persisted hexkudo puzzle with metadata. The clue set plus
// adjacency admits exactly one completion, which is Solution.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Shape      Shape      `json:"shape"`
	Size       int        `json:"size"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Clues      []Clue     `json:"clues"`
	Solution   Path       `json:"solution"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// ClueAssignment returns the clue set as an Assignment.
func (p *Puzzle) ClueAssignment() Assignment {
	out := make(Assignment, len(p.Clues))
	for _, cl := range p.Clues {
		out[cl.Cell] = cl.Number
	}
	return out
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Shape      Shape      `json:"shape"`
	Size       int        `json:"size"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}

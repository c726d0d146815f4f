package domain

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// Shape selects a board layout family; Size scales it.
type Shape int

const (
	ShapeHexagon       Shape = iota // regular hexagon of the given radius
	ShapeTriangle                   // triangle with Size cells per side
	ShapeParallelogram              // rhombus, Size cells per side
)

func (s Shape) String() string {
	switch s {
	case ShapeTriangle:
		return "triangle"
	case ShapeParallelogram:
		return "parallelogram"
	default:
		return "hexagon"
	}
}

// SolveOutcome is the solver's verdict on a clue set.
type SolveOutcome int

const (
	Unsolvable SolveOutcome = iota
	UniqueSolution
	MultipleSolutions
)

func (o SolveOutcome) String() string {
	switch o {
	case UniqueSolution:
		return "unique"
	case MultipleSolutions:
		return "multiple"
	default:
		return "unsolvable"
	}
}

// MoveVerdict is the result of a local move legality check.
type MoveVerdict int

const (
	MoveAccepted MoveVerdict = iota
	MoveRejectedAdjacency
	MoveRejectedDuplicate
)

func (v MoveVerdict) String() string {
	switch v {
	case MoveRejectedAdjacency:
		return "rejected-adjacency"
	case MoveRejectedDuplicate:
		return "rejected-duplicate"
	default:
		return "accepted"
	}
}

// Completion is the result of a whole-board completeness check.
type Completion int

const (
	Incomplete Completion = iota
	Solved
	InvalidCompletion
)

func (c Completion) String() string {
	switch c {
	case Solved:
		return "solved"
	case InvalidCompletion:
		return "invalid"
	default:
		return "incomplete"
	}
}

package ports

import (
	"context"
	"time"

	"svw.info/hexkudo/internal/domain"
	"svw.info/hexkudo/internal/grid"
)

// Stats captures search characteristics of a solver or builder run.
// The difficulty estimator grades puzzles from these numbers.
type Stats struct {
	ForcedMoves  int
	BranchPoints int
	MaxDepth     int
	Nodes        int
	Duration     time.Duration
}

// SolveResult is the solver's verdict plus its search statistics.
// Solution is set only for UniqueSolution.
type SolveResult struct {
	Outcome  domain.SolveOutcome
	Solution domain.Path
	Stats    Stats
}

// Solver decides whether a clue set admits zero, one, or more completions.
type Solver interface {
	Solve(ctx context.Context, g *grid.Grid, clues domain.Assignment) (SolveResult, error)
}

// PathGenerator produces a full Hamiltonian numbering of a grid.
// Identical (grid, seed) must reproduce an identical path.
type PathGenerator interface {
	Generate(ctx context.Context, g *grid.Grid, seed int64) (domain.Path, error)
}

// Builder derives a playable puzzle at a target difficulty.
type Builder interface {
	BuildPuzzle(ctx context.Context, g *grid.Grid, target domain.Difficulty, seed int64) (*domain.Puzzle, Stats, error)
}

// Validator performs fast play-time checks without running a full solve.
type Validator interface {
	ValidateMove(g *grid.Grid, p *domain.Puzzle, asg domain.Assignment, cell domain.Cell, number int) (domain.MoveVerdict, error)
	CheckComplete(g *grid.Grid, p *domain.Puzzle, asg domain.Assignment) (domain.Completion, error)
}

// Hinter returns one forced move, if any exists.
type Hinter interface {
	Hint(g *grid.Grid, p *domain.Puzzle, asg domain.Assignment) (domain.Hint, bool)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}

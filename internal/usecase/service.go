package usecase

import (
	"context"
	"errors"
	"time"

	"svw.info/hexkudo/internal/domain"
	"svw.info/hexkudo/internal/grid"
	"svw.info/hexkudo/internal/ports"
)

// Service is the engine's boundary with the UI/session layer.
type Service struct {
	Solver    ports.Solver
	Builder   ports.Builder
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, b ports.Builder, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Builder: b, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// NewPuzzle builds a fresh puzzle. Seed 0 draws a fresh random seed; an
// explicit seed reproduces the same puzzle for daily/shared play.
func (u *Service) NewPuzzle(ctx context.Context, shape domain.Shape, size int, target domain.Difficulty, seed int64) (*domain.Puzzle, ports.Stats, error) {
	if u.Builder == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	g, err := grid.Build(shape, size)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return u.Builder.BuildPuzzle(ctx, g, target, seed)
}

// Solve classifies the puzzle's clue set merged with player entries.
func (u *Service) Solve(ctx context.Context, p *domain.Puzzle, asg domain.Assignment) (ports.SolveResult, error) {
	if u.Solver == nil {
		return ports.SolveResult{}, errNotConfigured
	}
	g, err := grid.Build(p.Shape, p.Size)
	if err != nil {
		return ports.SolveResult{}, err
	}
	// Clues are immutable: they take precedence over player entries.
	board := asg.Clone()
	for _, cl := range p.Clues {
		board[cl.Cell] = cl.Number
	}
	return u.Solver.Solve(ctx, g, board)
}

// ValidateMove checks one placement locally.
func (u *Service) ValidateMove(p *domain.Puzzle, asg domain.Assignment, cell domain.Cell, number int) (domain.MoveVerdict, error) {
	if u.Validator == nil {
		return domain.MoveRejectedDuplicate, errNotConfigured
	}
	g, err := grid.Build(p.Shape, p.Size)
	if err != nil {
		return domain.MoveRejectedDuplicate, err
	}
	return u.Validator.ValidateMove(g, p, asg, cell, number)
}

// CheckComplete reports the board's completion status.
func (u *Service) CheckComplete(p *domain.Puzzle, asg domain.Assignment) (domain.Completion, error) {
	if u.Validator == nil {
		return domain.Incomplete, errNotConfigured
	}
	g, err := grid.Build(p.Shape, p.Size)
	if err != nil {
		return domain.Incomplete, err
	}
	return u.Validator.CheckComplete(g, p, asg)
}

// Hint exposes one forced move, if one exists.
func (u *Service) Hint(p *domain.Puzzle, asg domain.Assignment) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	g, err := grid.Build(p.Shape, p.Size)
	if err != nil {
		return domain.Hint{}, false, err
	}
	h, ok := u.Hinter.Hint(g, p, asg)
	return h, ok, nil
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}

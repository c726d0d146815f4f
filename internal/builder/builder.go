// Package builder derives playable puzzles: generate a full path, then
// greedily hide numbers while the solver still reports a unique solution,
// stopping once the difficulty estimate reaches the requested tier.
package builder

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"time"

	"svw.info/hexkudo/internal/difficulty"
	"svw.info/hexkudo/internal/domain"
	"svw.info/hexkudo/internal/grid"
	"svw.info/hexkudo/internal/ports"
)

// ErrBuilderFailed is returned when no attempt reached the target tier.
var ErrBuilderFailed = errors.New("puzzle build failed: attempt budget exhausted")

// DefaultMaxAttempts bounds path regeneration retries per build.
const DefaultMaxAttempts = 16

// Options configures puzzle building behavior.
type Options struct {
	// MaxAttempts caps full regenerate-and-carve attempts; 0 means
	// DefaultMaxAttempts.
	MaxAttempts int
}

// Builder drives the path generator and solver.
type Builder struct {
	gen    ports.PathGenerator
	solver ports.Solver
	opts   Options
}

// New wires a builder from a path generator and a solver.
func New(gen ports.PathGenerator, solver ports.Solver, opts Options) *Builder {
	return &Builder{gen: gen, solver: solver, opts: opts}
}

// BuildPuzzle produces a puzzle over g whose clue set has exactly one
// completion and whose estimated difficulty is at least target.
// Identical (g, target, seed) reproduce an identical puzzle.
// Cancellation is checked between removal attempts, never mid-solve.
func (b *Builder) BuildPuzzle(ctx context.Context, g *grid.Grid, target domain.Difficulty, seed int64) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	attempts := b.opts.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	rng := rand.New(rand.NewSource(seed))
	n := g.Len()
	totalNodes := 0

	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{}, err
		}

		path, err := b.gen.Generate(ctx, g, rng.Int63())
		if err != nil {
			if ctx.Err() != nil {
				return nil, ports.Stats{}, err
			}
			continue // re-seed and retry
		}

		clues := make(domain.Assignment, n)
		for i, cell := range path {
			clues[cell] = i + 1
		}

		var last ports.Stats
		tier := domain.Easy
		reached := false

		for _, idx := range rng.Perm(n) {
			if reached {
				break
			}
			if err := ctx.Err(); err != nil {
				return nil, ports.Stats{}, err
			}
			cell := g.CellAt(idx)
			num, ok := clues[cell]
			if !ok {
				continue
			}
			delete(clues, cell)
			res, err := b.solver.Solve(ctx, g, clues)
			totalNodes += res.Stats.Nodes
			if err != nil || res.Outcome != domain.UniqueSolution {
				clues[cell] = num // removal lost uniqueness, restore
				continue
			}
			last = res.Stats
			tier = difficulty.Estimate(res.Stats, len(clues), n)
			if tier >= target {
				reached = true
			}
		}

		if !reached {
			continue
		}

		stats := last
		stats.Nodes = totalNodes
		stats.Duration = time.Since(start)
		return assemble(g, path, clues, tier, seed), stats, nil
	}
	return nil, ports.Stats{Nodes: totalNodes, Duration: time.Since(start)}, ErrBuilderFailed
}

// assemble freezes the working clue set into an immutable puzzle, clues
// in canonical cell order.
func assemble(g *grid.Grid, path domain.Path, clues domain.Assignment, tier domain.Difficulty, seed int64) *domain.Puzzle {
	list := make([]domain.Clue, 0, len(clues))
	for cell, num := range clues {
		list = append(list, domain.Clue{Cell: cell, Number: num})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Cell.Less(list[j].Cell) })

	solution := make(domain.Path, len(path))
	copy(solution, path)

	return &domain.Puzzle{
		Seed:       seed,
		Shape:      g.Shape(),
		Size:       g.Size(),
		Difficulty: tier,
		Clues:      list,
		Solution:   solution,
		CreatedAt:  time.Now().UnixNano(),
	}
}

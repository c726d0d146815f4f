package usecase

import (
	"context"
	"sync"

	"svw.info/hexkudo/internal/domain"
	"svw.info/hexkudo/internal/ports"
)

// BuildRequest asks for one puzzle.
type BuildRequest struct {
	Shape      domain.Shape
	Size       int
	Difficulty domain.Difficulty
	Seed       int64
}

// BuildResult is delivered asynchronously once the build finishes or is
// canceled.
type BuildResult struct {
	Puzzle *domain.Puzzle
	Stats  ports.Stats
	Err    error
}

// BuildWorker runs puzzle builds off the interactive thread, one
// in-flight build at a time. Submitting a new request cancels the
// previous build; cancellation is cooperative: the builder observes it
// between its bounded attempts, never mid-step.
type BuildWorker struct {
	svc *Service

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewBuildWorker(svc *Service) *BuildWorker {
	return &BuildWorker{svc: svc}
}

// Submit starts a build and returns a channel carrying its single result.
// Any build still in flight is canceled first; its channel receives the
// cancellation error.
func (w *BuildWorker) Submit(ctx context.Context, req BuildRequest) <-chan BuildResult {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
	}
	bctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.mu.Unlock()

	out := make(chan BuildResult, 1)
	go func() {
		p, st, err := w.svc.NewPuzzle(bctx, req.Shape, req.Size, req.Difficulty, req.Seed)
		out <- BuildResult{Puzzle: p, Stats: st, Err: err}
		close(out)
	}()
	return out
}

// Stop cancels any in-flight build.
func (w *BuildWorker) Stop() {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.mu.Unlock()
}

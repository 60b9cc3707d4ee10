package wfc

import (
	"context"
	"sync"
)

// Runner owns the single worker goroutine driving a solve and
// enforces the restart discipline: cancel, wait for the worker to
// exit, then rebuild catalog & board. With that stop-and-wait rule
// the board only ever has one writer, so it needs no lock of its own.
type Runner struct {
	cfg     *Config
	observe Observer

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	catalog *Catalog
	board   *Board
	solver  *Solver
	outcome Outcome
	err     error
}

// NewRunner returns a runner; a nil cfg gets defaults.
func NewRunner(cfg *Config) *Runner {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Runner{cfg: cfg}
}

// Observe sets the event callback applied to every subsequent run.
func (r *Runner) Observe(fn Observer) {
	r.observe = fn
}

// Restart stops any active run, waits for its worker to exit, then
// rebuilds state for the given set & dimensions and launches a new
// worker.
func (r *Runner) Restart(set *Set, width, height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()

	catalog, err := BuildCatalog(set)
	if err != nil {
		return err
	}

	board := NewBoard(width, height, catalog)
	solver := NewSolver(catalog, board, r.cfg)
	solver.Observe(r.observe)
	if err := solver.PlaceSeed(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	r.catalog = catalog
	r.board = board
	r.solver = solver
	r.cancel = cancel
	r.done = done

	go func() {
		outcome, err := solver.Run(ctx)

		r.mu.Lock()
		r.outcome = outcome
		r.err = err
		r.mu.Unlock()

		close(done)
	}()

	return nil
}

// Stop cancels the active run and blocks until the worker has
// observed it and exited.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

func (r *Runner) stopLocked() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	done := r.done

	// worker needs the lock to record its outcome
	r.mu.Unlock()
	<-done
	r.mu.Lock()

	// a concurrent Restart may have installed a fresh run while we
	// waited; only clear the handles of the run we stopped
	if r.done == done {
		r.cancel = nil
		r.done = nil
	}
}

// Wait blocks until the current run terminates and returns its
// outcome. Returns Stopped immediately if no run is active.
func (r *Runner) Wait() (Outcome, error) {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()

	if done == nil {
		return Stopped, nil
	}
	<-done

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcome, r.err
}

// Board returns the board of the most recent run. Read it only after
// Wait / Stop, per the single-writer rule.
func (r *Runner) Board() *Board {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.board
}

// Catalog returns the catalog of the most recent run.
func (r *Runner) Catalog() *Catalog {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.catalog
}

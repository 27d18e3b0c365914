package executor

import (
	"context"
	"fmt"
	"sync"

	"github.com/vk/taskgrid/internal/ctxlog"
)

// Run executes every task exactly once using wave scheduling: all
// currently-ready tasks are dispatched together onto the worker pool, and
// the whole wave drains before the next readiness scan. Tasks joined by a
// derived edge therefore never overlap, and a predecessor fully completes
// before its successor starts.
//
// The first action failure propagates out after its wave drains; siblings
// already dispatched in the same wave finish naturally, and later waves
// never start. There is no per-task timeout and no cancellation of
// in-flight tasks; the context is only consulted between waves.
func (e *Executor) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	names := e.system.TaskNames()
	preds := make([][]int, len(names))
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	for i, name := range names {
		for _, dep := range e.system.Predecessors(name) {
			preds[i] = append(preds[i], index[dep])
		}
	}

	b := newBoard(len(names))
	wave := 0

	for b.count() < len(names) {
		if err := ctx.Err(); err != nil {
			return err
		}

		done := b.snapshot()
		var ready []int
		for i := range names {
			if done[i] {
				continue
			}
			satisfied := true
			for _, p := range preds[i] {
				if !done[p] {
					satisfied = false
					break
				}
			}
			if satisfied {
				ready = append(ready, i)
			}
		}

		if len(ready) == 0 {
			var remaining []string
			for i, name := range names {
				if !done[i] {
					remaining = append(remaining, name)
				}
			}
			logger.Error("No ready tasks while run is incomplete.", "remaining", remaining)
			return &DeadlockError{Remaining: remaining}
		}

		wave++
		logger.Debug("Dispatching wave.", "wave", wave, "ready_count", len(ready))
		if err := e.runWave(ctx, names, ready, b); err != nil {
			return err
		}
	}

	logger.Debug("Concurrent run finished.", "waves", wave)
	return nil
}

// runWave fans the ready tasks out over the worker pool and joins every
// worker before returning. The returned error is the first action failure
// observed in the wave, if any.
func (e *Executor) runWave(ctx context.Context, names []string, ready []int, b *board) error {
	logger := ctxlog.FromContext(ctx)

	workers := e.numWorkers
	if workers > len(ready) {
		workers = len(ready)
	}
	jobs := make(chan int, len(ready))

	var mu sync.Mutex
	var firstErr error

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(workerID int) {
			defer wg.Done()
			workerLogger := logger.With("workerID", workerID)
			for i := range jobs {
				name := names[i]
				workerLogger.Debug("Worker picked up task.", "task", name)

				t, ok := e.system.Task(name)
				if !ok {
					// Unreachable for a validated schedule.
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("internal error: scheduled task %q not found", name)
					}
					mu.Unlock()
					continue
				}

				if err := runAction(ctx, t); err != nil {
					workerLogger.Error("Task execution failed.", "task", name, "error", err)
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("task %q failed: %w", name, err)
					}
					mu.Unlock()
					continue
				}

				b.markDone(i)
				workerLogger.Debug("Task completed.", "task", name)
			}
		}(w)
	}

	for _, i := range ready {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return firstErr
}

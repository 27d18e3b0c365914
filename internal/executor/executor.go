package executor

import (
	"context"
	"fmt"
	"runtime"

	"github.com/vk/taskgrid/internal/ctxlog"
	"github.com/vk/taskgrid/internal/schedule"
	"github.com/vk/taskgrid/internal/task"
)

// Executor runs the tasks of a schedule. It holds no per-run state; the
// same Executor may be reused for any number of sequential or concurrent
// runs.
type Executor struct {
	system     *schedule.System
	numWorkers int
}

// New creates an executor for the given schedule. A workerCount of zero or
// less selects the host's available concurrency.
func New(system *schedule.System, workerCount int) *Executor {
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	return &Executor{
		system:     system,
		numWorkers: workerCount,
	}
}

// Workers returns the bounded worker pool size used for concurrent runs.
func (e *Executor) Workers() int {
	return e.numWorkers
}

// RunSeq executes every task exactly once, one at a time, in a
// deterministic topological order of the derived graph. The first action
// failure aborts the run immediately; remaining tasks never start.
func (e *Executor) RunSeq(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	order, err := e.system.TopologicalOrder()
	if err != nil {
		return fmt.Errorf("computing execution order: %w", err)
	}
	logger.Debug("Sequential run starting.", "task_count", len(order))

	for _, name := range order {
		t, ok := e.system.Task(name)
		if !ok {
			return fmt.Errorf("internal error: scheduled task %q not found", name)
		}
		logger.Debug("Running task.", "task", name)
		if err := runAction(ctx, t); err != nil {
			logger.Error("Task execution failed.", "task", name, "error", err)
			return fmt.Errorf("task %q failed: %w", name, err)
		}
	}

	logger.Debug("Sequential run finished.")
	return nil
}

// runAction invokes a task's action, treating a nil action as a no-op.
func runAction(ctx context.Context, t *task.Task) error {
	if t.Action == nil {
		return nil
	}
	return t.Action(ctx)
}

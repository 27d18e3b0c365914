package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/taskgrid/internal/ctxlog"
	"github.com/vk/taskgrid/internal/task"
)

// buildAction translates a spec's built-in action attributes into a task
// action. A task with neither attribute gets a nil (no-op) action. The
// sleep action honors context cancellation; the engine itself never
// cancels an in-flight task.
func buildAction(spec *taskSpec) (task.Action, error) {
	var sleepFor time.Duration
	if spec.Sleep != "" {
		d, err := time.ParseDuration(spec.Sleep)
		if err != nil {
			return nil, fmt.Errorf("task %q: invalid sleep duration %q: %w", spec.Name, spec.Sleep, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("task %q: negative sleep duration %q", spec.Name, spec.Sleep)
		}
		sleepFor = d
	}

	if sleepFor == 0 && spec.Echo == "" {
		return nil, nil
	}

	name := spec.Name
	echo := spec.Echo
	return func(ctx context.Context) error {
		if sleepFor > 0 {
			timer := time.NewTimer(sleepFor)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if echo != "" {
			ctxlog.FromContext(ctx).Info(echo, "task", name)
		}
		return nil
	}, nil
}

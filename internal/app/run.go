package app

import (
	"context"
	"fmt"

	"github.com/vk/taskgrid/internal/ctxlog"
	"github.com/vk/taskgrid/internal/dot"
	"github.com/vk/taskgrid/internal/executor"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		a.startHealthcheckServer(a.config.HealthcheckPort)
	}

	if a.config.GraphOnly {
		a.logger.Debug("Rendering maximum-parallelism graph.")
		return dot.Write(a.outW, a.system)
	}

	if a.system.Len() == 0 {
		a.logger.Warn("No tasks found in plan, execution not required.")
		return nil
	}

	exec := executor.New(a.system, a.config.WorkerCount)
	if a.config.Sequential {
		a.logger.Info("🚀 Starting sequential execution...", "tasks", a.system.Len())
		if err := exec.RunSeq(ctx); err != nil {
			return fmt.Errorf("execution failed: %w", err)
		}
	} else {
		a.logger.Info("🚀 Starting concurrent execution...", "tasks", a.system.Len(), "workers", exec.Workers())
		if err := exec.Run(ctx); err != nil {
			return fmt.Errorf("execution failed: %w", err)
		}
	}

	a.logger.Info("🏁 Execution finished.")
	return nil
}

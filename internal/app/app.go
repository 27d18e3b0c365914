package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/taskgrid/internal/ctxlog"
	"github.com/vk/taskgrid/internal/plan"
	"github.com/vk/taskgrid/internal/schedule"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	system *schedule.System
}

// NewApp is the constructor for the main application. It loads the plan and
// builds the validated schedule, so a returned App is always runnable; any
// plan or validation failure surfaces here, before execution starts.
func NewApp(outW io.Writer, appConfig *Config, loader *plan.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	tasks, precedences, err := loader.Load(ctx, appConfig.PlanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	logger.Debug("Plan loaded.", "task_count", len(tasks))

	system, err := schedule.New(ctx, tasks, precedences)
	if err != nil {
		return nil, fmt.Errorf("failed to build schedule: %w", err)
	}
	logger.Debug("Schedule validated and augmented.")

	return &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		system: system,
	}, nil
}

// System returns the validated schedule. This is primarily for testing.
func (a *App) System() *schedule.System {
	return a.system
}

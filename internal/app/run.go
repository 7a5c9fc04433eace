package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vk/buildgridgo/internal/ctxlog"
	"github.com/vk/buildgridgo/internal/executor"
	"github.com/vk/buildgridgo/internal/matrix"
)

// Run executes the main application logic: resolve the matrix, then dispatch
// every resolved job to the configured runner. All resolution errors surface
// before the first job is dispatched.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	logger := a.logger.With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("App.Run method started.")

	jobs, err := matrix.Resolve(ctx, a.model.Matrix)
	if err != nil {
		return fmt.Errorf("failed to resolve build matrix: %w", err)
	}
	logger.Info("Build matrix resolved.", "jobs", len(jobs))

	if len(jobs) == 0 {
		logger.Warn("Matrix resolved to zero jobs, nothing to dispatch.")
		return nil
	}

	runner, err := a.registry.Runner(cfg.Runner)
	if err != nil {
		return err
	}

	logger.Info("🚀 Starting concurrent dispatch.", "runner", cfg.Runner, "workers", cfg.WorkerCount)
	exec := executor.New(runner, cfg.WorkerCount)
	if _, err := exec.Run(ctx, jobs); err != nil {
		return fmt.Errorf("dispatch failed: %w", err)
	}
	logger.Info("🏁 Dispatch finished.")

	logger.Debug("App.Run method finished.")
	return nil
}

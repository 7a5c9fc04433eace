package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vk/buildgridgo/internal/ctxlog"
	"github.com/vk/buildgridgo/internal/matrix"
	"github.com/vk/buildgridgo/internal/registry"
)

// Result records the outcome of dispatching one resolved job.
type Result struct {
	Job *matrix.ResolvedJob
	Err error
}

// Executor runs resolved jobs concurrently against a single runner.
type Executor struct {
	runner  registry.Runner
	workers int
}

// New creates an Executor with the given runner and worker count.
func New(runner registry.Runner, workers int) *Executor {
	if workers < 1 {
		workers = 1
	}
	return &Executor{runner: runner, workers: workers}
}

// Run dispatches every job and waits for all of them to finish. The returned
// results are in the same order as the input jobs. A job's failure is
// recorded in its Result and never interrupts other jobs; the aggregate
// error is non-nil when at least one job failed. Cancelling the context
// stops jobs that have not started yet.
func (e *Executor) Run(ctx context.Context, jobs []*matrix.ResolvedJob) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)

	results := make([]Result, len(jobs))
	indexChan := make(chan int)

	var wg sync.WaitGroup
	for workerID := 0; workerID < e.workers; workerID++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			e.worker(ctx, indexChan, results, jobs, workerID)
		}(workerID)
	}

	for i := range jobs {
		indexChan <- i
	}
	close(indexChan)
	wg.Wait()

	var failed []error
	for _, result := range results {
		if result.Err != nil {
			failed = append(failed, fmt.Errorf("job %s: %w", result.Job.Name, result.Err))
		}
	}
	if len(failed) > 0 {
		logger.Error("Dispatch finished with failures.", "failed", len(failed), "total", len(jobs))
		return results, fmt.Errorf("%d of %d jobs failed: %w", len(failed), len(jobs), errors.Join(failed...))
	}

	return results, nil
}

// worker is the core processing loop for a single concurrent worker.
func (e *Executor) worker(ctx context.Context, indexChan chan int, results []Result, jobs []*matrix.ResolvedJob, workerID int) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for i := range indexChan {
		job := jobs[i]
		workerLogger := logger.With("workerID", workerID, "job", job.Name)

		if err := ctx.Err(); err != nil {
			workerLogger.Debug("Skipping job, context cancelled.")
			results[i] = Result{Job: job, Err: err}
			continue
		}

		workerLogger.Info("▶️ Starting job.", "target", job.Target.Triple, "features", job.Features)
		err := e.runner.Run(ctx, job)
		results[i] = Result{Job: job, Err: err}

		if err != nil {
			workerLogger.Error("Job failed.", "error", err)
			continue
		}
		workerLogger.Info("✅ Job finished.")
	}

	logger.Debug("Worker finished.", "workerID", workerID)
}

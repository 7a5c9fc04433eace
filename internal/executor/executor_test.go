package executor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/buildgridgo/internal/matrix"
	"github.com/vk/buildgridgo/internal/registry"
	"github.com/vk/buildgridgo/internal/testutil"
)

func fakeJobs(names ...string) []*matrix.ResolvedJob {
	jobs := make([]*matrix.ResolvedJob, 0, len(names))
	for _, name := range names {
		jobs = append(jobs, &matrix.ResolvedJob{
			Name:     name,
			Features: name + "-features",
			Target:   matrix.Target{Triple: "triple-" + name},
		})
	}
	return jobs
}

func TestRun_DispatchesEveryJob(t *testing.T) {
	capture := &testutil.CaptureRunner{}
	jobs := fakeJobs("a", "b", "c", "d")

	results, err := New(capture, 2).Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, capture.Names())
	for i, result := range results {
		assert.Same(t, jobs[i], result.Job, "results must keep input order")
		assert.NoError(t, result.Err)
	}
}

func TestRun_FailuresAreIsolated(t *testing.T) {
	forced := errors.New("linker exploded")
	capture := &testutil.CaptureRunner{FailFor: map[string]error{"b": forced}}
	jobs := fakeJobs("a", "b", "c")

	results, err := New(capture, 1).Run(context.Background(), jobs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 jobs failed")
	assert.ErrorIs(t, err, forced)

	// The failing job must not stop the others from running.
	assert.Equal(t, []string{"a", "b", "c"}, capture.Names())
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, forced)
	assert.NoError(t, results[2].Err)
}

func TestRun_RespectsWorkerLimit(t *testing.T) {
	var current, peak atomic.Int32
	var mu sync.Mutex

	runner := registry.RunnerFunc(func(_ context.Context, _ *matrix.ResolvedJob) error {
		n := current.Add(1)
		mu.Lock()
		if n > peak.Load() {
			peak.Store(n)
		}
		mu.Unlock()
		defer current.Add(-1)
		return nil
	})

	_, err := New(runner, 3).Run(context.Background(), fakeJobs("a", "b", "c", "d", "e", "f"))
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestRun_CancelledContextSkipsPendingJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	capture := &testutil.CaptureRunner{}
	results, err := New(capture, 2).Run(ctx, fakeJobs("a", "b"))
	require.Error(t, err)

	for _, result := range results {
		assert.ErrorIs(t, result.Err, context.Canceled)
	}
	assert.Empty(t, capture.Names())
}

func TestNew_ClampsWorkerCount(t *testing.T) {
	e := New(&testutil.CaptureRunner{}, 0)
	assert.Equal(t, 1, e.workers)
}

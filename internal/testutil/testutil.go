// Package testutil provides shared helpers for exercising the loaders, the
// resolver, and the full application from inline matrix declarations.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/buildgridgo/internal/matrix"
	"github.com/vk/buildgridgo/internal/registry"
)

// WriteMatrixFile writes an inline matrix declaration to a file inside a
// fresh temp directory and returns the file's path.
func WriteMatrixFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up matrix file")
	return path
}

// CaptureRunner records every job dispatched to it. It is safe for
// concurrent use by executor workers.
type CaptureRunner struct {
	mu   sync.Mutex
	jobs []*matrix.ResolvedJob

	// FailFor makes Run return ErrForced for jobs whose name is listed.
	FailFor map[string]error
}

// Run implements registry.Runner.
func (c *CaptureRunner) Run(_ context.Context, job *matrix.ResolvedJob) error {
	c.mu.Lock()
	c.jobs = append(c.jobs, job)
	c.mu.Unlock()

	if err, ok := c.FailFor[job.Name]; ok {
		return err
	}
	return nil
}

// Jobs returns a snapshot of the captured jobs.
func (c *CaptureRunner) Jobs() []*matrix.ResolvedJob {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*matrix.ResolvedJob(nil), c.jobs...)
}

// Names returns the captured job names in dispatch order.
func (c *CaptureRunner) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	names := make([]string, 0, len(c.jobs))
	for _, job := range c.jobs {
		names = append(names, job.Name)
	}
	return names
}

// CaptureModule registers a CaptureRunner under the given name.
type CaptureModule struct {
	Name   string
	Runner *CaptureRunner
}

// Register implements registry.Module.
func (m *CaptureModule) Register(r *registry.Registry) {
	m.Runner = &CaptureRunner{}
	r.RegisterRunner(m.Name, m.Runner)
}

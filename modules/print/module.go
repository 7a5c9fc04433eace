// Package print provides the default runner: it emits each resolved job as
// a single JSON line, leaving execution to whatever consumes the output.
package print

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/vk/buildgridgo/internal/matrix"
	"github.com/vk/buildgridgo/internal/registry"
)

// Name is the registry name of this runner.
const Name = "print"

// Module implements the registry.Module interface for this package.
type Module struct {
	// Out receives one JSON line per job.
	Out io.Writer
}

// record is the wire shape of one emitted job.
type record struct {
	Name     string            `json:"name"`
	Target   string            `json:"target"`
	EspName  string            `json:"espname,omitempty"`
	Boot     string            `json:"boot,omitempty"`
	Features string            `json:"features"`
	Values   map[string]string `json:"values"`
}

type runner struct {
	mu  sync.Mutex
	out io.Writer
}

// Run implements registry.Runner.
func (r *runner) Run(_ context.Context, job *matrix.ResolvedJob) error {
	line, err := json.Marshal(record{
		Name:     job.Name,
		Target:   job.Target.Triple,
		EspName:  job.Target.EspName,
		Boot:     job.Target.Boot,
		Features: job.Features,
		Values:   job.Values,
	})
	if err != nil {
		return fmt.Errorf("failed to encode job record: %w", err)
	}

	// Writers are shared across workers; one line per job, never interleaved.
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := fmt.Fprintln(r.out, string(line)); err != nil {
		return fmt.Errorf("failed to write job record: %w", err)
	}
	return nil
}

// Register registers the runner with the application registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRunner(Name, &runner{out: m.Out})
}

package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/buildgridgo/internal/matrix"
)

// Runner executes a single resolved build job. Implementations are the
// external collaborators of the resolution engine: they receive the final
// job record and must report success or failure for that job alone.
type Runner interface {
	Run(ctx context.Context, job *matrix.ResolvedJob) error
}

// RunnerFunc adapts a plain function to the Runner interface.
type RunnerFunc func(ctx context.Context, job *matrix.ResolvedJob) error

// Run implements Runner.
func (f RunnerFunc) Run(ctx context.Context, job *matrix.ResolvedJob) error {
	return f(ctx, job)
}

// Module is the interface that all runner modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all registered runners for a single application instance.
type Registry struct {
	runners map[string]Runner
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{runners: make(map[string]Runner)}
}

// RegisterRunner registers a runner under a name. Registering the same name
// twice is a programmer error and panics.
func (r *Registry) RegisterRunner(name string, runner Runner) {
	if _, exists := r.runners[name]; exists {
		panic(fmt.Sprintf("runner with name '%s' already registered", name))
	}
	slog.Debug("Registering runner.", "name", name)
	r.runners[name] = runner
}

// Runner returns the runner registered under the given name.
func (r *Registry) Runner(name string) (Runner, error) {
	runner, ok := r.runners[name]
	if !ok {
		return nil, fmt.Errorf("unknown runner '%s' (available: %v)", name, r.Names())
	}
	return runner, nil
}

// Names returns the registered runner names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.runners))
	for name := range r.runners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

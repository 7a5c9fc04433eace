// Package cargo provides the runner that hands a resolved job to the
// external build toolchain: a `cargo build` invocation carrying the job's
// target triple and feature-flag string, with vendor routing metadata
// exported through the environment.
package cargo

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/vk/buildgridgo/internal/ctxlog"
	"github.com/vk/buildgridgo/internal/matrix"
	"github.com/vk/buildgridgo/internal/registry"
)

// Name is the registry name of this runner.
const Name = "cargo"

// Module implements the registry.Module interface for this package.
type Module struct {
	// Bin is the cargo executable; empty means "cargo" from PATH.
	Bin string
	// Dir is the working directory for the invocation (the firmware crate).
	Dir string
	// DryRun prints the composed command instead of executing it.
	DryRun bool
	// Out receives dry-run command lines and build output.
	Out io.Writer
}

type runner struct {
	bin    string
	dir    string
	dryRun bool

	mu  sync.Mutex
	out io.Writer
}

// Args composes the cargo argument list for a resolved job. Exported so
// other tooling can reuse the exact invocation shape.
func Args(job *matrix.ResolvedJob) []string {
	return []string{
		"build",
		"--release",
		"--target", job.Target.Triple,
		"--no-default-features",
		"--features", job.Features,
	}
}

// Env returns the extra environment the vendor tooling expects: the build
// alias and bootloader variant, when the job carries them.
func Env(job *matrix.ResolvedJob) []string {
	var env []string
	if job.Target.EspName != "" {
		env = append(env, "ESPNAME="+job.Target.EspName)
	}
	if job.Target.Boot != "" {
		env = append(env, "BOOTLOADER="+job.Target.Boot)
	}
	return env
}

// Run implements registry.Runner.
func (r *runner) Run(ctx context.Context, job *matrix.ResolvedJob) error {
	logger := ctxlog.FromContext(ctx)

	args := Args(job)
	extraEnv := Env(job)

	if r.dryRun {
		r.mu.Lock()
		defer r.mu.Unlock()
		prefix := ""
		if len(extraEnv) > 0 {
			prefix = strings.Join(extraEnv, " ") + " "
		}
		_, err := fmt.Fprintf(r.out, "%s%s %s\n", prefix, r.bin, strings.Join(args, " "))
		return err
	}

	logger.Debug("Invoking external build.", "bin", r.bin, "args", args, "env", extraEnv)
	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Dir = r.dir
	cmd.Env = append(os.Environ(), extraEnv...)
	cmd.Stdout = r.out
	cmd.Stderr = r.out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("build failed for target %s: %w", job.Target.Triple, err)
	}
	return nil
}

// Register registers the runner with the application registry.
func (m *Module) Register(r *registry.Registry) {
	bin := m.Bin
	if bin == "" {
		bin = "cargo"
	}
	out := m.Out
	if out == nil {
		out = os.Stdout
	}
	r.RegisterRunner(Name, &runner{
		bin:    bin,
		dir:    m.Dir,
		dryRun: m.DryRun,
		out:    out,
	})
}

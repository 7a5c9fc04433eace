package app

import (
	"io"

	"github.com/vk/buildgridgo/internal/registry"
	"github.com/vk/buildgridgo/modules/cargo"
	"github.com/vk/buildgridgo/modules/print"
)

// defaultModules returns the runner modules registered when the caller does
// not supply its own set. Job records go to outW; build output goes to logW
// so JSON-line output stays machine-readable.
func defaultModules(cfg *Config, outW, logW io.Writer) []registry.Module {
	return []registry.Module{
		&print.Module{Out: outW},
		&cargo.Module{
			Dir:    cfg.ProjectDir,
			DryRun: cfg.DryRun,
			Out:    logW,
		},
	}
}

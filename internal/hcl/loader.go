package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/buildgridgo/internal/config"
	"github.com/vk/buildgridgo/internal/ctxlog"
	"github.com/vk/buildgridgo/internal/fsutil"
	"github.com/vk/buildgridgo/internal/schema"
)

// Extension is the file suffix this loader consumes.
const Extension = ".hcl"

// Loader reads HCL matrix files into the format-agnostic config model.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load implements config.Loader. Directories are walked recursively for
// .hcl files; matrix blocks from multiple files append in sorted path order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.CollectFiles(paths, Extension)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found in %v", Extension, paths)
	}
	logger.Debug("HCL matrix files collected.", "count", len(files))

	matrix := &config.Matrix{}
	for _, path := range files {
		file, diags := l.parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
		}

		var fileCfg schema.FileConfig
		if diags := gohcl.DecodeBody(file.Body, nil, &fileCfg); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
		}
		if fileCfg.Matrix == nil {
			logger.Debug("File declares no matrix block, skipping.", "path", path)
			continue
		}

		translated, err := translateMatrix(fileCfg.Matrix)
		if err != nil {
			return nil, fmt.Errorf("invalid matrix in %s: %w", path, err)
		}
		matrix.Append(translated)
	}

	if len(matrix.Axes) == 0 && len(matrix.Includes) == 0 {
		return nil, fmt.Errorf("no matrix declaration found in %v", paths)
	}
	logger.Debug("HCL configuration loaded and translated into unified model.")

	return &config.Model{Matrix: matrix}, nil
}

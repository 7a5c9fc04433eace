// Package yaml implements the config.Loader interface for matrix files
// written in CI-style YAML. Axes are declared as an ordered list rather than
// a mapping because axis declaration order is semantically significant and
// YAML mappings are unordered.
package yaml

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/buildgridgo/internal/config"
	"github.com/vk/buildgridgo/internal/ctxlog"
	"github.com/vk/buildgridgo/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Extensions lists the file suffixes this loader consumes.
var Extensions = []string{".yaml", ".yml"}

// fileSchema is the top-level structure of a YAML matrix file.
type fileSchema struct {
	Matrix *matrixSchema `yaml:"matrix"`
}

type matrixSchema struct {
	Separator string        `yaml:"feature_separator"`
	Metadata  []string      `yaml:"metadata"`
	Axes      []*axisSchema `yaml:"axes"`
	Include   []*ruleSchema `yaml:"include"`
	Exclude   []*ruleSchema `yaml:"exclude"`
}

type axisSchema struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

type ruleSchema struct {
	Match map[string]string `yaml:"match"`
	Set   map[string]string `yaml:"set"`
}

// Loader reads YAML matrix files into the format-agnostic config model.
type Loader struct{}

// NewLoader creates a new YAML loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader. Directories are walked recursively for
// .yaml/.yml files; matrix declarations from multiple files append in sorted
// path order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.CollectFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no YAML matrix files found in %v", paths)
	}
	logger.Debug("YAML matrix files collected.", "count", len(files))

	matrix := &config.Matrix{}
	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		var fileCfg fileSchema
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if fileCfg.Matrix == nil {
			logger.Debug("File declares no matrix, skipping.", "path", path)
			continue
		}

		matrix.Append(translateMatrix(fileCfg.Matrix))
	}

	if len(matrix.Axes) == 0 && len(matrix.Includes) == 0 {
		return nil, fmt.Errorf("no matrix declaration found in %v", paths)
	}
	logger.Debug("YAML configuration loaded and translated into unified model.")

	return &config.Model{Matrix: matrix}, nil
}

// translateMatrix converts the YAML-specific matrix schema into the agnostic model.
func translateMatrix(m *matrixSchema) *config.Matrix {
	out := &config.Matrix{
		Separator: m.Separator,
		Metadata:  m.Metadata,
	}
	for _, axis := range m.Axes {
		out.Axes = append(out.Axes, &config.Axis{
			Name:   axis.Name,
			Values: axis.Values,
		})
	}
	for _, rule := range m.Include {
		out.Includes = append(out.Includes, &config.IncludeRule{Match: rule.Match, Set: rule.Set})
	}
	for _, rule := range m.Exclude {
		out.Excludes = append(out.Excludes, &config.ExcludeRule{Match: rule.Match})
	}
	return out
}

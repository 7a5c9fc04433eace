package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Matrix file formats the application understands.
const (
	FormatAuto = "auto"
	FormatHCL  = "hcl"
	FormatYAML = "yaml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// MatrixPath is an .hcl/.yaml matrix file or a directory of them.
	MatrixPath string `validate:"required"`
	// Format selects the loader; "auto" detects by file extension.
	Format string `validate:"oneof=auto hcl yaml"`
	// Runner names the registered runner jobs are dispatched to.
	Runner string `validate:"required"`
	// ProjectDir is the working directory for external build invocations.
	ProjectDir string
	// DryRun makes the build runner print commands without executing them.
	DryRun bool

	LogFormat   string `validate:"oneof=text json"`
	LogLevel    string `validate:"oneof=debug info warn error"`
	WorkerCount int    `validate:"gte=1"`
}

// NewConfig validates a Config and returns it, or a descriptive error when a
// field is out of range.
func NewConfig(cfg Config) (*Config, error) {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return nil, fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// DetectFormat resolves the effective matrix format for the config. Explicit
// formats pass through; auto detection inspects the path's extension and
// falls back to HCL for directories and unknown extensions.
func (c *Config) DetectFormat() string {
	if c.Format != "" && c.Format != FormatAuto {
		return c.Format
	}
	switch strings.ToLower(filepath.Ext(c.MatrixPath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatHCL
	}
}

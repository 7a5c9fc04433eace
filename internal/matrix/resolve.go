package matrix

import (
	"context"
	"fmt"

	"github.com/vk/buildgridgo/internal/config"
	"github.com/vk/buildgridgo/internal/ctxlog"
)

// DefaultSeparator joins feature tokens when the matrix declares none.
const DefaultSeparator = ","

// DefaultMetadata lists the attribute keys treated as routing metadata
// (excluded from the feature string) when the matrix declares none. The
// bootloader attribute is deliberately absent: bootloader selection is a
// compile-time feature as well as a routing parameter.
var DefaultMetadata = []string{AttrTarget, AttrEspName}

// Resolve runs the full pipeline over an immutable matrix declaration:
// axis validation, cartesian expansion, include merging, exclude filtering,
// and feature composition. It either returns the complete resolved job list
// or an error; there is no partial result. Resolving the same matrix twice
// yields identical output.
func Resolve(ctx context.Context, m *config.Matrix) ([]*ResolvedJob, error) {
	logger := ctxlog.FromContext(ctx)

	if m == nil {
		return nil, fmt.Errorf("no matrix declared")
	}

	axes, err := NewAxisSet(m.Axes)
	if err != nil {
		return nil, fmt.Errorf("invalid axis declarations: %w", err)
	}
	logger.Debug("Axis set constructed.", "axes", axes.Names())

	jobs := Expand(axes)
	logger.Debug("Cartesian expansion complete.", "jobs", len(jobs))

	jobs, err = Merge(axes, jobs, m.Includes)
	if err != nil {
		return nil, err
	}
	logger.Debug("Include rules merged.", "jobs", len(jobs), "rules", len(m.Includes))

	jobs, err = Filter(axes, jobs, m.Excludes)
	if err != nil {
		return nil, err
	}
	logger.Debug("Exclude rules applied.", "jobs", len(jobs), "rules", len(m.Excludes))

	sep := m.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	metadata := m.Metadata
	if metadata == nil {
		metadata = DefaultMetadata
	}

	resolved := make([]*ResolvedJob, 0, len(jobs))
	for _, job := range jobs {
		r, err := Compose(axes, job, sep, metadata)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, r)
	}
	logger.Debug("Feature composition complete.", "jobs", len(resolved))

	return resolved, nil
}

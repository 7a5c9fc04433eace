package hcl

import (
	"fmt"

	"github.com/vk/buildgridgo/internal/config"
	"github.com/vk/buildgridgo/internal/schema"
)

// translateMatrix converts the HCL-specific matrix schema into the agnostic model.
func translateMatrix(m *schema.MatrixConfig) (*config.Matrix, error) {
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

	for i, rule := range m.Includes {
		match, err := stringMap(rule.Match)
		if err != nil {
			return nil, fmt.Errorf("include rule %d: invalid match: %w", i, err)
		}
		set, err := stringMap(rule.Set)
		if err != nil {
			return nil, fmt.Errorf("include rule %d: invalid set: %w", i, err)
		}
		out.Includes = append(out.Includes, &config.IncludeRule{Match: match, Set: set})
	}

	for i, rule := range m.Excludes {
		match, err := stringMap(rule.Match)
		if err != nil {
			return nil, fmt.Errorf("exclude rule %d: invalid match: %w", i, err)
		}
		out.Excludes = append(out.Excludes, &config.ExcludeRule{Match: match})
	}

	return out, nil
}

// Package schema defines the HCL-specific structures a matrix file decodes
// into before translation to the format-agnostic config model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Axis represents an `axis "<name>"` block inside a matrix block.
type Axis struct {
	Name   string   `hcl:"name,label"`
	Values []string `hcl:"values"`
}

// IncludeRule represents an `include` block. Match and Set are object
// expressions mapping axis or attribute names to string values.
type IncludeRule struct {
	Match cty.Value `hcl:"match"`
	Set   cty.Value `hcl:"set,optional"`
}

// ExcludeRule represents an `exclude` block.
type ExcludeRule struct {
	Match cty.Value `hcl:"match"`
}

// MatrixConfig represents a top-level `matrix` block.
type MatrixConfig struct {
	Separator string         `hcl:"feature_separator,optional"`
	Metadata  []string       `hcl:"metadata,optional"`
	Axes      []*Axis        `hcl:"axis,block"`
	Includes  []*IncludeRule `hcl:"include,block"`
	Excludes  []*ExcludeRule `hcl:"exclude,block"`
}

// FileConfig represents the top-level structure of a matrix file.
type FileConfig struct {
	Matrix *MatrixConfig `hcl:"matrix,block"`
	Body   hcl.Body      `hcl:",remain"`
}

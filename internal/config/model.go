package config

// Model is the unified, format-agnostic representation of the entire
// application configuration.
type Model struct {
	Matrix *Matrix
}

// Matrix is a complete build-matrix declaration: the independent
// configuration axes plus the ordered include and exclude rules that shape
// the cartesian product.
type Matrix struct {
	Axes     []*Axis
	Includes []*IncludeRule
	Excludes []*ExcludeRule

	// Separator joins feature tokens in the composed feature string.
	// Empty means the engine default.
	Separator string
	// Metadata lists derived attribute keys that are routing information
	// rather than feature identifiers. Nil means the engine default.
	Metadata []string
}

// Axis is a named configuration dimension with an ordered sequence of
// allowed values. Axes are independent of one another except through
// explicit include and exclude rules.
type Axis struct {
	Name   string
	Values []string
}

// IncludeRule forces an extra combination into the matrix. Match is a
// partial axis assignment; Set holds the derived attributes the rule
// attaches. A rule whose match agrees with existing jobs extends them, and a
// rule matching nothing introduces a new standalone job.
type IncludeRule struct {
	Match map[string]string
	Set   map[string]string
}

// ExcludeRule removes jobs from the matrix. Match is a partial axis
// assignment; any job agreeing with it on every named axis is dropped.
type ExcludeRule struct {
	Match map[string]string
}

// Append folds another matrix declaration into this one, preserving
// declaration order across sources. Later separator and metadata settings
// win when both sources declare them.
func (m *Matrix) Append(other *Matrix) {
	if other == nil {
		return
	}
	m.Axes = append(m.Axes, other.Axes...)
	m.Includes = append(m.Includes, other.Includes...)
	m.Excludes = append(m.Excludes, other.Excludes...)
	if other.Separator != "" {
		m.Separator = other.Separator
	}
	if other.Metadata != nil {
		m.Metadata = other.Metadata
	}
}

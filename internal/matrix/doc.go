// Package matrix implements the build-matrix resolution engine: cartesian
// expansion of configuration axes, include-rule merging, exclude-rule
// filtering, and feature-string composition.
//
// Resolution is a pure computation over an immutable config.Matrix. All
// configuration errors (unknown axes, ambiguous rules, missing targets) are
// detected here, before any resolved job reaches an external runner.
package matrix

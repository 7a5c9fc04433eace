// Package config defines the format-agnostic model of a build-matrix
// declaration, along with the Loader interface for reading it from various
// sources.
//
// The `config.Model` is the single source of truth for the `matrix` and
// `executor` packages. Concrete loader implementations, such as for HCL and
// YAML, are provided in separate packages.
package config

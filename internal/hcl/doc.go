// Package hcl implements the config.Loader interface for matrix files
// written in HCL. It parses files with hclparse, decodes them into the
// schema package's structures, and translates the result into the
// format-agnostic config model.
package hcl

// Package app wires the application together: configuration validation,
// logger construction, loader selection, runner registration, and the
// resolve-then-dispatch run lifecycle.
package app

// Package registry holds the named job runners available to a single
// application instance. Runner modules self-register at startup; resolution
// never depends on the registry, which only matters once resolved jobs are
// dispatched.
package registry

// Package config loads, normalizes, and validates filesort configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// FILESORT_LOG_LEVEL. The Config type centralizes every knob the CLI needs:
// default nesting level and naming scheme, move-log behaviour, benchmark size,
// logging, and extra extension table entries merged over the compiled-in
// table.
//
// Always obtain settings through this package so commands receive sanitized
// paths, a validated nesting level, and clear validation errors.
package config

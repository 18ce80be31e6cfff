// Package extensions holds the read-only extension table that drives sorting.
//
// Each Record maps a lower-case extension (no leading dot) to a top-level
// category plus two optional naming hints: an alternate name used when the
// caller asks for alternate naming, and a sort directory that replaces the
// extension as the sub-category folder. A Table is built once, either from the
// compiled-in defaults or from defaults merged with user overrides, and is
// never mutated afterwards so it can be shared freely across goroutines.
//
// Lookups are case-sensitive against the stored keys. Callers normalize
// extensions with Normalize before looking them up; anything that still misses
// belongs to the implicit "other" bucket handled by the classify package.
package extensions

// Package main hosts the filesort CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into calls on
// the organizer, generator, and benchmark packages. It centralizes
// configuration resolution, logger construction, and terminal rendering so
// subcommands only parse flags and report results.
//
// Keep this package lean: new behavior belongs in the internal packages and
// is surfaced here through dedicated commands or flags.
package main

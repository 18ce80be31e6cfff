// Package organizer moves the files of one directory into a category tree.
//
// Sort classifies every top-level file of the input directory by extension
// and renames it into the directory the classify package resolves for it,
// below the output directory. CustomSort is the table-free variant that moves
// files with one literal extension into a single flat directory. Both run
// sequentially, stop at the first I/O error without rolling back earlier
// moves, and never overwrite an existing destination file.
//
// Progress is reported through the Observer interface so the CLI can render
// verbose lines or a progress bar without this package writing to a terminal.
package organizer

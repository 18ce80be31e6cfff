// Package classify turns a file extension into the relative directory a file
// should be sorted into.
//
// Resolution is a pure function of the extension table, the extension, the
// nesting level (1 to 3 segments) and the alternate-naming flag. Unknown
// extensions land in the "other" bucket at every level. An out-of-range
// nesting level is a caller bug and panics; validate user input with
// ParseNestingLevel first.
package classify

// Package preflight provides readiness checks for the filesystem paths
// filesort depends on.
//
// These checks run in two contexts:
//   - sort and customsort call ForSort before touching any file, so a bad
//     input or output path is reported as a usage error instead of failing
//     halfway through a run.
//   - "filesort config validate" uses RunAll to display the state of the
//     configured log and lock directories.
package preflight

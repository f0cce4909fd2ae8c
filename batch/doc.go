// Package batch discovers .bag graph sources under a root directory and
// runs the semantics solver over each of them.
//
// What:
//
//   - Run walks the root recursively, collects every *.bag file in sorted
//     path order, and for each file × each requested semantics variant:
//     parses the graph, solves it, writes the iteration-trace and
//     final-degree CSVs beside the input, and prints an optional console
//     table of final degrees.
//   - Independent graphs fan out across a bounded worker pool
//     (Options.Concurrency); no degree state is ever shared between solves.
//
// Why:
//
//   - Mirrors the benchmark-sweep workflow: drop .bag files under a
//     directory, run once, collect CSVs.
//
// Failure policy:
//
//   - A malformed .bag file is logged and skipped; the batch continues.
//     Parse failures are never fatal to the whole run.
//   - Non-convergence is logged as a warning; results are still written.
//   - Only environmental failures (missing root, CSV write errors,
//     context cancellation) abort the run.
//
// Errors:
//
//   - ErrNoRoot: the root directory does not exist or is not a directory.
//   - ErrNoSemantics: no semantics variant was requested.
package batch

// Package bagio handles the text boundary around the semantics core:
// parsing .bag graph descriptions and recording solver output as CSV.
//
// What:
//
//   - Parse / ParseFile read the .bag line grammar into a *wag.Graph:
//     `arg(name, weight)` declares an argument, `att(attacker, attacked)`
//     declares an attack, any other line is ignored.
//   - WriteFinalCSV emits the final degree table (Argument, f(a), g(a)),
//     one row per argument in sorted order.
//   - WriteTraceCSV emits the iteration trace (Iteration, Argument, f(a),
//     g(a)) in round-major, then argument-sorted order.
//   - TracePath / FinalPath derive the conventional output file names
//     beside a .bag input: <base>_<variant>_iter.csv and
//     <base>_<variant>_final.csv.
//
// Why:
//
//   - The solver is pure and in-memory; every file format concern lives
//     here so the core stays testable without touching the filesystem.
//
// Errors:
//
//   - ErrMalformedLine: an `arg(...)` or `att(...)` line that cannot be
//     split into exactly two fields, or whose weight does not parse as a
//     float. Wrapped with the 1-based line number. Callers (the batch
//     driver) treat this as a skip-and-continue condition, never fatal to
//     a whole batch.
package bagio

// File: csv.go
// Role: CSV recording of solver output (final degrees + iteration trace)
// and the conventional output-file naming beside a .bag input.
package bagio

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ZongshunWang/wagbgs/semantics"
)

// CSV headers matching the original result tables.
var (
	finalHeader = []string{"Argument", "f(a)", "g(a)"}
	traceHeader = []string{"Iteration", "Argument", "f(a)", "g(a)"}
)

// WriteFinalCSV writes the final degree table: one row per argument in the
// given order, columns (Argument, f(a), g(a)).
// Complexity: O(n)
func WriteFinalCSV(w io.Writer, final semantics.State, order []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(finalHeader); err != nil {
		return fmt.Errorf("bagio: write final header: %w", err)
	}
	for _, id := range order {
		d := final[id]
		if err := cw.Write([]string{id, formatDegree(d.F), formatDegree(d.G)}); err != nil {
			return fmt.Errorf("bagio: write final row %s: %w", id, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteTraceCSV writes the iteration trace table in round-major, then
// argument-sorted order, columns (Iteration, Argument, f(a), g(a)).
// Complexity: O(R·n)
func WriteTraceCSV(w io.Writer, trace []semantics.RoundSnapshot, order []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(traceHeader); err != nil {
		return fmt.Errorf("bagio: write trace header: %w", err)
	}
	for _, snap := range trace {
		round := strconv.Itoa(snap.Round)
		for _, id := range order {
			d := snap.State[id]
			if err := cw.Write([]string{round, id, formatDegree(d.F), formatDegree(d.G)}); err != nil {
				return fmt.Errorf("bagio: write trace row %d/%s: %w", snap.Round, id, err)
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

// TracePath returns the iteration-trace CSV path for a .bag input:
// <dir>/<base>_<variant>_iter.csv.
func TracePath(bagPath string, sem semantics.Semantics) string {
	return outputPath(bagPath, sem, "iter")
}

// FinalPath returns the final-degree CSV path for a .bag input:
// <dir>/<base>_<variant>_final.csv.
func FinalPath(bagPath string, sem semantics.Semantics) string {
	return outputPath(bagPath, sem, "final")
}

// outputPath swaps the input extension for the _<variant>_<kind>.csv suffix.
func outputPath(bagPath string, sem semantics.Semantics, kind string) string {
	base := strings.TrimSuffix(bagPath, filepath.Ext(bagPath))

	return fmt.Sprintf("%s_%s_%s.csv", base, sem, kind)
}

// formatDegree renders a degree with the shortest representation that
// round-trips exactly, keeping CSVs diffable across runs.
func formatDegree(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

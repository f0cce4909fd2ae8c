// Command wagbgs sweeps a directory of .bag weighted-argumentation-graph
// files and computes ARC/ARH/ARM bilateral gradual semantics for each,
// writing iteration traces and final degrees as CSV beside the inputs.
package main

import (
	"log/slog"
	"os"
)

func main() {
	// Execute the root command. Cobra handles parsing the arguments.
	if err := rootCmd.Execute(); err != nil {
		slog.Error("wagbgs failed", "error", err)
		os.Exit(1)
	}
}

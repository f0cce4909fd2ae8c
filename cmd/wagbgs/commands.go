package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ZongshunWang/wagbgs/batch"
	"github.com/ZongshunWang/wagbgs/semantics"
)

// runConfig mirrors the optional YAML run configuration. Explicitly set
// CLI flags take precedence over file values.
type runConfig struct {
	Dir       string  `yaml:"dir"`
	Semantics string  `yaml:"semantics"`
	Tolerance float64 `yaml:"tolerance"`
	MaxRounds int     `yaml:"max_rounds"`
	Parallel  int     `yaml:"parallel"`
}

var (
	flagDir       string
	flagSemantics string
	flagTolerance float64
	flagMaxRounds int
	flagParallel  int
	flagConfig    string
	flagQuiet     bool
)

var rootCmd = &cobra.Command{
	Use:   "wagbgs",
	Short: "Bilateral gradual semantics calculator for weighted argumentation graphs",
	Long: `wagbgs discovers .bag files under a directory and, for each graph, derives
every argument's acceptability degree f(a) and rejectability degree g(a) by
fixed-point iteration under the ARC, ARH and/or ARM semantics. Iteration
traces and final degrees are written as CSV files beside each input.`,
	SilenceUsage: true,
	RunE:         runSweep,
}

func init() {
	rootCmd.Flags().StringVar(&flagDir, "dir", "benchmarks", "directory searched recursively for .bag files")
	rootCmd.Flags().StringVar(&flagSemantics, "semantics", "all", "variant to compute: arc, arh, arm or all")
	rootCmd.Flags().Float64Var(&flagTolerance, "tolerance", semantics.DefaultTolerance, "convergence threshold on the per-round max delta")
	rootCmd.Flags().IntVar(&flagMaxRounds, "max-rounds", semantics.DefaultMaxRounds, "iteration budget per solve")
	rootCmd.Flags().IntVar(&flagParallel, "parallel", 1, "number of graphs processed concurrently")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "optional YAML run configuration (flags override file values)")
	rootCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "suppress the per-graph console tables")
}

// runSweep resolves configuration and executes the batch run.
func runSweep(cmd *cobra.Command, _ []string) error {
	if flagConfig != "" {
		if err := applyConfigFile(cmd, flagConfig); err != nil {
			return err
		}
	}

	variants, err := parseVariants(flagSemantics)
	if err != nil {
		return err
	}

	opts := batch.Options{
		Root:        flagDir,
		Semantics:   variants,
		Tolerance:   flagTolerance,
		MaxRounds:   flagMaxRounds,
		Concurrency: flagParallel,
		Logger:      slog.Default(),
	}
	if !flagQuiet {
		opts.Report = os.Stdout
	}

	sum, err := batch.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	slog.Info("batch complete",
		"files", sum.Files,
		"solved", sum.Solved,
		"skipped", sum.Skipped,
		"not_converged", sum.NotConverged)

	return nil
}

// applyConfigFile loads the YAML run configuration and applies every value
// whose corresponding flag was not explicitly set on the command line.
func applyConfigFile(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg runConfig
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	flags := cmd.Flags()
	if cfg.Dir != "" && !flags.Changed("dir") {
		flagDir = cfg.Dir
	}
	if cfg.Semantics != "" && !flags.Changed("semantics") {
		flagSemantics = cfg.Semantics
	}
	if cfg.Tolerance > 0 && !flags.Changed("tolerance") {
		flagTolerance = cfg.Tolerance
	}
	if cfg.MaxRounds > 0 && !flags.Changed("max-rounds") {
		flagMaxRounds = cfg.MaxRounds
	}
	if cfg.Parallel > 0 && !flags.Changed("parallel") {
		flagParallel = cfg.Parallel
	}

	return nil
}

// parseVariants expands the --semantics flag into the solve list.
func parseVariants(name string) ([]semantics.Semantics, error) {
	if name == "all" {
		return []semantics.Semantics{semantics.ARC, semantics.ARH, semantics.ARM}, nil
	}
	sem, err := semantics.ParseSemantics(name)
	if err != nil {
		return nil, err
	}

	return []semantics.Semantics{sem}, nil
}

// Package batch implements the directory-sweep driver around the solver.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ZongshunWang/wagbgs/bagio"
	"github.com/ZongshunWang/wagbgs/semantics"
)

// Sentinel errors for the batch driver.
var (
	// ErrNoRoot indicates the configured root directory does not exist.
	ErrNoRoot = errors.New("batch: root directory not found")

	// ErrNoSemantics indicates an empty semantics variant list.
	ErrNoSemantics = errors.New("batch: no semantics variant requested")
)

// bagExt is the input file extension the sweep searches for.
const bagExt = ".bag"

// Options configures one batch run.
//
// Root        – directory searched recursively for *.bag files.
// Semantics   – variants solved per file, in the given order.
// Tolerance   – convergence threshold forwarded to every solve.
// MaxRounds   – round budget forwarded to every solve.
// Concurrency – number of files processed in parallel (≥ 1).
// Report      – optional console sink for final-degree tables (nil = off).
// Logger      – structured logger; nil falls back to slog.Default().
type Options struct {
	Root        string
	Semantics   []semantics.Semantics
	Tolerance   float64
	MaxRounds   int
	Concurrency int
	Report      io.Writer
	Logger      *slog.Logger
}

// DefaultOptions returns a sequential run of all three variants over root
// with the solver's default knobs and no console report.
func DefaultOptions(root string) Options {
	return Options{
		Root:        root,
		Semantics:   []semantics.Semantics{semantics.ARC, semantics.ARH, semantics.ARM},
		Tolerance:   semantics.DefaultTolerance,
		MaxRounds:   semantics.DefaultMaxRounds,
		Concurrency: 1,
	}
}

// Summary aggregates the outcome of one batch run.
type Summary struct {
	// Files is the number of .bag files discovered.
	Files int

	// Solved counts completed (file, variant) solves.
	Solved int

	// Skipped counts files abandoned because their source failed to parse.
	Skipped int

	// NotConverged counts solves that exhausted the round budget.
	NotConverged int
}

// Run executes the sweep described by opts.
//
// Files are discovered in sorted path order and fan out across at most
// Concurrency workers; each worker owns its graphs and degree states
// outright, so no synchronization beyond the summary counters is needed.
// A file that fails to parse is logged and skipped. Run returns an error
// only for driver-level failures: missing root, empty variant list, CSV
// write failures, or context cancellation.
func Run(ctx context.Context, opts Options) (Summary, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	if len(opts.Semantics) == 0 {
		return Summary{}, ErrNoSemantics
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}

	files, err := discover(opts.Root)
	if err != nil {
		return Summary{}, err
	}
	log.Info("batch sweep starting",
		"root", opts.Root, "files", len(files), "variants", len(opts.Semantics),
		"concurrency", opts.Concurrency)

	var solved, skipped, notConverged atomic.Int64
	var reportMu sync.Mutex // serializes console tables across workers

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(opts.Concurrency)
	for _, path := range files {
		path := path
		grp.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			g, perr := bagio.ParseFile(path)
			if perr != nil {
				// Malformed input: report, skip, keep the batch alive.
				log.Error("skipping malformed source", "path", path, "error", perr)
				skipped.Add(1)

				return nil
			}

			for _, sem := range opts.Semantics {
				res, serr := semantics.Solve(g,
					semantics.WithSemantics(sem),
					semantics.WithTolerance(opts.Tolerance),
					semantics.WithMaxRounds(opts.MaxRounds))
				if serr != nil {
					return fmt.Errorf("batch: solve %s under %s: %w", path, sem, serr)
				}

				if res.Converged {
					log.Info("converged", "path", path, "semantics", sem.String(), "rounds", res.Rounds)
				} else {
					log.Warn("not converged within round budget",
						"path", path, "semantics", sem.String(), "rounds", res.Rounds)
					notConverged.Add(1)
				}

				if werr := record(path, sem, g.Arguments(), res); werr != nil {
					return werr
				}
				if opts.Report != nil {
					reportMu.Lock()
					werr := WriteReport(opts.Report, filepath.Base(path), sem, res, g.Arguments())
					reportMu.Unlock()
					if werr != nil {
						return werr
					}
				}
				solved.Add(1)
			}

			return nil
		})
	}
	if err = grp.Wait(); err != nil {
		return Summary{}, err
	}

	return Summary{
		Files:        len(files),
		Solved:       int(solved.Load()),
		Skipped:      int(skipped.Load()),
		NotConverged: int(notConverged.Load()),
	}, nil
}

// discover returns every *.bag path under root, sorted for determinism.
func discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoRoot, root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), bagExt) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch: walk %s: %w", root, err)
	}
	sort.Strings(files)

	return files, nil
}

// record writes both CSV tables beside the input file.
func record(path string, sem semantics.Semantics, order []string, res semantics.Result) error {
	if err := writeCSV(bagio.TracePath(path, sem), func(w io.Writer) error {
		return bagio.WriteTraceCSV(w, res.Trace, order)
	}); err != nil {
		return err
	}

	return writeCSV(bagio.FinalPath(path, sem), func(w io.Writer) error {
		return bagio.WriteFinalCSV(w, res.Final, order)
	})
}

// writeCSV creates path and streams one table into it.
func writeCSV(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: create %s: %w", path, err)
	}
	if err = write(f); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// WriteReport prints the fixed-width final-degree table for one solve,
// matching the original console layout.
func WriteReport(w io.Writer, name string, sem semantics.Semantics, res semantics.Result, order []string) error {
	if _, err := fmt.Fprintf(w, "\n[%s] Final degrees for %s:\n", strings.ToUpper(sem.String()), name); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "---------------------------------------"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-10s %-12s %-12s\n", "Argument", "f(a)", "g(a)"); err != nil {
		return err
	}
	for _, id := range order {
		d := res.Final[id]
		if _, err := fmt.Fprintf(w, "%-10s %-12.6f %-12.6f\n", id, d.F, d.G); err != nil {
			return err
		}
	}

	return nil
}

// Package semantics defines the option surface, degree state and result
// types for the bilateral gradual semantics solver.
package semantics

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGraph indicates that a nil *wag.Graph was passed to Solve.
	ErrNilGraph = errors.New("semantics: graph is nil")

	// ErrUnknownSemantics indicates a Semantics value outside ARC/ARH/ARM.
	ErrUnknownSemantics = errors.New("semantics: unknown semantics variant")

	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("semantics: Tolerance must be positive")

	// ErrBadMaxRounds indicates a round budget below one.
	ErrBadMaxRounds = errors.New("semantics: MaxRounds must be at least 1")
)

// Default knobs for the fixed-point iteration.
const (
	// DefaultTolerance is the convergence threshold on the largest
	// per-argument change within one round.
	DefaultTolerance = 1e-4

	// DefaultMaxRounds bounds the iteration; it is the sole safeguard
	// against non-terminating recurrences.
	DefaultMaxRounds = 20
)

// Semantics selects how an argument's founded attackers are aggregated.
//
//   - ARC — card-based: sums normalized by the total argument count n.
//   - ARH — sum-based: raw sums over founded attackers.
//   - ARM — max-based: maximum over founded attackers, no count term.
type Semantics int

const (
	// ARC aggregates attacker influence as a sum normalized by 1/n.
	ARC Semantics = iota

	// ARH aggregates attacker influence as a raw sum.
	ARH

	// ARM aggregates attacker influence as a maximum.
	ARM
)

// String returns the lowercase variant name used in CLI flags and file names.
func (s Semantics) String() string {
	switch s {
	case ARC:
		return "arc"
	case ARH:
		return "arh"
	case ARM:
		return "arm"
	default:
		return fmt.Sprintf("semantics(%d)", int(s))
	}
}

// ParseSemantics maps a case-insensitive variant name ("arc", "arh", "arm")
// to its Semantics value. Returns ErrUnknownSemantics for anything else.
func ParseSemantics(name string) (Semantics, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "arc":
		return ARC, nil
	case "arh":
		return ARH, nil
	case "arm":
		return ARM, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSemantics, name)
	}
}

// Degree is one argument's (acceptability, rejectability) pair.
type Degree struct {
	// F is the acceptability degree f(a).
	F float64

	// G is the rejectability degree g(a).
	G float64
}

// State maps argument ID → current Degree. Each round produces a fresh
// State; a State is never mutated once published in a trace or result.
type State map[string]Degree

// Clone returns an independent copy of the state.
// Complexity: O(n)
func (s State) Clone() State {
	out := make(State, len(s))
	for id, d := range s {
		out[id] = d
	}

	return out
}

// RoundSnapshot is one completed round's full degree state.
type RoundSnapshot struct {
	// Round is the 1-based round number.
	Round int

	// State is the full degree state after this round.
	State State
}

// Result is the outcome of one Solve call.
//
// Converged == false is a normal outcome, not an error: Final then holds the
// state after MaxRounds rounds.
type Result struct {
	// Final is the degree state after the last executed round
	// (round 0 for an empty graph).
	Final State

	// Trace holds one snapshot per completed round, in round order.
	Trace []RoundSnapshot

	// Converged reports whether the largest per-argument change fell below
	// Tolerance before the round budget ran out.
	Converged bool

	// Rounds is the number of rounds actually executed.
	Rounds int
}

// Options configures the fixed-point solver.
//
// Semantics – aggregation variant (ARC, ARH or ARM). Default ARC.
// Tolerance – convergence threshold on the per-round max delta. Must be > 0.
// MaxRounds – iteration budget. Must be ≥ 1.
type Options struct {
	Semantics Semantics // aggregation variant
	Tolerance float64   // convergence threshold, > 0
	MaxRounds int       // round budget, ≥ 1
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithSemantics selects the aggregation variant.
func WithSemantics(s Semantics) Option {
	return func(o *Options) { o.Semantics = s }
}

// WithTolerance sets the convergence threshold. Solve rejects values ≤ 0
// with ErrBadTolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxRounds sets the iteration budget. Solve rejects values < 1 with
// ErrBadMaxRounds.
func WithMaxRounds(rounds int) Option {
	return func(o *Options) { o.MaxRounds = rounds }
}

// DefaultOptions returns the solver defaults: ARC semantics, tolerance 1e-4,
// at most 20 rounds. Use functional options to override per call.
func DefaultOptions() Options {
	return Options{
		Semantics: ARC,
		Tolerance: DefaultTolerance,
		MaxRounds: DefaultMaxRounds,
	}
}

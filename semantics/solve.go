// Package semantics implements the generic fixed-point solver driving the
// ARC/ARH/ARM recurrences.
//
// Solve repeats synchronous rounds: every argument's (f, g) pair is
// recomputed from the previous round's snapshot, the largest per-argument
// change is tracked, and iteration stops on convergence or budget
// exhaustion. One trace snapshot is appended per completed round.
package semantics

import (
	"math"

	"github.com/ZongshunWang/wagbgs/wag"
)

// Solve runs the fixed-point iteration for graph g under the configured
// semantics variant.
//
// Returns:
//
//   - Result.Final: the degree state after the last executed round.
//   - Result.Trace: one full-state snapshot per completed round, in order.
//   - Result.Converged: true iff the max delta fell below Tolerance within
//     the round budget; false is a normal outcome, never an error.
//   - err: one of the sentinel errors (ErrNilGraph, ErrUnknownSemantics,
//     ErrBadTolerance, ErrBadMaxRounds), or nil.
//
// Behavior highlights:
//
//   - Round 0 is f(a) = w(a), g(a) = 0 for every declared argument.
//   - Every round allocates a fresh State; the previous snapshot is never
//     mutated, which is what makes the update synchronous.
//   - An empty graph yields an empty final state with no iteration performed
//     (Converged true, Rounds 0).
//   - Founded attacker sets are computed once up front — foundedness depends
//     only on intrinsic weights, which are frozen during a solve.
//
// Complexity:
//
//   - Time:  O(R·(V + E)), R = executed rounds.
//   - Space: O(R·V) dominated by the trace.
func Solve(g *wag.Graph, opts ...Option) (Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if cfg.Tolerance <= 0 {
		return Result{}, ErrBadTolerance
	}
	if cfg.MaxRounds < 1 {
		return Result{}, ErrBadMaxRounds
	}

	// 2) Select the aggregation strategy once; the round loop never
	//    branches on the variant.
	agg, err := newAggregator(cfg.Semantics, g)
	if err != nil {
		return Result{}, err
	}

	// 3) Empty graph: nothing to iterate.
	args := g.Arguments()
	if len(args) == 0 {
		return Result{Final: State{}, Converged: true}, nil
	}

	// 4) Round 0: f = intrinsic weight, g = 0.
	curr := make(State, len(args))
	for _, a := range args {
		curr[a] = Degree{F: g.FoundedWeight(a)}
	}

	// 5) Founded sets are round-invariant; compute them once.
	founded := make(map[string][]string, len(args))
	for _, a := range args {
		founded[a] = foundedAttackers(g, a)
	}

	// 6) Iterate until convergence or budget exhaustion.
	trace := make([]RoundSnapshot, 0, cfg.MaxRounds)
	converged := false
	rounds := 0
	for round := 1; round <= cfg.MaxRounds; round++ {
		next := make(State, len(args))
		maxDelta := 0.0
		for _, a := range args {
			d := agg.next(a, founded[a], curr)
			next[a] = d

			old := curr[a]
			if df := math.Abs(d.F - old.F); df > maxDelta {
				maxDelta = df
			}
			if dg := math.Abs(d.G - old.G); dg > maxDelta {
				maxDelta = dg
			}
		}

		trace = append(trace, RoundSnapshot{Round: round, State: next.Clone()})
		curr = next
		rounds = round

		if maxDelta < cfg.Tolerance {
			converged = true

			break
		}
	}

	return Result{
		Final:     curr,
		Trace:     trace,
		Converged: converged,
		Rounds:    rounds,
	}, nil
}

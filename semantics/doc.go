// Package semantics implements bilateral gradual semantics over weighted
// argumentation graphs: ARC (card-based), ARH (sum-based) and ARM (max-based).
//
// Overview:
//
//   - Every argument a carries an acceptability degree f(a) and a
//     rejectability degree g(a). Round 0 sets f(a) = w(a) and g(a) = 0.
//   - Each round recomputes every argument's (f, g) pair synchronously from
//     the previous round's snapshot — no argument ever reads another
//     argument's current-round value.
//   - Iteration stops the first round where the largest per-argument change
//     (over both f and g) drops below Tolerance, or after MaxRounds rounds.
//
// Foundedness:
//
//   - Only founded attackers influence a target: attackers whose intrinsic
//     weight is strictly positive. An attacker with non-positive or
//     undeclared weight is excluded in every variant; an undeclared attacker
//     is treated as weight 0 and never causes a fault.
//   - When the founded set of a is empty, every variant yields
//     f(a) = w(a), g(a) = 0.
//
// Update rules (k = |founded(a)|, n = total argument count, aggregation over
// b in founded(a) against the previous round's values):
//
//	ARC:  f(a) = w(a) / (1 + k + (1/n)·Σ f(b)/(1+g(b)))
//	      g(a) = (k + (1/n)·Σ f(b)) / (1 + k + (1/n)·Σ f(b))
//	ARH:  f(a) = w(a) / (1 + k + Σ f(b)/(1+g(b)))
//	      g(a) = (k + Σ f(b)) / (1 + k + Σ f(b))
//	ARM:  f(a) = w(a) / (1 + max f(b)/(1+g(b)))
//	      g(a) = max f(b) / (1 + max f(b))
//
// ARM is a genuinely separate rule: it carries no count term and aggregates
// by maximum, so it is implemented as its own strategy, not as a k=1
// degenerate case of the sums. All denominators are ≥ 1 by construction, so
// the recurrence can never divide by zero.
//
// Determinism:
//
//   - Arguments are updated in the graph's sorted order and founded attacker
//     sets are iterated in sorted order, fixing floating-point summation
//     order. Two solves of the same inputs produce identical traces,
//     bit for bit.
//
// Complexity:
//
//   - Time:  O(R·(V + E)) for R executed rounds, V arguments, E attacks.
//   - Space: O(V) per round snapshot, O(R·V) for the accumulated trace.
//
// Errors (sentinel):
//
//   - ErrNilGraph         if the provided graph pointer is nil.
//   - ErrUnknownSemantics if the Semantics value is not ARC, ARH or ARM.
//   - ErrBadTolerance     if Tolerance ≤ 0.
//   - ErrBadMaxRounds     if MaxRounds < 1.
//
// Non-convergence is not an error: when MaxRounds is exhausted the last
// computed state is returned with Result.Converged == false.
//
// Example usage:
//
//	g := wag.NewGraph()
//	_ = g.AddArgument("a", 0.6)
//	_ = g.AddArgument("b", 0.3)
//	_ = g.AddAttack("b", "a")
//
//	res, err := semantics.Solve(g, semantics.WithSemantics(semantics.ARM))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("f(a)=%.4f g(a)=%.4f converged=%v\n",
//	    res.Final["a"].F, res.Final["a"].G, res.Converged)
package semantics

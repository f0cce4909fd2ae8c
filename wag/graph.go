// Package wag implements the weighted argumentation graph model.
//
// Graph stores two mappings: argument ID → intrinsic weight, and
// attacked ID → set of attacker IDs. Both enumeration surfaces
// (Arguments, AttackersOf) are sorted so every consumer iterates in the
// same order on every run.
package wag

import (
	"errors"
	"sort"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyArgumentID indicates an argument or attack endpoint ID is empty.
	ErrEmptyArgumentID = errors.New("wag: argument ID is empty")

	// ErrUndefinedArgument indicates a weight lookup for an argument that was
	// never declared. Distinct from an undeclared attacker, which is tolerated.
	ErrUndefinedArgument = errors.New("wag: argument not declared with a weight")
)

// Graph is the in-memory weighted argumentation graph.
//
// Build it once via AddArgument / AddAttack, then treat it as read-only.
// Reads never mutate internal state except for the cached sorted argument
// slice, which is invalidated by AddArgument and rebuilt on the next
// Arguments call; interleaving mutation with concurrent reads is not
// supported.
type Graph struct {
	// weights maps argument ID → intrinsic weight w(a).
	weights map[string]float64

	// attackers maps attacked ID → set of attacker IDs.
	attackers map[string]map[string]struct{}

	// order caches the sorted argument IDs; nil means stale.
	order []string
}

// NewGraph creates an empty weighted argumentation graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		weights:   make(map[string]float64),
		attackers: make(map[string]map[string]struct{}),
	}
}

// AddArgument declares argument id with intrinsic weight w.
//
// Redeclaring an existing argument overwrites its weight (last one wins).
// Weights are not range-checked; [0, 1] is typical but not enforced.
//
// Returns ErrEmptyArgumentID if id == "".
// Complexity: O(1)
func (g *Graph) AddArgument(id string, w float64) error {
	if id == "" {
		return ErrEmptyArgumentID
	}
	g.weights[id] = w
	g.order = nil // invalidate sorted cache

	return nil
}

// AddAttack records the directed attack attacker → attacked.
//
// Duplicate pairs are idempotent, self-attacks are allowed, and neither
// endpoint needs to be a declared argument.
//
// Returns ErrEmptyArgumentID if either endpoint is "".
// Complexity: O(1)
func (g *Graph) AddAttack(attacker, attacked string) error {
	if attacker == "" || attacked == "" {
		return ErrEmptyArgumentID
	}
	set, ok := g.attackers[attacked]
	if !ok {
		set = make(map[string]struct{})
		g.attackers[attacked] = set
	}
	set[attacker] = struct{}{}

	return nil
}

// WeightOf returns the intrinsic weight w(id).
//
// Returns ErrUndefinedArgument if id was never declared via AddArgument.
// Callers filtering attackers should use FoundedWeight instead, which
// tolerates undeclared identifiers.
// Complexity: O(1)
func (g *Graph) WeightOf(id string) (float64, error) {
	w, ok := g.weights[id]
	if !ok {
		return 0, ErrUndefinedArgument
	}

	return w, nil
}

// FoundedWeight returns the weight used by the foundedness filter:
// the declared weight of id, or 0 when id was never declared.
// An undeclared attacker is therefore never founded and never a fault.
// Complexity: O(1)
func (g *Graph) FoundedWeight(id string) float64 {
	return g.weights[id] // zero value covers the undeclared case
}

// HasArgument reports whether id was declared with a weight.
// Complexity: O(1)
func (g *Graph) HasArgument(id string) bool {
	_, ok := g.weights[id]

	return ok
}

// AttackersOf returns the identifiers attacking id, sorted lexicographically
// ascending. The slice is freshly allocated; callers may keep it.
// Returns an empty slice when id is unattacked.
// Complexity: O(k log k), k = number of attackers
func (g *Graph) AttackersOf(id string) []string {
	set := g.attackers[id]
	out := make([]string, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	sort.Strings(out)

	return out
}

// Arguments returns all declared argument IDs sorted lexicographically
// ascending. This order governs solver iteration and output order and is
// stable across runs. The returned slice is shared; callers must not
// modify it.
// Complexity: O(n log n) on first call after a mutation, O(1) thereafter
func (g *Graph) Arguments() []string {
	if g.order == nil {
		g.order = make([]string, 0, len(g.weights))
		for id := range g.weights {
			g.order = append(g.order, id)
		}
		sort.Strings(g.order)
	}

	return g.order
}

// Order returns the number of declared arguments (the n of ARC's
// normalization term).
// Complexity: O(1)
func (g *Graph) Order() int {
	return len(g.weights)
}

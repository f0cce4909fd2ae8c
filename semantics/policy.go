// File: policy.go
// Role: the three aggregation strategies behind Solve.
//
// Each strategy is pure over the previous round's state: given an argument,
// its founded attacker list (pre-sorted) and the previous State, it yields
// the next Degree. The strategy is picked once per Solve call; the hot loop
// never branches on the variant.
package semantics

import "github.com/ZongshunWang/wagbgs/wag"

// aggregator computes one argument's next (f, g) pair from the previous
// round's snapshot. Implementations must be pure and must iterate founded
// in the given (sorted) order to keep summation deterministic.
type aggregator interface {
	next(a string, founded []string, prev State) Degree
}

// newAggregator selects the strategy for sem over graph g.
func newAggregator(sem Semantics, g *wag.Graph) (aggregator, error) {
	switch sem {
	case ARC:
		return &arcAggregator{g: g}, nil
	case ARH:
		return &arhAggregator{g: g}, nil
	case ARM:
		return &armAggregator{g: g}, nil
	default:
		return nil, ErrUnknownSemantics
	}
}

// foundedAttackers filters the sorted attacker list of a down to those with
// strictly positive declared weight. Undeclared attackers carry weight 0 and
// are dropped here, never faulting — this filter is shared by all variants.
func foundedAttackers(g *wag.Graph, a string) []string {
	attackers := g.AttackersOf(a)
	founded := attackers[:0] // reuse backing array; AttackersOf allocates fresh
	for _, b := range attackers {
		if g.FoundedWeight(b) > 0 {
			founded = append(founded, b)
		}
	}

	return founded
}

// arcAggregator implements the card-based (ARC) rule: attacker sums are
// normalized by 1/n, with n the total argument count of the whole graph.
type arcAggregator struct {
	g *wag.Graph
}

func (p *arcAggregator) next(a string, founded []string, prev State) Degree {
	w := p.g.FoundedWeight(a)
	if len(founded) == 0 {
		return Degree{F: w}
	}

	k := float64(len(founded))
	n := float64(p.g.Order())
	var sumInfl, sumF float64
	for _, b := range founded {
		d := prev[b]
		sumInfl += d.F / (1 + d.G)
		sumF += d.F
	}

	return Degree{
		F: w / (1 + k + sumInfl/n),
		G: (k + sumF/n) / (1 + k + sumF/n),
	}
}

// arhAggregator implements the sum-based (ARH) rule: raw sums over founded
// attackers, no normalization.
type arhAggregator struct {
	g *wag.Graph
}

func (p *arhAggregator) next(a string, founded []string, prev State) Degree {
	w := p.g.FoundedWeight(a)
	if len(founded) == 0 {
		return Degree{F: w}
	}

	k := float64(len(founded))
	var sumInfl, sumF float64
	for _, b := range founded {
		d := prev[b]
		sumInfl += d.F / (1 + d.G)
		sumF += d.F
	}

	return Degree{
		F: w / (1 + k + sumInfl),
		G: (k + sumF) / (1 + k + sumF),
	}
}

// armAggregator implements the max-based (ARM) rule: the strongest founded
// attacker alone drives both degrees; the attacker count never appears.
type armAggregator struct {
	g *wag.Graph
}

func (p *armAggregator) next(a string, founded []string, prev State) Degree {
	w := p.g.FoundedWeight(a)
	if len(founded) == 0 {
		return Degree{F: w}
	}

	var maxInfl, maxF float64
	for _, b := range founded {
		d := prev[b]
		if infl := d.F / (1 + d.G); infl > maxInfl {
			maxInfl = infl
		}
		if d.F > maxF {
			maxF = d.F
		}
	}

	return Degree{
		F: w / (1 + maxInfl),
		G: maxF / (1 + maxF),
	}
}

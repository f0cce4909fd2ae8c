package semantics_test

import (
	"fmt"

	"github.com/ZongshunWang/wagbgs/semantics"
	"github.com/ZongshunWang/wagbgs/wag"
)

// ExampleSolve demonstrates one ARM round on the single-attack graph
// att(b, a) with w(a)=0.6, w(b)=0.3.
//
// Round 1 by hand:
//
//	f(a) = 0.6 / (1 + 0.3/(1+0)) = 0.6/1.3 ≈ 0.4615
//	g(a) = 0.3 / (1 + 0.3)       = 0.3/1.3 ≈ 0.2308
func ExampleSolve() {
	g := wag.NewGraph()
	_ = g.AddArgument("a", 0.6)
	_ = g.AddArgument("b", 0.3)
	_ = g.AddAttack("b", "a")

	res, err := semantics.Solve(g,
		semantics.WithSemantics(semantics.ARM),
		semantics.WithMaxRounds(1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, id := range g.Arguments() {
		d := res.Final[id]
		fmt.Printf("%s: f=%.4f g=%.4f\n", id, d.F, d.G)
	}
	fmt.Printf("converged=%v rounds=%d\n", res.Converged, res.Rounds)
	// Output:
	// a: f=0.4615 g=0.2308
	// b: f=0.3000 g=0.0000
	// converged=false rounds=1
}

// ExampleSolve_unattacked shows that a graph without attacks is already at
// its fixed point: every argument keeps its intrinsic weight and the solve
// converges after a single confirming round.
func ExampleSolve_unattacked() {
	g := wag.NewGraph()
	_ = g.AddArgument("a", 0.6)
	_ = g.AddArgument("b", 0.3)

	res, err := semantics.Solve(g, semantics.WithSemantics(semantics.ARC))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, id := range g.Arguments() {
		d := res.Final[id]
		fmt.Printf("%s: f=%.4f g=%.4f\n", id, d.F, d.G)
	}
	fmt.Printf("converged=%v rounds=%d\n", res.Converged, res.Rounds)
	// Output:
	// a: f=0.6000 g=0.0000
	// b: f=0.3000 g=0.0000
	// converged=true rounds=1
}

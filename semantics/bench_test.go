package semantics_test

import (
	"fmt"
	"testing"

	"github.com/ZongshunWang/wagbgs/semantics"
	"github.com/ZongshunWang/wagbgs/wag"
)

// benchmarkSolve runs Solve over a ring graph of n arguments (each argument
// attacks its successor) under the given variant.
func benchmarkSolve(b *testing.B, n int, sem semantics.Semantics) {
	// Build the ring once; the graph is read-only during solves.
	g := wag.NewGraph()
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("a%04d", i)
		if err := g.AddArgument(id, 0.5+float64(i%5)/10); err != nil {
			b.Fatalf("AddArgument failed: %v", err)
		}
	}
	for i := 0; i < n; i++ {
		from := fmt.Sprintf("a%04d", i)
		to := fmt.Sprintf("a%04d", (i+1)%n)
		if err := g.AddAttack(from, to); err != nil {
			b.Fatalf("AddAttack failed: %v", err)
		}
	}

	b.ResetTimer() // ignore graph construction
	for i := 0; i < b.N; i++ {
		if _, err := semantics.Solve(g, semantics.WithSemantics(sem)); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_ARC_Ring100 benchmarks ARC on a 100-argument ring.
func BenchmarkSolve_ARC_Ring100(b *testing.B) { benchmarkSolve(b, 100, semantics.ARC) }

// BenchmarkSolve_ARH_Ring100 benchmarks ARH on a 100-argument ring.
func BenchmarkSolve_ARH_Ring100(b *testing.B) { benchmarkSolve(b, 100, semantics.ARH) }

// BenchmarkSolve_ARM_Ring100 benchmarks ARM on a 100-argument ring.
func BenchmarkSolve_ARM_Ring100(b *testing.B) { benchmarkSolve(b, 100, semantics.ARM) }

// BenchmarkSolve_ARC_Ring1000 benchmarks ARC on a 1000-argument ring.
func BenchmarkSolve_ARC_Ring1000(b *testing.B) { benchmarkSolve(b, 1000, semantics.ARC) }

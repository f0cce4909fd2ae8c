// Package wagbgs computes bilateral gradual acceptability semantics over
// Weighted Argumentation Graphs (WAGs).
//
// 🚀 What is wagbgs?
//
//	A small, deterministic library that, for every argument a in a weighted
//	argumentation graph, derives an acceptability degree f(a) and a
//	rejectability degree g(a) by synchronous fixed-point iteration:
//		• ARC — card-based semantics (attacker influence as a normalized sum)
//		• ARH — sum-based semantics (attacker influence as a raw sum)
//		• ARM — max-based semantics (attacker influence as a maximum)
//
// ✨ Why choose wagbgs?
//
//   - Reproducible – fixed lexicographic iteration order, bit-for-bit stable output
//   - Minimal API – one graph type, one Solve call, functional options
//   - Batch-ready – directory discovery, per-graph parallel fanout, CSV traces
//
// Everything is organized under four packages plus a CLI:
//
//	wag/        — the weighted argumentation graph model (arguments, weights, attacks)
//	semantics/  — ARC/ARH/ARM aggregation policies + the fixed-point solver
//	bagio/      — .bag text parsing and CSV emission of traces & final degrees
//	batch/      — directory traversal and per-graph solve fanout
//	cmd/wagbgs/ — the command-line batch driver
//
// Quick ASCII example:
//
//	    b ───▶ a        arg(a, 0.6)
//	                    arg(b, 0.3)
//	                    att(b, a)
//
//	Under ARM, round 1 yields f(a) = 0.6/(1+0.3) ≈ 0.4615, g(a) ≈ 0.2308,
//	while the unattacked b keeps f(b) = 0.3, g(b) = 0.
//
//	go get github.com/ZongshunWang/wagbgs
package wagbgs

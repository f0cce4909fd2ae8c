// Package wag defines the Weighted Argumentation Graph (WAG) model consumed
// by the semantics solver.
//
// What:
//
//   - Graph maps argument identifiers to intrinsic weights and records the
//     directed attack relation (attacker → attacked).
//   - Attack pairs are idempotent sets: declaring the same pair twice is a no-op.
//   - Self-attacks are permitted and not special-cased.
//   - An attacker identifier need not be declared as an argument; undeclared
//     attackers carry weight 0 for the solver's foundedness filter and are
//     never a fault.
//
// Why:
//
//   - Gradual semantics want a frozen, read-only graph: degrees are recomputed
//     round after round against the same weights and attacker sets.
//   - Deterministic enumeration (Arguments, AttackersOf — both sorted
//     lexicographically) keeps floating-point summation order, and therefore
//     every produced degree, bit-for-bit reproducible across runs.
//
// Lifecycle:
//
//   - Build the Graph once (AddArgument / AddAttack), then treat it as
//     read-only. Reads are safe from any number of goroutines; concurrent
//     mutation is not supported and not needed by any solver component.
//
// Errors:
//
//   - ErrEmptyArgumentID: an argument or attack endpoint ID is the empty string.
//   - ErrUndefinedArgument: WeightOf was asked for an argument that was never
//     declared with a weight.
package wag

// Package embed solves the k-fold subgraph embedding with minimum
// edge-additions problem.
//
// Given a pattern multigraph G₁, a host multigraph G₂ with at least as many
// vertices, and k ≥ 1, the solvers compute the cheapest extension G'₂ ≥ G₂
// (componentwise, never removing arcs) that admits k injective vertex
// mappings V(G₁) → V(G'₂) with pairwise different image sets, each mapping
// preserving arc multiplicities: G'₂[M(x)][M(y)] ≥ G₁[x][y] for every
// ordered pair (x, y). The reported cost is the number of multiplicity
// units added, Σ (G'₂ − G₂).
//
// Two solvers are provided, both driven by the same primitives (pattern
// vertex ordering, incremental cost/coverage evaluation, candidate ranking,
// and an undo-logged edge-addition operator):
//
//   - SolveExact — exhaustive branch-and-bound over (copy, position) levels
//     with lexicographic symmetry breaking and cost pruning. Returns a
//     minimum-cost extension. Worst case exponential; intended for
//     small-to-medium instances.
//
//   - SolveApprox — greedy constructor followed by a best-improvement
//     local-search refiner (single-vertex reassignments and in-copy swaps).
//     Fast, not optimal; never reports a cost below the exact optimum.
//
// Solve routes between them on Options.Algo. All entry points are
// single-threaded, deterministic, and return sentinel errors only.
package embed

// Package subiso solves the k-fold subgraph embedding with minimum
// edge-additions problem on directed multigraphs.
//
// Given a pattern G₁, a host G₂, and k ≥ 1, the solvers find the cheapest
// componentwise extension G'₂ ≥ G₂ that admits k injective,
// multiplicity-preserving embeddings of G₁ with pairwise different image
// sets, and report the mapping family alongside the added-arc cost.
//
// The repository is organized under three subpackages plus a CLI:
//
//	graph/      — dense integer adjacency multigraph (the data model)
//	embed/      — the solvers: exact branch-and-bound, greedy constructor,
//	              local-search refiner, and their shared primitives
//	graphio/    — instance parsing and verbose/raw result rendering
//	cmd/subiso/ — command-line front end
//
// Start with embed.Solve for the dispatching entry point, or
// embed.SolveExact / embed.SolveApprox directly.
package subiso

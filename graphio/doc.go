// Package graphio parses problem instances and renders solver results.
//
// The input format is a whitespace-separated integer stream:
//
//	n₁
//	n₁×n₁ pattern multiplicities
//	n₂
//	n₂×n₂ host multiplicities
//	k            (optional, defaults to 1)
//
// Two output renderings are provided: a human-readable verbose report
// (echoed inputs, extension cost, per-copy mappings, and the extended host
// matrix) and a machine-readable raw form (order, matrix rows, cost line).
package graphio

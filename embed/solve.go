// Package embed - unified dispatcher for the embedding solvers.
//
// This file provides the canonical entry points:
//
//   - Solve: validate the instance and route on Options.Algo.
//   - SolveExact: branch-and-bound, minimum-cost extension.
//   - SolveApprox: greedy constructor + local-search refiner.
//   - Refine: standalone refinement pass over an existing solution.
//
// Design principles:
//   - Deterministic: no randomness anywhere; ties break on indices.
//   - Strict sentinels: only errors from types.go cross this boundary.
//   - Failure is a value: every error path also returns a Solution with
//     Found=false and Cost=CostInfinity, so callers that ignore the error
//     still observe an unambiguous "no solution" shape.
package embed

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/kubapoke/subgraph-isomorphisms/graph"
)

// Solve validates (pattern, host, k) and routes to the solver selected by
// opts.Algo.
//
// Contracts:
//   - pattern and host non-nil, n₁ ≥ 1, n₂ ≥ n₁, k ≥ 1.
//   - C(n₂, n₁) ≥ k must hold or no k image-distinct copies can exist.
//
// Errors: validation sentinels, ErrInfeasible, ErrNoSolution,
// ErrUnsupportedAlgorithm.
func Solve(pattern, host *graph.Graph, k int, opts Options) (Solution, error) {
	switch opts.Algo {
	case Exact:
		return SolveExact(pattern, host, k, opts)
	case Approx:
		return SolveApprox(pattern, host, k, opts)
	default:
		return notFound(), ErrUnsupportedAlgorithm
	}
}

// SolveExact computes a minimum-cost extension admitting k image-distinct
// copies of the pattern, by branch-and-bound. With opts.FirstFound it
// returns the first complete family discovered instead.
//
// Complexity: exponential in k·n₁ in the worst case; see exact.go.
func SolveExact(patternG, hostG *graph.Graph, k int, opts Options) (Solution, error) {
	if err := ValidateInputs(patternG, hostG, k); err != nil {
		return notFound(), err
	}

	var (
		p = newPattern(patternG)
		h = newHostWork(hostG)
	)

	return solveExact(p, h, k, opts.FirstFound)
}

// SolveApprox greedily constructs a feasible family and, unless
// opts.DisableRefine is set, improves it with the local-search refiner.
// The result is feasible but not necessarily optimal; its cost is never
// below the exact optimum for the same instance.
func SolveApprox(patternG, hostG *graph.Graph, k int, opts Options) (Solution, error) {
	if err := ValidateInputs(patternG, hostG, k); err != nil {
		return notFound(), err
	}

	var (
		p = newPattern(patternG)
		h = newHostWork(hostG)
	)

	sol, err := solveApprox(p, h, k, opts.ExactSeed)
	if err != nil {
		return notFound(), err
	}
	if !opts.DisableRefine {
		sol = refineSolution(p, h, sol)
	}

	return sol, nil
}

// Refine runs the local-search refiner over an existing solution for the
// given instance. A Found=false solution is returned unchanged. Refinement
// never increases the cost, and refining a local minimum is a no-op.
func Refine(patternG, hostG *graph.Graph, k int, sol Solution) (Solution, error) {
	if err := ValidateInputs(patternG, hostG, k); err != nil {
		return notFound(), err
	}
	if !sol.Found {
		return sol, nil
	}

	var (
		p = newPattern(patternG)
		h = newHostWork(hostG)
	)

	return refineSolution(p, h, sol), nil
}

// feasibleCopyCount reports whether the host offers at least k distinct
// n₁-subsets of vertices: C(n₂, n₁) ≥ k. The generalized (float64) binomial
// avoids integer overflow for larger hosts; both sides are integers, so
// comparing against k−1/2 keeps the test exact under rounding.
func feasibleCopyCount(n1, n2, k int) bool {
	return combin.GeneralizedBinomial(float64(n2), float64(n1)) > float64(k)-0.5
}

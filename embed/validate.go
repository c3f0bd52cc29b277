// Package embed - validation utilities shared by the solvers and callers.
//
// Two surfaces:
//  1. ValidateInputs — staged precondition checks on (pattern, host, k),
//     run by every public entry point before any search.
//  2. ValidateSolution — full invariant audit of a claimed solution:
//     dominance, per-copy coverage, injectivity, pairwise image
//     distinctness, and the cost identity. Used by tests and by the CLI's
//     verification flag.
//
// Both are deterministic, side-effect free, and return sentinels only.
package embed

import (
	"fmt"

	"github.com/kubapoke/subgraph-isomorphisms/graph"
)

// ValidateInputs verifies the solver preconditions in order: non-nil
// graphs, non-empty pattern, host at least pattern-sized, positive copy
// count, and the combinatorial feasibility bound C(n₂, n₁) ≥ k.
//
// Complexity: O(1) beyond the binomial evaluation.
func ValidateInputs(pattern, host *graph.Graph, k int) error {
	if pattern == nil || host == nil {
		return ErrNilGraph
	}
	var (
		n1 = pattern.Order()
		n2 = host.Order()
	)
	if n1 < 1 {
		return ErrEmptyPattern
	}
	if n2 < n1 {
		return ErrPatternTooLarge
	}
	if k < 1 {
		return ErrBadCopyCount
	}
	if !feasibleCopyCount(n1, n2, k) {
		return ErrInfeasible
	}

	return nil
}

// ValidateSolution audits sol against the instance (pattern, host, k).
// A Found=false solution is vacuously valid. Violations are reported as
// ErrInvalidSolution wrapped with a description of the first failed
// invariant; callers match with errors.Is.
//
// Complexity: O(n₂² + k·n₁² + k²·n₁).
func ValidateSolution(pattern, host *graph.Graph, k int, sol Solution) error {
	if !sol.Found {
		return nil
	}
	if sol.Extended == nil {
		return fmt.Errorf("%w: found solution without extended host", ErrInvalidSolution)
	}
	if len(sol.Mappings) != k {
		return fmt.Errorf("%w: expected %d copies, got %d", ErrInvalidSolution, k, len(sol.Mappings))
	}

	// Dominance: the extension never removes arcs.
	dom, err := sol.Extended.Dominates(host)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSolution, err)
	}
	if !dom {
		return fmt.Errorf("%w: extended host drops below original multiplicities", ErrInvalidSolution)
	}

	var (
		n1 = pattern.Order()
		n2 = host.Order()
		c  int
	)
	for c = 0; c < k; c++ {
		if err = validateCopy(pattern, sol.Extended, sol.Mappings[c], n1, n2, c); err != nil {
			return err
		}
	}

	// Pairwise image distinctness.
	var (
		a, b   int
		images = make([][]int, k)
	)
	for c = 0; c < k; c++ {
		images[c] = imageOf(sol.Mappings[c])
	}
	for a = 0; a < k; a++ {
		for b = a + 1; b < k; b++ {
			if imagesEqual(images[a], images[b]) {
				return fmt.Errorf("%w: copies %d and %d share an image set", ErrInvalidSolution, a, b)
			}
		}
	}

	// Cost identity: reported cost equals the recomputed extension sum.
	want, err := sol.Extended.ExtensionCost(host)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSolution, err)
	}
	if sol.Cost != want {
		return fmt.Errorf("%w: reported cost %d, recomputed %d", ErrInvalidSolution, sol.Cost, want)
	}

	return nil
}

// validateCopy checks one mapping: completeness, range, injectivity, and
// multiplicity coverage under the extended host.
func validateCopy(pattern, extended *graph.Graph, m []int, n1, n2, c int) error {
	if len(m) != n1 {
		return fmt.Errorf("%w: copy %d has length %d, want %d", ErrInvalidSolution, c, len(m), n1)
	}

	var (
		seen = make([]bool, n2)
		u, v int
	)
	for u = 0; u < n1; u++ {
		v = m[u]
		if v == NoMapping {
			return fmt.Errorf("%w: copy %d leaves vertex %d unmapped", ErrInvalidSolution, c, u)
		}
		if v < 0 || v >= n2 {
			return fmt.Errorf("%w: copy %d maps vertex %d outside the host", ErrInvalidSolution, c, u)
		}
		if seen[v] {
			return fmt.Errorf("%w: copy %d is not injective at host vertex %d", ErrInvalidSolution, c, v)
		}
		seen[v] = true
	}

	// Coverage: every ordered pattern pair must be dominated in the image.
	var (
		x, y       int
		need, have int64
	)
	for x = 0; x < n1; x++ {
		for y = 0; y < n1; y++ {
			need, _ = pattern.At(x, y)
			have, _ = extended.At(m[x], m[y])
			if have < need {
				return fmt.Errorf("%w: copy %d misses %d arc(s) %d→%d", ErrInvalidSolution, c, need-have, x, y)
			}
		}
	}

	return nil
}

// Package embed: result type and sentinel error set.
// All solvers return these sentinels; tests match them via errors.Is.
// No function in this package panics on user input.
package embed

import (
	"errors"
	"math"

	"github.com/kubapoke/subgraph-isomorphisms/graph"
)

// NoMapping is the sentinel for an unassigned pattern vertex inside a
// partial mapping.
const NoMapping = -1

// CostInfinity is the cost reported by a Solution whose search found no
// feasible mapping family.
const CostInfinity = int64(math.MaxInt64)

var (
	// ErrNilGraph indicates a nil pattern or host graph.
	ErrNilGraph = errors.New("embed: nil graph")

	// ErrEmptyPattern indicates a pattern with no vertices.
	ErrEmptyPattern = errors.New("embed: pattern has no vertices")

	// ErrPatternTooLarge indicates a pattern with more vertices than the host.
	ErrPatternTooLarge = errors.New("embed: pattern larger than host")

	// ErrBadCopyCount indicates k < 1 requested copies.
	ErrBadCopyCount = errors.New("embed: copy count must be positive")

	// ErrInfeasible indicates that the host has fewer than k distinct
	// n₁-subsets of vertices, so k image-distinct copies cannot exist.
	ErrInfeasible = errors.New("embed: not enough host vertex subsets for requested copies")

	// ErrNoSolution indicates that the search space was exhausted without
	// finding an image-distinct mapping family.
	ErrNoSolution = errors.New("embed: no solution")

	// ErrUnsupportedAlgorithm indicates an Options.Algo value outside the
	// known enum.
	ErrUnsupportedAlgorithm = errors.New("embed: unsupported algorithm")

	// ErrInvalidSolution is returned by ValidateSolution when a claimed
	// solution violates one of the embedding invariants.
	ErrInvalidSolution = errors.New("embed: invalid solution")
)

// Solution holds the outcome of a solver run.
type Solution struct {
	// Extended is the extended host graph G'₂ ≥ G₂. Nil when Found is false.
	Extended *graph.Graph

	// Mappings is the mapping family: k rows of length n₁, where
	// Mappings[c][u] is the host vertex that copy c assigns to pattern
	// vertex u. Each row is injective and the rows' image sets are
	// pairwise different.
	Mappings [][]int

	// Cost is the total number of multiplicity units added to the host,
	// Σ max(0, G'₂ − G₂). CostInfinity when Found is false.
	Cost int64

	// Found reports whether a feasible mapping family was found.
	Found bool
}

// notFound is the canonical failure value shared by all exits that did not
// produce a feasible family.
func notFound() Solution {
	return Solution{Cost: CostInfinity, Found: false}
}

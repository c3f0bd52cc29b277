// Package embed: solver options.
//
// Options follows the package convention of a plain struct with a
// DefaultOptions constructor; zero-configuration callers get the exact
// solver with full refinement semantics.
package embed

// Algorithm selects which solver Solve dispatches to.
type Algorithm int

const (
	// Exact runs the branch-and-bound solver and returns a minimum-cost
	// extension.
	Exact Algorithm = iota

	// Approx runs the greedy constructor followed by the local-search
	// refiner.
	Approx
)

// String implements fmt.Stringer for log and error messages.
func (a Algorithm) String() string {
	switch a {
	case Exact:
		return "exact"
	case Approx:
		return "approx"
	default:
		return "unknown"
	}
}

// Options configures the solvers. The zero value is valid and equals
// DefaultOptions().
type Options struct {
	// Algo selects the solver used by Solve.
	Algo Algorithm

	// FirstFound instructs the exact solver to return the first complete
	// mapping family discovered instead of the minimum-cost one. Used
	// internally to seed the approximate constructor; exposed for callers
	// that only need feasibility.
	FirstFound bool

	// ExactSeed makes the approximate constructor delegate its first copy
	// to the exact solver (k=1, FirstFound). Slower but often a better
	// starting point for the refiner.
	ExactSeed bool

	// DisableRefine skips the local-search post-pass after the greedy
	// constructor. Intended for tests and for measuring the constructor
	// in isolation.
	DisableRefine bool
}

// DefaultOptions returns the canonical configuration: exact solver,
// minimum-cost search, refinement enabled for the approximate path.
func DefaultOptions() Options {
	return Options{Algo: Exact}
}

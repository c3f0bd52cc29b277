// Package graph: sentinel error set.
// All constructors and indexers return these sentinels; callers match them
// with errors.Is. No function in this package panics on user input.
package graph

import "errors"

var (
	// ErrBadOrder is returned when a requested vertex count is negative.
	ErrBadOrder = errors.New("graph: vertex count must be non-negative")

	// ErrOutOfRange indicates that a vertex index is outside [0, n).
	ErrOutOfRange = errors.New("graph: vertex index out of range")

	// ErrNonSquare signals that the supplied multiplicity rows do not form
	// a square matrix.
	ErrNonSquare = errors.New("graph: multiplicity matrix is not square")

	// ErrNegativeMultiplicity signals a negative arc multiplicity, which
	// the multigraph model forbids.
	ErrNegativeMultiplicity = errors.New("graph: negative arc multiplicity")

	// ErrNilGraph indicates that a nil *Graph receiver or argument was used
	// where a concrete graph is required.
	ErrNilGraph = errors.New("graph: nil graph")

	// ErrOrderMismatch indicates that two graphs expected to share the same
	// vertex count do not.
	ErrOrderMismatch = errors.New("graph: vertex count mismatch")
)

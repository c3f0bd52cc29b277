// Package graphio: sentinel error set.
package graphio

import "errors"

var (
	// ErrMalformedInput indicates an unreadable, non-numeric, negative, or
	// truncated token stream.
	ErrMalformedInput = errors.New("graphio: malformed input")

	// ErrBadDimensions indicates n₁ ≤ 0, n₂ < n₁, or k ≤ 0.
	ErrBadDimensions = errors.New("graphio: invalid dimensions")

	// ErrTrailingInput indicates unexpected tokens after the instance.
	ErrTrailingInput = errors.New("graphio: trailing input after instance")
)

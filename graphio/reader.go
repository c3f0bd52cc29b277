// Package graphio: instance parsing.
//
// ReadProblem consumes the whitespace-separated integer format and builds
// the two graphs plus the copy count. Parsing is staged: pattern order,
// pattern matrix, host order, host matrix, optional k, then a strict
// end-of-stream check. Every failure maps to a sentinel.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/kubapoke/subgraph-isomorphisms/graph"
)

// Problem is one parsed instance.
type Problem struct {
	// Pattern is G₁, the multigraph to embed.
	Pattern *graph.Graph

	// Host is G₂, the multigraph to extend.
	Host *graph.Graph

	// Copies is k, the number of image-distinct embeddings required.
	Copies int
}

// ReadProblem parses an instance from r.
//
// Errors: ErrMalformedInput (non-numeric token, negative multiplicity,
// truncated stream), ErrBadDimensions (n₁ ≤ 0, n₂ < n₁, k ≤ 0),
// ErrTrailingInput (tokens after a complete instance).
//
// Complexity: O(n₁² + n₂²).
func ReadProblem(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	n1, err := nextInt(sc)
	if err != nil {
		return nil, err
	}
	if n1 <= 0 {
		return nil, fmt.Errorf("%w: pattern order %d", ErrBadDimensions, n1)
	}
	pat, err := readMatrix(sc, n1)
	if err != nil {
		return nil, err
	}

	n2, err := nextInt(sc)
	if err != nil {
		return nil, err
	}
	if n2 < n1 {
		return nil, fmt.Errorf("%w: host order %d below pattern order %d", ErrBadDimensions, n2, n1)
	}
	host, err := readMatrix(sc, n2)
	if err != nil {
		return nil, err
	}

	// Optional k; default 1. Anything after it is an error.
	k := 1
	if sc.Scan() {
		k, err = parseInt(sc.Text())
		if err != nil {
			return nil, err
		}
		if k <= 0 {
			return nil, fmt.Errorf("%w: copy count %d", ErrBadDimensions, k)
		}
		if sc.Scan() {
			return nil, ErrTrailingInput
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return &Problem{Pattern: pat, Host: host, Copies: k}, nil
}

// readMatrix reads n*n multiplicities and builds a graph. Negative entries
// are rejected here (malformed input) before graph construction.
func readMatrix(sc *bufio.Scanner, n int) (*graph.Graph, error) {
	rows := make([][]int64, n)
	var (
		u, v int
		x    int
		err  error
	)
	for u = 0; u < n; u++ {
		rows[u] = make([]int64, n)
		for v = 0; v < n; v++ {
			x, err = nextInt(sc)
			if err != nil {
				return nil, err
			}
			if x < 0 {
				return nil, fmt.Errorf("%w: negative multiplicity %d", ErrMalformedInput, x)
			}
			rows[u][v] = int64(x)
		}
	}

	g, err := graph.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return g, nil
}

// nextInt scans one token and parses it as a base-10 integer.
func nextInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}

		return 0, fmt.Errorf("%w: unexpected end of input", ErrMalformedInput)
	}

	return parseInt(sc.Text())
}

// parseInt maps strconv failures onto the package sentinel.
func parseInt(tok string) (int, error) {
	x, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, tok)
	}

	return x, nil
}

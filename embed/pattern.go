// Package embed: prefetched pattern view.
//
// Solvers read G₁ multiplicities in every inner loop, so the pattern is
// loaded once into a dense flat buffer with precomputed total degrees.
// This removes checked-indexer overhead from hot paths, mirroring the
// prefetch discipline used by the working host matrix.
package embed

import "github.com/kubapoke/subgraph-isomorphisms/graph"

// pattern is an immutable dense view of G₁.
type pattern struct {
	n   int
	m   []int64 // m[u*n+v] = multiplicity of the pattern arc u→v
	deg []int64 // deg[v] = Σ_u m[v][u] + m[u][v]
}

// newPattern prefetches g into flat storage and precomputes degrees.
//
// Complexity: O(n²) time, O(n²) space.
func newPattern(g *graph.Graph) *pattern {
	var (
		n = g.Order()
		p = &pattern{n: n, m: g.Flat(), deg: make([]int64, n)}
		u int
		v int
	)
	for v = 0; v < n; v++ {
		for u = 0; u < n; u++ {
			p.deg[v] += p.m[v*n+u] + p.m[u*n+v]
		}
	}

	return p
}

// at is the hot-path accessor for the pattern multiplicity u→v.
func (p *pattern) at(u, v int) int64 { return p.m[u*p.n+v] }

// Package graph - dense directed multigraph with integer arc multiplicities.
//
// Graph is a row-major n×n matrix of int64 multiplicities stored in a flat
// slice. Public indexers are checked and return sentinel errors; hot solver
// loops are expected to prefetch into their own buffers (see the embed
// package) rather than call At in inner loops.
package graph

// Graph is a directed multigraph on vertices 0..n-1.
// mult holds n*n entries in row-major order; mult[u*n+v] is the
// multiplicity of the arc u→v.
type Graph struct {
	n    int
	mult []int64
}

// New creates a graph on n vertices with no arcs.
//
// Complexity: O(n²) time and memory.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadOrder
	}

	return &Graph{n: n, mult: make([]int64, n*n)}, nil
}

// FromRows builds a graph from explicit multiplicity rows.
//
// Contracts:
//   - rows must be square: len(rows[u]) == len(rows) for every u.
//   - every entry must be ≥ 0.
//
// Complexity: O(n²).
func FromRows(rows [][]int64) (*Graph, error) {
	var n = len(rows)
	g := &Graph{n: n, mult: make([]int64, n*n)}

	var (
		u, v int
		m    int64
	)
	for u = 0; u < n; u++ {
		if len(rows[u]) != n {
			return nil, ErrNonSquare
		}
		for v = 0; v < n; v++ {
			m = rows[u][v]
			if m < 0 {
				return nil, ErrNegativeMultiplicity
			}
			g.mult[u*n+v] = m
		}
	}

	return g, nil
}

// FromFlat builds a graph on n vertices from a row-major multiplicity
// buffer of length n*n. The buffer is copied; the caller keeps ownership.
//
// Complexity: O(n²).
func FromFlat(n int, mult []int64) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadOrder
	}
	if len(mult) != n*n {
		return nil, ErrNonSquare
	}
	var i int
	for i = 0; i < len(mult); i++ {
		if mult[i] < 0 {
			return nil, ErrNegativeMultiplicity
		}
	}
	g := &Graph{n: n, mult: make([]int64, n*n)}
	copy(g.mult, mult)

	return g, nil
}

// Order returns the number of vertices.
// Complexity: O(1).
func (g *Graph) Order() int { return g.n }

// At returns the multiplicity of the arc u→v.
// Returns ErrOutOfRange when either index is outside [0, n).
// Complexity: O(1).
func (g *Graph) At(u, v int) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return 0, ErrOutOfRange
	}

	return g.mult[u*g.n+v], nil
}

// Set assigns the multiplicity of the arc u→v.
// Returns ErrOutOfRange on bad indices and ErrNegativeMultiplicity on m < 0.
// Complexity: O(1).
func (g *Graph) Set(u, v int, m int64) error {
	if g == nil {
		return ErrNilGraph
	}
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return ErrOutOfRange
	}
	if m < 0 {
		return ErrNegativeMultiplicity
	}
	g.mult[u*g.n+v] = m

	return nil
}

// Clone returns a deep copy of g.
// Complexity: O(n²).
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	out := &Graph{n: g.n, mult: make([]int64, len(g.mult))}
	copy(out.mult, g.mult)

	return out
}

// Equal reports whether g and other have the same order and identical
// multiplicities.
// Complexity: O(n²).
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.n != other.n {
		return false
	}
	var i int
	for i = 0; i < len(g.mult); i++ {
		if g.mult[i] != other.mult[i] {
			return false
		}
	}

	return true
}

// Degree returns the total degree of v: the sum over all u of
// mult(v,u) + mult(u,v). A self-loop therefore contributes twice,
// consistent with counting arc endpoints.
// Complexity: O(n).
func (g *Graph) Degree(v int) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if v < 0 || v >= g.n {
		return 0, ErrOutOfRange
	}

	var (
		sum int64
		u   int
	)
	for u = 0; u < g.n; u++ {
		sum += g.mult[v*g.n+u] + g.mult[u*g.n+v]
	}

	return sum, nil
}

// TotalEdges returns the sum of all arc multiplicities.
// Complexity: O(n²).
func (g *Graph) TotalEdges() int64 {
	if g == nil {
		return 0
	}
	var (
		sum int64
		i   int
	)
	for i = 0; i < len(g.mult); i++ {
		sum += g.mult[i]
	}

	return sum
}

// Dominates reports whether g ≥ other componentwise. Both graphs must have
// the same order.
// Complexity: O(n²).
func (g *Graph) Dominates(other *Graph) (bool, error) {
	if g == nil || other == nil {
		return false, ErrNilGraph
	}
	if g.n != other.n {
		return false, ErrOrderMismatch
	}
	var i int
	for i = 0; i < len(g.mult); i++ {
		if g.mult[i] < other.mult[i] {
			return false, nil
		}
	}

	return true, nil
}

// ExtensionCost returns Σ max(0, g[u][v] − base[u][v]) over all entries:
// the number of multiplicity units by which g extends base.
// Complexity: O(n²).
func (g *Graph) ExtensionCost(base *Graph) (int64, error) {
	if g == nil || base == nil {
		return 0, ErrNilGraph
	}
	if g.n != base.n {
		return 0, ErrOrderMismatch
	}

	var (
		sum int64
		i   int
		d   int64
	)
	for i = 0; i < len(g.mult); i++ {
		d = g.mult[i] - base.mult[i]
		if d > 0 {
			sum += d
		}
	}

	return sum, nil
}

// Flat returns a copy of the row-major multiplicity buffer.
// Solvers use it to prefetch the matrix once and then index w[u*n+v]
// without interface or bounds-check overhead in inner loops.
// Complexity: O(n²).
func (g *Graph) Flat() []int64 {
	if g == nil {
		return nil
	}
	out := make([]int64, len(g.mult))
	copy(out, g.mult)

	return out
}

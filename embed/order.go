// Package embed: pattern vertex ordering.
//
// Every solver processes V(G₁) in the same canonical order: at each step
// pick the vertex with the most arc endpoints into the already-ordered
// prefix, breaking ties by total degree and then by smallest index. Early
// positions therefore carry the most constraints, which maximizes pruning
// in the exact search and sharpens greedy choices in the constructor.
package embed

// vertexOrder computes the canonical processing permutation of the pattern
// vertices.
//
// Selection rule per step, over unordered vertices v:
//  1. maximize attach(v) = Σ_{u ordered} m[v][u] + m[u][v],
//  2. then maximize deg(v),
//  3. then smallest index (determinism).
//
// Complexity: O(n₁²) time, O(n₁) space.
func vertexOrder(p *pattern) []int {
	var (
		order  = make([]int, 0, p.n)
		placed = make([]bool, p.n)
		attach = make([]int64, p.n) // arc endpoints into the ordered prefix
		step   int
		v      int
		best   int
	)
	for step = 0; step < p.n; step++ {
		best = -1
		for v = 0; v < p.n; v++ {
			if placed[v] {
				continue
			}
			if best < 0 ||
				attach[v] > attach[best] ||
				(attach[v] == attach[best] && p.deg[v] > p.deg[best]) {
				best = v
			}
		}
		order = append(order, best)
		placed[best] = true

		// Fold the chosen vertex into every remaining vertex's attachment.
		for v = 0; v < p.n; v++ {
			if !placed[v] {
				attach[v] += p.at(v, best) + p.at(best, v)
			}
		}
	}

	return order
}

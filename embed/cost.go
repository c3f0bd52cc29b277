// Package embed: incremental cost and coverage evaluators.
//
// Both evaluators inspect the hypothetical assignment u→v against the
// current partial mapping of one copy and the current working matrix.
// Neither mutates anything; deltaCost is the exact number of multiplicity
// units applyAssignment would add, and deltaExist is its complement — the
// requirement units already satisfied by existing arcs.
package embed

// deltaCost returns the number of multiplicity units that would have to be
// added to the working matrix to satisfy the pattern arcs incident to u
// under the assignment u→v, counting only already-mapped pattern vertices:
//
//	Σ_{i mapped} max(0, m[u][i] − w[v][mᵢ]) + max(0, m[i][u] − w[mᵢ][v])
//	+ max(0, m[u][u] − w[v][v])
//
// The self-loop term is counted exactly once. mapping[u] must be NoMapping.
//
// Complexity: O(n₁).
func deltaCost(p *pattern, h *hostWork, mapping []int, u, v int) int64 {
	var (
		sum int64
		i   int
		mi  int
		d   int64
	)
	for i = 0; i < p.n; i++ {
		mi = mapping[i]
		if mi == NoMapping {
			continue
		}
		if d = p.at(u, i) - h.at(v, mi); d > 0 {
			sum += d
		}
		if d = p.at(i, u) - h.at(mi, v); d > 0 {
			sum += d
		}
	}
	if d = p.at(u, u) - h.at(v, v); d > 0 {
		sum += d
	}

	return sum
}

// deltaExist returns the number of requirement units around u that are
// already met by existing arcs around v:
//
//	Σ_{i mapped} min(m[u][i], w[v][mᵢ]) + min(m[i][u], w[mᵢ][v])
//	+ min(m[u][u], w[v][v])
//
// Used only as a candidate ranking key; higher means the assignment reuses
// more of the host as it stands.
//
// Complexity: O(n₁).
func deltaExist(p *pattern, h *hostWork, mapping []int, u, v int) int64 {
	var (
		sum  int64
		i    int
		mi   int
		need int64
		have int64
	)
	for i = 0; i < p.n; i++ {
		mi = mapping[i]
		if mi == NoMapping {
			continue
		}
		need, have = p.at(u, i), h.at(v, mi)
		if have < need {
			sum += have
		} else {
			sum += need
		}
		need, have = p.at(i, u), h.at(mi, v)
		if have < need {
			sum += have
		} else {
			sum += need
		}
	}
	need, have = p.at(u, u), h.at(v, v)
	if have < need {
		sum += have
	} else {
		sum += need
	}

	return sum
}

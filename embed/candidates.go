// Package embed: candidate generation and ranking.
//
// For a pattern vertex u awaiting assignment in some copy, the generator
// enumerates every host vertex not yet used by that copy, evaluates it with
// deltaCost/deltaExist, and sorts the records by a compound key: prefer
// higher coverage, then lower added cost, then higher current host degree,
// then smaller index. Injectivity inside a copy is enforced here — used
// host vertices are never emitted — so the recursion above stays lean.
package embed

import "sort"

// candidate is one admissible target for the pending assignment:
// the host vertex, the multiplicity units an assignment would add, and the
// requirement units it would find already satisfied.
type candidate struct {
	v     int
	cost  int64
	exist int64
}

// candidateOrder implements sort.Interface over candidate records with the
// ranking key (−exist, +cost, −deg, +v). deg is the target's total degree
// in the current working matrix, captured at build time so the comparator
// stays O(1).
type candidateOrder struct {
	recs []candidate
	deg  []int64 // deg[i] corresponds to recs[i]
}

func (co *candidateOrder) Len() int { return len(co.recs) }

func (co *candidateOrder) Less(i, j int) bool {
	a, b := co.recs[i], co.recs[j]
	if a.exist != b.exist {
		return a.exist > b.exist
	}
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if co.deg[i] != co.deg[j] {
		return co.deg[i] > co.deg[j]
	}

	return a.v < b.v
}

func (co *candidateOrder) Swap(i, j int) {
	co.recs[i], co.recs[j] = co.recs[j], co.recs[i]
	co.deg[i], co.deg[j] = co.deg[j], co.deg[i]
}

// buildCandidates enumerates and ranks the admissible host targets for
// pattern vertex u given one copy's partial mapping.
//
// Contracts:
//   - mapping[u] == NoMapping (u is the pending position).
//   - host vertices already present in mapping are never emitted.
//
// The records are ephemeral and rebuilt for every (copy, position)
// decision; ranking reflects the working matrix as it stands right now.
//
// Complexity: O(n₂·n₁) evaluation + O(n₂²) degree scans + O(n₂ log n₂) sort.
func buildCandidates(p *pattern, h *hostWork, mapping []int, u int) []candidate {
	var (
		used = make([]bool, h.n)
		i    int
		v    int
	)
	for i = 0; i < p.n; i++ {
		if mapping[i] != NoMapping {
			used[mapping[i]] = true
		}
	}

	var (
		recs = make([]candidate, 0, h.n)
		deg  = make([]int64, 0, h.n)
	)
	for v = 0; v < h.n; v++ {
		if used[v] {
			continue
		}
		recs = append(recs, candidate{
			v:     v,
			cost:  deltaCost(p, h, mapping, u, v),
			exist: deltaExist(p, h, mapping, u, v),
		})
		deg = append(deg, h.degree(v))
	}

	co := candidateOrder{recs: recs, deg: deg}
	sort.Sort(&co)

	return co.recs
}

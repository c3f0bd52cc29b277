// Package embed — exact branch-and-bound solver.
//
// The search tree is indexed by (copy, position) pairs: copy ci ∈ [0,k),
// position pj ∈ [0,n₁) into the canonical pattern order. At each node the
// engine holds the full mapping family (NoMapping beyond the frontier),
// the working host matrix, the accumulated extension cost, and a
// prefix-equal flag telling whether copy ci has so far repeated copy ci−1
// verbatim.
//
// Rationale (succinct):
//  1. Candidates are ranked by (coverage desc, added cost asc, host degree
//     desc), so cheap completions are explored first and the incumbent
//     tightens early.
//  2. Symmetry breaking: while a copy's prefix equals the previous copy's,
//     only targets ≥ the previous copy's choice are admissible, and the
//     final position demands strict >. Copies are therefore generated as a
//     lexicographically increasing sequence of tuples, which removes the
//     k! orderings of any family from the tree.
//  3. Image-distinctness: the tuple ordering alone cannot prevent two
//     different tuples from sharing an image set, so completed copies keep
//     their sorted images on a stack and the last position of every later
//     copy rejects candidates that would replicate one.
//  4. Cost pruning skips any candidate whose committed delta would reach
//     the incumbent cost. Skipping (rather than cutting the whole
//     candidate list) stays safe across coverage tiers, where added cost
//     is not monotone.
//  5. Mutation with undo: committing a candidate raises working-matrix
//     entries under a per-frame change log; every exit path reverts the
//     log, so the matrix is bitwise restored on backtrack.
//
// Complexity: worst case O(n₂^(k·n₁)) nodes before pruning; per node
// O(n₂·n₁) candidate evaluation + O(n₂²) ranking scans. Memory is O(k·n₁)
// for the family, O(n₂²) for the matrix, O(n₁) per frame for the log.
package embed

// exactEngine holds all branch-and-bound search state.
type exactEngine struct {
	p     *pattern
	h     *hostWork
	k     int
	order []int // canonical processing order of pattern vertices

	mappings [][]int // k × n₁ family, NoMapping beyond the frontier
	images   [][]int // sorted images of completed copies 0..ci-1

	accCost   int64 // extension units committed on the current path
	firstOnly bool  // return the first complete family found
	stop      bool  // early-termination latch for firstOnly

	// Incumbent.
	bestMaps [][]int
	bestW    []int64
	bestCost int64
	found    bool
}

// newExactEngine prepares the engine for a validated instance.
func newExactEngine(p *pattern, h *hostWork, k int, firstOnly bool) *exactEngine {
	e := &exactEngine{
		p:         p,
		h:         h,
		k:         k,
		order:     vertexOrder(p),
		mappings:  newFamily(k, p.n),
		images:    make([][]int, 0, k),
		firstOnly: firstOnly,
		bestCost:  CostInfinity,
	}

	return e
}

// newFamily allocates k mappings of length n, all entries NoMapping.
func newFamily(k, n int) [][]int {
	family := make([][]int, k)
	var (
		c int
		u int
	)
	for c = 0; c < k; c++ {
		family[c] = make([]int, n)
		for u = 0; u < n; u++ {
			family[c][u] = NoMapping
		}
	}

	return family
}

// imageSeen reports whether assigning u→v at the last position of copy ci
// would complete an image set equal to some earlier copy's.
func (e *exactEngine) imageSeen(ci, u, v int) bool {
	img := imageWith(e.mappings[ci], u, v)
	var c int
	for c = 0; c < len(e.images); c++ {
		if imagesEqual(e.images[c], img) {
			return true
		}
	}

	return false
}

// commit snapshots the current family and working matrix as the incumbent.
func (e *exactEngine) commit() {
	if e.bestMaps == nil {
		e.bestMaps = newFamily(e.k, e.p.n)
		e.bestW = make([]int64, len(e.h.w))
	}
	var c int
	for c = 0; c < e.k; c++ {
		copy(e.bestMaps[c], e.mappings[c])
	}
	copy(e.bestW, e.h.w)
	e.bestCost = e.accCost
	e.found = true
	if e.firstOnly {
		e.stop = true
	}
}

// dfs explores the node (ci, pj). prefixEqual tells whether every
// assignment of copy ci so far equals the corresponding assignment of copy
// ci−1; it is vacuously true at position 0 of every copy after the first.
func (e *exactEngine) dfs(ci, pj int, prefixEqual bool) {
	var (
		u     = e.order[pj]
		m     = e.mappings[ci]
		last  = pj == e.p.n-1
		cands = buildCandidates(e.p, e.h, m, u)
	)

	var (
		idx     int
		c       candidate
		prevV   int
		childEq bool
		changes []edgeChange
	)
	for idx = 0; idx < len(cands); idx++ {
		c = cands[idx]

		// Lexicographic symmetry break against the previous copy.
		if ci > 0 && prefixEqual {
			prevV = e.mappings[ci-1][u]
			if c.v < prevV || (last && c.v == prevV) {
				continue
			}
		}

		// Cost pruning. Skip, don't cut: added cost is sorted ascending
		// only inside an equal-coverage tier, so later tiers may still
		// hold cheaper candidates.
		if e.accCost+c.cost >= e.bestCost {
			continue
		}

		// A completed copy must not replicate an earlier image set.
		if last && ci > 0 && e.imageSeen(ci, u, c.v) {
			continue
		}

		// Commit the assignment and raise the required arcs.
		m[u] = c.v
		changes = applyAssignment(e.p, e.h, m, u, c.v)
		e.accCost += c.cost
		childEq = ci > 0 && prefixEqual && c.v == e.mappings[ci-1][u]

		switch {
		case !last:
			e.dfs(ci, pj+1, childEq)
		case ci+1 < e.k:
			e.images = append(e.images, imageOf(m))
			e.dfs(ci+1, 0, true)
			e.images = e.images[:len(e.images)-1]
		default:
			// Full family complete; strictly cheaper paths become the
			// incumbent. Image-distinctness already held at every copy
			// completion above.
			if e.accCost < e.bestCost {
				e.commit()
			}
		}

		// Backtrack: restore cost, matrix, and mapping.
		e.accCost -= c.cost
		revertChanges(e.h, changes)
		m[u] = NoMapping

		if e.stop {
			return
		}
	}
}

// solveExact runs the branch-and-bound search on a validated instance and
// assembles the resulting Solution. Returns ErrNoSolution when the tree is
// exhausted without a feasible family.
func solveExact(p *pattern, h *hostWork, k int, firstOnly bool) (Solution, error) {
	e := newExactEngine(p, h, k, firstOnly)
	e.dfs(0, 0, false)

	if !e.found {
		return notFound(), ErrNoSolution
	}

	return e.solution()
}

// solution materializes the incumbent into the public Solution shape.
func (e *exactEngine) solution() (Solution, error) {
	ext := e.h
	// Rebuild a hostWork over the incumbent matrix to recompute the cost
	// from scratch; the incremental accumulator must agree, and the final
	// recount guards against drift.
	final := &hostWork{n: ext.n, w: e.bestW, base: ext.base}

	return Solution{
		Extended: final.graph(),
		Mappings: e.bestMaps,
		Cost:     final.extensionCost(),
		Found:    true,
	}, nil
}

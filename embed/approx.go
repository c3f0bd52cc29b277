// Package embed — greedy approximate constructor.
//
// The constructor fills the family one copy at a time, one position at a
// time, always taking the best-ranked candidate compatible with the
// lexicographic constraint that the exact solver uses for symmetry
// breaking (copies must form a non-decreasing tuple sequence while their
// prefixes coincide, strictly increasing at the last position). Arc
// requirements are applied immediately and never undone.
//
// Two escape hatches keep the single pass from dead-ending:
//   - When no candidate satisfies the lexicographic constraint the
//     constructor still assigns the best-ranked candidate outright; the
//     constraint is a search-ordering device, not a feasibility condition.
//   - When a completed copy replicates an earlier copy's image set, a
//     repair loop walks its positions from last to first, un-assigns one,
//     and takes the first alternative candidate whose full-copy image is
//     unique. Only when every position fails does construction fail.
//
// The matrix may end up with raises that a later repair made redundant;
// the refiner's row/column re-derivation removes them, and the reported
// cost is always recounted from the final matrix.
package embed

// approxEngine holds greedy construction state.
type approxEngine struct {
	p     *pattern
	h     *hostWork
	k     int
	order []int

	mappings [][]int
	images   [][]int // sorted images of completed copies
}

// newApproxEngine prepares the constructor for a validated instance.
func newApproxEngine(p *pattern, h *hostWork, k int) *approxEngine {
	return &approxEngine{
		p:        p,
		h:        h,
		k:        k,
		order:    vertexOrder(p),
		mappings: newFamily(k, p.n),
		images:   make([][]int, 0, k),
	}
}

// buildCopy fills copy ci greedily under the lexicographic constraint.
func (a *approxEngine) buildCopy(ci int) {
	var (
		m           = a.mappings[ci]
		prefixEqual = ci > 0
		pj          int
		u           int
		last        bool
		cands       []candidate
		pick        int
		prevV       int
		idx         int
	)
	for pj = 0; pj < a.p.n; pj++ {
		u = a.order[pj]
		last = pj == a.p.n-1
		cands = buildCandidates(a.p, a.h, m, u)

		pick = 0
		if prefixEqual && ci > 0 {
			prevV = a.mappings[ci-1][u]
			pick = -1
			for idx = 0; idx < len(cands); idx++ {
				if cands[idx].v > prevV || (!last && cands[idx].v == prevV) {
					pick = idx
					break
				}
			}
			if pick < 0 {
				// No candidate passes the constraint; fall back to the
				// best-ranked one and let the repair loop restore
				// image-uniqueness if needed.
				pick = 0
			}
		}

		m[u] = cands[pick].v
		applyAssignment(a.p, a.h, m, u, cands[pick].v)
		prefixEqual = prefixEqual && ci > 0 && cands[pick].v == a.mappings[ci-1][u]
	}
}

// duplicated reports whether completed copy ci shares an image set with an
// earlier copy.
func (a *approxEngine) duplicated(ci int) bool {
	img := imageOf(a.mappings[ci])
	var c int
	for c = 0; c < len(a.images); c++ {
		if imagesEqual(a.images[c], img) {
			return true
		}
	}

	return false
}

// uniqueWith reports whether copy ci's image would differ from every
// earlier copy's if position u were assigned to v.
func (a *approxEngine) uniqueWith(ci, u, v int) bool {
	img := imageWith(a.mappings[ci], u, v)
	var c int
	for c = 0; c < len(a.images); c++ {
		if imagesEqual(a.images[c], img) {
			return false
		}
	}

	return true
}

// repair resolves an image-set collision of completed copy ci: positions
// are revisited from last to first, each one un-assigned in turn, and the
// first alternative candidate making the full-copy image unique is taken.
// Returns false when no single reassignment can restore uniqueness.
func (a *approxEngine) repair(ci int) bool {
	var (
		m     = a.mappings[ci]
		pj    int
		u     int
		old   int
		cands []candidate
		idx   int
	)
	for pj = a.p.n - 1; pj >= 0; pj-- {
		u = a.order[pj]
		old = m[u]
		m[u] = NoMapping

		cands = buildCandidates(a.p, a.h, m, u)
		for idx = 0; idx < len(cands); idx++ {
			if cands[idx].v == old {
				continue
			}
			if a.uniqueWith(ci, u, cands[idx].v) {
				m[u] = cands[idx].v
				applyAssignment(a.p, a.h, m, u, cands[idx].v)

				return true
			}
		}

		// Nothing at this position; restore and move one position up.
		m[u] = old
	}

	return false
}

// seedFirstCopy installs an externally solved first copy (ExactSeed) and
// applies its arc requirements to the working matrix.
func (a *approxEngine) seedFirstCopy(mapping []int) {
	var (
		m  = a.mappings[0]
		pj int
		u  int
	)
	for pj = 0; pj < a.p.n; pj++ {
		u = a.order[pj]
		m[u] = mapping[u]
		applyAssignment(a.p, a.h, m, u, m[u])
	}
}

// solveApprox runs the constructor (optionally exact-seeded) on a
// validated instance and assembles the unrefined Solution.
func solveApprox(p *pattern, h *hostWork, k int, exactSeed bool) (Solution, error) {
	a := newApproxEngine(p, h, k)

	var start = 0
	if exactSeed {
		// Solve a single copy exactly (first feasible family) on a scratch
		// matrix, then replay its assignments onto the live one.
		seedHost := &hostWork{n: h.n, w: append([]int64(nil), h.w...), base: h.base}
		seed, err := solveExact(p, seedHost, 1, true)
		if err == nil && seed.Found {
			a.seedFirstCopy(seed.Mappings[0])
			a.images = append(a.images, imageOf(a.mappings[0]))
			start = 1
		}
	}

	var ci int
	for ci = start; ci < k; ci++ {
		a.buildCopy(ci)
		if a.duplicated(ci) {
			if !a.repair(ci) {
				return notFound(), ErrNoSolution
			}
		}
		a.images = append(a.images, imageOf(a.mappings[ci]))
	}

	return Solution{
		Extended: h.graph(),
		Mappings: a.mappings,
		Cost:     h.extensionCost(),
		Found:    true,
	}, nil
}

// Package embed — local-search refiner.
//
// Starting from a feasible approximate solution, the refiner repeatedly
// scans every (copy, pattern vertex, host vertex) triple for a single-move
// perturbation that lowers the extension cost:
//
//   - swap: when the host vertex is already used elsewhere in the copy, the
//     two positions exchange targets (image set unchanged, always valid);
//   - reassign: otherwise the position moves to the new host vertex, which
//     is admissible only if the copy's image set stays different from every
//     other copy's.
//
// A move's delta is measured by rebuilding only the affected host rows and
// columns: those entries are reset to the original host values and the
// minimum requirements of all k copies touching the affected vertices are
// re-applied. The rebuild both prices the move exactly and sheds any
// now-redundant raises the constructor left behind on those rows.
//
// Each pass applies the single most-negative move; the loop ends when a
// pass finds none (a local minimum, so a second refinement is a no-op).
// The reported cost is recounted from scratch before returning.
package embed

// refineEngine holds the refiner's working state.
type refineEngine struct {
	p *pattern
	h *hostWork
	k int

	mappings [][]int
	images   [][]int // sorted image per copy, kept current

	aff  []bool  // scratch: affected-host marks
	snap []int64 // scratch: saved affected entries, row-major scan order
}

// newRefineEngine wraps an existing feasible solution for refinement.
// The working matrix starts from the solution's extended graph.
func newRefineEngine(p *pattern, base *hostWork, sol Solution) *refineEngine {
	e := &refineEngine{
		p:        p,
		h:        &hostWork{n: base.n, w: sol.Extended.Flat(), base: base.base},
		k:        len(sol.Mappings),
		mappings: make([][]int, len(sol.Mappings)),
		aff:      make([]bool, base.n),
		snap:     make([]int64, 0, base.n*4),
	}
	var c int
	for c = 0; c < e.k; c++ {
		e.mappings[c] = append([]int(nil), sol.Mappings[c]...)
		e.images = append(e.images, imageOf(sol.Mappings[c]))
	}

	return e
}

// markAffected sets the scratch marks for the given host vertices.
func (e *refineEngine) markAffected(hosts ...int) {
	var v int
	for v = 0; v < len(e.aff); v++ {
		e.aff[v] = false
	}
	for _, v = range hosts {
		e.aff[v] = true
	}
}

// segmentCost sums max(0, w − base) over entries whose row or column is an
// affected host.
//
// Complexity: O(n₂²).
func (e *refineEngine) segmentCost() int64 {
	var (
		sum  int64
		u, v int
		d    int64
		n    = e.h.n
	)
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if !e.aff[u] && !e.aff[v] {
				continue
			}
			d = e.h.w[u*n+v] - e.h.base[u*n+v]
			if d > 0 {
				sum += d
			}
		}
	}

	return sum
}

// snapshotSegment saves the affected entries into the scratch buffer in
// row-major scan order; restoreSegment writes them back in the same order.
func (e *refineEngine) snapshotSegment() {
	e.snap = e.snap[:0]
	var (
		u, v int
		n    = e.h.n
	)
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if e.aff[u] || e.aff[v] {
				e.snap = append(e.snap, e.h.w[u*n+v])
			}
		}
	}
}

func (e *refineEngine) restoreSegment() {
	var (
		u, v int
		i    int
		n    = e.h.n
	)
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if e.aff[u] || e.aff[v] {
				e.h.w[u*n+v] = e.snap[i]
				i++
			}
		}
	}
}

// reapplySegment resets affected entries to the original host values and
// re-raises them to the minimum required by all k copies.
//
// Complexity: O(n₂²) reset + O(k·n₁²) re-application.
func (e *refineEngine) reapplySegment() {
	var (
		u, v   int
		n      = e.h.n
		c      int
		x, y   int
		mx, my int
		idx    int
		need   int64
		m      []int
	)
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if e.aff[u] || e.aff[v] {
				e.h.w[u*n+v] = e.h.base[u*n+v]
			}
		}
	}
	for c = 0; c < e.k; c++ {
		m = e.mappings[c]
		for x = 0; x < e.p.n; x++ {
			mx = m[x]
			for y = 0; y < e.p.n; y++ {
				my = m[y]
				if !e.aff[mx] && !e.aff[my] {
					continue
				}
				need = e.p.at(x, y)
				idx = mx*n + my
				if e.h.w[idx] < need {
					e.h.w[idx] = need
				}
			}
		}
	}
}

// uniqueReassign reports whether copy ci's image stays different from all
// other copies' after replacing oldV by newV.
func (e *refineEngine) uniqueReassign(ci, u, newV int) bool {
	m := e.mappings[ci]
	old := m[u]
	m[u] = NoMapping
	img := imageWith(m, u, newV)
	m[u] = old

	var c int
	for c = 0; c < e.k; c++ {
		if c != ci && imagesEqual(e.images[c], img) {
			return false
		}
	}

	return true
}

// trialDelta prices the move (ci, u, v). It temporarily applies the move,
// rebuilds the affected rows/columns, measures the segment cost change,
// and restores everything. ok is false for inadmissible or void moves.
func (e *refineEngine) trialDelta(ci, u, v int) (delta int64, ok bool) {
	m := e.mappings[ci]
	cur := m[u]
	if v == cur {
		return 0, false
	}

	// Locate v inside the copy: present ⇒ swap, absent ⇒ reassign.
	var (
		w     = -1
		i     int
		isNew bool
	)
	for i = 0; i < e.p.n; i++ {
		if m[i] == v {
			w = i
			break
		}
	}
	isNew = w < 0

	if isNew && !e.uniqueReassign(ci, u, v) {
		return 0, false
	}

	e.markAffected(cur, v)
	before := e.segmentCost()
	e.snapshotSegment()

	if isNew {
		m[u] = v
	} else {
		m[u], m[w] = m[w], m[u]
	}
	e.reapplySegment()
	delta = e.segmentCost() - before

	// Roll back the trial.
	e.restoreSegment()
	if isNew {
		m[u] = cur
	} else {
		m[u], m[w] = m[w], m[u]
	}

	return delta, true
}

// applyMove commits the move (ci, u, v) permanently and refreshes the
// copy's cached image.
func (e *refineEngine) applyMove(ci, u, v int) {
	m := e.mappings[ci]
	cur := m[u]

	var (
		w = -1
		i int
	)
	for i = 0; i < e.p.n; i++ {
		if m[i] == v {
			w = i
			break
		}
	}
	if w < 0 {
		m[u] = v
	} else {
		m[u], m[w] = m[w], m[u]
	}

	e.markAffected(cur, v)
	e.reapplySegment()
	e.images[ci] = imageOf(m)
}

// run iterates best-improvement passes until a local minimum.
func (e *refineEngine) run() {
	var (
		bestDelta            int64
		bestCI, bestU, bestV int
		ci, u, v             int
		delta                int64
		ok                   bool
	)
	for {
		bestDelta, bestCI = 0, -1
		for ci = 0; ci < e.k; ci++ {
			for u = 0; u < e.p.n; u++ {
				for v = 0; v < e.h.n; v++ {
					delta, ok = e.trialDelta(ci, u, v)
					if ok && delta < bestDelta {
						bestDelta, bestCI, bestU, bestV = delta, ci, u, v
					}
				}
			}
		}
		if bestCI < 0 {
			return
		}
		e.applyMove(bestCI, bestU, bestV)
	}
}

// refineSolution improves a feasible solution in place of cost; a
// found=false input is returned unchanged per the refiner contract.
func refineSolution(p *pattern, base *hostWork, sol Solution) Solution {
	if !sol.Found {
		return sol
	}

	e := newRefineEngine(p, base, sol)
	e.run()

	return Solution{
		Extended: e.h.graph(),
		Mappings: e.mappings,
		Cost:     e.h.extensionCost(),
		Found:    true,
	}
}

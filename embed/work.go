// Package embed: working host matrix and the edge-addition operator.
//
// hostWork owns the mutable G'₂ that a solver grows while it searches.
// Entries are only ever raised toward pattern requirements; the exact
// solver additionally records every raise in a per-frame change log so the
// matrix can be restored bitwise on backtrack.
package embed

import "github.com/kubapoke/subgraph-isomorphisms/graph"

// edgeChange records one raised entry of the working matrix: the flat
// index and the value it held before the raise.
type edgeChange struct {
	idx int
	old int64
}

// hostWork is the mutable extension state of the host graph.
// w is the current G'₂; base is the original G₂ and is never written.
type hostWork struct {
	n    int
	w    []int64
	base []int64
}

// newHostWork seeds the working matrix with a copy of the host graph.
//
// Complexity: O(n²).
func newHostWork(g *graph.Graph) *hostWork {
	return &hostWork{n: g.Order(), w: g.Flat(), base: g.Flat()}
}

// at is the hot-path accessor for the current multiplicity u→v.
func (h *hostWork) at(u, v int) int64 { return h.w[u*h.n+v] }

// degree returns the total degree of v in the current working matrix:
// Σ_u w[v][u] + w[u][v]. Used as the final candidate ranking key.
//
// Complexity: O(n).
func (h *hostWork) degree(v int) int64 {
	var (
		sum int64
		u   int
	)
	for u = 0; u < h.n; u++ {
		sum += h.w[v*h.n+u] + h.w[u*h.n+v]
	}

	return sum
}

// extensionCost recomputes Σ max(0, w − base) from scratch.
// Solvers track incremental costs during search and call this once on the
// way out to eliminate drift.
//
// Complexity: O(n²).
func (h *hostWork) extensionCost() int64 {
	var (
		sum int64
		i   int
		d   int64
	)
	for i = 0; i < len(h.w); i++ {
		d = h.w[i] - h.base[i]
		if d > 0 {
			sum += d
		}
	}

	return sum
}

// raise lifts the entry at flat index idx to at least need, appending the
// previous value to log when the entry actually changes. Passing the log
// through and returning it keeps the append idiom allocation-friendly.
func (h *hostWork) raise(idx int, need int64, log []edgeChange) []edgeChange {
	if h.w[idx] >= need {
		return log
	}
	log = append(log, edgeChange{idx: idx, old: h.w[idx]})
	h.w[idx] = need

	return log
}

// applyAssignment raises every working-matrix entry touched by the
// assignment u→v to its pattern requirement: arcs between v and the images
// of the other already-mapped pattern vertices, plus the self-loop
// requirement at v. mapping[u] must already be set to v.
//
// Returns the change log needed to revert exactly the raises performed.
// A nil log means the requirements were already met.
//
// Complexity: O(n₁) raises, each O(1).
func applyAssignment(p *pattern, h *hostWork, mapping []int, u, v int) []edgeChange {
	var (
		log  []edgeChange
		i    int
		mi   int
		need int64
	)
	for i = 0; i < p.n; i++ {
		if i == u || mapping[i] == NoMapping {
			continue
		}
		mi = mapping[i]
		if need = p.at(u, i); need > 0 {
			log = h.raise(v*h.n+mi, need, log)
		}
		if need = p.at(i, u); need > 0 {
			log = h.raise(mi*h.n+v, need, log)
		}
	}
	// Self-loop requirement, applied exactly once.
	if need = p.at(u, u); need > 0 {
		log = h.raise(v*h.n+v, need, log)
	}

	return log
}

// revertChanges restores the entries recorded in log, newest first, leaving
// the working matrix bitwise identical to its state before the paired
// applyAssignment.
//
// Complexity: O(len(log)).
func revertChanges(h *hostWork, log []edgeChange) {
	var i int
	for i = len(log) - 1; i >= 0; i-- {
		h.w[log[i].idx] = log[i].old
	}
}

// graph materializes the current working matrix as an immutable Graph.
func (h *hostWork) graph() *graph.Graph {
	g, _ := graph.FromFlat(h.n, h.w)

	return g
}

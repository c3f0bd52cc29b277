// Package graph provides the dense adjacency representation used by the
// embedding solvers.
//
// A Graph is a directed multigraph on vertices 0..n-1 whose arc
// multiplicities are stored as a flat row-major matrix of non-negative
// int64 values. M[u][v] is the number of parallel arcs u→v; M[u][u] counts
// self-loops.
//
// The type is deliberately small: checked indexers, degree and total-edge
// queries, componentwise dominance, and the extension-cost sum that the
// solvers report. Dense storage keeps lookups O(1) and the whole matrix
// cache-friendly, which is the right trade-off for the small, dense
// instances the solvers target.
package graph

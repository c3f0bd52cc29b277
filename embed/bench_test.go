package embed_test

import (
	"testing"

	"github.com/kubapoke/subgraph-isomorphisms/embed"
	"github.com/kubapoke/subgraph-isomorphisms/graph"
)

// benchInstance is a fixed mid-size instance: a directed triangle with one
// doubled arc, embedded twice into a sparse 6-vertex host.
func benchInstance(b *testing.B) (*graph.Graph, *graph.Graph) {
	b.Helper()
	pat, err := graph.FromRows([][]int64{
		{0, 2, 0},
		{0, 0, 1},
		{1, 0, 0},
	})
	if err != nil {
		b.Fatal(err)
	}
	host, err := graph.FromRows([][]int64{
		{0, 1, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0},
		{1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
	})
	if err != nil {
		b.Fatal(err)
	}

	return pat, host
}

func BenchmarkSolveExact(b *testing.B) {
	pat, host := benchInstance(b)
	opts := embed.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := embed.SolveExact(pat, host, 2, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolveApprox(b *testing.B) {
	pat, host := benchInstance(b)
	opts := embed.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := embed.SolveApprox(pat, host, 2, opts); err != nil {
			b.Fatal(err)
		}
	}
}

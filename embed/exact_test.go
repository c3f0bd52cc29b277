package embed_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/kubapoke/subgraph-isomorphisms/embed"
	"github.com/kubapoke/subgraph-isomorphisms/graph"
)

// mustGraph builds a graph from rows or fails the test.
func mustGraph(t *testing.T, rows [][]int64) *graph.Graph {
	t.Helper()
	g, err := graph.FromRows(rows)
	require.NoError(t, err)

	return g
}

// zeroGraph builds an empty graph on n vertices.
func zeroGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g, err := graph.New(n)
	require.NoError(t, err)

	return g
}

// requireValid asserts the full invariant set over a found solution.
func requireValid(t *testing.T, pat, host *graph.Graph, k int, sol embed.Solution) {
	t.Helper()
	require.True(t, sol.Found)
	require.NoError(t, embed.ValidateSolution(pat, host, k, sol))
}

// ExactSuite exercises the branch-and-bound solver end to end.
type ExactSuite struct {
	suite.Suite
}

// TestSelfLoopTriple embeds a single self-loop vertex three times into an
// empty 3-vertex host: each copy must claim its own vertex and loop.
func (s *ExactSuite) TestSelfLoopTriple() {
	pat := mustGraph(s.T(), [][]int64{{1}})
	host := zeroGraph(s.T(), 3)

	sol, err := embed.SolveExact(pat, host, 3, embed.DefaultOptions())
	require.NoError(s.T(), err)
	requireValid(s.T(), pat, host, 3, sol)
	require.Equal(s.T(), int64(3), sol.Cost)

	// The three single-vertex images are {0}, {1}, {2} in some order.
	seen := map[int]bool{}
	for _, m := range sol.Mappings {
		require.Len(s.T(), m, 1)
		seen[m[0]] = true
	}
	require.Len(s.T(), seen, 3)
}

// TestTwoCycleIntoPath completes a one-arc host into a 2-cycle with a
// single added arc.
func (s *ExactSuite) TestTwoCycleIntoPath() {
	pat := mustGraph(s.T(), [][]int64{{0, 1}, {1, 0}})
	host := mustGraph(s.T(), [][]int64{{0, 1}, {0, 0}})

	sol, err := embed.SolveExact(pat, host, 1, embed.DefaultOptions())
	require.NoError(s.T(), err)
	requireValid(s.T(), pat, host, 1, sol)
	require.Equal(s.T(), int64(1), sol.Cost)

	back, aerr := sol.Extended.At(1, 0)
	require.NoError(s.T(), aerr)
	require.Equal(s.T(), int64(1), back)
}

// TestTwoCycleTriple places three 2-cycles over an empty 3-vertex host;
// every 2-subset of hosts carries a cycle, six arcs in total.
func (s *ExactSuite) TestTwoCycleTriple() {
	pat := mustGraph(s.T(), [][]int64{{0, 1}, {1, 0}})
	host := zeroGraph(s.T(), 3)

	sol, err := embed.SolveExact(pat, host, 3, embed.DefaultOptions())
	require.NoError(s.T(), err)
	requireValid(s.T(), pat, host, 3, sol)
	require.Equal(s.T(), int64(6), sol.Cost)
}

// TestIdenticalGraphsAreFree embeds a graph into itself at zero cost.
func (s *ExactSuite) TestIdenticalGraphsAreFree() {
	rows := [][]int64{
		{0, 2, 0},
		{0, 0, 1},
		{1, 0, 1},
	}
	pat := mustGraph(s.T(), rows)
	host := mustGraph(s.T(), rows)

	sol, err := embed.SolveExact(pat, host, 1, embed.DefaultOptions())
	require.NoError(s.T(), err)
	requireValid(s.T(), pat, host, 1, sol)
	require.Equal(s.T(), int64(0), sol.Cost)
	require.True(s.T(), sol.Extended.Equal(host))
}

// TestCompleteTriangles finds four free triangles inside a complete
// directed 4-host.
func (s *ExactSuite) TestCompleteTriangles() {
	pat := mustGraph(s.T(), [][]int64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})
	host := mustGraph(s.T(), [][]int64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	})

	sol, err := embed.SolveExact(pat, host, 4, embed.DefaultOptions())
	require.NoError(s.T(), err)
	requireValid(s.T(), pat, host, 4, sol)
	require.Equal(s.T(), int64(0), sol.Cost)
}

// TestMultiplicityRequirements respects parallel-arc counts.
func (s *ExactSuite) TestMultiplicityRequirements() {
	pat := mustGraph(s.T(), [][]int64{{0, 3}, {0, 0}})
	host := mustGraph(s.T(), [][]int64{{0, 1}, {0, 0}})

	sol, err := embed.SolveExact(pat, host, 1, embed.DefaultOptions())
	require.NoError(s.T(), err)
	requireValid(s.T(), pat, host, 1, sol)
	require.Equal(s.T(), int64(2), sol.Cost)
}

// TestMonotoneInCopies checks that the optimal cost never decreases as k
// grows with the instance fixed.
func (s *ExactSuite) TestMonotoneInCopies() {
	pat := mustGraph(s.T(), [][]int64{{0, 1}, {1, 0}})
	host := mustGraph(s.T(), [][]int64{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	var prev int64 = -1
	for k := 1; k <= 4; k++ {
		sol, err := embed.SolveExact(pat, host, k, embed.DefaultOptions())
		require.NoError(s.T(), err)
		requireValid(s.T(), pat, host, k, sol)
		require.GreaterOrEqual(s.T(), sol.Cost, prev, "cost must not drop at k=%d", k)
		prev = sol.Cost
	}
}

// TestFirstFound returns a feasible, not necessarily optimal, family.
func (s *ExactSuite) TestFirstFound() {
	pat := mustGraph(s.T(), [][]int64{{0, 1}, {1, 0}})
	host := zeroGraph(s.T(), 4)

	opts := embed.DefaultOptions()
	opts.FirstFound = true
	sol, err := embed.SolveExact(pat, host, 2, opts)
	require.NoError(s.T(), err)
	requireValid(s.T(), pat, host, 2, sol)

	best, err := embed.SolveExact(pat, host, 2, embed.DefaultOptions())
	require.NoError(s.T(), err)
	require.LessOrEqual(s.T(), best.Cost, sol.Cost)
}

// TestImageDistinctness rejects families whose copies would share hosts:
// two 1-vertex copies in a 2-vertex host must use different vertices.
func (s *ExactSuite) TestImageDistinctness() {
	pat := mustGraph(s.T(), [][]int64{{0}})
	host := zeroGraph(s.T(), 2)

	sol, err := embed.SolveExact(pat, host, 2, embed.DefaultOptions())
	require.NoError(s.T(), err)
	requireValid(s.T(), pat, host, 2, sol)
	require.NotEqual(s.T(), sol.Mappings[0][0], sol.Mappings[1][0])
}

func TestExactSuite(t *testing.T) {
	suite.Run(t, new(ExactSuite))
}

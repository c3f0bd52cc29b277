package embed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kubapoke/subgraph-isomorphisms/embed"
)

// approxOnly disables the refiner so the greedy constructor is observable
// in isolation.
func approxOnly() embed.Options {
	opts := embed.DefaultOptions()
	opts.Algo = embed.Approx
	opts.DisableRefine = true

	return opts
}

func TestApprox_SelfLoopTriple(t *testing.T) {
	pat := mustGraph(t, [][]int64{{1}})
	host := zeroGraph(t, 3)

	sol, err := embed.SolveApprox(pat, host, 3, embed.DefaultOptions())
	require.NoError(t, err)
	requireValid(t, pat, host, 3, sol)
	require.Equal(t, int64(3), sol.Cost)
}

func TestApprox_ConstructorAloneIsFeasible(t *testing.T) {
	pat := mustGraph(t, [][]int64{{0, 1}, {1, 0}})
	host := zeroGraph(t, 3)

	sol, err := embed.SolveApprox(pat, host, 3, approxOnly())
	require.NoError(t, err)
	requireValid(t, pat, host, 3, sol)
}

func TestApprox_NeverBeatsExact(t *testing.T) {
	cases := []struct {
		name string
		pat  [][]int64
		host [][]int64
		k    int
	}{
		{
			name: "two-cycles into empty triple host",
			pat:  [][]int64{{0, 1}, {1, 0}},
			host: [][]int64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
			k:    3,
		},
		{
			name: "path pattern over sparse host",
			pat:  [][]int64{{0, 1, 0}, {0, 0, 1}, {0, 0, 0}},
			host: [][]int64{
				{0, 1, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 1},
				{0, 0, 0, 0},
			},
			k: 2,
		},
		{
			name: "loops and multiplicities",
			pat:  [][]int64{{1, 2}, {0, 0}},
			host: [][]int64{
				{0, 1, 0},
				{0, 0, 0},
				{0, 0, 1},
			},
			k: 2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pat := mustGraph(t, tc.pat)
			host := mustGraph(t, tc.host)

			exact, err := embed.SolveExact(pat, host, tc.k, embed.DefaultOptions())
			require.NoError(t, err)
			requireValid(t, pat, host, tc.k, exact)

			approx, err := embed.SolveApprox(pat, host, tc.k, embed.DefaultOptions())
			require.NoError(t, err)
			requireValid(t, pat, host, tc.k, approx)

			require.LessOrEqual(t, exact.Cost, approx.Cost)
		})
	}
}

func TestApprox_ExactSeed(t *testing.T) {
	pat := mustGraph(t, [][]int64{{0, 1}, {1, 0}})
	host := mustGraph(t, [][]int64{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 0},
	})

	opts := embed.DefaultOptions()
	opts.Algo = embed.Approx
	opts.ExactSeed = true
	sol, err := embed.SolveApprox(pat, host, 2, opts)
	require.NoError(t, err)
	requireValid(t, pat, host, 2, sol)
}

func TestApprox_ManyCopiesSparseHost(t *testing.T) {
	// Only one host pair is pre-wired; the remaining copies must claim
	// fresh pairs and stay pairwise image-distinct.
	pat := mustGraph(t, [][]int64{{0, 1}, {1, 0}})
	host := mustGraph(t, [][]int64{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	sol, err := embed.SolveApprox(pat, host, 3, embed.DefaultOptions())
	require.NoError(t, err)
	requireValid(t, pat, host, 3, sol)
}

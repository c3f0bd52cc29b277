package embed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kubapoke/subgraph-isomorphisms/embed"
)

func TestSolve_RoutesOnAlgorithm(t *testing.T) {
	pat := mustGraph(t, [][]int64{{0, 1}, {1, 0}})
	host := zeroGraph(t, 3)

	exact, err := embed.Solve(pat, host, 1, embed.Options{Algo: embed.Exact})
	require.NoError(t, err)
	requireValid(t, pat, host, 1, exact)

	approx, err := embed.Solve(pat, host, 1, embed.Options{Algo: embed.Approx})
	require.NoError(t, err)
	requireValid(t, pat, host, 1, approx)

	require.LessOrEqual(t, exact.Cost, approx.Cost)
}

func TestSolve_UnsupportedAlgorithm(t *testing.T) {
	pat := mustGraph(t, [][]int64{{0}})
	host := zeroGraph(t, 1)

	sol, err := embed.Solve(pat, host, 1, embed.Options{Algo: embed.Algorithm(42)})
	require.ErrorIs(t, err, embed.ErrUnsupportedAlgorithm)
	require.False(t, sol.Found)
}

func TestSolve_Preconditions(t *testing.T) {
	pat := mustGraph(t, [][]int64{{0, 1}, {1, 0}})
	host := zeroGraph(t, 3)

	cases := []struct {
		name string
		run  func() (embed.Solution, error)
		want error
	}{
		{
			name: "nil pattern",
			run: func() (embed.Solution, error) {
				return embed.SolveExact(nil, host, 1, embed.DefaultOptions())
			},
			want: embed.ErrNilGraph,
		},
		{
			name: "nil host",
			run: func() (embed.Solution, error) {
				return embed.SolveExact(pat, nil, 1, embed.DefaultOptions())
			},
			want: embed.ErrNilGraph,
		},
		{
			name: "empty pattern",
			run: func() (embed.Solution, error) {
				return embed.SolveExact(zeroGraph(t, 0), host, 1, embed.DefaultOptions())
			},
			want: embed.ErrEmptyPattern,
		},
		{
			name: "pattern larger than host",
			run: func() (embed.Solution, error) {
				return embed.SolveExact(pat, zeroGraph(t, 1), 1, embed.DefaultOptions())
			},
			want: embed.ErrPatternTooLarge,
		},
		{
			name: "non-positive copies",
			run: func() (embed.Solution, error) {
				return embed.SolveExact(pat, host, 0, embed.DefaultOptions())
			},
			want: embed.ErrBadCopyCount,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sol, err := tc.run()
			require.ErrorIs(t, err, tc.want)
			require.False(t, sol.Found)
			require.Equal(t, embed.CostInfinity, sol.Cost)
		})
	}
}

func TestSolve_InfeasibleCopyCount(t *testing.T) {
	// C(2,2) = 1 < 2: two image-distinct copies cannot exist.
	pat := mustGraph(t, [][]int64{{0, 1}, {0, 0}})
	host := zeroGraph(t, 2)

	for _, algo := range []embed.Algorithm{embed.Exact, embed.Approx} {
		sol, err := embed.Solve(pat, host, 2, embed.Options{Algo: algo})
		require.ErrorIs(t, err, embed.ErrInfeasible)
		require.False(t, sol.Found)
		require.Equal(t, embed.CostInfinity, sol.Cost)
	}
}

func TestSolve_FeasibilityBoundary(t *testing.T) {
	// C(3,2) = 3: exactly three copies fit, four do not.
	pat := mustGraph(t, [][]int64{{0, 1}, {0, 0}})
	host := zeroGraph(t, 3)

	sol, err := embed.SolveExact(pat, host, 3, embed.DefaultOptions())
	require.NoError(t, err)
	requireValid(t, pat, host, 3, sol)

	_, err = embed.SolveExact(pat, host, 4, embed.DefaultOptions())
	require.ErrorIs(t, err, embed.ErrInfeasible)
}

func TestValidateSolution_FlagsTampering(t *testing.T) {
	pat := mustGraph(t, [][]int64{{0, 1}, {1, 0}})
	host := zeroGraph(t, 3)

	sol, err := embed.SolveExact(pat, host, 2, embed.DefaultOptions())
	require.NoError(t, err)
	requireValid(t, pat, host, 2, sol)

	// Misreported cost must fail the identity check.
	bad := sol
	bad.Cost++
	require.ErrorIs(t, embed.ValidateSolution(pat, host, 2, bad),
		embed.ErrInvalidSolution)

	// A duplicated image set must fail distinctness.
	dup := sol
	dup.Mappings = [][]int{sol.Mappings[0], sol.Mappings[0]}
	require.ErrorIs(t, embed.ValidateSolution(pat, host, 2, dup),
		embed.ErrInvalidSolution)
}

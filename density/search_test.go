package density_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clique-density/hcds/core"
	"github.com/clique-density/hcds/density"
)

func buildGraph(t *testing.T, n int, edges [][2]int32) *core.Graph {
	t.Helper()
	g, _, err := core.New(n, edges)
	require.NoError(t, err)
	return g
}

// Scenario 1: triangle-free input.
func TestSearch_TriangleFreeReturnsFullGraphWithZeroDensity(t *testing.T) {
	g := buildGraph(t, 4, [][2]int32{{0, 1}, {1, 2}, {2, 3}})
	out, res, err := density.Search(context.Background(), g, 3)
	require.NoError(t, err)
	require.Equal(t, g.N(), out.N())
	require.Empty(t, res.S)
}

// Scenario 2: single triangle plus a pendant vertex.
func TestSearch_SingleTriangle(t *testing.T) {
	g := buildGraph(t, 4, [][2]int32{{0, 1}, {1, 2}, {0, 2}, {2, 3}})
	_, res, err := density.Search(context.Background(), g, 3)
	require.NoError(t, err)
	require.ElementsMatch(t, []int32{0, 1, 2}, res.S)
	require.InDelta(t, 1.0/3.0, res.Rho, 1e-6)
	require.True(t, res.Measured)
}

// Scenario 3: K4.
func TestSearch_K4(t *testing.T) {
	g := buildGraph(t, 4, [][2]int32{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	_, res, err := density.Search(context.Background(), g, 3)
	require.NoError(t, err)
	require.ElementsMatch(t, []int32{0, 1, 2, 3}, res.S)
	require.InDelta(t, 1.0, res.Rho, 1e-6)
}

// Scenario 4: K4 plus a pendant edge.
func TestSearch_K4PlusPendant(t *testing.T) {
	g := buildGraph(t, 5, [][2]int32{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}, {3, 4}})
	_, res, err := density.Search(context.Background(), g, 3)
	require.NoError(t, err)
	require.ElementsMatch(t, []int32{0, 1, 2, 3}, res.S)
	require.InDelta(t, 1.0, res.Rho, 1e-6)
	require.NotContains(t, res.S, int32(4))
}

// Scenario 5: two disjoint triangles — density stays 1/3 regardless of
// which component is returned, and the driver must not merge them.
func TestSearch_TwoDisjointTriangles(t *testing.T) {
	g := buildGraph(t, 6, [][2]int32{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}})
	_, res, err := density.Search(context.Background(), g, 3)
	require.NoError(t, err)
	require.Len(t, res.S, 3)
	require.InDelta(t, 1.0/3.0, res.Rho, 1e-6)
	for _, v := range res.S {
		require.True(t, v < 3 || v >= 3)
	}
	// Every vertex in the set must come from a single component.
	allLow := true
	allHigh := true
	for _, v := range res.S {
		if v >= 3 {
			allLow = false
		} else {
			allHigh = false
		}
	}
	require.True(t, allLow || allHigh)
}

// Scenario 6: edge density (h=2).
func TestSearch_EdgeDensity(t *testing.T) {
	g := buildGraph(t, 4, [][2]int32{{0, 1}, {1, 2}, {2, 3}, {0, 3}, {0, 2}})
	_, res, err := density.Search(context.Background(), g, 2)
	require.NoError(t, err)
	require.NotEmpty(t, res.S)
	require.True(t, res.Measured)

	sub := g.Induced(res.S)
	require.InDelta(t, float64(sub.EdgeCount())/float64(len(res.S)), res.Rho, 1e-6)
}

func TestSearch_EmptyGraphReturnsEmptyResult(t *testing.T) {
	g := buildGraph(t, 0, nil)
	out, res, err := density.Search(context.Background(), g, 3)
	require.NoError(t, err)
	require.Equal(t, 0, out.N())
	require.Empty(t, res.S)
}

func TestSearch_IterationCapSetsCapped(t *testing.T) {
	// A one-round MaxIterations cap stops the search before the α
	// window converges, which Search reports through Result.Capped.
	g := buildGraph(t, 4, [][2]int32{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	_, res, err := density.Search(context.Background(), g, 3, density.WithMaxIterations(1))
	require.NoError(t, err)
	require.True(t, res.Capped)
}

func TestSearch_RespectsContextCancellation(t *testing.T) {
	g := buildGraph(t, 4, [][2]int32{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := density.Search(ctx, g, 3)
	require.Error(t, err)
}

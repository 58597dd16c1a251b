package core_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clique-density/hcds/core"
)

func k4Edges() [][2]int32 {
	return [][2]int32{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
}

func TestNew_DropsInvalidAndDuplicateAndLoopEdges(t *testing.T) {
	edges := [][2]int32{
		{0, 1},
		{0, 1}, // duplicate
		{1, 1}, // self-loop
		{0, 5}, // out of range
		{2, 0},
	}
	g, stats, err := core.New(3, edges)
	require.NoError(t, err)
	require.Equal(t, 3, stats.Dropped)
	require.Equal(t, 2, g.EdgeCount())
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(2, 0))
}

func TestNew_RejectsInvalidN(t *testing.T) {
	_, _, err := core.New(-1, nil)
	require.ErrorIs(t, err, core.ErrInvalidN)

	_, _, err = core.New(core.MaxN+1, nil)
	require.ErrorIs(t, err, core.ErrTooManyVertices)
}

func TestHasEdge_OutOfRangeIsFalse(t *testing.T) {
	g, _, err := core.New(2, [][2]int32{{0, 1}})
	require.NoError(t, err)
	require.False(t, g.HasEdge(0, 7))
	require.False(t, g.HasEdge(-1, 0))
}

func TestNeighbors_Sorted(t *testing.T) {
	g, _, err := core.New(4, k4Edges())
	require.NoError(t, err)

	nb := g.Neighbors(0, nil)
	require.True(t, sort.SliceIsSorted(nb, func(i, j int) bool { return nb[i] < nb[j] }))
	require.ElementsMatch(t, []int32{1, 2, 3}, nb)
}

func TestAdjacentToAll(t *testing.T) {
	g, _, err := core.New(4, k4Edges())
	require.NoError(t, err)
	require.True(t, g.AdjacentToAll(3, []int32{0, 1, 2}))
	require.False(t, g.AdjacentToAll(3, []int32{0, 1, 3})) // v in clique
}

func TestInduced_PreservesAdjacency(t *testing.T) {
	g, _, err := core.New(5, append(k4Edges(), [2]int32{3, 4}))
	require.NoError(t, err)

	sub := g.Induced([]int32{0, 1, 2, 3})
	require.Equal(t, 4, sub.N())
	require.Equal(t, 6, sub.EdgeCount())

	// induced(V) == G (modulo relabeling): inducing on all vertices in
	// order must reproduce the same edge count and adjacency pattern.
	full := g.Induced(g.Vertices())
	require.Equal(t, g.EdgeCount(), full.EdgeCount())
	for u := int32(0); u < 5; u++ {
		for v := int32(0); v < 5; v++ {
			require.Equal(t, g.HasEdge(u, v), full.HasEdge(u, v))
		}
	}
}

func TestInduced_Idempotent(t *testing.T) {
	g, _, err := core.New(5, append(k4Edges(), [2]int32{3, 4}))
	require.NoError(t, err)

	s := []int32{0, 1, 2, 3}
	once := g.Induced(s)
	twice := once.Induced(once.Vertices())
	require.Equal(t, once.N(), twice.N())
	require.Equal(t, once.EdgeCount(), twice.EdgeCount())
}

func TestInduced_DropsOutOfRangeAndDuplicates(t *testing.T) {
	g, _, err := core.New(4, k4Edges())
	require.NoError(t, err)

	sub := g.Induced([]int32{0, 0, 1, 99})
	require.Equal(t, 2, sub.N())
	require.True(t, sub.HasEdge(0, 1))
}

func TestComponents_DisconnectedGraph(t *testing.T) {
	// Two disjoint triangles: {0,1,2} and {3,4,5}.
	edges := [][2]int32{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}}
	g, _, err := core.New(6, edges)
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 2)
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	require.Equal(t, []int{3, 3}, sizes)
}

func TestComponents_EmptyGraph(t *testing.T) {
	g, _, err := core.New(0, nil)
	require.NoError(t, err)
	require.Nil(t, g.Components())
}

func TestDegree(t *testing.T) {
	g, _, err := core.New(4, k4Edges())
	require.NoError(t, err)
	require.Equal(t, 3, g.Degree(0))
	require.Equal(t, 0, g.Degree(99))
}

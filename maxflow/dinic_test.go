package maxflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clique-density/hcds/core"
	"github.com/clique-density/hcds/flownet"
	"github.com/clique-density/hcds/maxflow"
)

func TestRun_TriangleKnownMaxFlow(t *testing.T) {
	g, _, err := core.New(3, [][2]int32{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)
	hDegree := []int32{1, 1, 1}
	hMinus1 := [][]int32{{0, 1}, {1, 2}, {0, 2}}

	net, err := flownet.Build(g, hDegree, hMinus1, 1.0, 3)
	require.NoError(t, err)

	res, err := maxflow.Run(context.Background(), net)
	require.NoError(t, err)
	// Every vertex source-edge is capacity 1, so max-flow is bounded by
	// the 3 source edges: at most 3.
	require.LessOrEqual(t, res.Flow, int64(3))
	require.True(t, res.Reachable[net.Source])
	require.False(t, res.Reachable[net.Sink])
}

func TestRun_DisconnectedSourceSinkIsZeroFlow(t *testing.T) {
	g, _, err := core.New(2, nil)
	require.NoError(t, err)

	net, err := flownet.Build(g, []int32{0, 0}, nil, 1.0, 2)
	require.NoError(t, err)

	res, err := maxflow.Run(context.Background(), net)
	require.NoError(t, err)
	require.Equal(t, int64(0), res.Flow)
	require.True(t, res.Reachable[net.Source])
}

func TestRun_SimpleBottleneck(t *testing.T) {
	// source -> v0 (cap 5), v0 -> sink (cap 2): max flow is 2,
	// bounded by the vertex->sink edge regardless of alpha*h rounding.
	g, _, err := core.New(1, nil)
	require.NoError(t, err)

	net, err := flownet.Build(g, []int32{5}, nil, 2.0/3.0, 3)
	require.NoError(t, err)

	res, err := maxflow.Run(context.Background(), net)
	require.NoError(t, err)
	require.Equal(t, int64(2), res.Flow)
}

func TestRun_RespectsContextCancellation(t *testing.T) {
	g, _, err := core.New(3, [][2]int32{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)
	net, err := flownet.Build(g, []int32{1, 1, 1}, [][]int32{{0, 1}}, 1.0, 3)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = maxflow.Run(ctx, net)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_IterationCapReturnsSentinelError(t *testing.T) {
	g, _, err := core.New(3, [][2]int32{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)
	net, err := flownet.Build(g, []int32{1, 1, 1}, [][]int32{{0, 1}, {1, 2}, {0, 2}}, 1.0, 3)
	require.NoError(t, err)

	_, err = maxflow.Run(context.Background(), net, maxflow.WithMaxIterSteps(0))
	require.NoError(t, err)

	net2, err := flownet.Build(g, []int32{1, 1, 1}, [][]int32{{0, 1}, {1, 2}, {0, 2}}, 1.0, 3)
	require.NoError(t, err)
	res, err := maxflow.Run(context.Background(), net2, maxflow.WithMaxIterSteps(1))
	if err != nil {
		require.ErrorIs(t, err, maxflow.ErrIterationCapHit)
	}
	require.GreaterOrEqual(t, res.Flow, int64(0))
}

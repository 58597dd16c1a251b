package maxflow

import (
	"context"

	"github.com/clique-density/hcds/flownet"
)

// Result is the outcome of a Dinic run: the max-flow value and the set
// of nodes reachable from the source in the final residual graph, the
// source side of the minimum cut (spec.md §4.4/§4.5).
type Result struct {
	Flow      int64
	Reachable []bool // indexed by node id in net's numbering
}

// Run computes max-flow from net.Source to net.Sink and the min-cut
// reachable set, mutating net.Cap in place to hold residual
// capacities (spec.md §4.4: "the solver operates directly on the CSR
// Cap array").
//
// ctx is checked between level-graph phases and during blocking-flow
// search; a cancelled context stops the run early and returns the flow
// pushed so far together with ctx.Err().
func Run(ctx context.Context, net *flownet.Network, opts ...Option) (Result, error) {
	cfg := resolve(opts)

	d := &dinic{net: net}
	var flow int64
	steps := 0

	for {
		if err := ctx.Err(); err != nil {
			return Result{Flow: flow, Reachable: d.bfsLevels()}, err
		}
		if cfg.MaxIterSteps > 0 && steps >= cfg.MaxIterSteps {
			return Result{Flow: flow, Reachable: d.bfsLevels()}, ErrIterationCapHit
		}
		steps++

		if !d.buildLevels() {
			break
		}
		d.iter = make([]int32, net.NumNodes)
		for i := range d.iter {
			d.iter[i] = net.RowStart[i]
		}
		for {
			if err := ctx.Err(); err != nil {
				return Result{Flow: flow, Reachable: reachableFromLevel(d.level)}, err
			}
			pushed := d.dfsPush(net.Source, flownet.Infinite)
			if pushed == 0 {
				break
			}
			flow += pushed
		}
	}

	return Result{Flow: flow, Reachable: d.finalReachable()}, nil
}

// dinic holds the per-run level graph and current-edge pointers over
// the network's CSR arrays, mirroring the teacher's level/next/iter
// triple but indexed by int32 node id instead of string vertex name.
type dinic struct {
	net   *flownet.Network
	level []int32
	iter  []int32
}

const unreached int32 = -1

// buildLevels runs a BFS from source over edges with positive residual
// capacity and reports whether the sink was reached.
func (d *dinic) buildLevels() bool {
	n := d.net.NumNodes
	level := make([]int32, n)
	for i := range level {
		level[i] = unreached
	}
	level[d.net.Source] = 0
	queue := make([]int32, 0, n)
	queue = append(queue, d.net.Source)
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for e := d.net.RowStart[u]; e < d.net.RowStart[u+1]; e++ {
			if d.net.Cap[e] <= 0 {
				continue
			}
			v := d.net.To[e]
			if level[v] != unreached {
				continue
			}
			level[v] = level[u] + 1
			queue = append(queue, v)
		}
	}
	d.level = level
	return level[d.net.Sink] != unreached
}

// dfsPush sends up to `avail` flow from u to the sink along the level
// graph, advancing each node's current-edge pointer past exhausted or
// off-level edges so repeated calls amortize to O(E) per phase.
func (d *dinic) dfsPush(u int32, avail int64) int64 {
	if u == d.net.Sink {
		return avail
	}
	net := d.net
	for ; d.iter[u] < net.RowStart[u+1]; d.iter[u]++ {
		e := d.iter[u]
		v := net.To[e]
		if net.Cap[e] <= 0 || d.level[v] != d.level[u]+1 {
			continue
		}
		want := avail
		if net.Cap[e] < want {
			want = net.Cap[e]
		}
		pushed := d.dfsPush(v, want)
		if pushed > 0 {
			net.Cap[e] -= pushed
			net.Cap[net.Rev[e]] += pushed
			return pushed
		}
		d.level[v] = unreached
	}
	return 0
}

// bfsLevels is a convenience used when a context cancellation happens
// before any level graph has been built this run.
func (d *dinic) bfsLevels() []bool {
	if d.level == nil {
		d.buildLevels()
	}
	return reachableFromLevel(d.level)
}

// finalReachable runs one last BFS over the residual graph after the
// main loop exits (sink unreachable), which is exactly the min-cut
// source side (spec.md §4.5).
func (d *dinic) finalReachable() []bool {
	d.buildLevels()
	return reachableFromLevel(d.level)
}

func reachableFromLevel(level []int32) []bool {
	out := make([]bool, len(level))
	for i, lv := range level {
		out[i] = lv != unreached
	}
	return out
}

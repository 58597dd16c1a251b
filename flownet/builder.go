package flownet

import "github.com/clique-density/hcds/core"

const (
	sourceID int32 = 0
	sinkID   int32 = 1
)

// adjEntry is one half of a paired edge, held in a per-node dynamic
// list while the network is being assembled; Build flattens these
// lists into the final CSR arrays. pairTo/pairIdx locate the other
// half: node pairTo's adjacency list, entry pairIdx.
type adjEntry struct {
	to      int32
	cap     int64
	pairTo  int32
	pairIdx int32
}

type builder struct {
	n   int32
	adj [][]adjEntry
}

func newBuilder(n int32) *builder {
	return &builder{n: n, adj: make([][]adjEntry, n)}
}

// addEdge records u→v with the given capacity and its zero-capacity
// reverse v→u, the standard residual-graph pairing Dinic needs to be
// able to cancel flow. Each half records exactly where its sibling
// lives so flatten can resolve Rev indices after compaction reorders
// entries within a row.
func (b *builder) addEdge(u, v int32, cap int64) {
	if cap <= 0 {
		return
	}
	fwdIdx := int32(len(b.adj[u]))
	revIdx := int32(len(b.adj[v]))
	b.adj[u] = append(b.adj[u], adjEntry{to: v, cap: cap, pairTo: v, pairIdx: revIdx})
	b.adj[v] = append(b.adj[v], adjEntry{to: u, cap: 0, pairTo: u, pairIdx: fwdIdx})
}

// Build assembles N(α) from g, the h-clique degree of each vertex
// (spec.md §3's "clique-degree of i (from M)"), and a sampled set of
// (h-1)-cliques. hDegree must have length g.N().
//
// Complexity: O(n + K*n) time where K = min(len(hMinus1Cliques),
// Config.CliqueBudget) — spec.md §4.3's acknowledged Θ(|C_{h−1}|·n)
// cost, bounded by sampling.
func Build(g *core.Graph, hDegree []int32, hMinus1Cliques [][]int32, alpha float64, h int, opts ...Option) (net *Network, err error) {
	cfg := resolve(opts)

	defer func() {
		if r := recover(); r != nil {
			cfg.Logger.Printf("recovered allocation failure building network: %v", r)
			net = nil
			err = ErrAllocFailed
		}
	}()

	n := int32(g.N())
	k := len(hMinus1Cliques)
	if k > cfg.CliqueBudget {
		k = cfg.CliqueBudget
	}
	sampled := hMinus1Cliques[:k]

	vertexStart := int32(2)
	cliqueStart := vertexStart + n
	total := cliqueStart + int32(k)

	b := newBuilder(total)

	capVT := ceilAlphaH(alpha, h)
	for v := int32(0); v < n; v++ {
		node := vertexStart + v
		if int(v) < len(hDegree) && hDegree[v] > 0 {
			b.addEdge(sourceID, node, int64(hDegree[v]))
		}
		b.addEdge(node, sinkID, capVT)
	}

	for j, cl := range sampled {
		cliqueNode := cliqueStart + int32(j)
		for _, i := range cl {
			b.addEdge(cliqueNode, vertexStart+i, Infinite)
		}
		inClique := make(map[int32]struct{}, len(cl))
		for _, i := range cl {
			inClique[i] = struct{}{}
		}
		for v := int32(0); v < n; v++ {
			if _, skip := inClique[v]; skip {
				continue
			}
			if g.AdjacentToAll(v, cl) {
				b.addEdge(vertexStart+v, cliqueNode, 1)
			}
		}
	}

	bounded := int(total) > cfg.CompactThreshold

	net = b.flatten(vertexStart, cliqueStart, bounded)

	if bounded {
		cfg.Logger.Printf("%v: %d pre-compaction nodes exceeded threshold %d, compacted to %d", ErrNetworkTooLarge, total, cfg.CompactThreshold, net.NumNodes)
	}

	return net, nil
}

// flatten converts the dynamic adjacency lists into the final CSR
// arrays, applying active-node compaction when requested.
func (b *builder) flatten(vertexStart, cliqueStart int32, compact bool) *Network {
	var remap []int32 // remap[origID] = newID, or -1 if dropped
	var compactMap []int32

	if compact {
		active := make([]bool, b.n)
		active[sourceID] = true
		active[sinkID] = true
		for u := int32(0); int(u) < len(b.adj); u++ {
			if len(b.adj[u]) == 0 {
				continue
			}
			active[u] = true
			for _, e := range b.adj[u] {
				active[e.to] = true
			}
		}
		remap = make([]int32, b.n)
		compactMap = make([]int32, 0, b.n)
		var next int32
		for u := int32(0); int(u) < len(active); u++ {
			if active[u] {
				remap[u] = next
				compactMap = append(compactMap, u)
				next++
			} else {
				remap[u] = -1
			}
		}
	} else {
		remap = make([]int32, b.n)
		for u := range remap {
			remap[u] = int32(u)
		}
	}

	newN := b.n
	if compact {
		newN = int32(len(compactMap))
	}

	rowStart := make([]int32, newN+1)
	for u := int32(0); int(u) < len(b.adj); u++ {
		nu := remap[u]
		if nu < 0 {
			continue
		}
		rowStart[nu+1] += int32(len(b.adj[u]))
	}
	for i := int32(1); i <= newN; i++ {
		rowStart[i] += rowStart[i-1]
	}

	total := rowStart[newN]
	to := make([]int32, total)
	cap := make([]int64, total)
	rev := make([]int32, total)
	cursor := append([]int32(nil), rowStart[:newN]...)

	// edgeSlot[origU][i] = flattened index that origU's i-th adjacency
	// entry landed at, so the second pass can resolve cross-row Rev
	// indices by following each entry's recorded pairTo/pairIdx.
	edgeSlot := make([][]int32, len(b.adj))
	for u := int32(0); int(u) < len(b.adj); u++ {
		nu := remap[u]
		if nu < 0 {
			continue
		}
		edgeSlot[u] = make([]int32, len(b.adj[u]))
		for i, e := range b.adj[u] {
			nv := remap[e.to]
			if nv < 0 {
				edgeSlot[u][i] = -1
				continue
			}
			slot := cursor[nu]
			cursor[nu]++
			to[slot] = nv
			cap[slot] = e.cap
			edgeSlot[u][i] = slot
		}
	}

	for u := int32(0); int(u) < len(b.adj); u++ {
		if remap[u] < 0 {
			continue
		}
		for i, e := range b.adj[u] {
			slot := edgeSlot[u][i]
			if slot < 0 {
				continue
			}
			rev[slot] = edgeSlot[e.pairTo][e.pairIdx]
		}
	}

	return &Network{
		NumNodes:    newN,
		Source:      remap[sourceID],
		Sink:        remap[sinkID],
		RowStart:    rowStart,
		To:          to,
		Cap:         cap,
		Rev:         rev,
		VertexStart: vertexStart,
		CliqueStart: cliqueStart,
		compactMap:  compactMap,
	}
}

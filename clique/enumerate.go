package clique

import "github.com/clique-density/hcds/core"

// Enumerate produces the bounded set of k-vertex cliques of g
// (spec.md §4.1). k<=0 or k>g.N() yields an empty, uncapped Set and a
// nil error — an invalid arity is not a failure.
//
// Complexity: O(Σ deg²) for k=3 (no recursion); for general k, O(steps)
// where steps is bounded by Config.MaxExtensionSteps.
func Enumerate(g *core.Graph, k int, opts ...Option) (set Set, err error) {
	cfg := resolve(opts)
	set.Arity = k

	n := g.N()
	if k <= 0 || k > n {
		return set, nil
	}

	defer func() {
		if r := recover(); r != nil {
			cfg.Logger.Printf("recovered allocation failure enumerating %d-cliques: %v", k, r)
			set = Set{Arity: k}
			err = ErrAllocFailed
		}
	}()

	var cliques [][]int32
	var capped bool
	if k == 3 {
		cliques, capped = enumerateTriangles(g, cfg)
	} else {
		cliques, capped = enumerateBacktrack(g, k, cfg)
	}
	if capped {
		cfg.Logger.Printf("%v: %d-clique enumeration stopped early (%d cliques)", ErrBoundHit, k, len(cliques))
	}

	set.Cliques = cliques
	set.Capped = capped
	set.ByVertex = buildVertexIndex(n, cliques)
	return set, nil
}

// enumerateTriangles is the specialized k=3 routine: for each edge
// (u,v) with u<v drawn from u's ascending neighbor list, and each
// w>v also drawn from u's neighbor list, test v~w directly. No
// recursion, O(Σ deg²) worst case — grounded on
// original_source/Algorithm1/algo1.cpp's findTriangles, with the
// progress-printing side effect removed (that belongs to the caller's
// logging hook, not the algorithm).
func enumerateTriangles(g *core.Graph, cfg Config) (cliques [][]int32, capped bool) {
	n := g.N()
	steps := 0
	var nbrU []int32
	for u := int32(0); int(u) < n; u++ {
		nbrU = g.Neighbors(u, nbrU[:0])
		for _, v := range nbrU {
			if v <= u {
				continue
			}
			for _, w := range nbrU {
				if w <= v {
					continue
				}
				steps++
				if steps >= cfg.MaxExtensionSteps {
					return cliques, true
				}
				if g.HasEdge(v, w) {
					cliques = append(cliques, []int32{u, v, w})
					if len(cliques) >= cfg.MaxCliques {
						return cliques, true
					}
				}
			}
		}
	}
	return cliques, false
}

// enumerateBacktrack performs lexicographic-pivot backtracking over an
// explicit stack: path holds the current clique-in-progress (always
// strictly ascending), and startAt[d] holds the next candidate vertex
// to try when the walk is at depth d. This is the non-recursive
// equivalent of the original source's closure-based backtrack lambda
// (spec.md §9), using the teacher dfs/flow packages' convention of a
// per-depth "current pointer" (flow.Dinic's iter map) rather than
// captured mutable locals.
func enumerateBacktrack(g *core.Graph, k int, cfg Config) (cliques [][]int32, capped bool) {
	n := g.N()
	path := make([]int32, 0, k)
	startAt := make([]int32, k+1)
	steps := 0

	for {
		if len(path) == k {
			c := make([]int32, k)
			copy(c, path)
			cliques = append(cliques, c)
			if len(cliques) >= cfg.MaxCliques {
				return cliques, true
			}
			path = path[:len(path)-1]
			continue
		}

		d := len(path)
		advanced := false
		for v := startAt[d]; int(v) < n; v++ {
			steps++
			if steps >= cfg.MaxExtensionSteps {
				return cliques, true
			}
			if g.AdjacentToAll(v, path) {
				startAt[d] = v + 1
				path = append(path, v)
				startAt[d+1] = v + 1
				advanced = true
				break
			}
		}
		if !advanced {
			if d == 0 {
				break
			}
			path = path[:len(path)-1]
		}
	}

	return cliques, false
}

// buildVertexIndex constructs spec.md §3's vertex-to-clique map M from
// a flat clique list.
func buildVertexIndex(n int, cliques [][]int32) [][]int32 {
	byVertex := make([][]int32, n)
	for i, c := range cliques {
		for _, v := range c {
			byVertex[v] = append(byVertex[v], int32(i))
		}
	}
	return byVertex
}

package core

import "math/bits"

// MaxN is the largest vertex count New accepts (spec.md §6). Callers
// that need a different ceiling should validate before calling New;
// New itself always enforces this bound so the core package can never
// be driven into an unbounded allocation by a malformed input stream.
const MaxN = 1_000_000

// New builds a Graph over n vertices from an edge list given as pairs
// of already-dense ids (relabeling arbitrary identifiers to [0,n) is
// hgraphio's job, not core's — see spec.md §1 "out of scope").
//
// Self-loops and duplicate edges are dropped silently and counted in
// the returned Stats; edges referencing an id outside [0,n) are also
// dropped and counted. n<0 or n>MaxN is the one condition New reports
// as an error, since it is invalid-input rather than a malformed
// record (spec.md §7).
//
// Complexity: O(n + m) time and space.
func New(n int, edges [][2]int32) (*Graph, Stats, error) {
	if n < 0 {
		return nil, Stats{}, ErrInvalidN
	}
	if n > MaxN {
		return nil, Stats{}, ErrTooManyVertices
	}

	words := (n + wordBits - 1) / wordBits
	if words == 0 {
		words = 1
	}
	g := &Graph{
		n:      n,
		words:  words,
		adj:    make([][]uint64, n),
		degree: make([]int32, n),
	}
	for v := 0; v < n; v++ {
		g.adj[v] = make([]uint64, words)
	}

	var stats Stats
	for _, e := range edges {
		u, v := e[0], e[1]
		if !g.inRange(u) || !g.inRange(v) {
			stats.Dropped++
			continue
		}
		if u == v {
			stats.Dropped++
			continue
		}
		if g.test(u, v) {
			stats.Dropped++
			continue
		}
		g.set(u, v)
		g.set(v, u)
		g.degree[u]++
		g.degree[v]++
		g.edgeCnt++
	}

	return g, stats, nil
}

// HasEdge reports whether u and v are adjacent. Out-of-range ids
// return false rather than erroring (spec.md §4.2, §7).
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int32) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	return g.test(u, v)
}

// Degree returns the plain graph degree of v (not a clique-degree;
// clique-degree is owned by package clique, which has the clique
// cache). Out-of-range v returns 0.
func (g *Graph) Degree(v int32) int {
	if !g.inRange(v) {
		return 0
	}
	return int(g.degree[v])
}

// Neighbors appends v's neighbors, in ascending order, to dst and
// returns the extended slice. Out-of-range v returns dst unchanged.
//
// Complexity: O(n/64 + deg(v)).
func (g *Graph) Neighbors(v int32, dst []int32) []int32 {
	if !g.inRange(v) {
		return dst
	}
	row := g.adj[v]
	for wi, word := range row {
		for word != 0 {
			bit := word & (-word)
			u := int32(wi*wordBits + bits.TrailingZeros64(bit))
			if int(u) < g.n {
				dst = append(dst, u)
			}
			word ^= bit
		}
	}
	return dst
}

// AdjacentToAll reports whether v is adjacent to every vertex in
// clique. It is the predicate spec.md §3 uses to build vertex→clique
// extension edges ("{i} ∪ clique_j forms an h-clique") and to extend a
// backtracking prefix in package clique.
//
// Complexity: O(len(clique)).
func (g *Graph) AdjacentToAll(v int32, clique []int32) bool {
	if !g.inRange(v) {
		return false
	}
	for _, u := range clique {
		if u == v {
			return false
		}
		if !g.test(v, u) {
			return false
		}
	}
	return true
}

// Induced returns G[S]: the subgraph on vertex subset s, with vertices
// remapped to [0,len(s)) in the order s is given. Duplicate entries in
// s collapse to a single vertex. Out-of-range entries in s are dropped.
//
// Invariant (spec.md §4.2): for i,j in the result, edges are exactly
// {(i,j) : HasEdge(s[i], s[j])}.
//
// Complexity: O(len(s)^2) in the worst case (pairwise adjacency test);
// acceptable because Induced is only ever called on the bounded-size
// candidate sets the density driver produces.
func (g *Graph) Induced(s []int32) *Graph {
	// Deduplicate while preserving first-seen order.
	seen := make(map[int32]struct{}, len(s))
	uniq := make([]int32, 0, len(s))
	for _, v := range s {
		if !g.inRange(v) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		uniq = append(uniq, v)
	}

	edges := make([][2]int32, 0, len(uniq))
	for i := 0; i < len(uniq); i++ {
		for j := i + 1; j < len(uniq); j++ {
			if g.test(uniq[i], uniq[j]) {
				edges = append(edges, [2]int32{int32(i), int32(j)})
			}
		}
	}

	sub, _, _ := New(len(uniq), edges)
	return sub
}

// Vertices returns 0..n-1 as a freshly allocated, sorted slice. Useful
// for callers (clique, density) that need a stable iteration order
// without depending on core's internal layout.
func (g *Graph) Vertices() []int32 {
	if g == nil {
		return nil
	}
	out := make([]int32, g.n)
	for i := range out {
		out[i] = int32(i)
	}
	return out
}

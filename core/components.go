package core

// Components partitions the graph's vertices into connected components
// via breadth-first search, returning one slice per component in
// discovery order. It exists so tests can assert spec.md §8's boundary
// behavior "the h-CDS lies within one component; the driver must not
// merge across components" directly, rather than inferring it from the
// flow-network construction.
//
// Grounded on the teacher's bfs package: a plain level-by-level queue
// walk, adapted from string-keyed vertices to dense int ids (no
// Options/hooks are needed here — core.Components has exactly one
// caller-visible behavior, unlike the teacher's general-purpose BFS).
//
// Complexity: O(n + m).
func (g *Graph) Components() [][]int32 {
	if g == nil || g.n == 0 {
		return nil
	}

	visited := make([]bool, g.n)
	var comps [][]int32
	var nbrBuf []int32

	for start := int32(0); int(start) < g.n; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		queue := []int32{start}
		comp := []int32{start}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]

			nbrBuf = g.Neighbors(u, nbrBuf[:0])
			for _, v := range nbrBuf {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
					comp = append(comp, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

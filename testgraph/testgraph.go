// Package testgraph builds small, deterministic fixture graphs for
// this module's tests — adapted from the teacher's builder
// package (BuildGraph + functional-option Constructor composition),
// rewritten around core.Graph's dense int32 vertex ids instead of the
// teacher's string-keyed core.Graph and arbitrary topology catalog.
// Only a few constructors are kept: complete graphs and unions of cliques (the shapes that
// actually stress an h-clique densest-subgraph search), a cycle (the
// canonical h=3-empty shape), and an Erdős–Rényi sparse generator for
// brute-force-oracle comparisons.
package testgraph

import (
	"math/rand"

	"github.com/clique-density/hcds/core"
)

// Option customizes graph construction, mirroring the teacher's
// BuilderOption convention.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// WithSeed freezes RandomSparse's random source for determinism.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

func resolve(opts []Option) config {
	cfg := config{rng: rand.New(rand.NewSource(1))}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// Complete builds the complete simple graph K_n (n ≥ 0).
func Complete(n int) *core.Graph {
	var edges [][2]int32
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, [2]int32{int32(u), int32(v)})
		}
	}
	g, _, _ := core.New(n, edges)
	return g
}

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3); for n < 3 it
// degrades to whatever edges a cycle of that size would have (a
// single vertex with no edges for n=1, a doubled edge collapsed to one
// for n=2 since core.New dedups).
func Cycle(n int) *core.Graph {
	var edges [][2]int32
	for v := 0; v < n; v++ {
		edges = append(edges, [2]int32{int32(v), int32((v + 1) % n)})
	}
	g, _, _ := core.New(n, edges)
	return g
}

// DisjointCliques builds count copies of K_size, vertex-disjoint, with
// no edges between copies — the shape spec.md §8's "two disjoint
// triangles" scenario generalizes to.
func DisjointCliques(count, size int) *core.Graph {
	n := count * size
	var edges [][2]int32
	for c := 0; c < count; c++ {
		base := int32(c * size)
		for u := int32(0); int(u) < size; u++ {
			for v := u + 1; int(v) < size; v++ {
				edges = append(edges, [2]int32{base + u, base + v})
			}
		}
	}
	g, _, _ := core.New(n, edges)
	return g
}

// RandomSparse builds an Erdős–Rényi-like graph: each of the n(n-1)/2
// possible undirected edges is included independently with
// probability p. Deterministic for a fixed WithSeed.
func RandomSparse(n int, p float64, opts ...Option) *core.Graph {
	cfg := resolve(opts)
	var edges [][2]int32
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if cfg.rng.Float64() < p {
				edges = append(edges, [2]int32{int32(u), int32(v)})
			}
		}
	}
	g, _, _ := core.New(n, edges)
	return g
}

package clique

import (
	"sync"

	"github.com/clique-density/hcds/core"
)

// Cache owns the memoized clique sets for one *core.Graph, keyed by
// arity. It is the "mutable lazy cache on a logically immutable
// graph" spec.md §9 describes: computed at most once per arity, on
// first read, and published under a write lock so subsequent readers
// — including concurrent ones — observe a fully populated entry
// (spec.md §5's happens-before requirement).
//
// Grounded on the teacher core.Graph's split-lock convention
// (muVert/muEdgeAdj): Cache uses a single sync.RWMutex since, unlike
// the teacher's Graph, nothing here is ever mutated after a given
// arity's first computation.
type Cache struct {
	g   *core.Graph
	cfg Config

	mu   sync.RWMutex
	sets map[int]Set
}

// NewCache wraps g with a clique cache configured by opts.
func NewCache(g *core.Graph, opts ...Option) *Cache {
	return &Cache{
		g:    g,
		cfg:  resolve(opts),
		sets: make(map[int]Set),
	}
}

// Cliques returns the memoized Set for arity k, computing it via
// Enumerate on first request.
func (c *Cache) Cliques(k int) (Set, error) {
	c.mu.RLock()
	if s, ok := c.sets[k]; ok {
		c.mu.RUnlock()
		return s, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	// Re-check: another writer may have populated this arity while we
	// waited for the write lock.
	if s, ok := c.sets[k]; ok {
		return s, nil
	}

	s, err := Enumerate(c.g, k, WithMaxCliques(c.cfg.MaxCliques), WithMaxExtensionSteps(c.cfg.MaxExtensionSteps), WithLogger(c.cfg.Logger))
	if err != nil {
		return s, err
	}
	c.sets[k] = s
	return s, nil
}

// CliqueDegree returns the k-clique-degree of v, triggering
// enumeration for k on demand (spec.md §4.2).
func (c *Cache) CliqueDegree(v int32, k int) int {
	s, err := c.Cliques(k)
	if err != nil {
		return 0
	}
	return s.CliqueDegree(v)
}

// MaxCliqueDegree returns max_v CliqueDegree(v,k), triggering
// enumeration for k on demand.
func (c *Cache) MaxCliqueDegree(k int) int {
	s, err := c.Cliques(k)
	if err != nil {
		return 0
	}
	max := 0
	for _, cl := range s.ByVertex {
		if len(cl) > max {
			max = len(cl)
		}
	}
	return max
}

// Density returns |C_k| / n, 0 when n=0 (spec.md §4.2).
func (c *Cache) Density(k int) float64 {
	n := c.g.N()
	if n == 0 {
		return 0
	}
	s, err := c.Cliques(k)
	if err != nil {
		return 0
	}
	return float64(len(s.Cliques)) / float64(n)
}

// Package maxflow computes maximum flow and a minimum-cut reachable
// set over a *flownet.Network using Dinic's algorithm: repeated BFS
// level graphs followed by DFS blocking flow, adapted from the
// teacher's map-based Dinic (see flow/dinic.go) to operate directly on
// the network's CSR arrays with int32 node ids and a current-edge
// pointer per node instead of per-node neighbor maps.
package maxflow

import "errors"

// ErrIterationCapHit indicates the solver stopped after MaxIterSteps
// level-graph rebuilds without proving the flow maximal (spec.md §7's
// bounded-iteration kind). Run still returns the best flow found so
// far; callers that need a guaranteed-exact max-flow should treat this
// as a degraded result.
var ErrIterationCapHit = errors.New("maxflow: iteration step cap hit")

// Config bounds a single Dinic run. Its phase cap is separate from
// clique.Config.MaxExtensionSteps, the backtracking step cap.
type Config struct {
	// MaxIterSteps bounds the number of level-graph phases (BFS +
	// blocking-flow round). Zero or negative means unbounded.
	MaxIterSteps int
}

// Option customizes a Config.
type Option func(*Config)

// DefaultConfig returns the default phase cap of 100,000.
func DefaultConfig() Config {
	return Config{MaxIterSteps: 100_000}
}

// WithMaxIterSteps overrides the level-graph phase cap. Non-positive
// values disable the cap.
func WithMaxIterSteps(n int) Option {
	return func(c *Config) { c.MaxIterSteps = n }
}

func resolve(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

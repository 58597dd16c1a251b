// Package flownet builds the parametric Goldberg-style flow network
// N(α) spec.md §3/§4.3 describes: a source, a sink, one node per
// vertex of the host graph, and one node per sampled (h-1)-clique,
// wired with the four capacity rules spec.md §3 specifies.
//
// The network is stored as a compressed-sparse-row adjacency with
// explicit reverse-edge indices (spec.md §9's recommended single
// representation, replacing the source program's sparse/dense toggle):
// edges for node u occupy To[RowStart[u]:RowStart[u+1]], and edge e's
// reverse residual edge is at Rev[e]. Above Config.CompactThreshold
// nodes, Build applies active-node compaction (spec.md §4.3) before
// emitting the CSR arrays, and records the mapping so a caller can
// translate a reachable node id back to this package's pre-compaction
// numbering (see Network.Original).
package flownet

import (
	"errors"
	"log"
	"os"
)

// ErrNetworkTooLarge indicates the pre-compaction node count exceeded
// Config.CompactThreshold, so active-node compaction was applied
// (spec.md §7's resource-bound-hit kind) — informational; Build only
// logs it and still returns the compacted network.
var ErrNetworkTooLarge = errors.New("flownet: network size bound hit")

// ErrAllocFailed indicates Build recovered from an allocation panic
// while sizing the CSR arrays (spec.md §7's allocation-failure kind).
var ErrAllocFailed = errors.New("flownet: allocation failure building network")

// Config bounds network construction (spec.md §6's CLIQUE_BUDGET and
// COMPACT_THRESHOLD).
type Config struct {
	// CliqueBudget is the number of (h-1)-cliques sampled into the
	// network per round (default 10^4).
	CliqueBudget int

	// CompactThreshold is the pre-compaction node count above which
	// active-node compaction is applied (default 10^5).
	CompactThreshold int

	// Logger receives resource-bound-hit and allocation-failure
	// diagnostics. Never nil after DefaultConfig.
	Logger *log.Logger
}

// Option customizes a Config, mirroring clique.Option / dfs.Option.
type Option func(*Config)

// DefaultConfig returns spec.md §6's default bounds.
func DefaultConfig() Config {
	return Config{
		CliqueBudget:     10_000,
		CompactThreshold: 100_000,
		Logger:           log.New(os.Stderr, "flownet: ", log.LstdFlags),
	}
}

// WithCliqueBudget overrides the sampled (h-1)-clique count.
// Non-positive values are ignored.
func WithCliqueBudget(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.CliqueBudget = n
		}
	}
}

// WithCompactThreshold overrides the compaction trigger. Non-positive
// values are ignored.
func WithCompactThreshold(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.CompactThreshold = n
		}
	}
}

// WithLogger injects a custom diagnostic logger. A nil logger is a
// no-op.
func WithLogger(l *log.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

func resolve(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

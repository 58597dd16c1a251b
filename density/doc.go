// Package density drives the binary search over the density parameter
// α: it alternates building a flownet.Network at a candidate α,
// solving max-flow/min-cut with maxflow.Run, and narrowing [α_lo,
// α_hi] until the window is within PRECISION or MAX_ITERATIONS is
// hit, tracking the best-density vertex set observed along the way
// (spec.md §4.5).
package density

import (
	"errors"
	"log"
	"os"
)

// ErrIterationCapHit indicates Search stopped after MaxIterations
// binary-search rounds without converging to the 1/n² window width
// (spec.md §7's resource-bound-hit kind). Search logs it and sets
// Result.Capped rather than returning it, and still returns the best
// subgraph observed so far.
var ErrIterationCapHit = errors.New("density: binary-search iteration cap hit")

// Config bounds a Search run (spec.md §6's driver- and network-level
// knobs, bundled in one place the way the teacher's dfs.Config groups
// an entire traversal's options).
type Config struct {
	// MaxIterations bounds binary-search rounds (default 20).
	MaxIterations int

	// DensityCheckThreshold is the |S| at or above which a candidate's
	// exact ρ_h is not recomputed (default 1000). Such a candidate does
	// not replace the best measured set; it is kept only as the
	// fallback Search returns when no set was ever measured.
	DensityCheckThreshold int

	// The Clique*, Flow* and MaxIterSteps fields forward to
	// clique.NewCache, flownet.Build, and maxflow.Run respectively, so
	// every bound in those packages is reachable through one Config.
	CliqueMaxCliques        int
	CliqueMaxExtensionSteps int
	FlowCliqueBudget        int
	FlowCompactThreshold    int
	MaxIterSteps            int

	// Logger receives bound-hit and failure diagnostics; Search logs
	// no per-round progress.
	Logger *log.Logger
}

// Option customizes a Config.
type Option func(*Config)

// DefaultConfig returns spec.md §6's default bounds.
func DefaultConfig() Config {
	return Config{
		MaxIterations:           20,
		DensityCheckThreshold:   1000,
		CliqueMaxCliques:        1_000_000,
		CliqueMaxExtensionSteps: 100_000_000,
		FlowCliqueBudget:        10_000,
		FlowCompactThreshold:    100_000,
		MaxIterSteps:            100_000,
		Logger:                  log.New(os.Stderr, "density: ", log.LstdFlags),
	}
}

// WithMaxIterations overrides the binary-search round cap.
func WithMaxIterations(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.MaxIterations = n
		}
	}
}

// WithDensityCheckThreshold overrides the exact-recompute size limit.
func WithDensityCheckThreshold(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.DensityCheckThreshold = n
		}
	}
}

// WithCliqueBounds overrides the enumerator's MAX_CLIQUES and
// MAX_ITER_STEPS.
func WithCliqueBounds(maxCliques, maxExtensionSteps int) Option {
	return func(c *Config) {
		if maxCliques > 0 {
			c.CliqueMaxCliques = maxCliques
		}
		if maxExtensionSteps > 0 {
			c.CliqueMaxExtensionSteps = maxExtensionSteps
		}
	}
}

// WithFlowBounds overrides CLIQUE_BUDGET and COMPACT_THRESHOLD.
func WithFlowBounds(cliqueBudget, compactThreshold int) Option {
	return func(c *Config) {
		if cliqueBudget > 0 {
			c.FlowCliqueBudget = cliqueBudget
		}
		if compactThreshold > 0 {
			c.FlowCompactThreshold = compactThreshold
		}
	}
}

// WithMaxIterSteps overrides Dinic's level-graph phase cap.
func WithMaxIterSteps(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.MaxIterSteps = n
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

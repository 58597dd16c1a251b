package clique

import (
	"log"
	"os"
)

// Set is the result of enumerating one arity's worth of cliques.
//
// Invariants (spec.md §3): every listed clique is a clique in the
// source graph; every clique is listed at most once; each clique's
// vertex indices are sorted ascending.
type Set struct {
	// Arity is the clique size k this Set was computed for.
	Arity int

	// Cliques holds one sorted, duplicate-free []int32 per clique.
	Cliques [][]int32

	// ByVertex[v] lists the indices into Cliques containing vertex v.
	// len(ByVertex) == the graph's vertex count.
	ByVertex [][]int32

	// Capped is true when MaxCliques or MaxExtensionSteps stopped
	// enumeration before it was exhaustive.
	Capped bool
}

// CliqueDegree returns |{C ∈ Set.Cliques : v ∈ C}|. Out-of-range v
// returns 0.
func (s Set) CliqueDegree(v int32) int {
	if v < 0 || int(v) >= len(s.ByVertex) {
		return 0
	}
	return len(s.ByVertex[v])
}

// Config bounds clique enumeration (spec.md §6's MAX_CLIQUES and
// MAX_ITER_STEPS) and carries the optional diagnostic logger used when
// a bound is hit or an allocation fails.
type Config struct {
	// MaxCliques caps the number of cliques a single Enumerate call
	// will return (default 10^6).
	MaxCliques int

	// MaxExtensionSteps caps the number of backtracking extension
	// attempts (default 10^8); it bounds wall-clock work independent
	// of how many cliques are actually found.
	MaxExtensionSteps int

	// Logger receives resource-bound-hit and allocation-failure
	// diagnostics. Never nil after DefaultConfig/NewCache.
	Logger *log.Logger
}

// Option customizes a Config. Later options override earlier ones,
// mirroring the teacher library's functional-option convention
// (builder.BuilderOption, dfs.Option).
type Option func(*Config)

// DefaultConfig returns spec.md §6's default bounds, logging to
// os.Stderr.
func DefaultConfig() Config {
	return Config{
		MaxCliques:        1_000_000,
		MaxExtensionSteps: 100_000_000,
		Logger:            log.New(os.Stderr, "clique: ", log.LstdFlags),
	}
}

// WithMaxCliques overrides the enumerated-clique cap. Non-positive
// values are ignored.
func WithMaxCliques(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.MaxCliques = n
		}
	}
}

// WithMaxExtensionSteps overrides the backtracking step cap.
// Non-positive values are ignored.
func WithMaxExtensionSteps(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.MaxExtensionSteps = n
		}
	}
}

// WithLogger injects a custom diagnostic logger. A nil logger is a
// no-op (Config always keeps a usable logger).
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

// Package clique enumerates bounded sets of k-vertex cliques in a
// core.Graph and maintains the per-vertex clique membership index
// (spec.md §3's vertex-to-clique map M).
//
// Enumerate is the pure, stateless algorithm (spec.md §4.1): k=3 uses a
// specialized triangle scan, general k uses lexicographic-pivot
// backtracking over an explicit stack (no recursion, matching spec.md
// §9's design note), bounded by Config.MaxCliques and
// Config.MaxExtensionSteps. Results are deterministic: the same graph
// and k always yield the same clique list in the same order.
//
// Cache wraps a *core.Graph and memoizes Enumerate's result per arity
// behind a sync.RWMutex, computed at most once per arity and published
// with a happens-before barrier (spec.md §5) — mirroring the teacher
// library's split-lock convention on its own Graph type.
package clique

import (
	"errors"
)

// ErrAllocFailed indicates enumeration was aborted by a recovered
// allocation panic (spec.md §7's "allocation-failure" kind). Enumerate
// logs the event through its configured logger and returns this error
// with a valid, empty Set; Cache passes it on without memoizing.
var ErrAllocFailed = errors.New("clique: allocation failure during enumeration")

// ErrBoundHit indicates MaxCliques or MaxExtensionSteps stopped
// enumeration before it was exhaustive (spec.md §7's
// "resource-bound-hit" kind). It is informational: Set.Capped already
// carries this signal, and Enumerate never returns it as an error —
// it only writes it to its configured logger.
var ErrBoundHit = errors.New("clique: enumeration bound hit")

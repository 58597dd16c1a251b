// Package core defines the Graph type: an immutable, undirected, simple
// graph over a dense vertex index space [0,n). It provides O(1) edge
// lookup, degree queries, connected-component discovery, and induced-
// subgraph extraction.
//
// A Graph is built once from an edge stream via New and is read-only
// thereafter; there is no AddEdge or RemoveVertex. Callers that need a
// different vertex subset call Induced, which allocates and returns a
// fresh Graph remapped to [0,len(S)).
//
// Adjacency is stored as a packed bitset per vertex (one row of
// []uint64) so membership tests and neighbor iteration never hash a
// key, matching the "O(1) expected" contract vertex-dense graphs allow
// that string-keyed graphs cannot.
package core

import "errors"

// Sentinel errors for graph construction. Only invalid-input at
// construction time is fatal; every query method degrades to a neutral
// zero value on out-of-range input instead of returning an error.
var (
	// ErrInvalidN indicates a negative vertex count.
	ErrInvalidN = errors.New("core: n must be >= 0")

	// ErrTooManyVertices indicates n exceeded the configured MaxN bound.
	ErrTooManyVertices = errors.New("core: n exceeds MaxN")
)

// Package hgraphio parses the h-CDS driver's cross-channel input
// (spec.md §6): the clique arity h from a scanner over one channel,
// and n, m and m edge records of the form "u v w" from a scanner over
// another, where u and v are arbitrary original identifiers relabeled
// to a dense [0,n) index in first-seen order and w is an ignored
// compatibility field. Modeled on the bufio.Scanner-based line parser
// of the teacher's own CLI-parsing collaborator, since the teacher
// repo itself has no input format of its own to imitate.
package hgraphio

import "errors"

// ErrInvalidH indicates h was unparsable or out of range (h must be
// positive).
var ErrInvalidH = errors.New("hgraphio: invalid h")

// ErrInvalidHeader indicates the "n m" header record was missing or
// unparsable, or that n or m violated spec.md §6's bounds (n>0 up to
// MAX_N, m>=0).
var ErrInvalidHeader = errors.New("hgraphio: invalid n/m header")

// ErrInvalidEdgeRecord indicates an edge record could not be parsed
// into three integer fields.
var ErrInvalidEdgeRecord = errors.New("hgraphio: invalid edge record")

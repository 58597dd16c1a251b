package hgraphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/clique-density/hcds/core"
)

// ReadH reads the clique arity h as the first whitespace-delimited
// token on r (spec.md §6: "the first integer read from the
// interactive input channel is h").
func ReadH(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidH, err)
		}
		return 0, fmt.Errorf("%w: no input", ErrInvalidH)
	}
	h, err := strconv.Atoi(sc.Text())
	if err != nil || h <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidH, sc.Text())
	}
	return h, nil
}

// ParseResult is the outcome of reading a graph file: the constructed
// graph, the original-identifier-to-dense-index mapping (in index
// order, so Labels[i] is the identifier assigned index i), and drop
// statistics.
type ParseResult struct {
	Graph  *core.Graph
	Labels []string
	Stats  core.Stats
}

// ReadGraph parses "n m" followed by m "u v w" records from r
// (spec.md §6). u and v are arbitrary original identifiers assigned
// dense indices in first-seen order; w is read but ignored. An edge
// whose first-seen identifier count would exceed n is dropped and
// counted, not an error — the header's n is the hard cap on the index
// space, not a promise that every record stays within it.
func ReadGraph(r io.Reader, maxN int) (ParseResult, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n, m, err := readHeader(sc, maxN)
	if err != nil {
		return ParseResult{}, err
	}

	ids := make(map[string]int32, n)
	labels := make([]string, 0, n)
	var edges [][2]int32
	dropped := 0

	for i := 0; i < m; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return ParseResult{}, fmt.Errorf("%w: %v", ErrInvalidEdgeRecord, err)
			}
			return ParseResult{}, fmt.Errorf("%w: expected %d records, got %d", ErrInvalidEdgeRecord, m, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) < 3 {
			return ParseResult{}, fmt.Errorf("%w: %q", ErrInvalidEdgeRecord, sc.Text())
		}
		uStr, vStr := fields[0], fields[1]
		// fields[2] is w, retained for schema compatibility and
		// otherwise ignored.

		u := internID(ids, &labels, uStr)
		v := internID(ids, &labels, vStr)
		if int(u) >= n || int(v) >= n {
			dropped++
			continue
		}
		edges = append(edges, [2]int32{u, v})
	}

	g, stats, err := core.New(n, edges)
	if err != nil {
		return ParseResult{}, err
	}
	stats.Dropped += dropped
	return ParseResult{Graph: g, Labels: labels, Stats: stats}, nil
}

func readHeader(sc *bufio.Scanner, maxN int) (n, m int, err error) {
	if !sc.Scan() {
		if serr := sc.Err(); serr != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrInvalidHeader, serr)
		}
		return 0, 0, fmt.Errorf("%w: missing header", ErrInvalidHeader)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidHeader, sc.Text())
	}
	n, errN := strconv.Atoi(fields[0])
	m, errM := strconv.Atoi(fields[1])
	if errN != nil || errM != nil || n <= 0 || m < 0 || n > maxN {
		return 0, 0, fmt.Errorf("%w: n=%q m=%q", ErrInvalidHeader, fields[0], fields[1])
	}
	return n, m, nil
}

// internID assigns ident a dense index on first sight, in first-seen
// order.
func internID(ids map[string]int32, labels *[]string, ident string) int32 {
	if id, ok := ids[ident]; ok {
		return id
	}
	id := int32(len(*labels))
	ids[ident] = id
	*labels = append(*labels, ident)
	return id
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/clique-density/hcds/clique"
	"github.com/clique-density/hcds/core"
	"github.com/clique-density/hcds/density"
	"github.com/clique-density/hcds/hgraphio"
)

const (
	exitOK      = 0
	exitInvalid = 1
)

// run is main's testable body: it never calls os.Exit itself, mirroring
// the teacher's "main is a one-line shim" convention so exit codes can
// be asserted in tests without forking a process.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) int {
	h, err := hgraphio.ReadH(stdin)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return exitInvalid
	}

	if len(args) < 1 {
		fmt.Fprintln(stdout, "usage: hcds <graph-file>")
		return exitInvalid
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintln(stdout, err)
		return exitInvalid
	}
	defer f.Close()

	parsed, err := hgraphio.ReadGraph(f, core.MaxN)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return exitInvalid
	}

	fmt.Fprintf(stdout, "loaded graph: n=%d edges=%d dropped=%d\n",
		parsed.Graph.N(), parsed.Graph.EdgeCount(), parsed.Stats.Dropped)

	out, res, err := density.Search(ctx, parsed.Graph, h)
	if err != nil {
		fmt.Fprintln(stdout, "search error:", err)
		report(stdout, out, h, res, false)
		return exitOK
	}

	report(stdout, out, h, res, true)
	return exitOK
}

// report prints spec.md §6's final report: vertex count, then h-clique
// count and density recomputed exactly on the returned subgraph
// whenever it is small enough (spec.md §6's |S|<10^4 bound), mirroring
// original_source/Algorithm1/algo1.cpp and Algorithm4/CoreExact.cpp,
// which both call countCliques(h)/cliqueDensity(h) on the final
// subgraph under that same size guard regardless of how the internal
// search loop happened to track density along the way. complete is
// false when Search returned early (context cancellation, an
// unrecovered solver error); the report is then marked partial.
func report(stdout io.Writer, out *core.Graph, h int, res density.Result, complete bool) {
	n := out.N()
	fmt.Fprintf(stdout, "vertex count: %d\n", n)

	if n < 10_000 {
		count, rho := 0, 0.0
		if n > 0 {
			set, err := clique.NewCache(out).Cliques(h)
			if err == nil {
				count = len(set.Cliques)
				rho = float64(count) / float64(n)
			}
		}
		fmt.Fprintf(stdout, "h-clique count: %d\n", count)
		fmt.Fprintf(stdout, "h-clique density (h=%d): %g\n", h, rho)
	}

	if res.Capped {
		fmt.Fprintln(stdout, "note: binary search hit its iteration cap")
	}
	if !complete {
		fmt.Fprintln(stdout, "note: search did not finish; reported result is partial")
	}
}

// Command hcds reads h from standard input and a graph file path from
// its first argument, searches for an approximate h-clique densest
// subgraph, and reports the result (spec.md §6).
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout))
}

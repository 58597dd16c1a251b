package density

import (
	"context"

	"github.com/clique-density/hcds/clique"
	"github.com/clique-density/hcds/core"
	"github.com/clique-density/hcds/flownet"
	"github.com/clique-density/hcds/maxflow"
)

// Search runs the binary-search driver (spec.md §4.5) and returns the
// induced subgraph on the best vertex set found, together with the
// Result describing it.
//
// Tie-break policy (spec.md §9's flagged open question, resolved
// here): best is only overwritten when a candidate's density was
// exactly measured, i.e. len(S) < Config.DensityCheckThreshold at the
// time it was recorded. Larger accepted sets are kept only as
// lastLarge, a fallback used solely when no exact measurement was
// ever taken — so Result.Rho, whenever Result.Measured is true, is a
// number the caller can trust against ground truth, matching spec.md
// §8's invariant that best.ρ* equals ρ_h exactly measured on the
// recorded S. A stricter "largest accepting S wins" policy was
// considered and rejected: it can silently return an unmeasured,
// possibly much sparser set over an exactly-measured denser one,
// which would violate that invariant outright rather than merely
// under-exploring.
func Search(ctx context.Context, g *core.Graph, h int, opts ...Option) (*core.Graph, Result, error) {
	cfg := resolve(opts)
	if ctx == nil {
		ctx = context.Background()
	}

	n := g.N()
	if n == 0 || h <= 0 {
		return g, Result{}, nil
	}

	cc := clique.NewCache(g,
		clique.WithMaxCliques(cfg.CliqueMaxCliques),
		clique.WithMaxExtensionSteps(cfg.CliqueMaxExtensionSteps),
		clique.WithLogger(cfg.Logger),
	)

	dMax := cc.MaxCliqueDegree(h)
	if dMax == 0 {
		cfg.Logger.Printf("no %d-cliques found, returning input graph unchanged", h)
		return g, Result{}, nil
	}

	hDegree := make([]int32, n)
	for v := int32(0); int(v) < n; v++ {
		hDegree[v] = int32(cc.CliqueDegree(v, h))
	}

	hMinus1Set, err := cc.Cliques(h - 1)
	if err != nil {
		return g, Result{}, err
	}

	alphaLo, alphaHi := 0.0, float64(dMax)
	precision := 1.0 / float64(n*n)

	var best Result
	var lastLarge []int32
	round := 0
	capped := false

	for ; round < cfg.MaxIterations; round++ {
		if alphaHi-alphaLo < precision {
			break
		}
		if err := ctx.Err(); err != nil {
			return g, finalize(g, best, lastLarge, round), err
		}

		alpha := (alphaLo + alphaHi) / 2

		net, err := flownet.Build(g, hDegree, hMinus1Set.Cliques, alpha, h,
			flownet.WithCliqueBudget(cfg.FlowCliqueBudget),
			flownet.WithCompactThreshold(cfg.FlowCompactThreshold),
			flownet.WithLogger(cfg.Logger),
		)
		if err != nil {
			cfg.Logger.Printf("network build failed at round %d: %v", round, err)
			break
		}

		flowRes, err := maxflow.Run(ctx, net, maxflow.WithMaxIterSteps(cfg.MaxIterSteps))
		if err != nil {
			if err == maxflow.ErrIterationCapHit {
				cfg.Logger.Printf("round %d: max-flow iteration cap hit, using partial result", round)
			} else {
				return g, finalize(g, best, lastLarge, round), err
			}
		}

		s := extractCandidate(net, flowRes.Reachable)

		if len(s) == 0 {
			alphaHi = alpha
			continue
		}
		alphaLo = alpha

		if len(s) < cfg.DensityCheckThreshold {
			count, rho := exactRho(g, s, h)
			if best.S == nil || rho > best.Rho {
				best = Result{S: s, Rho: rho, Measured: true, CliqueCount: count}
			}
		} else {
			lastLarge = s
		}
	}
	if round >= cfg.MaxIterations {
		capped = true
	}

	res := finalize(g, best, lastLarge, round)
	res.Capped = capped
	if capped {
		cfg.Logger.Printf("%v: binary search hit the %d-round cap before converging", ErrIterationCapHit, cfg.MaxIterations)
	}
	return res.inducedGraph(g), res, nil
}

func finalize(g *core.Graph, best Result, lastLarge []int32, round int) Result {
	best.Iterations = round
	if best.S != nil {
		return best
	}
	if lastLarge != nil {
		return Result{S: lastLarge, Iterations: round}
	}
	return Result{Iterations: round}
}

func (r Result) inducedGraph(g *core.Graph) *core.Graph {
	if len(r.S) == 0 {
		return g
	}
	return g.Induced(r.S)
}

// extractCandidate keeps exactly the reachable nodes that map to a
// vertex-node in the pre-compaction numbering (spec.md §4.5),
// inverting active-node compaction first when it was applied.
func extractCandidate(net *flownet.Network, reachable []bool) []int32 {
	var s []int32
	for id := int32(0); int(id) < len(reachable); id++ {
		if !reachable[id] {
			continue
		}
		orig := net.Original(id)
		if orig >= net.VertexStart && orig < net.CliqueStart {
			s = append(s, orig-net.VertexStart)
		}
	}
	return s
}

// exactRho computes c_h(G[S]) and ρ_h(G[S]) by re-enumerating
// h-cliques on the induced subgraph (spec.md §4.5: "compute ρ_h(G[S])
// exactly via 4.2/4.1").
func exactRho(g *core.Graph, s []int32, h int) (int, float64) {
	if len(s) == 0 {
		return 0, 0
	}
	sub := g.Induced(s)
	set, err := clique.Enumerate(sub, h)
	if err != nil {
		return 0, 0
	}
	return len(set.Cliques), float64(len(set.Cliques)) / float64(len(s))
}

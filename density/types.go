package density

// Result is the outcome of a Search run: the best vertex set observed
// and its h-clique density (spec.md §3's best=(S*, ρ*)).
type Result struct {
	// S holds original-graph vertex ids, ascending, duplicate-free.
	S []int32

	// Rho is ρ_h(S). It is exactly measured whenever len(S) was below
	// DensityCheckThreshold at the time S was recorded (see the
	// tie-break policy documented on Search).
	Rho float64

	// Measured is false when S was accepted on trust because it
	// exceeded DensityCheckThreshold and its density was never
	// verified; Rho and CliqueCount are 0 in that case.
	Measured bool

	// CliqueCount is c_h(S), populated alongside Rho whenever Measured
	// is true.
	CliqueCount int

	// Iterations is the number of binary-search rounds actually run.
	Iterations int

	// Capped reports whether MaxIterations was exhausted before the
	// α_hi−α_lo window converged.
	Capped bool
}

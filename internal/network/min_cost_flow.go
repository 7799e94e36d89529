package network

import "github.com/arkadia-ops/opticore/pkg/apperror"

// ErrInfeasibleFlow is returned (wrapped, so errors.Is(err,
// ErrInfeasibleFlow) succeeds) whenever MinCostFlow cannot route the
// requested demand from source to sink.
var ErrInfeasibleFlow = apperror.New(apperror.CodeInfeasible,
	"requested demand could not be routed from source to sink")

// MinCostFlowResult is the outcome of an SSAP min-cost flow run.
type MinCostFlowResult struct {
	Sent       float64
	TotalCost  float64
	Iterations int
}

// MinCostFlow sends up to demand units of flow from source to sink at
// minimum total cost using the Successive Shortest Augmenting Path
// method with Johnson potentials (§4.7): node potentials start at zero,
// each iteration runs Dijkstra over reduced costs c(u,v) + pi(u) - pi(v)
// (non-negative once potentials are valid), augments by
// min(remaining demand, bottleneck residual capacity) along the
// shortest path, accumulates true cost using the original c(u,v), and
// updates potentials by pi(n) += dist(n) for every node Dijkstra
// reached. Returns InfeasibleFlow (CodeInfeasible) if the sink becomes
// unreachable before demand is satisfied.
func MinCostFlow(g *ResidualGraph, source, sink string, demand float64) (*MinCostFlowResult, error) {
	pi := make(map[string]float64, len(g.Nodes()))
	for _, n := range g.Nodes() {
		pi[n] = 0
	}

	var sent, totalCost float64
	iterations := 0

	for sent+Epsilon < demand {
		sp := dijkstraReducedCost(g, source, pi)
		if sp.Distances[sink] >= Infinity {
			return nil, apperror.Wrap(ErrInfeasibleFlow, apperror.CodeInfeasible,
				"sink unreachable before demand was satisfied").
				WithDetails("sent", sent).WithDetails("demand", demand)
		}

		for _, n := range g.Nodes() {
			if sp.Distances[n] < Infinity {
				pi[n] += sp.Distances[n]
			}
		}

		path := ReconstructPath(sp.Parent, source, sink)
		if len(path) == 0 {
			return nil, apperror.Wrap(ErrInfeasibleFlow, apperror.CodeInfeasible,
				"sink unreachable before demand was satisfied").
				WithDetails("sent", sent).WithDetails("demand", demand)
		}

		bottleneck := FindMinCapacityOnPath(g, path)
		remaining := demand - sent
		flow := bottleneck
		if remaining < flow {
			flow = remaining
		}
		if flow <= Epsilon {
			return nil, apperror.Wrap(ErrInfeasibleFlow, apperror.CodeInfeasible,
				"no augmenting capacity remained before demand was satisfied").
				WithDetails("sent", sent).WithDetails("demand", demand)
		}

		pathCost := trueCostOfPath(g, path)
		AugmentPath(g, path, flow)
		sent += flow
		totalCost += flow * pathCost
		iterations++
	}

	return &MinCostFlowResult{Sent: sent, TotalCost: totalCost, Iterations: iterations}, nil
}

// trueCostOfPath sums each edge's original Cost (not its reduced cost)
// along path, for cost accounting independent of the potentials.
func trueCostOfPath(g *ResidualGraph, path []string) float64 {
	var total float64
	for i := 0; i < len(path)-1; i++ {
		e, ok := g.GetEdge(path[i], path[i+1])
		if !ok {
			continue
		}
		total += e.Cost
	}
	return total
}

package opticore

import (
	"github.com/arkadia-ops/opticore/internal/network"
)

// SolveNetwork runs a shortest-path, MST, max-flow, or min-cost-flow
// request over req.Model.
func (s *Session) SolveNetwork(req network.Request) (*network.Result, error) {
	r := startRun(FamilyNetwork, string(req.Method))
	recordModelSize(FamilyNetwork, countNodes(req.Model), countEdges(req.Model))

	res, err := network.Solve(req)
	if err != nil {
		r.finish(false, 0, err)
		return nil, err
	}
	r.finish(true, networkIterations(res), nil)
	return res, nil
}

// SolveNetwork runs req through DefaultSession.
func SolveNetwork(req network.Request) (*network.Result, error) {
	return DefaultSession.SolveNetwork(req)
}

// countNodes counts the distinct node IDs a Model declares, including any
// edge endpoint not separately listed in Nodes.
func countNodes(m network.Model) int {
	seen := make(map[string]bool, len(m.Nodes))
	for _, n := range m.Nodes {
		seen[n] = true
	}
	for _, e := range m.Edges {
		seen[e.U] = true
		seen[e.V] = true
	}
	return len(seen)
}

func countEdges(m network.Model) int {
	return len(m.Edges)
}

// networkIterations extracts the iteration count from whichever result
// field the requested method populated; shortest-path and MST results
// carry none.
func networkIterations(res *network.Result) int {
	switch {
	case res.MaxFlow != nil:
		return res.MaxFlow.Iterations
	case res.MinCostFlow != nil:
		return res.MinCostFlow.Iterations
	default:
		return 0
	}
}

package network

import (
	"fmt"

	"github.com/arkadia-ops/opticore/pkg/apperror"
)

// Method selects which network algorithm a Request runs.
type Method string

const (
	MethodShortestPath Method = "shortest_path"
	MethodMST          Method = "mst"
	MethodMaxFlow      Method = "max_flow"
	MethodMinCostFlow  Method = "min_cost_flow"
)

// Request is a network solve request: which algorithm to run, over a
// declarative Model. Model.Source/Sink/Demand are only consulted by the
// methods that need them (shortest_path needs Source and Sink; max_flow
// needs Source and Sink; min_cost_flow needs all three; mst needs none).
type Request struct {
	Method Method
	Model  Model
}

// Result is the outcome of a network solve, with only the fields
// relevant to the requested Method populated.
type Result struct {
	MethodUsed   string
	ShortestPath *ShortestPathResult
	MST          *MSTResult
	MaxFlow      *MaxFlowResult
	MinCostFlow  *MinCostFlowResult
}

// Solve dispatches a network request to the matching algorithm, building
// a fresh ResidualGraph from req.Model so the caller's Model is never
// mutated by a flow algorithm's residual-capacity bookkeeping.
func Solve(req Request) (*Result, error) {
	declared := make(map[string]bool, len(req.Model.Nodes))
	for _, id := range req.Model.Nodes {
		declared[id] = true
	}
	for _, e := range req.Model.Edges {
		if !declared[e.U] || !declared[e.V] {
			return nil, apperror.NewWithField(apperror.CodeDanglingEdge,
				fmt.Sprintf("edge %s->%s references an undeclared node", e.U, e.V), "edges")
		}
	}

	g := req.Model.Build()
	if err := g.Validate(); err != nil {
		return nil, err
	}

	switch req.Method {
	case MethodShortestPath:
		if !g.nodes[req.Model.Source] {
			return nil, apperror.ErrInvalidSource
		}
		if !g.nodes[req.Model.Sink] {
			return nil, apperror.ErrInvalidSink
		}
		tree, err := Dijkstra(g, req.Model.Source)
		if err != nil {
			return nil, err
		}
		path := ReconstructPath(tree.Parent, req.Model.Source, req.Model.Sink)
		dist := tree.Distances[req.Model.Sink]
		if len(path) == 0 {
			dist = Infinity
		}
		return &Result{MethodUsed: "shortest_path", ShortestPath: &ShortestPathResult{Distance: dist, PathNodes: path}}, nil

	case MethodMST:
		mst := Kruskal(g)
		return &Result{MethodUsed: "mst", MST: &mst}, nil

	case MethodMaxFlow:
		if !g.nodes[req.Model.Source] {
			return nil, apperror.ErrInvalidSource
		}
		if !g.nodes[req.Model.Sink] {
			return nil, apperror.ErrInvalidSink
		}
		if req.Model.Source == req.Model.Sink {
			return nil, apperror.ErrSourceEqualsSink
		}
		mf := EdmondsKarp(g, req.Model.Source, req.Model.Sink)
		return &Result{MethodUsed: "max_flow", MaxFlow: &mf}, nil

	case MethodMinCostFlow:
		if !g.nodes[req.Model.Source] {
			return nil, apperror.ErrInvalidSource
		}
		if !g.nodes[req.Model.Sink] {
			return nil, apperror.ErrInvalidSink
		}
		if req.Model.Source == req.Model.Sink {
			return nil, apperror.ErrSourceEqualsSink
		}
		if req.Model.Demand <= 0 {
			return nil, apperror.NewWithField(apperror.CodeInvalidArgument,
				"min_cost_flow requires a positive demand", "demand")
		}
		mcf, err := MinCostFlow(g, req.Model.Source, req.Model.Sink, req.Model.Demand)
		if err != nil {
			return nil, err
		}
		return &Result{MethodUsed: "min_cost_flow", MinCostFlow: mcf}, nil

	default:
		return nil, apperror.NewWithField(apperror.CodeInvalidMethod,
			fmt.Sprintf("unknown network method %q", req.Method), "method")
	}
}

package network

import (
	"testing"

	"github.com/arkadia-ops/opticore/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_ShortestPath_ClassicScenario(t *testing.T) {
	m := Model{
		Nodes: []string{"A", "B", "C"},
		Edges: []Edge{
			NewEdge("A", "B", 1, 0, 5),
			NewEdge("A", "C", 1, 0, 2),
			NewEdge("C", "B", 1, 0, 1),
		},
		Source:   "A",
		Sink:     "B",
		Directed: true,
	}

	res, err := Solve(Request{Model: m, Method: MethodShortestPath})
	require.NoError(t, err)
	require.NotNil(t, res.ShortestPath)
	assert.InDelta(t, 3, res.ShortestPath.Distance, 1e-9)
	assert.Equal(t, []string{"A", "C", "B"}, res.ShortestPath.PathNodes)
}

func TestSolve_ShortestPath_UnreachableSinkYieldsInfinity(t *testing.T) {
	m := Model{
		Nodes:    []string{"A", "B"},
		Source:   "A",
		Sink:     "B",
		Directed: true,
	}

	res, err := Solve(Request{Model: m, Method: MethodShortestPath})
	require.NoError(t, err)
	require.NotNil(t, res.ShortestPath)
	assert.Equal(t, Infinity, res.ShortestPath.Distance)
	assert.Nil(t, res.ShortestPath.PathNodes)
}

func TestDijkstra_RejectsNegativeWeight(t *testing.T) {
	m := Model{
		Nodes:    []string{"A", "B"},
		Edges:    []Edge{NewEdge("A", "B", 1, 0, -3)},
		Source:   "A",
		Sink:     "B",
		Directed: true,
	}

	_, err := Solve(Request{Model: m, Method: MethodShortestPath})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeNegativeWeight, apperror.Code(err))
}

func TestSolve_MST_ClassicScenario(t *testing.T) {
	m := Model{
		Nodes: []string{"A", "B", "C"},
		Edges: []Edge{
			NewEdge("A", "B", 1, 0, 2),
			NewEdge("B", "C", 1, 0, 2),
			NewEdge("A", "C", 1, 0, 10),
		},
	}

	res, err := Solve(Request{Model: m, Method: MethodMST})
	require.NoError(t, err)
	require.NotNil(t, res.MST)
	assert.True(t, res.MST.Connected)
	assert.Len(t, res.MST.Edges, 2)
	assert.InDelta(t, 4, res.MST.TotalWeight, 1e-9)
}

func TestSolve_MST_UndirectedModelDoesNotDoubleCountMirroredEdges(t *testing.T) {
	m := Model{
		Nodes: []string{"A", "B", "C"},
		Edges: []Edge{
			NewEdge("A", "B", 1, 0, 2),
			NewEdge("B", "C", 1, 0, 2),
			NewEdge("A", "C", 1, 0, 10),
		},
		Directed: false,
	}

	res, err := Solve(Request{Model: m, Method: MethodMST})
	require.NoError(t, err)
	assert.Len(t, res.MST.Edges, 2)
	assert.InDelta(t, 4, res.MST.TotalWeight, 1e-9)
}

func TestSolve_MaxFlow_ClassicScenario(t *testing.T) {
	m := Model{
		Nodes: []string{"s", "a", "t"},
		Edges: []Edge{
			NewCostEdge("s", "a", 3, 0),
			NewCostEdge("a", "t", 2, 0),
			NewCostEdge("s", "t", 1, 0),
		},
		Source:   "s",
		Sink:     "t",
		Directed: true,
	}

	res, err := Solve(Request{Model: m, Method: MethodMaxFlow})
	require.NoError(t, err)
	require.NotNil(t, res.MaxFlow)
	assert.InDelta(t, 3, res.MaxFlow.MaxFlow, 1e-9)
	assert.InDelta(t, 2, res.MaxFlow.Flows[EdgeKey{U: "s", V: "a"}], 1e-9)
	assert.InDelta(t, 1, res.MaxFlow.Flows[EdgeKey{U: "s", V: "t"}], 1e-9)
	assert.InDelta(t, 2, res.MaxFlow.Flows[EdgeKey{U: "a", V: "t"}], 1e-9)
}

func TestSolve_MinCostFlow_ClassicScenario(t *testing.T) {
	m := Model{
		Nodes: []string{"s", "a", "t"},
		Edges: []Edge{
			NewCostEdge("s", "a", 5, 1),
			NewCostEdge("a", "t", 5, 2),
		},
		Source:   "s",
		Sink:     "t",
		Demand:   4,
		Directed: true,
	}

	res, err := Solve(Request{Model: m, Method: MethodMinCostFlow})
	require.NoError(t, err)
	require.NotNil(t, res.MinCostFlow)
	assert.InDelta(t, 4, res.MinCostFlow.Sent, 1e-9)
	assert.InDelta(t, 12, res.MinCostFlow.TotalCost, 1e-9)
}

func TestSolve_MinCostFlow_InfeasibleWhenDemandExceedsCapacity(t *testing.T) {
	m := Model{
		Nodes: []string{"s", "a", "t"},
		Edges: []Edge{
			NewCostEdge("s", "a", 2, 1),
			NewCostEdge("a", "t", 2, 1),
		},
		Source:   "s",
		Sink:     "t",
		Demand:   10,
		Directed: true,
	}

	_, err := Solve(Request{Model: m, Method: MethodMinCostFlow})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeInfeasible, apperror.Code(err))
	assert.ErrorIs(t, err, ErrInfeasibleFlow)
}

func TestSolve_MaxFlow_SourceEqualsSinkRejected(t *testing.T) {
	m := Model{
		Nodes:    []string{"s", "t"},
		Edges:    []Edge{NewCostEdge("s", "t", 1, 0)},
		Source:   "s",
		Sink:     "s",
		Directed: true,
	}

	_, err := Solve(Request{Model: m, Method: MethodMaxFlow})
	require.Error(t, err)
}

func TestSolve_UnknownMethod(t *testing.T) {
	m := Model{
		Nodes:    []string{"a", "b"},
		Edges:    []Edge{NewEdge("a", "b", 1, 0, 1)},
		Directed: true,
	}

	_, err := Solve(Request{Model: m, Method: Method("bogus")})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeInvalidMethod, apperror.Code(err))
}

func TestKruskal_DisconnectedGraphYieldsForest(t *testing.T) {
	m := Model{
		Nodes:    []string{"A", "B", "C"},
		Edges:    []Edge{NewEdge("A", "B", 1, 0, 1)},
		Directed: false,
	}

	res, err := Solve(Request{Model: m, Method: MethodMST})
	require.NoError(t, err)
	assert.False(t, res.MST.Connected)
	assert.Len(t, res.MST.Edges, 1)
}

func TestReconstructPath_Unreachable(t *testing.T) {
	path := ReconstructPath(map[string]string{}, "A", "Z")
	assert.Nil(t, path)
}

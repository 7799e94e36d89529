package opticore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkadia-ops/opticore/internal/lp"
	"github.com/arkadia-ops/opticore/internal/network"
	"github.com/arkadia-ops/opticore/internal/transport"
	"github.com/arkadia-ops/opticore/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("error")
	m.Run()
}

func TestSolveLP_ClassicMaximize(t *testing.T) {
	req := lp.Request{
		Model: lp.Model{
			Name:  "classic",
			Sense: lp.Maximize,
			C:     []float64{3, 5},
			Constraints: []lp.Constraint{
				{A: []float64{1, 0}, Op: lp.LessEqual, B: 4},
				{A: []float64{0, 2}, Op: lp.LessEqual, B: 12},
				{A: []float64{3, 2}, Op: lp.LessEqual, B: 18},
			},
		},
		Method: lp.MethodAuto,
	}

	sol, err := SolveLP(req)
	require.NoError(t, err)
	assert.Equal(t, lp.StatusOptimal, sol.Status)
	assert.InDelta(t, 36, sol.ObjectiveValue, 1e-6)
}

func TestSolveTransport_ClassicAuto(t *testing.T) {
	req := transport.Request{
		Model: transport.Model{
			Supply: []float64{20, 30, 25},
			Demand: []float64{10, 10, 15, 40},
			Costs: [][]transport.Cost{
				{{Value: 4}, {Value: 6}, {Value: 8}, {Value: 8}},
				{{Value: 6}, {Value: 8}, {Value: 6}, {Value: 7}},
				{{Value: 5}, {Value: 7}, {Value: 6}, {Value: 8}},
			},
		},
		Method: transport.MethodAuto,
	}

	res, err := SolveTransport(req)
	require.NoError(t, err)
	assert.Equal(t, "OPTIMAL", res.Status)
}

func TestSolveNetwork_ShortestPath(t *testing.T) {
	m := network.Model{
		Nodes: []string{"A", "B", "C"},
		Edges: []network.Edge{
			network.NewEdge("A", "B", 1, 0, 5),
			network.NewEdge("A", "C", 1, 0, 2),
			network.NewEdge("C", "B", 1, 0, 1),
		},
		Source:   "A",
		Sink:     "B",
		Directed: true,
	}

	res, err := SolveNetwork(network.Request{Model: m, Method: network.MethodShortestPath})
	require.NoError(t, err)
	assert.InDelta(t, 3, res.ShortestPath.Distance, 1e-9)
}

func TestSolveLP_InvalidModelReturnsError(t *testing.T) {
	_, err := SolveLP(lp.Request{Model: lp.Model{}, Method: lp.MethodAuto})
	require.Error(t, err)
}

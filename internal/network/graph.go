// Package network implements the network-optimisation solver family:
// shortest path (Dijkstra), minimum spanning tree (Kruskal), maximum flow
// (Edmonds-Karp), and minimum-cost flow (Successive Shortest Augmenting
// Path with Johnson potentials) — all over a single residual-graph
// representation shared across algorithms.
package network

import (
	"fmt"
	"sort"

	"github.com/arkadia-ops/opticore/pkg/apperror"
)

// Infinity represents an unreachable distance or unbounded capacity.
const Infinity = 1e308

// Epsilon is the tolerance used for capacity/cost/distance comparisons
// throughout this package.
const Epsilon = 1e-9

// Arc is one directed edge in the residual graph: a forward arc carries
// the caller's original capacity/cost/weight; its paired reverse arc
// (added automatically) carries zero original capacity and negated cost,
// and absorbs flow cancellation.
type Arc struct {
	To        string
	Capacity  float64
	Cost      float64
	Weight    float64
	Flow      float64
	IsReverse bool
	pairIndex int // index, in the same adjacency slice as its pair, of the antisymmetric reverse arc
}

// ResidualGraph is a tagged adjacency list keyed by node ID: each node
// maps to a slice of edges leaving it, insertion-ordered for determinism.
// Every added edge gets an antisymmetric reverse edge so flow-cancelling
// algorithms (Edmonds-Karp, SSAP) can push back along it.
type ResidualGraph struct {
	nodes     map[string]bool
	adjacency map[string][]Arc
	order     []string // insertion order of nodes, for deterministic iteration
	directed  bool
}

// NewResidualGraph returns an empty graph. directed is only recorded and
// reported by Directed: AddEdge always adds the same forward/reverse
// flow-bookkeeping pair, and Kruskal always treats edges as undirected.
// Mirroring the edges of an undirected model is done by Model.Build.
func NewResidualGraph(directed bool) *ResidualGraph {
	return &ResidualGraph{
		nodes:     make(map[string]bool),
		adjacency: make(map[string][]Arc),
		directed:  directed,
	}
}

// Directed reports whether the graph was built as directed.
func (g *ResidualGraph) Directed() bool { return g.directed }

// AddNode registers a node ID if not already present.
func (g *ResidualGraph) AddNode(id string) {
	if !g.nodes[id] {
		g.nodes[id] = true
		g.order = append(g.order, id)
		g.adjacency[id] = nil
	}
}

// AddEdge adds a directed edge u->v with the given capacity/cost/weight,
// plus an antisymmetric reverse edge v->u with zero capacity and negated
// cost (the bookkeeping residual-graph algorithms need to cancel flow).
// Both endpoints are auto-registered as nodes if not already present.
func (g *ResidualGraph) AddEdge(u, v string, capacity, cost, weight float64) {
	g.AddNode(u)
	g.AddNode(v)

	fwdIdx := len(g.adjacency[u])
	revIdx := len(g.adjacency[v])

	g.adjacency[u] = append(g.adjacency[u], Arc{
		To: v, Capacity: capacity, Cost: cost, Weight: weight, pairIndex: revIdx,
	})
	g.adjacency[v] = append(g.adjacency[v], Arc{
		To: u, Capacity: 0, Cost: -cost, Weight: weight, IsReverse: true, pairIndex: fwdIdx,
	})
}

// Nodes returns every node ID in deterministic (sorted) order.
func (g *ResidualGraph) Nodes() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Neighbors returns node u's outgoing edges in insertion order, the
// order every algorithm in this package relies on for determinism.
func (g *ResidualGraph) Neighbors(u string) []Arc {
	return g.adjacency[u]
}

// GetEdge returns the (first) edge u->v and whether it exists.
func (g *ResidualGraph) GetEdge(u, v string) (Arc, bool) {
	for _, e := range g.adjacency[u] {
		if e.To == v {
			return e, true
		}
	}
	return Arc{}, false
}

// UpdateFlow pushes flow units of flow along u->v: decreases that edge's
// residual capacity and increases its paired reverse edge's, maintaining
// the antisymmetric residual-capacity invariant.
func (g *ResidualGraph) UpdateFlow(u, v string, flow float64) {
	for i := range g.adjacency[u] {
		e := &g.adjacency[u][i]
		if e.To != v {
			continue
		}
		e.Capacity -= flow
		e.Flow += flow
		rev := &g.adjacency[v][e.pairIndex]
		rev.Capacity += flow
		rev.Flow -= flow
		return
	}
}

// Clone returns a deep copy of the graph, so an algorithm that mutates
// residual capacities (Edmonds-Karp, SSAP) never disturbs the caller's
// original.
func (g *ResidualGraph) Clone() *ResidualGraph {
	clone := &ResidualGraph{
		nodes:     make(map[string]bool, len(g.nodes)),
		adjacency: make(map[string][]Arc, len(g.adjacency)),
		order:     append([]string(nil), g.order...),
		directed:  g.directed,
	}
	for id, v := range g.nodes {
		clone.nodes[id] = v
	}
	for id, edges := range g.adjacency {
		clone.adjacency[id] = append([]Arc(nil), edges...)
	}
	return clone
}

// Validate reports a non-nil error if the graph has no nodes or if any
// edge endpoint was never added as a node, matching the Network Model
// invariants (§3). Node IDs are map keys, so no collision check is made.
func (g *ResidualGraph) Validate() error {
	if g == nil || len(g.nodes) == 0 {
		return apperror.ErrEmptyModel
	}
	for u, edges := range g.adjacency {
		for _, e := range edges {
			if !g.nodes[u] || !g.nodes[e.To] {
				return apperror.NewWithField(apperror.CodeDanglingEdge,
					fmt.Sprintf("edge %s->%s references an undeclared node", u, e.To), "edges")
			}
		}
	}
	return nil
}

package network

// Edge is one input arc in a declarative network Model: an origin and a
// destination, the capacity flow methods may push across it, the cost
// min-cost-flow accumulates (and Weight falls back to, when unset), and
// an explicit traversal weight for shortest-path/MST. WeightSet
// distinguishes "the caller supplied Weight" from "the caller left it at
// its zero value", so a genuinely zero weight is never silently
// overwritten by Cost.
type Edge struct {
	U, V      string
	Capacity  float64
	Cost      float64
	Weight    float64
	WeightSet bool
}

// NewEdge builds an Edge with an explicit traversal weight.
func NewEdge(u, v string, capacity, cost, weight float64) Edge {
	return Edge{U: u, V: v, Capacity: capacity, Cost: cost, Weight: weight, WeightSet: true}
}

// NewCostEdge builds an Edge with no separate traversal weight: Weight
// resolves to Cost.
func NewCostEdge(u, v string, capacity, cost float64) Edge {
	return Edge{U: u, V: v, Capacity: capacity, Cost: cost}
}

// resolvedWeight returns the weight to use for shortest-path/MST
// traversal: the explicit Weight if the caller set one, Cost otherwise.
func (e Edge) resolvedWeight() float64 {
	if e.WeightSet {
		return e.Weight
	}
	return e.Cost
}

// Model is a declarative network-optimisation input: the node and edge
// sets, the source/sink/demand endpoints the shortest-path and flow
// methods consult, and whether the edge set is undirected.
type Model struct {
	Nodes    []string
	Edges    []Edge
	Source   string
	Sink     string
	Demand   float64
	Directed bool
}

// Build resolves m into a ResidualGraph: every declared node is
// registered, then every edge is added with its resolved weight. An
// undirected model additionally mirrors each edge's original capacity
// onto the reverse orientation (§4.7's rule for Edmonds-Karp over an
// undirected model), rather than leaving that orientation at the zero
// capacity a directed model's flow-cancellation bookkeeping starts with.
func (m Model) Build() *ResidualGraph {
	g := NewResidualGraph(m.Directed)
	for _, n := range m.Nodes {
		g.AddNode(n)
	}
	for _, e := range m.Edges {
		w := e.resolvedWeight()
		g.AddEdge(e.U, e.V, e.Capacity, e.Cost, w)
		if !m.Directed {
			g.AddEdge(e.V, e.U, e.Capacity, e.Cost, w)
		}
	}
	return g
}

package network

import "sort"

// SpanningEdge is one edge accepted into a Kruskal spanning forest.
type SpanningEdge struct {
	From, To string
	Weight   float64
}

// MSTResult is the outcome of a Kruskal run: the accepted edges, their
// total weight, and whether the graph was fully connected (one
// spanning tree) or not (a spanning forest over several components).
type MSTResult struct {
	Edges       []SpanningEdge
	TotalWeight float64
	Connected   bool
}

// Kruskal computes a minimum spanning tree (or forest, if disconnected)
// over g treated as undirected: every distinct original edge is
// considered once regardless of direction, sorted ascending by Weight
// (stable, so equal-weight ties keep the input edge order), and accepted
// via a union-find with path halving and union by rank.
func Kruskal(g *ResidualGraph) MSTResult {
	nodes := g.Nodes()

	type rawEdge struct {
		from, to string
		weight   float64
	}
	var edges []rawEdge
	seen := make(map[[2]string]bool)
	for _, u := range nodes {
		for _, e := range g.Neighbors(u) {
			if e.IsReverse || u == e.To {
				continue
			}
			key := [2]string{u, e.To}
			revKey := [2]string{e.To, u}
			if seen[key] || seen[revKey] {
				continue
			}
			seen[key] = true
			edges = append(edges, rawEdge{from: u, to: e.To, weight: e.Weight})
		}
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].weight < edges[j].weight
	})

	parent := make(map[string]string, len(nodes))
	rank := make(map[string]int, len(nodes))
	for _, n := range nodes {
		parent[n] = n
	}

	var find func(string) string
	find = func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]] // path halving
			u = parent[u]
		}
		return u
	}
	union := func(u, v string) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	var result []SpanningEdge
	var totalWeight float64
	needed := len(nodes) - 1

	for _, e := range edges {
		if len(result) >= needed {
			break
		}
		if find(e.from) != find(e.to) {
			union(e.from, e.to)
			result = append(result, SpanningEdge{From: e.from, To: e.to, Weight: e.weight})
			totalWeight += e.weight
		}
	}

	return MSTResult{
		Edges:       result,
		TotalWeight: totalWeight,
		Connected:   len(result) == needed,
	}
}

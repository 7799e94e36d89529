package network

import (
	"container/heap"
	"fmt"

	"github.com/arkadia-ops/opticore/pkg/apperror"
)

func errNegativeWeight(u, v string, weight float64) error {
	return apperror.NewWithField(apperror.CodeNegativeWeight,
		fmt.Sprintf("edge %s->%s has negative weight %v", u, v, weight), "edges")
}

// DijkstraTree is the raw outcome of a Dijkstra run: every reached
// node's distance from source and its predecessor on the shortest-path
// tree, used both to derive the request-facing ShortestPathResult and,
// internally, by SSAP's potential updates.
type DijkstraTree struct {
	Distances map[string]float64
	Parent    map[string]string
}

// ShortestPathResult is the resolved outcome of a shortest_path request:
// the source-to-target distance (Infinity if unreachable) and the
// resolved path's node sequence (empty if unreachable).
type ShortestPathResult struct {
	Distance  float64
	PathNodes []string
}

// pqItem is one entry in the Dijkstra priority queue: a min-heap on
// distance, tie-broken by node ID for deterministic pop order.
type pqItem struct {
	node     string
	distance float64
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].distance != pq[j].distance {
		return pq[i].distance < pq[j].distance
	}
	return pq[i].node < pq[j].node
}
func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x any)   { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// Dijkstra computes shortest distances from source over g's Weight
// field, using lazy deletion (popped entries whose distance no longer
// matches the best known are skipped). Rejects negative weights as
// invalid input per §4.7 rather than falling back to another algorithm.
func Dijkstra(g *ResidualGraph, source string) (*DijkstraTree, error) {
	for _, u := range g.Nodes() {
		for _, e := range g.Neighbors(u) {
			if !e.IsReverse && e.Weight < -Epsilon {
				return nil, errNegativeWeight(u, e.To, e.Weight)
			}
		}
	}
	return dijkstraOnWeights(g, source), nil
}

// dijkstraOnWeights is the plain Dijkstra loop relaxing on each edge's
// Weight field, skipping edges with no residual capacity left.
func dijkstraOnWeights(g *ResidualGraph, source string) *DijkstraTree {
	nodes := g.Nodes()
	dist := make(map[string]float64, len(nodes))
	parent := make(map[string]string, len(nodes))
	for _, n := range nodes {
		dist[n] = Infinity
	}
	dist[source] = 0

	pq := &priorityQueue{{node: source, distance: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(pqItem)
		u := cur.node
		if cur.distance > dist[u]+Epsilon {
			continue
		}
		for _, e := range g.Neighbors(u) {
			if e.Capacity <= Epsilon {
				continue
			}
			newDist := dist[u] + e.Weight
			if newDist < dist[e.To]-Epsilon {
				dist[e.To] = newDist
				parent[e.To] = u
				heap.Push(pq, pqItem{node: e.To, distance: newDist})
			}
		}
	}

	return &DijkstraTree{Distances: dist, Parent: parent}
}

// dijkstraReducedCost runs Dijkstra over reduced costs c(u,v) + pi[u] -
// pi[v] for SSAP, where pi holds the current node potentials. Reduced
// costs are expected to be non-negative once potentials are valid;
// floating point noise is clamped to zero. Needs each edge's "from" node
// to compute the reduction, so it walks adjacency directly and reads each
// arc's Cost rather than its Weight.
func dijkstraReducedCost(g *ResidualGraph, source string, pi map[string]float64) *DijkstraTree {
	nodes := g.Nodes()
	dist := make(map[string]float64, len(nodes))
	parent := make(map[string]string, len(nodes))
	for _, n := range nodes {
		dist[n] = Infinity
	}
	dist[source] = 0

	pq := &priorityQueue{{node: source, distance: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(pqItem)
		u := cur.node
		if cur.distance > dist[u]+Epsilon {
			continue
		}
		for _, e := range g.Neighbors(u) {
			if e.Capacity <= Epsilon {
				continue
			}
			rc := e.Cost + pi[u] - pi[e.To]
			if rc < 0 {
				rc = 0
			}
			newDist := dist[u] + rc
			if newDist < dist[e.To]-Epsilon {
				dist[e.To] = newDist
				parent[e.To] = u
				heap.Push(pq, pqItem{node: e.To, distance: newDist})
			}
		}
	}

	return &DijkstraTree{Distances: dist, Parent: parent}
}


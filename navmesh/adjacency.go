package navmesh

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/polyanya/geom"
)

// polygonCentroid returns the unweighted average of a polygon's vertex
// positions, used only as a coarse distance estimate between adjacent
// polygons for the topological reachability pre-check below.
func (m *Mesh) polygonCentroid(polygon int) geom.Point {
	verts := m.Polygons[polygon].Vertices
	var sum geom.Point
	for _, idx := range verts {
		sum = sum.Add(m.Vertices[idx].Position)
	}
	return sum.Scale(1 / float64(len(verts)))
}

// AdjacencyGraph returns, for every polygon, the set of polygons reachable
// by crossing exactly one edge. It is a diagnostic/topological view of the
// mesh — nothing in the any-angle search (package pathfind) consults it —
// useful for tooling built on top of this module (visualizers, connectivity
// dashboards) and for the fast reachability pre-check in Reachable.
func (m *Mesh) AdjacencyGraph() [][]int {
	adjacency := make([][]int, len(m.Polygons))
	for i := range m.Polygons {
		seen := make(map[int]bool)
		for _, edge := range m.Edges(i) {
			other := m.Neighbour(edge[0], edge[1], i)
			if other == NoPolygon || seen[other] {
				continue
			}
			seen[other] = true
			adjacency[i] = append(adjacency[i], other)
		}
	}
	return adjacency
}

// polyHeapItem is one entry of polyPQ: a polygon index and its current
// best-known centroid-to-centroid distance from the source polygon.
type polyHeapItem struct {
	polygon int
	dist    float64
}

// polyPQ is a container/heap min-heap of *polyHeapItem ordered by dist
// ascending, in the same shape as a standard Dijkstra priority queue:
// Len/Less/Swap/Push/Pop over a slice of pointers, with lazy decrease-key
// (stale entries are skipped when popped, never removed in place).
type polyPQ []*polyHeapItem

func (pq polyPQ) Len() int            { return len(pq) }
func (pq polyPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq polyPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *polyPQ) Push(x interface{}) { *pq = append(*pq, x.(*polyHeapItem)) }
func (pq *polyPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// Reachable runs a Dijkstra-style search over the polygon-adjacency graph
// (centroid-distance weighted) to answer "can any path possibly connect
// these two polygons" without running the full any-angle funnel search.
// Package pathfind calls this before seeding its priority queue so that a
// topologically disconnected query fails immediately (§7 "Unreachable
// goal") instead of draining the real search queue first.
func (m *Mesh) Reachable(from, to int) bool {
	if from == to {
		return true
	}
	if from == NoPolygon || to == NoPolygon {
		return false
	}

	adjacency := m.AdjacencyGraph()
	dist := make(map[int]float64, len(m.Polygons))
	dist[from] = 0

	pq := &polyPQ{{polygon: from, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*polyHeapItem)
		if item.polygon == to {
			return true
		}
		if best, ok := dist[item.polygon]; ok && item.dist > best {
			continue // stale entry from an earlier, worse push
		}
		from := m.polygonCentroid(item.polygon)
		for _, next := range adjacency[item.polygon] {
			step := geom.Distance(from, m.polygonCentroid(next))
			newDist := item.dist + step
			if best, ok := dist[next]; !ok || newDist < best {
				dist[next] = newDist
				if math.IsNaN(newDist) {
					continue
				}
				heap.Push(pq, &polyHeapItem{polygon: next, dist: newDist})
			}
		}
	}
	return false
}

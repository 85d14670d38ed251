package pathfind

import (
	"container/heap"
	"context"
	"math"

	"github.com/katalvlaran/polyanya/geom"
	"github.com/katalvlaran/polyanya/navmesh"
)

// searchInstance owns everything a single Query call mutates: the frontier
// queue, the per-expansion successor buffer, and the root-history
// dominance table. None of it is safe for concurrent use or reused across
// queries.
type searchInstance struct {
	mesh      *navmesh.Mesh
	goal      geom.Point
	polygonTo int // the goal's containing polygon

	queue              searchQueue
	buffer             []*SearchNode
	rootHistory        map[[2]int64]float64
	rootDiscretisation float64
	nextSeq            int

	observer Observer
}

// discretizeRoot truncates a root point to a grid of s.rootDiscretisation
// cells per unit, so that near-duplicate floating-point roots produced by
// different funnel chains collapse onto the same root-history entry.
func (s *searchInstance) discretizeRoot(p geom.Point) [2]int64 {
	return [2]int64{
		int64(p.X * s.rootDiscretisation),
		int64(p.Y * s.rootDiscretisation),
	}
}

// Query runs the any-angle search from "from" to "to" over mesh and returns
// the shortest path found, or Unreachable if none exists. It respects
// ctx cancellation between queue pops, which is the only point in the
// search where an arbitrarily long-running query can be interrupted
// cheaply; a cancelled query returns Unreachable.
func Query(ctx context.Context, mesh *navmesh.Mesh, from, to geom.Point, opts ...Option) Path {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	startPolygon := mesh.Locate(from)
	if startPolygon == navmesh.NoPolygon {
		return Unreachable
	}
	endPolygon := mesh.Locate(to)
	if startPolygon == endPolygon {
		return Path{Length: geom.Distance(from, to), Turns: []geom.Point{to}}
	}
	if !mesh.Reachable(startPolygon, endPolygon) {
		return Unreachable
	}

	s := &searchInstance{
		mesh:               mesh,
		goal:               to,
		polygonTo:          endPolygon,
		queue:              make(searchQueue, 0, cfg.QueueCapacity),
		buffer:             make([]*SearchNode, 0, cfg.BufferCapacity),
		rootHistory:        make(map[[2]int64]float64, cfg.QueueCapacity),
		rootDiscretisation: cfg.RootDiscretisation,
		observer:           cfg.Observer,
	}
	heap.Init(&s.queue)
	s.rootHistory[s.discretizeRoot(from)] = 0

	origin := &SearchNode{Root: from, IIndex: [2]int{-1, -1}, PolygonFrom: navmesh.NoPolygon, PolygonTo: startPolygon}
	for _, edge := range mesh.Edges(startPolygon) {
		start := mesh.Vertices[edge[0]]
		end := mesh.Vertices[edge[1]]
		otherSide := mesh.Neighbour(edge[0], edge[1], startPolygon)
		succ := Successor{Interval: geom.Edge{start.Position, end.Position}, EdgeIndex: edge, Kind: Observable}
		s.addNode(from, otherSide, succ, origin)
	}
	s.flush()

	for s.queue.Len() > 0 {
		select {
		case <-ctx.Done():
			return Unreachable
		default:
		}

		node := heap.Pop(&s.queue).(*SearchNode)
		s.observer.OnPop(node)
		if node.PolygonTo == endPolygon {
			return s.reconstruct(node, from, to)
		}
		s.expand(node)
	}
	return Unreachable
}

// expand generates node's successors, buffers them via addNode, and
// collapses the deterministic case of a single non-goal successor directly
// into the next expansion instead of round-tripping it through the queue:
// a node with exactly one way forward down a corridor is never actually a
// branch point, so there is nothing for the queue ordering to decide.
func (s *searchInstance) expand(node *SearchNode) {
	for {
		for _, succ := range Successors(s.mesh, node) {
			start := s.mesh.Vertices[succ.EdgeIndex[0]]
			end := s.mesh.Vertices[succ.EdgeIndex[1]]
			root, ok := s.resolveRoot(node, succ, start, end)
			if !ok {
				continue
			}
			otherSide := s.mesh.Neighbour(succ.EdgeIndex[0], succ.EdgeIndex[1], node.PolygonTo)
			s.addNode(root, otherSide, succ, node)
		}
		if len(s.buffer) == 1 && s.buffer[0].PolygonTo != s.polygonTo {
			node = s.buffer[0]
			s.buffer = s.buffer[:0]
			continue
		}
		break
	}
	s.flush()
}

// resolveRoot computes the funnel apex for succ given the parent node it
// was generated from. Observable successors keep the parent's root
// outright; the two non-observable kinds round a funnel endpoint only when
// that endpoint is itself a mesh corner (IsCorner) backing the clipped
// sub-interval's edge — anything else means the successor's interval was
// only coincidentally flush with the funnel ray and carries no valid apex.
func (s *searchInstance) resolveRoot(node *SearchNode, succ Successor, start, end navmesh.Vertex) (geom.Point, bool) {
	switch succ.Kind {
	case Observable:
		return node.Root, true

	case RightNonObservable:
		if geom.Distance(succ.Interval[0], start.Position) > geom.RootEpsilon {
			return geom.Point{}, false
		}
		if idx := node.IIndex[0]; idx >= 0 {
			corner := s.mesh.Vertices[idx]
			if corner.IsCorner && geom.Distance(corner.Position, node.I[0]) < geom.RootEpsilon {
				return node.I[0], true
			}
		}
		return geom.Point{}, false

	case LeftNonObservable:
		if geom.Distance(succ.Interval[1], end.Position) > geom.RootEpsilon {
			return geom.Point{}, false
		}
		if idx := node.IIndex[1]; idx >= 0 {
			corner := s.mesh.Vertices[idx]
			if corner.IsCorner && geom.Distance(corner.Position, node.I[1]) < geom.RootEpsilon {
				return node.I[1], true
			}
		}
		return geom.Point{}, false

	default:
		return geom.Point{}, false
	}
}

// addNode turns a resolved (root, successor) pair into a buffered
// SearchNode, applying every prune needed before it ever reaches the
// queue: cul-de-sac (no polygon on the far side), dead end (a one-way
// polygon that isn't the goal), a non-finite cost or bound, and dominance
// by an earlier, cheaper visit to the same (discretised) root.
func (s *searchInstance) addNode(root geom.Point, otherSide int, succ Successor, parent *SearchNode) {
	if otherSide == navmesh.NoPolygon {
		s.observer.OnPrune("cul-de-sac", otherSide, root)
		return
	}
	if otherSide != s.polygonTo && s.mesh.Polygons[otherSide].OneWay {
		s.observer.OnPrune("dead-end", otherSide, root)
		return
	}

	path := append([]geom.Point(nil), parent.Path...)
	if root != parent.Root {
		path = append(path, parent.Root)
	}

	bound := geom.Heuristic(root, s.goal, succ.Interval)
	cost := parent.CostSoFar + geom.Distance(parent.Root, root)
	if math.IsNaN(bound) || math.IsNaN(cost) {
		s.observer.OnPrune("non-finite", otherSide, root)
		return
	}

	key := s.discretizeRoot(root)
	if existing, ok := s.rootHistory[key]; ok && existing < cost {
		s.observer.OnPrune("dominated-root", otherSide, root)
		return
	}
	s.rootHistory[key] = cost

	s.buffer = append(s.buffer, &SearchNode{
		Root:        root,
		I:           succ.Interval,
		IIndex:      succ.EdgeIndex,
		PolygonFrom: parent.PolygonTo,
		PolygonTo:   otherSide,
		CostSoFar:   cost,
		Bound:       bound,
		Path:        path,
	})
}

// flush moves every buffered node onto the search queue.
func (s *searchInstance) flush() {
	for _, n := range s.buffer {
		n.seq = s.nextSeq
		s.nextSeq++
		heap.Push(&s.queue, n)
		s.observer.OnPush(n)
	}
	s.buffer = s.buffer[:0]
}

// reconstruct builds the final Path once node, whose destination polygon is
// the goal's, has been popped off the queue. node.Path holds every turn
// accepted strictly before node.Root; its first element, when present, is
// the query start itself (recorded in addNode the first time a successor's
// root ever diverged from its parent's), so it is dropped here before the
// remaining turns, node.Root, and any final turning point onto "to" are
// appended.
func (s *searchInstance) reconstruct(node *SearchNode, from, to geom.Point) Path {
	turns := make([]geom.Point, 0, len(node.Path)+3)
	if len(node.Path) > 0 {
		turns = append(turns, node.Path[1:]...)
	}
	if node.Root != from {
		turns = append(turns, node.Root)
	}
	if turn, ok := geom.TurningPoint(node.Root, to, node.I); ok {
		turns = append(turns, turn)
	}
	turns = append(turns, to)

	return Path{Length: node.Priority(), Turns: turns}
}

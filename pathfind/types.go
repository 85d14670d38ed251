package pathfind

import (
	"fmt"

	"github.com/katalvlaran/polyanya/geom"
)

// SearchNode is one entry of the search frontier: the funnel apex Root, the
// interval I=[right,left] the funnel currently spans, and the polygons it
// came from and is pushing into.
//
// CostSoFar is the exact path length from the query start to Root. Bound is
// an admissible lower bound (geom.Heuristic) on the remaining distance from
// Root to the goal through I; Priority is their sum, the value the search
// queue orders by. Path holds the turn points accepted before Root, in
// order, excluding Root itself; once any turn has been taken, its first
// element is the query start.
type SearchNode struct {
	Root geom.Point
	I    geom.Edge

	// IIndex holds the mesh vertex index backing each endpoint of I, or -1
	// for an endpoint synthesised at the query start (no backing vertex).
	IIndex [2]int

	PolygonFrom int
	PolygonTo   int

	CostSoFar float64
	Bound     float64

	Path []geom.Point

	seq int // insertion order, for deterministic tie-breaking in the queue
}

// Priority is the value the search queue orders ascending by: the sum of the
// exact cost accumulated so far and the admissible bound on what remains.
func (n *SearchNode) Priority() float64 { return n.CostSoFar + n.Bound }

// String renders a SearchNode for logs and test failure messages, in the
// same root/right/left/f/g shape the reference implementation's own debug
// Display impl used.
func (n *SearchNode) String() string {
	return fmt.Sprintf(
		"root=(%.2f, %.2f); right=(%.2f, %.2f); left=(%.2f, %.2f); f=%.2f, g=%.2f",
		n.Root.X, n.Root.Y, n.I[0].X, n.I[0].Y, n.I[1].X, n.I[1].Y, n.CostSoFar, n.Bound,
	)
}

// Kind classifies a Successor by how its root must be computed: Observable
// successors share the parent's root outright; the NonObservable kinds round
// one of the funnel's own endpoints.
type Kind int

const (
	// RightNonObservable successors round the funnel's right endpoint I[0].
	RightNonObservable Kind = iota
	// Observable successors are directly visible from the parent's root.
	Observable
	// LeftNonObservable successors round the funnel's left endpoint I[1].
	LeftNonObservable
)

func (k Kind) String() string {
	switch k {
	case RightNonObservable:
		return "RightNonObservable"
	case Observable:
		return "Observable"
	case LeftNonObservable:
		return "LeftNonObservable"
	default:
		return "Kind(?)"
	}
}

// Successor is one edge interval a SearchNode's funnel clips out of its
// destination polygon's far side, ready to seed the next SearchNode.
type Successor struct {
	Interval  geom.Edge
	EdgeIndex [2]int
	Kind      Kind
}

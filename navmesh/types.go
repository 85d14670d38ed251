package navmesh

import (
	"errors"

	"github.com/katalvlaran/polyanya/geom"
)

// NoPolygon is the sentinel polygon index meaning "obstacle" (on a
// Vertex.IncidentPolygons entry or an edge with no neighbour) or "outside
// the mesh" (the result of Locate for an unreachable point). -1 is the
// idiomatic Go rendering, consistent with the obstacle marker already used
// on incident-polygon lists.
const NoPolygon = -1

// Sentinel errors for mesh construction.
var (
	// ErrNoVertices indicates a Mesh was constructed with zero vertices.
	ErrNoVertices = errors.New("navmesh: mesh has no vertices")
	// ErrNoPolygons indicates a Mesh was constructed with zero polygons.
	ErrNoPolygons = errors.New("navmesh: mesh has no polygons")
	// ErrPolygonTooSmall indicates a polygon has fewer than 3 vertices.
	ErrPolygonTooSmall = errors.New("navmesh: polygon must have at least 3 vertices")
	// ErrVertexIndex indicates a polygon references a vertex index out of range.
	ErrVertexIndex = errors.New("navmesh: polygon references an out-of-range vertex index")
)

// Vertex is a point in the mesh together with the polygons that touch it.
//
// IncidentPolygons lists, in order around the vertex, the polygons that
// share it; NoPolygon marks an obstacle-facing side. IsCorner is true iff
// NoPolygon appears in IncidentPolygons, i.e. the vertex lies on an
// obstacle boundary and may act as a funnel apex for non-observable
// successors.
type Vertex struct {
	Position         geom.Point
	IncidentPolygons []int
	IsCorner         bool
}

// NewVertex builds a Vertex from its position and incident-polygon list,
// deriving IsCorner automatically.
func NewVertex(position geom.Point, incidentPolygons []int) Vertex {
	v := Vertex{Position: position, IncidentPolygons: incidentPolygons}
	for _, p := range incidentPolygons {
		if p == NoPolygon {
			v.IsCorner = true
			break
		}
	}
	return v
}

// Polygon is a convex cell of the mesh, given as a counter-clockwise
// ordered list of vertex indices.
//
// OneWay is true iff at most one edge of the polygon borders another
// polygon, i.e. the polygon is a dead end from every direction except
// through that single edge.
type Polygon struct {
	Vertices []int
	OneWay   bool
}

// NewPolygon builds a Polygon from its vertex indices and, for each edge in
// order, the neighbour polygon index on the far side (NoPolygon for an
// obstacle edge). neighbours is used only to derive OneWay; it is not
// retained, since adjacency is recomputed on demand from vertex incidence
// (see Mesh.Neighbour) to keep a single source of truth.
func NewPolygon(vertices []int, neighbours []int) Polygon {
	p := Polygon{Vertices: vertices}
	traversable := 0
	for _, n := range neighbours {
		if n != NoPolygon {
			traversable++
		}
	}
	p.OneWay = traversable <= 1
	return p
}

// Mesh is the immutable navigation mesh: two index-addressed arenas,
// vertices and polygons, referring to each other only by integer index.
type Mesh struct {
	Vertices []Vertex
	Polygons []Polygon
}

// New validates and wraps vertices and polygons into a Mesh. It performs
// only the structural checks §3 requires of its caller (non-empty, index
// bounds, minimum polygon size); it does not validate the edge-adjacency
// invariant (§3's "Q is the unique index occurring in both endpoints'
// incident-polygon lists") — a malformed mesh there is the loader's
// responsibility, per §7.
func New(vertices []Vertex, polygons []Polygon) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}
	if len(polygons) == 0 {
		return nil, ErrNoPolygons
	}
	for _, p := range polygons {
		if len(p.Vertices) < 3 {
			return nil, ErrPolygonTooSmall
		}
		for _, idx := range p.Vertices {
			if idx < 0 || idx >= len(vertices) {
				return nil, ErrVertexIndex
			}
		}
	}
	return &Mesh{Vertices: vertices, Polygons: polygons}, nil
}

package navmesh

// Edges yields polygon's edges as ordered vertex-index pairs
// [v0,v1],[v1,v2],...,[v(n-1),v0].
func (m *Mesh) Edges(polygon int) [][2]int {
	verts := m.Polygons[polygon].Vertices
	edges := make([][2]int, len(verts))
	for i := range verts {
		edges[i] = [2]int{verts[i], verts[(i+1)%len(verts)]}
	}
	return edges
}

// DoubleEdges yields polygon's edge list concatenated with itself, so
// callers can index a cyclic window starting after an arbitrary edge
// without modular arithmetic.
func (m *Mesh) DoubleEdges(polygon int) [][2]int {
	single := m.Edges(polygon)
	double := make([][2]int, 0, 2*len(single))
	double = append(double, single...)
	double = append(double, single...)
	return double
}

// Neighbour returns the polygon on the far side of the edge (u,v), i.e. the
// unique index that occurs in both u's and v's IncidentPolygons other than
// from and NoPolygon. It returns NoPolygon if the edge borders an obstacle
// (cul-de-sac).
//
// The invariant in §3 guarantees at most one such index exists; Neighbour
// does not re-verify uniqueness (a malformed mesh is the loader's
// responsibility, per §7).
func (m *Mesh) Neighbour(u, v, from int) int {
	vp := m.Vertices[v].IncidentPolygons
	for _, candidate := range m.Vertices[u].IncidentPolygons {
		if candidate == NoPolygon || candidate == from {
			continue
		}
		for _, other := range vp {
			if other == candidate {
				return candidate
			}
		}
	}
	return NoPolygon
}

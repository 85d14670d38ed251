package navmesh

import "github.com/katalvlaran/polyanya/geom"

// Locate returns the index of the polygon containing point, or NoPolygon if
// point falls outside the mesh. A point is inside a polygon iff it lies
// left of every directed edge, or on some edge.
//
// To tolerate points that fall exactly on a shared edge (where the strict
// "left of every edge" test can reject both adjacent polygons due to
// floating-point noise), Locate retries at nine small offsets arranged in a
// 3x3 grid of magnitude opts.NudgeDelta around point; the first offset that
// resolves to an interior polygon wins.
func (m *Mesh) Locate(point geom.Point, opts ...LocateOption) int {
	cfg := DefaultLocateOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	d := cfg.NudgeDelta
	offsets := [9]geom.Point{
		{X: 0, Y: 0},
		{X: d, Y: 0},
		{X: d, Y: d},
		{X: 0, Y: d},
		{X: -d, Y: d},
		{X: -d, Y: 0},
		{X: -d, Y: -d},
		{X: 0, Y: -d},
		{X: d, Y: -d},
	}
	for _, off := range offsets {
		if poly := m.locateExact(point.Add(off)); poly != NoPolygon {
			return poly
		}
	}
	return NoPolygon
}

// Contains reports whether point lies inside the mesh, after the same
// nine-point nudge Locate applies.
func (m *Mesh) Contains(point geom.Point, opts ...LocateOption) bool {
	return m.Locate(point, opts...) != NoPolygon
}

// locateExact finds the polygon containing point with no nudging.
func (m *Mesh) locateExact(point geom.Point) int {
polygons:
	for i, polygon := range m.Polygons {
		_ = polygon
		for _, edge := range m.Edges(i) {
			a := m.Vertices[edge[0]].Position
			b := m.Vertices[edge[1]].Position
			if geom.OnSegment(point, a, b) {
				return i
			}
			if geom.SideOf(point, a, b) != geom.Left {
				continue polygons
			}
		}
		return i
	}
	return NoPolygon
}

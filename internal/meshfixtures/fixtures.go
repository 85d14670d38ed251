package meshfixtures

import (
	"github.com/katalvlaran/polyanya/geom"
	"github.com/katalvlaran/polyanya/navmesh"
)

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

func build(positions []geom.Point, incident [][]int, polyVerts [][]int, polyNeighbours [][]int) *navmesh.Mesh {
	vertices := make([]navmesh.Vertex, len(positions))
	for i, p := range positions {
		vertices[i] = navmesh.NewVertex(p, incident[i])
	}
	polygons := make([]navmesh.Polygon, len(polyVerts))
	for i := range polyVerts {
		polygons[i] = navmesh.NewPolygon(polyVerts[i], polyNeighbours[i])
	}
	mesh, err := navmesh.New(vertices, polygons)
	if err != nil {
		panic(err) // fixture data is fixed at compile time; a build failure is a bug here
	}
	return mesh
}

// UGrid builds a 3x2 "U"-shaped grid of five unit polygons: a bottom row
// of three cells and two upward columns at the ends, with the middle-top
// cell missing.
//
//	8───9   10──11
//	│ 3 │   │ 4 │
//	4───5───6───7
//	│ 0 │ 1 │ 2 │
//	0───1───2───3
func UGrid() *navmesh.Mesh {
	const np = navmesh.NoPolygon
	positions := []geom.Point{
		pt(0, 0), pt(1, 0), pt(2, 0), pt(3, 0),
		pt(0, 1), pt(1, 1), pt(2, 1), pt(3, 1),
		pt(0, 2), pt(1, 2), pt(2, 2), pt(3, 2),
	}
	incident := [][]int{
		{0, np},
		{0, 1, np},
		{1, 2, np},
		{2, np},
		{3, 0, np},
		{3, 1, 0, np},
		{4, 2, 1, np},
		{4, 2, np},
		{3, np},
		{3, np},
		{4, np},
		{4, np},
	}
	polyVerts := [][]int{
		{0, 1, 5, 4},
		{1, 2, 6, 5},
		{2, 3, 7, 6},
		{4, 5, 9, 8},
		{6, 7, 11, 10},
	}
	polyNeighbours := [][]int{
		{np, 1, 3, np},
		{np, 2, np, 0},
		{np, np, 4, 1},
		{0, np, np, np},
		{2, np, np, np},
	}
	return build(positions, incident, polyVerts, polyNeighbours)
}

// PaperMesh builds a 23-vertex mesh with several concave obstacles, the
// same shape used by the any-angle pathfinding literature's own worked
// examples and reference test suites.
func PaperMesh() *navmesh.Mesh {
	const np = navmesh.NoPolygon
	positions := []geom.Point{
		pt(0, 6), pt(2, 5), pt(5, 7), pt(5, 8), pt(0, 8),
		pt(1, 4), pt(2, 1), pt(4, 1), pt(4, 2), pt(2, 4),
		pt(7, 4), pt(10, 7), pt(7, 7), pt(11, 8), pt(7, 8),
		pt(7, 0), pt(11, 3), pt(11, 5), pt(12, 0), pt(12, 3),
		pt(13, 5), pt(13, 7), pt(1, 3),
	}
	incident := [][]int{
		{0, np},           // 0
		{0, np, 2},        // 1
		{0, 2, np},        // 2
		{0, np},           // 3
		{0, np},           // 4
		{1, np},           // 5
		{1, np},           // 6
		{1, np},           // 7
		{1, np, 2},        // 8
		{1, 2, np},        // 9
		{2, np, 4},        // 10
		{2, 4, 6, np, 3},  // 11
		{2, 3, np},        // 12
		{3, np},           // 13
		{3, np},           // 14
		{5, 4, np},        // 15
		{4, 5, np},        // 16
		{4, np, 6},        // 17
		{5, np},           // 18
		{5, np},           // 19
		{6, np},           // 20
		{6, np},           // 21
		{1, np},           // 22
	}
	polyVerts := [][]int{
		{0, 1, 2, 3, 4},
		{5, 22, 6, 7, 8, 9},
		{1, 9, 8, 10, 11, 12, 2},
		{12, 11, 13, 14},
		{10, 15, 16, 17, 11},
		{15, 18, 19, 16},
		{11, 17, 20, 21},
	}
	polyNeighbours := [][]int{
		{np, np, 2, np, np},
		{np, np, np, np, 2, np},
		{np, 1, np, 4, 3, np, 0},
		{2, np, np, np},
		{np, 5, np, 6, 2},
		{np, np, np, 4},
		{4, np, np, np},
	}
	return build(positions, incident, polyVerts, polyNeighbours)
}

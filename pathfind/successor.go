package pathfind

import (
	"github.com/katalvlaran/polyanya/geom"
	"github.com/katalvlaran/polyanya/navmesh"
)

// Successors clips node's destination polygon's far-side edges against the
// two rays of node's funnel (root->I[0] and root->I[1]) and returns the
// resulting sub-intervals, each tagged with the edge it came from and
// whether it is directly observable from root or rounds one of I's
// endpoints.
//
// It visits exactly the polygon's edges other than the entry edge
// (node.IIndex itself), walking from the right endpoint to the left
// endpoint as seen from root, and is a pure function of mesh and node: it
// reads the mesh but performs no pruning, cost accounting, or queue
// mutation, all of which belong to the search driver in driver.go.
func Successors(mesh *navmesh.Mesh, node *SearchNode) []Successor {
	polygon := mesh.Polygons[node.PolygonTo]

	rightIndex := 0
	for polygon.Vertices[rightIndex] != node.IIndex[1] {
		rightIndex++
	}
	rightIndex++
	leftIndex := len(polygon.Vertices) + rightIndex - 2

	window := mesh.DoubleEdges(node.PolygonTo)[rightIndex : leftIndex+1]

	successors := make([]Successor, 0, len(window)+1)
	kind := RightNonObservable

	for _, edge := range window {
		origStart := mesh.Vertices[edge[0]].Position
		origEnd := mesh.Vertices[edge[1]].Position
		cursor := origStart

		switch geom.SideOf(origStart, node.Root, node.I[0]) {
		case geom.Right:
			if intersect, ok := geom.IntersectLineSegment(geom.Edge{node.Root, node.I[0]}, geom.Edge{origStart, origEnd}); ok {
				if geom.Distance(intersect, origStart) > geom.SplitEpsilon && geom.Distance(intersect, origEnd) > geom.SplitEpsilon {
					successors = append(successors, Successor{Interval: geom.Edge{cursor, intersect}, EdgeIndex: edge, Kind: kind})
					cursor = intersect
				}
				if geom.Distance(intersect, origEnd) > geom.SplitEpsilon {
					kind = Observable
				}
			}
		case geom.Left:
			if kind == RightNonObservable {
				kind = Observable
			}
		case geom.OnLine:
			if s := geom.SideOf(origEnd, node.Root, node.I[0]); s == geom.OnLine || s == geom.Left {
				kind = Observable
			}
		}

		var endIntersection *geom.Point
		foundIntersection := false
		if geom.SideOf(origEnd, node.Root, node.I[1]) == geom.Left {
			if intersect, ok := geom.IntersectLineSegment(geom.Edge{node.Root, node.I[1]}, geom.Edge{origStart, origEnd}); ok {
				if geom.Distance(intersect, origEnd) > geom.SplitEpsilon {
					ip := intersect
					endIntersection = &ip
				}
				foundIntersection = true
			}
		}

		endPoint := origEnd
		if endIntersection != nil {
			endPoint = *endIntersection
		}
		successors = append(successors, Successor{Interval: geom.Edge{cursor, endPoint}, EdgeIndex: edge, Kind: kind})

		switch geom.SideOf(origEnd, node.Root, node.I[1]) {
		case geom.Left:
			if foundIntersection {
				kind = LeftNonObservable
			}
			if endIntersection != nil {
				successors = append(successors, Successor{Interval: geom.Edge{*endIntersection, origEnd}, EdgeIndex: edge, Kind: kind})
			}
		case geom.OnLine:
			if s := geom.SideOf(origEnd, node.Root, node.I[0]); s == geom.OnLine || s == geom.Left {
				kind = LeftNonObservable
			}
		}
	}
	return successors
}

package pathfind

import "github.com/katalvlaran/polyanya/geom"

// Path is the result of a Query: the shortest length found and the ordered
// turning points of the taut path that achieves it, not including the query
// start but including the query goal as its final element.
//
// A Length of -1 with a nil Turns means no path exists between the two
// query points, whether because either point lies outside the mesh or
// because the mesh has no connected route between their polygons. Query
// also returns it when its context is cancelled before a path is found.
type Path struct {
	Length float64
	Turns  []geom.Point
}

// Unreachable is the sentinel Path value Query returns when the goal cannot
// be reached.
var Unreachable = Path{Length: -1}

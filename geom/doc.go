// Package geom provides the pure geometric predicates the navmesh search
// builds on: side-of-line classification, segment containment, reflection
// across a line, line/segment intersection, and the admissible lower-bound
// heuristic used to rank search nodes.
//
// Every function here is a pure, allocation-free computation on
// gonum.org/v1/gonum/spatial/r2.Vec points; nothing in this package knows
// about meshes, polygons, or search state.
package geom

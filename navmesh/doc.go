// Package navmesh holds the immutable data model for a planar navigation
// mesh: a partition of a 2D region into convex polygons whose edges are
// either obstacle boundaries or shared with exactly one adjacent polygon.
//
// A Mesh is built once (by New, or by a loader such as meshfile) and never
// mutated afterwards; every vertex and polygon is addressed by integer
// index, never by pointer, so the model has no ownership cycles and can be
// shared read-only across concurrent queries.
package navmesh

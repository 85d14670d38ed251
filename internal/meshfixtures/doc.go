// Package meshfixtures builds the two canonical test meshes used across
// this module's test suites: a 3x2 "U"-shaped grid of five unit polygons,
// and a 23-vertex mesh from the any-angle pathfinding literature's own
// worked examples. Keeping them here, rather than duplicating the
// vertex/polygon literals in every _test.go file, lets every package's
// tests build each mesh once and share it across test functions.
package meshfixtures

// Package meshfile loads a navmesh.Mesh from a line-based text format: a
// two-line header, a vertex/polygon count line, then that many vertex
// lines and polygon lines. LoadWithMetadata additionally reads an optional
// YAML sidecar carrying non-geometric mesh metadata the positional format
// has no room for.
package meshfile

package navmesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polyanya/internal/meshfixtures"
	"github.com/katalvlaran/polyanya/navmesh"
)

func TestEdges(t *testing.T) {
	mesh := meshfixtures.UGrid()
	edges := mesh.Edges(0)
	assert.Equal(t, [][2]int{{0, 1}, {1, 5}, {5, 4}, {4, 0}}, edges)
}

func TestDoubleEdges(t *testing.T) {
	mesh := meshfixtures.UGrid()
	single := mesh.Edges(0)
	double := mesh.DoubleEdges(0)
	assert.Len(t, double, 2*len(single))
	assert.Equal(t, single, double[:len(single)])
	assert.Equal(t, single, double[len(single):])
}

func TestNeighbour(t *testing.T) {
	mesh := meshfixtures.UGrid()
	// edge (1,5) borders polygon 1 on the other side of polygon 0.
	assert.Equal(t, 1, mesh.Neighbour(1, 5, 0))
	// edge (0,1) is an obstacle boundary.
	assert.Equal(t, navmesh.NoPolygon, mesh.Neighbour(0, 1, 0))
}

func TestOneWay(t *testing.T) {
	mesh := meshfixtures.UGrid()
	// Polygon 3 (top-left column) only borders polygon 0: one-way.
	assert.True(t, mesh.Polygons[3].OneWay)
	// Polygon 1 (bottom-middle) borders both 0 and 2: not one-way.
	assert.False(t, mesh.Polygons[1].OneWay)
}

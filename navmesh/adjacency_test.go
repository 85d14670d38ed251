package navmesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polyanya/internal/meshfixtures"
)

func TestAdjacencyGraph(t *testing.T) {
	mesh := meshfixtures.UGrid()
	adjacency := mesh.AdjacencyGraph()
	assert.ElementsMatch(t, []int{1, 3}, adjacency[0])
	assert.ElementsMatch(t, []int{0, 2}, adjacency[1])
}

func TestReachable(t *testing.T) {
	mesh := meshfixtures.UGrid()
	assert.True(t, mesh.Reachable(0, 4))
	assert.True(t, mesh.Reachable(3, 4))
	assert.True(t, mesh.Reachable(0, 0))
}

package pathfind_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyanya/geom"
	"github.com/katalvlaran/polyanya/internal/meshfixtures"
	"github.com/katalvlaran/polyanya/pathfind"
)

func TestQuery_SamePolygon(t *testing.T) {
	mesh := meshfixtures.UGrid()
	from := geom.Point{X: 0.2, Y: 0.2}
	to := geom.Point{X: 0.8, Y: 0.8}

	result := pathfind.Query(context.Background(), mesh, from, to)

	assert.InDelta(t, geom.Distance(from, to), result.Length, 1e-9)
	require.Len(t, result.Turns, 1)
	assert.Equal(t, to, result.Turns[0])
}

func TestQuery_GoalOutsideMesh(t *testing.T) {
	mesh := meshfixtures.UGrid()
	from := geom.Point{X: 0.5, Y: 0.5}
	to := geom.Point{X: 1.5, Y: 1.5} // the missing middle-top cell

	result := pathfind.Query(context.Background(), mesh, from, to)

	assert.Equal(t, pathfind.Unreachable, result)
}

func TestQuery_StartOutsideMesh(t *testing.T) {
	mesh := meshfixtures.UGrid()
	from := geom.Point{X: 1.5, Y: 1.5}
	to := geom.Point{X: 0.5, Y: 0.5}

	result := pathfind.Query(context.Background(), mesh, from, to)

	assert.Equal(t, pathfind.Unreachable, result)
}

// The bottom row of the U-grid (polygons 0, 1, 2) is a straight, unobstructed
// corridor, so a query crossing all three cells should find the direct
// straight-line path with no intermediate turns.
func TestQuery_StraightAcrossBottomRow(t *testing.T) {
	mesh := meshfixtures.UGrid()
	from := geom.Point{X: 0.5, Y: 0.5}
	to := geom.Point{X: 2.5, Y: 0.5}

	result := pathfind.Query(context.Background(), mesh, from, to)

	assert.InDelta(t, 2.0, result.Length, 1e-6)
	require.Len(t, result.Turns, 1)
	assert.Equal(t, to, result.Turns[0])
}

// A query from the top-left column to the top-right column has to leave
// through the bottom row, so no path can be shorter than the straight line
// between the endpoints: the reported length must never be less than the
// Euclidean distance.
func TestQuery_LengthNeverBelowStraightLine(t *testing.T) {
	mesh := meshfixtures.UGrid()
	from := geom.Point{X: 0.2, Y: 1.9}
	to := geom.Point{X: 2.9, Y: 1.9}

	result := pathfind.Query(context.Background(), mesh, from, to)

	if result.Length >= 0 {
		assert.GreaterOrEqual(t, result.Length, geom.Distance(from, to)-1e-6)
	}
}

func TestQuery_PaperMesh_FindsAPath(t *testing.T) {
	mesh := meshfixtures.PaperMesh()
	from := geom.Point{X: 1, Y: 6}
	to := geom.Point{X: 10, Y: 2}

	result := pathfind.Query(context.Background(), mesh, from, to)

	require.GreaterOrEqual(t, result.Length, 0.0)
	require.NotEmpty(t, result.Turns)
	assert.Equal(t, to, result.Turns[len(result.Turns)-1])
	assert.GreaterOrEqual(t, result.Length, geom.Distance(from, to)-1e-6)
}

func TestQuery_RespectsCancelledContext(t *testing.T) {
	mesh := meshfixtures.UGrid()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := pathfind.Query(ctx, mesh, geom.Point{X: 0.5, Y: 0.5}, geom.Point{X: 2.5, Y: 0.5})

	assert.Equal(t, pathfind.Unreachable, result)
}

package meshfile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyanya/geom"
	"github.com/katalvlaran/polyanya/meshfile"
	"github.com/katalvlaran/polyanya/navmesh"
)

// A minimal single-triangle-pair mesh: two unit triangles sharing a
// diagonal, the smallest shape with one traversable edge.
const twoTriangles = `mesh
2
4 2
0 0 3 0 1 -1
1 0 2 0 -1
1 1 3 0 1 -1
0 1 2 1 -1
3 0 1 2 -1 -1 1
3 0 2 3 0 -1 -1
`

func TestLoad_TwoTriangles(t *testing.T) {
	mesh, err := meshfile.Load(strings.NewReader(twoTriangles))
	require.NoError(t, err)

	require.Len(t, mesh.Vertices, 4)
	require.Len(t, mesh.Polygons, 2)
	assert.Equal(t, geom.Point{X: 0, Y: 0}, mesh.Vertices[0].Position)
	assert.Equal(t, []int{0, 1, 2}, mesh.Polygons[0].Vertices)
	assert.Equal(t, navmesh.NoPolygon, mesh.Neighbour(0, 1, 0))
	assert.Equal(t, 1, mesh.Neighbour(2, 0, 0))
}

func TestLoad_MalformedHeader(t *testing.T) {
	_, err := meshfile.Load(strings.NewReader("mesh\n2\nnot-a-number 2\n"))
	assert.ErrorIs(t, err, meshfile.ErrMalformedHeader)
}

func TestLoad_TruncatedVertex(t *testing.T) {
	_, err := meshfile.Load(strings.NewReader("mesh\n2\n1 0\n0\n"))
	assert.Error(t, err)
}

func TestLoadWithMetadata_NoSidecar(t *testing.T) {
	mesh, meta, err := meshfile.LoadWithMetadata(strings.NewReader(twoTriangles), nil)
	require.NoError(t, err)
	assert.NotNil(t, mesh)
	assert.Equal(t, meshfile.Metadata{}, meta)
}

func TestLoadWithMetadata_WithSidecar(t *testing.T) {
	sidecar := "name: two-triangles\nunits: meters\nsource: synthetic\n"
	mesh, meta, err := meshfile.LoadWithMetadata(strings.NewReader(twoTriangles), strings.NewReader(sidecar))
	require.NoError(t, err)
	assert.NotNil(t, mesh)
	assert.Equal(t, "two-triangles", meta.Name)
	assert.Equal(t, "meters", meta.Units)
}

package meshfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/polyanya/geom"
	"github.com/katalvlaran/polyanya/navmesh"
)

// Sentinel errors for the text mesh format.
var (
	ErrMalformedHeader  = errors.New("meshfile: malformed vertex/polygon count line")
	ErrMalformedVertex  = errors.New("meshfile: malformed vertex line")
	ErrMalformedPolygon = errors.New("meshfile: malformed polygon line")
	ErrUnexpectedLine   = errors.New("meshfile: unexpected line after polygon count satisfied")
)

// Load reads a navmesh.Mesh from r in the line-based text format:
//
//	mesh
//	2
//	<vertex count> <polygon count>
//	<x> <y> <incident count> <incident polygon>...   (one line per vertex)
//	<n> <vertex index>{n} <neighbour polygon>{n}      (one line per polygon)
//
// The first two header lines are fixed literals and are skipped; they exist
// only as a format/version marker carried over from the source this was
// ported from. Vertex coordinates are non-negative integers in the file
// regardless of the floating-point type used internally.
func Load(r io.Reader) (*navmesh.Mesh, error) {
	scanner := bufio.NewScanner(r)

	phase := 0
	var nbVertices, nbPolygons int
	var vertices []navmesh.Vertex
	var polygons []navmesh.Polygon

	for scanner.Scan() {
		line := scanner.Text()

		if phase == 0 {
			if line == "mesh" || line == "2" {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) != 2 {
				return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
			}
			var err error
			if nbVertices, err = strconv.Atoi(fields[0]); err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
			}
			if nbPolygons, err = strconv.Atoi(fields[1]); err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
			}
			vertices = make([]navmesh.Vertex, 0, nbVertices)
			polygons = make([]navmesh.Polygon, 0, nbPolygons)
			phase = 1
			continue
		}

		if phase == 1 {
			if nbVertices > 0 {
				nbVertices--
				v, err := parseVertexLine(line)
				if err != nil {
					return nil, err
				}
				vertices = append(vertices, v)
			} else {
				phase = 2
			}
		}

		if phase == 2 {
			if nbPolygons > 0 {
				nbPolygons--
				p, err := parsePolygonLine(line)
				if err != nil {
					return nil, err
				}
				polygons = append(polygons, p)
			} else {
				return nil, fmt.Errorf("%w: %q", ErrUnexpectedLine, line)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return navmesh.New(vertices, polygons)
}

func parseVertexLine(line string) (navmesh.Vertex, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return navmesh.Vertex{}, fmt.Errorf("%w: %q", ErrMalformedVertex, line)
	}
	x, errX := strconv.Atoi(fields[0])
	y, errY := strconv.Atoi(fields[1])
	if errX != nil || errY != nil {
		return navmesh.Vertex{}, fmt.Errorf("%w: %q", ErrMalformedVertex, line)
	}
	incident := make([]int, 0, len(fields)-3)
	for _, f := range fields[3:] {
		p, err := strconv.Atoi(f)
		if err != nil {
			return navmesh.Vertex{}, fmt.Errorf("%w: %q", ErrMalformedVertex, line)
		}
		incident = append(incident, p)
	}
	return navmesh.NewVertex(geom.Point{X: float64(x), Y: float64(y)}, incident), nil
}

func parsePolygonLine(line string) (navmesh.Polygon, error) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return navmesh.Polygon{}, fmt.Errorf("%w: %q", ErrMalformedPolygon, line)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || len(fields) != 1+2*n {
		return navmesh.Polygon{}, fmt.Errorf("%w: %q", ErrMalformedPolygon, line)
	}
	ints := make([]int, 2*n)
	for i, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return navmesh.Polygon{}, fmt.Errorf("%w: %q", ErrMalformedPolygon, line)
		}
		ints[i] = v
	}
	return navmesh.NewPolygon(ints[:n], ints[n:]), nil
}

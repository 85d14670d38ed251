package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polyanya/geom"
)

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

func TestSideOf(t *testing.T) {
	cases := []struct {
		name     string
		p, a, b  geom.Point
		expected geom.Side
	}{
		{"left of horizontal", pt(0, 0.5), pt(0, 0), pt(1, 0), geom.Left},
		{"right of horizontal", pt(0, -0.5), pt(0, 0), pt(1, 0), geom.Right},
		{"right of diagonal", pt(1, 0), pt(0, 0), pt(1, 1), geom.Right},
		{"left of diagonal", pt(0, 1), pt(0, 0), pt(1, 1), geom.Left},
		{"on diagonal beyond b", pt(2, 2), pt(0, 0), pt(1, 1), geom.OnLine},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, geom.SideOf(tc.p, tc.a, tc.b))
		})
	}
}

func TestOnSegment(t *testing.T) {
	a, b := pt(0, 0), pt(2, 0)
	assert.True(t, geom.OnSegment(pt(1, 0), a, b))
	assert.False(t, geom.OnSegment(pt(3, 0), a, b), "beyond b's bounding box")
	assert.False(t, geom.OnSegment(pt(1, 1), a, b), "off the line")
}

func TestReflect(t *testing.T) {
	assert.Equal(t, pt(-1, 0), geom.Reflect(pt(1, 0), pt(0, 0), pt(0, 1)))
	assert.Equal(t, pt(1, 0), geom.Reflect(pt(-1, 0), pt(0, 0), pt(0, 1)))
}

func TestIntersectLineSegment(t *testing.T) {
	got, ok := geom.IntersectLineSegment(
		geom.Edge{pt(0, 0.5), pt(0.5, 0.5)},
		geom.Edge{pt(1, 0), pt(1, 1)},
	)
	assert.True(t, ok)
	assert.Equal(t, pt(1, 0.5), got)

	_, ok = geom.IntersectLineSegment(
		geom.Edge{pt(0, 0), pt(0.5, 0.8)},
		geom.Edge{pt(1, 0), pt(1, 0.2)},
	)
	assert.False(t, ok, "segment ends before reaching the line")

	_, ok = geom.IntersectLineSegment(
		geom.Edge{pt(0, 0.5), pt(0.5, 0.5)},
		geom.Edge{pt(-1, 0.5), pt(1, 0.5)},
	)
	assert.False(t, ok, "collinear segment has no well-defined intersection parameter")
}

func TestHeuristic(t *testing.T) {
	i := geom.Edge{pt(1, 0), pt(0, 1)}
	assert.InDelta(t, math.Sqrt2, geom.Heuristic(pt(0, 0), pt(1, 1), i), 1e-9)
	assert.InDelta(t, 1+math.Sqrt2, geom.Heuristic(pt(0, 0), pt(2, -1), i), 1e-9)
	assert.InDelta(t, 1+math.Sqrt2, geom.Heuristic(pt(0, 0), pt(-1, 2), i), 1e-9)
	assert.InDelta(t, 2, geom.Heuristic(pt(0, 0), pt(1, -1), i), 1e-9)
}

func TestTurningPoint(t *testing.T) {
	i := geom.Edge{pt(1, 0), pt(0, 1)}
	// Goal directly visible through the funnel: no turn.
	_, ok := geom.TurningPoint(pt(0, 0), pt(0.4, 0.4), i)
	assert.False(t, ok)

	// Root sits exactly on the right endpoint: degenerate, never turns.
	_, ok = geom.TurningPoint(pt(1, 0), pt(5, 5), i)
	assert.False(t, ok)
}

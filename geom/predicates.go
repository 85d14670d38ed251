package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// SideOf classifies point p against the directed edge a→b using the sign of
// the 2D cross product of b-a and p-a, equivalent to the cross-product
// convention
//
//	(p.y-a.y)*(b.x-a.x) - (p.x-a.x)*(b.y-a.y)
//
// Values with absolute magnitude below SideEpsilon are reported as OnLine;
// negative values are Right, positive values are Left.
func SideOf(p, a, b Point) Side {
	cross := b.Sub(a).Cross(p.Sub(a))
	switch {
	case math.Abs(cross) < SideEpsilon:
		return OnLine
	case cross < 0:
		return Right
	default:
		return Left
	}
}

// Side is a convenience wrapper over SideOf taking an Edge.
func (e Edge) Side(p Point) Side {
	return SideOf(p, e[0], e[1])
}

// OnSegment reports whether p lies within the axis-aligned bounding box of
// segment a-b and on the line through a and b.
func OnSegment(p, a, b Point) bool {
	if p.X < math.Min(a.X, b.X) || p.X > math.Max(a.X, b.X) {
		return false
	}
	if p.Y < math.Min(a.Y, b.Y) || p.Y > math.Max(a.Y, b.Y) {
		return false
	}
	return SideOf(p, a, b) == OnLine
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return r2.Norm(p.Sub(q))
}

// Reflect mirrors p across the line through a and b using the closed-form
// Householder reflection
//
//	(1/(dx²+dy²)) * [[dx²-dy², 2dxdy], [2dxdy, -(dx²-dy²)]]
//
// applied to (p-a), then translated back by a.
func Reflect(p, a, b Point) Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	denom := dx*dx + dy*dy
	alpha := (dx*dx - dy*dy) / denom
	beta := 2 * dx * dy / denom

	px := p.X - a.X
	py := p.Y - a.Y

	return Point{
		X: alpha*px + beta*py + a.X,
		Y: beta*px - alpha*py + a.Y,
	}
}

// IntersectLineSegment intersects the infinite line through line[0],line[1]
// with the closed segment seg[0]-seg[1]. The segment is parameterised as
// seg[0] + u*(seg[1]-seg[0]); the intersection is returned iff u lies in
// [0,1] and is finite (rules out parallel/collinear lines, which produce a
// NaN or infinite u).
func IntersectLineSegment(line, seg Edge) (Point, bool) {
	l0, l1 := line[0], line[1]
	s0, s1 := seg[0], seg[1]

	l01 := l0.Sub(l1)
	num := l0.Sub(s0).Cross(l01)
	den := l01.Cross(s0.Sub(s1))
	u := num / den

	if math.IsNaN(u) || math.IsInf(u, 0) || u < 0 || u > 1 {
		return Point{}, false
	}

	return Point{
		X: s0.X + u*(s1.X-s0.X),
		Y: s0.Y + u*(s1.Y-s0.Y),
	}, true
}

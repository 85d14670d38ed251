package geom

import "gonum.org/v1/gonum/spatial/r2"

// Point is a 2D coordinate. It is a direct alias of r2.Vec so that every
// package in this module shares one vector algebra (Add, Sub, Scale, Dot,
// Cross, Norm) instead of re-deriving it.
type Point = r2.Vec

// Edge is an oriented pair of points a→b, e.g. a mesh edge or a funnel ray.
type Edge [2]Point

// Tolerances used throughout the predicates below. Mesh coordinates are
// integral at input, so these are deliberately coarse relative to
// round-off error and fine relative to geometric feature size.
const (
	// SideEpsilon is the absolute cross-product magnitude below which a
	// point is considered to lie exactly on a line.
	SideEpsilon = 1e-2

	// SplitEpsilon is the distance below which an intersection point is
	// treated as coincident with a segment endpoint (degenerate split).
	SplitEpsilon = 1e-3

	// RootEpsilon is the distance below which two points are treated as
	// the same funnel root/apex.
	RootEpsilon = 1e-5

	// RootDiscretisation is the factor roots are scaled by, then
	// truncated, for root-history deduplication.
	RootDiscretisation = 1e4
)

// Side classifies a point relative to a directed line.
type Side int

const (
	// Right is the clockwise side of a directed line a→b.
	Right Side = iota
	// Left is the counter-clockwise side of a directed line a→b.
	Left
	// OnLine means the point lies on the line within SideEpsilon.
	OnLine
)

func (s Side) String() string {
	switch s {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case OnLine:
		return "OnLine"
	default:
		return "Side(?)"
	}
}

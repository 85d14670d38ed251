package geom

// effectiveGoal mirrors goal across edge i whenever the root and goal lie
// on the same side of i. An any-angle path that must cross i can "see" the
// mirror image exactly as far as it can see the real goal on the far side,
// so working with the mirrored point keeps the subsequent straight-line
// distance an admissible (never-overestimating) bound.
func effectiveGoal(root, goal Point, i Edge) Point {
	if SideOf(root, i[0], i[1]) == SideOf(goal, i[0], i[1]) {
		return Reflect(goal, i[0], i[1])
	}
	return goal
}

// Heuristic computes an admissible lower bound on the remaining distance
// from root to goal through edge interval i=[right,left]. Any shortest path
// that must pass through i either crosses it directly or rounds one of its
// endpoints, so the bound is the straight-line distance to the (possibly
// mirrored) goal, clamped to go via i's nearer endpoint when the direct
// line would cross i outside its span.
func Heuristic(root, goal Point, i Edge) float64 {
	to := effectiveGoal(root, goal, i)

	if root == i[0] || root == i[1] {
		return Distance(root, to)
	}

	a, b := i[0], i[1]
	lroot := root.Sub(a)
	lgoal := to.Sub(a)
	rootgoal := to.Sub(root)
	lr := b.Sub(a)

	lrNum := lgoal.Cross(lroot)
	denom := rootgoal.Cross(lr)
	t := lrNum / denom

	switch {
	case t < 0:
		return Distance(root, a) + Distance(a, to)
	case t > 1:
		return Distance(root, b) + Distance(b, to)
	default:
		return Distance(root, to)
	}
}

// TurningPoint determines whether the final leg of a path from root to goal
// through interval i must round one of i's endpoints. It returns the
// endpoint to turn on, or false if goal is directly visible from root.
func TurningPoint(root, goal Point, i Edge) (Point, bool) {
	to := effectiveGoal(root, goal, i)

	if root == i[0] {
		return Point{}, false
	}
	if SideOf(to, root, i[0]) == Right {
		return i[0], true
	}
	if SideOf(to, root, i[1]) == Left {
		return i[1], true
	}
	return Point{}, false
}

package pathfind

// searchQueue is a container/heap min-heap of *SearchNode ordered by
// Priority ascending, in the same Len/Less/Swap/Push/Pop shape the mesh
// package's reachability pre-check uses. Ties break on seq, the insertion
// order, so that repeated runs over the same mesh always expand
// equal-priority nodes in the same order.
type searchQueue []*SearchNode

func (q searchQueue) Len() int { return len(q) }
func (q searchQueue) Less(i, j int) bool {
	if q[i].Priority() != q[j].Priority() {
		return q[i].Priority() < q[j].Priority()
	}
	return q[i].seq < q[j].seq
}
func (q searchQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *searchQueue) Push(x interface{}) { *q = append(*q, x.(*SearchNode)) }
func (q *searchQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

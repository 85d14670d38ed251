// Package pathfind implements the any-angle shortest-path search over a
// navmesh.Mesh: a best-first (A*-style) expansion of "search nodes", each
// describing the shortest known funnel from a root point through an edge
// interval into the next polygon.
//
// The three moving parts are:
//
//   - SearchNode, the funnel value: root, interval, source/destination
//     polygon, accumulated cost f, admissible remaining-distance bound g.
//   - Successors, the pure generator that clips a node's destination
//     polygon's far-side edges against the funnel's two rays and classifies
//     each resulting sub-interval as observable or non-observable.
//   - Query, the search driver: a priority queue ordered by f+g, a root
//     history table for dominance pruning, cul-de-sac/dead-end pruning, and
//     an intermediate-chain fast path that collapses deterministic runs of
//     single successors without round-tripping through the queue.
//
// Everything here is synchronous and query-scoped: a Query call owns its
// queue, its node buffer, and its root-history table outright, and none of
// it survives the call. A *navmesh.Mesh may be shared read-only across any
// number of concurrent Query calls.
package pathfind

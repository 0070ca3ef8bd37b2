// Package citymap builds the immutable road map of a tree-shaped country
// and answers path queries over it.
//
// What:
//
//   - Build(parents, attractiveness): turns the parent-link encoding
//     (C[i]==i marks "no extra edge", any other C[i] adds the undirected
//     road i—C[i]) into a node table with adjacency lists, validates that
//     the roads form a spanning tree and records the maximum tier, i.e.
//     every city sharing the globally highest attractiveness.
//   - PathFinder.Path(a, b): returns the unique simple path a … b using an
//     explicit-stack depth-first search with an epoch-stamped visited
//     marker, so repeated queries do not reallocate.
//
// Why:
//
//   - The trip search repeatedly needs "which cities lie between a and b";
//     in a tree the first path found is the only one.
//   - An explicit stack keeps deep, skewed trees (long straight roads)
//     away from recursion limits.
//
// Concurrency:
//
//   - *Map is read-only after Build and may be shared by any number of
//     goroutines.
//   - *PathFinder owns mutable scratch buffers; use one per goroutine.
//
// Complexity:
//
//   - Build:  Time O(N·α(N)), Memory O(N).
//   - Path:   Time O(N) worst case, Memory O(N) scratch reused across calls.
//
// Errors:
//
//   - ErrEmptyMap           no cities.
//   - ErrLengthMismatch     len(parents) != len(attractiveness).
//   - ErrParentOutOfRange   a parent link points outside [0, N).
//   - ErrNotTree            repeated road, cycle, or disconnected cities.
//   - ErrDisconnected       (panic payload) Path found no route; only
//     reachable when the tree invariant was bypassed.
package citymap

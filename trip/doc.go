// Package trip finds the largest valid trip plan on a tree of cities.
//
// A trip plan is a set of at most K cities that is
//
//   - closed: including a city forces every city with strictly greater
//     attractiveness, and
//   - connected: the road between any two planned cities is planned too,
//     which may pull in new, less attractive cities and re-trigger closure.
//
// Solve(K, parents, attractiveness) returns the size of the largest such
// plan. The search walks the attractiveness tiers from the top down:
//
//   - tryTier tries every city of a tier as the next addition, keeps the best
//     result and stops the moment a branch reaches exactly K;
//   - tryCity clones the plan and pool, adds the city, pulls in every more
//     attractive city, then resolves roads to a fixed point, re-applying
//     closure after each merged road;
//   - advance stops at K, stops when nothing is left, or hands the next tier
//     to tryTier.
//
// A branch that cannot stay within K reports "infeasible" as an explicit
// (0, false) outcome, never as the size 0.
//
// Complexity:
//
//   - Exponential in the worst case; pruning on size > K is the only
//     shortcut. Memory per recursion level is one plan/pool clone.
//
// Options:
//
//   - WithContext(ctx)     cancellation, checked every 1024 branches.
//   - WithLogger(l)        slog debug output; discarded by default.
//   - WithParallelism(n)   fan the top tier out over n goroutines.
//   - WithStats(s)         receive branch/path/prune counters.
//
// Errors:
//
//   - ErrBadK              K < 1.
//   - citymap.Err*         invalid tree input (wrapped).
//   - context errors       when the WithContext context is done.
package trip

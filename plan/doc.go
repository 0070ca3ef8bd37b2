// Package plan holds the two pieces of working state the trip search copies
// at every branch point:
//
//   - Pool: the cities not yet in the plan, ordered by attractiveness, with
//     TopTier (peek the highest tier), PopGreater (remove everything strictly
//     above a threshold), Remove/Insert and a cheap Clone.
//   - Set:  the committed cities, a symmetric cache of pairs already known to
//     be connected inside the plan, and the plan's Min/Max attractiveness.
//
// Both are backed by roaring bitmaps over stable integer ids, so Clone is a
// compressed-bitmap copy and sibling branches never alias each other.
// Neither type is safe for concurrent mutation; clone before handing one to
// another goroutine.
package plan

// Package treetrip finds, for a tree-shaped country of cities, the largest
// trip plan of at most K cities that is connected by roads and closed under
// attractiveness: whenever a city is in the plan, every strictly more
// attractive city is in it too.
//
// What is in the module?
//
//	citymap/     — Build the immutable road map from parent links; PathFinder
//	               for the unique a…b road in the tree
//	plan/        — Pool (cities not yet planned, roaring-backed, ordered by
//	               attractiveness) and Set (the plan, with its min/max and a
//	               road cache)
//	trip/        — Solve / SolveMap: closure + backtracking search, options
//	               (context, slog logger, parallel top tier, stats), metrics
//	treegen/     — synthetic straight, star and random countries with
//	               uniform, elevated, sunken or random attractiveness
//	cmd/treetrip — CLI: `solve` a YAML/JSON instance, `gen` synthetic ones
//	examples/    — runnable scenario
//
// Quick example, the seven-city reference map (attractiveness in brackets):
//
//	  3(5)
//	  │
//	  1(2)
//	  │
//	  0(6) ─ 2(7) ─ 4(6) ─ 5(5)
//	                │
//	                6(2)
//
//	res, _ := trip.Solve(5,
//		[]int{1, 3, 0, 3, 2, 4, 4},
//		[]int{6, 2, 7, 5, 6, 5, 2})
//	// res == 4: {2, 0, 4, 5}
//
// Adding city 3 next would need road city 1, whose attractiveness 2 drags
// every remaining city into the plan, so the answer stops at four.
//
//	go get github.com/katalvlaran/treetrip
package treetrip

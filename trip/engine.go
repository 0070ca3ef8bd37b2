// SPDX-License-Identifier: MIT
// Package: treetrip/trip
//
// engine.go — the closure-and-backtracking search.
//
// Outcome convention: every step returns (size, ok). ok == false is the
// "infeasible" outcome (this branch cannot stay within K); size is then
// meaningless. A feasible size may legitimately be small, so the two are
// never folded into one integer.
//
// Invariants:
//   - set and pool passed into a step are never mutated by it, except
//     tryTier's remove/reinsert of the member under trial, which is undone
//     before the next member.
//   - pool ∪ plan == all cities at every step; pool only shrinks along a
//     branch, so the recursion terminates.

package trip

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/katalvlaran/treetrip/citymap"
	"github.com/katalvlaran/treetrip/plan"
)

// ctxCheckEvery is the branch interval between cancellation checks
// (power of two: the check is a mask test).
const ctxCheckEvery = 1024

// errSiblingHit unwinds a parallel branch after another branch reached k.
// It never leaves the package.
var errSiblingHit = errors.New("trip: sibling branch reached k")

// engine holds the state of one sequential search lineage.
type engine struct {
	m     *citymap.Map
	k     int
	paths *citymap.PathFinder
	ctx   context.Context
	hit   *atomic.Bool // shared exact-hit flag of a parallel solve; nil when sequential
	err   error        // first context error or errSiblingHit; unwinds the search
	stats Stats
}

func newEngine(ctx context.Context, m *citymap.Map, k int) *engine {
	return &engine{m: m, k: k, paths: citymap.NewPathFinder(m), ctx: ctx}
}

// cancelled performs the sparse context check.
func (e *engine) cancelled() bool {
	if e.err != nil {
		return true
	}
	// only every ctxCheckEvery-th branch pays for the channel poll
	if e.stats.Branches&(ctxCheckEvery-1) != 0 {
		return false
	}
	select {
	case <-e.ctx.Done():
		e.err = e.ctx.Err()
		return true
	default:
		return false
	}
}

// siblingHit reports whether another parallel branch already reached k.
// One atomic load per tier member.
func (e *engine) siblingHit() bool {
	if e.hit == nil || !e.hit.Load() {
		return false
	}
	e.err = errSiblingHit

	return true
}

// tryTier tries every city of a same-attractiveness tier as the next
// addition and returns the best feasible result, or k at the first exact hit.
func (e *engine) tryTier(tier []int, set *plan.Set, pool *plan.Pool) (int, bool) {
	best, found := 0, false
	for _, c := range tier {
		if e.siblingHit() {
			return 0, false
		}

		// c leaves the pool for its own trial and comes back for the next one
		pool.Remove(c)
		size, ok := e.tryCity(c, set, pool)
		pool.Insert(c)
		if e.err != nil {
			return 0, false
		}
		if !ok {
			continue // infeasible: try the next tie
		}
		if size == e.k {
			return e.k, true // exact hit; nothing can beat k
		}
		if !found || size > best {
			best, found = size, true
		}
	}

	return best, found
}

// tryCity proposes adding start to a copy of set and resolves the proposal
// to a closed, connected plan before advancing it.
func (e *engine) tryCity(start int, set *plan.Set, pool *plan.Pool) (int, bool) {
	e.stats.Branches++
	if e.cancelled() {
		return 0, false
	}

	proposed := set.Clone()
	avail := pool.Clone()

	// Closure: everything more attractive than start comes along.
	proposed.Add(start)
	proposed.AddAll(avail.PopGreater(e.m.Attractiveness(start)))
	if proposed.Len() > e.k {
		e.stats.ClosurePrunes++
		return 0, false
	}

	// Connectivity fixed point. Cities introduced by a road can lower the
	// plan minimum, which re-triggers closure; those cities are queued so
	// their roads to start get resolved too.
	working := proposed.Members()
	var c int
	for len(working) > 0 {
		c, working = working[0], working[1:]
		// start itself, or a road already merged by an earlier member
		if c == start || proposed.ContainsPath(start, c) {
			continue
		}

		// 1) Merge the road start … c.
		route := e.paths.Path(start, c)
		e.stats.PathQueries++
		proposed.AddPath(start, c, route)
		if proposed.Len() > e.k {
			// the road alone bursts K: keep the plan we were handed
			e.stats.PathPrunes++
			return set.Len(), true
		}
		avail.RemoveAll(route)

		// 2) Re-apply closure against the (possibly lower) plan minimum.
		closed := avail.PopGreater(proposed.Min())
		proposed.AddAll(closed)
		if proposed.Len() > e.k {
			e.stats.PathPrunes++
			return set.Len(), true
		}

		// 3) Newly closed cities need their own roads to start.
		working = append(working, closed...)
	}

	size := proposed.Len()
	res, ok := e.advance(proposed, avail)
	if !ok {
		// nothing deeper fits; the stable proposal itself is the answer
		// unless the search is unwinding
		return size, e.err == nil
	}

	return res, true
}

// advance is the base/continuation step for a stable plan.
func (e *engine) advance(set *plan.Set, pool *plan.Pool) (int, bool) {
	size := set.Len()
	switch {
	case size > e.k:
		return 0, false
	case size == e.k:
		return e.k, true
	case pool.IsEmpty():
		return size, true
	}

	// descend into the next tier; an infeasible tier leaves set as is
	res, ok := e.tryTier(pool.TopTier(), set, pool)
	if !ok {
		return size, e.err == nil
	}

	return res, true
}

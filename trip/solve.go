// SPDX-License-Identifier: MIT
// Package: treetrip/trip
//
// solve.go — public entry points.
//
// Stages:
//  1. Validate K and build the Map (citymap sentinels are wrapped).
//  2. Seed an empty plan and a full pool.
//  3. tryTier over the global maximum tier, sequentially or fanned out.
//  4. Flush stats/metrics and log the outcome.

package trip

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/treetrip/citymap"
	"github.com/katalvlaran/treetrip/plan"
)

// Solve returns the size of the largest closed, connected trip plan of at
// most k cities on the tree given by parent links and attractiveness.
// The result is deterministic for identical inputs and never exceeds k.
func Solve(k int, parents, attractiveness []int, opts ...Option) (int, error) {
	if k < 1 {
		return 0, fmt.Errorf("trip: Solve: k=%d: %w", k, ErrBadK)
	}
	m, err := citymap.Build(parents, attractiveness)
	if err != nil {
		return 0, fmt.Errorf("trip: Solve: %w", err)
	}

	return SolveMap(m, k, opts...)
}

// SolveMap is Solve on a prebuilt Map. m is only read and may be shared by
// concurrent solves.
func SolveMap(m *citymap.Map, k int, opts ...Option) (int, error) {
	if k < 1 {
		return 0, fmt.Errorf("trip: SolveMap: k=%d: %w", k, ErrBadK)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	o.Logger.Debug("trip solve started",
		"cities", m.Len(), "k", k, "max_tier", len(m.MaxTier()), "parallelism", o.Parallelism)

	began := time.Now()
	var (
		res int
		st  Stats
		err = o.Ctx.Err()
	)
	if err == nil {
		if o.Parallelism > 1 && len(m.MaxTier()) > 1 {
			res, st, err = solveParallel(o.Ctx, m, k, o.Parallelism)
		} else {
			res, st, err = solveSequential(o.Ctx, m, k)
		}
	}
	st.Duration = time.Since(began)

	recordSolve(st, st.Duration, err)
	if o.Stats != nil {
		*o.Stats = st
	}
	if err != nil {
		o.Logger.Debug("trip solve aborted", "error", err, "branches", st.Branches)
		return 0, fmt.Errorf("trip: SolveMap: %w", err)
	}

	o.Logger.Debug("trip solve finished",
		"result", res,
		"branches", st.Branches,
		"path_queries", st.PathQueries,
		"closure_prunes", st.ClosurePrunes,
		"path_prunes", st.PathPrunes,
		"elapsed", st.Duration)

	return res, nil
}

func solveSequential(ctx context.Context, m *citymap.Map, k int) (int, Stats, error) {
	e := newEngine(ctx, m, k)
	res, ok := e.tryTier(m.MaxTier(), plan.NewSet(m), plan.NewPool(m))
	if e.err != nil {
		return 0, e.stats, e.err
	}
	if !ok {
		// Unreachable for k ≥ 1: a lone max-tier city is always a valid plan.
		res = 0
	}

	return res, e.stats, nil
}

// solveParallel runs tryCity for each top-tier city on its own engine.
// Each branch gets a pool without its own city, exactly what the sequential
// tryTier hands it, so the maximum over branches equals the sequential
// result. An exact hit cancels the remaining siblings: queued branches never
// start, running ones stop before their next tier member.
func solveParallel(ctx context.Context, m *citymap.Map, k, workers int) (int, Stats, error) {
	tier := m.MaxTier()
	set := plan.NewSet(m)
	full := plan.NewPool(m)

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(searchCtx)
	g.SetLimit(workers)

	var (
		hit     atomic.Bool
		results = make([]int, len(tier))
		okays   = make([]bool, len(tier))
		stats   = make([]Stats, len(tier))
	)
	for i, c := range tier {
		i, c := i, c
		// Branch inputs are cloned here, on the dispatching goroutine.
		branchSet := set.Clone()
		branchPool := full.Clone()
		branchPool.Remove(c)
		g.Go(func() error {
			if hit.Load() {
				return nil
			}
			// a branch queued behind the limit may start after cancellation
			if err := gctx.Err(); err != nil {
				return err
			}
			e := newEngine(gctx, m, k)
			e.hit = &hit
			results[i], okays[i] = e.tryCity(c, branchSet, branchPool)
			stats[i] = e.stats
			if e.err != nil {
				if hit.Load() {
					return nil
				}
				return e.err
			}
			if okays[i] && results[i] == k {
				hit.Store(true)
				cancel()
			}

			return nil
		})
	}
	err := g.Wait()

	var total Stats
	for i := range stats {
		total.add(stats[i])
	}
	if hit.Load() {
		return k, total, nil
	}
	if err != nil {
		return 0, total, err
	}

	best := 0
	for i := range results {
		if okays[i] && results[i] > best {
			best = results[i]
		}
	}

	return best, total, nil
}

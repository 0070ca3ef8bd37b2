// SPDX-License-Identifier: MIT
// Package: treetrip/trip
//
// options.go — functional options for Solve / SolveMap.
//
// Defaults: background context, discarded logs, sequential exploration and
// no stats sink.
// Option constructors panic on meaningless values; Solve itself never does.

package trip

import (
	"context"
	"io"
	"log/slog"
	"math"
	"time"
)

// Option configures a solve.
type Option func(*Options)

// Options holds the resolved solve configuration.
type Options struct {
	// Ctx cancels a long search; checked every ctxCheckEvery branches.
	Ctx context.Context

	// Logger receives debug records; never nil after DefaultOptions.
	Logger *slog.Logger

	// Parallelism bounds the goroutines used for the top tier.
	// Values ≤ 1 run the search sequentially.
	Parallelism int

	// Stats, if non-nil, is overwritten with the counters of the solve.
	Stats *Stats
}

// Stats reports what a solve did.
type Stats struct {
	// Branches counts tryCity calls.
	Branches int64

	// PathQueries counts road resolutions (PathFinder.Path calls).
	PathQueries int64

	// ClosurePrunes counts proposals rejected because the cities forced by
	// the proposed one already exceed K.
	ClosurePrunes int64

	// PathPrunes counts proposals abandoned while resolving roads.
	PathPrunes int64

	// Duration is the wall time of the solve.
	Duration time.Duration
}

func (s *Stats) add(o Stats) {
	s.Branches += o.Branches
	s.PathQueries += o.PathQueries
	s.ClosurePrunes += o.ClosurePrunes
	s.PathPrunes += o.PathPrunes
}

// DefaultOptions returns Options with:
//   - Background context
//   - a logger that discards everything
//   - sequential search (Parallelism = 1)
//   - no stats sink
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
		Parallelism: 1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("trip: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// WithParallelism explores the members of the top tier on up to n
// goroutines. n ≤ 1 keeps the sequential search. Panics on n < 0.
//
// A branch that reaches exactly k stops its siblings before their next tier
// member; context cancellation is still observed every ctxCheckEvery
// branches per goroutine.
func WithParallelism(n int) Option {
	if n < 0 {
		panic("trip: WithParallelism(n<0)")
	}

	return func(o *Options) { o.Parallelism = n }
}

// WithStats asks Solve to fill s with the counters of the run.
func WithStats(s *Stats) Option {
	return func(o *Options) { o.Stats = s }
}

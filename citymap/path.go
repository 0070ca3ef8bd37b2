// SPDX-License-Identifier: MIT
// Package: treetrip/citymap
//
// path.go — unique simple path between two cities.
//
// Algorithm:
//   - Iterative DFS from a with an explicit stack; parent links record the
//     discovery tree. When b is popped the path is read back b → a and
//     reversed. In a tree the first path found is the only one.
//   - Visited marks are epoch stamps: bumping the epoch invalidates every
//     mark in O(1), so queries reuse the same buffers.
//
// Complexity:
//   - Time O(N) per query worst case, Space O(N) scratch owned by the finder.

package citymap

import "fmt"

// PathFinder answers Path queries on a Map. It keeps reusable scratch
// buffers and is therefore not safe for concurrent use; create one per
// goroutine.
type PathFinder struct {
	m      *Map
	mark   []uint32 // mark[v] == epoch ⇔ v visited in the current query
	epoch  uint32
	parent []int
	stack  []int
}

// NewPathFinder allocates a finder for m.
func NewPathFinder(m *Map) *PathFinder {
	return &PathFinder{
		m:      m,
		mark:   make([]uint32, m.Len()),
		parent: make([]int, m.Len()),
		stack:  make([]int, 0, m.Len()),
	}
}

// Path returns the cities on the unique route from a to b, both included,
// ordered a … b. Path(a, a) is [a].
//
// Panics with an error wrapping ErrDisconnected if b is unreachable, which
// cannot happen on a Map produced by Build.
func (pf *PathFinder) Path(a, b int) []int {
	if a == b {
		return []int{a}
	}
	pf.nextEpoch()

	// 1) Seed the stack with a; parent -1 terminates the trace.
	pf.stack = append(pf.stack[:0], a)
	pf.mark[a] = pf.epoch
	pf.parent[a] = -1

	// 2) Depth-first walk. In a tree the first arrival at b is the only
	//    route, so no distance bookkeeping is needed.
	var v, u int
	for len(pf.stack) > 0 {
		// pop
		v = pf.stack[len(pf.stack)-1]
		pf.stack = pf.stack[:len(pf.stack)-1]
		if v == b {
			return pf.trace(a, b)
		}
		// push unvisited neighbours, marking them at push time
		for _, u = range pf.m.neighbors(v) {
			if pf.mark[u] == pf.epoch {
				continue
			}
			pf.mark[u] = pf.epoch
			pf.parent[u] = v
			pf.stack = append(pf.stack, u)
		}
	}

	panic(fmt.Errorf("citymap: Path(%d, %d): %w", a, b, ErrDisconnected))
}

// trace rebuilds the a … b sequence from parent links.
func (pf *PathFinder) trace(a, b int) []int {
	// parent links run b → a; collect then reverse
	var out []int
	for v := b; v != -1; v = pf.parent[v] {
		out = append(out, v)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if out[0] != a {
		panic(fmt.Errorf("citymap: Path(%d, %d): broken parent chain: %w", a, b, ErrDisconnected))
	}

	return out
}

func (pf *PathFinder) nextEpoch() {
	pf.epoch++
	if pf.epoch == 0 {
		// wrapped: stale stamps could collide with the new epoch
		clear(pf.mark)
		pf.epoch = 1
	}
}

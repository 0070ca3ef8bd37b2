// SPDX-License-Identifier: MIT
// Package: treetrip/plan
//
// pool.go — Pool, the max-priority set of cities not yet in the trip plan.
//
// Representation:
//   - index: shared, immutable ranking of every city by (attractiveness desc,
//     id asc). rank 0 is the most attractive city.
//   - ranks: roaring bitmap of the ranks still available.
//
// Because ranks are sorted by attractiveness, the top tier is the bitmap
// minimum and "everything strictly above t" is a rank prefix whose end is
// found by binary search. Clone copies only the bitmap.
//
// Complexity:
//   - TopTier:    O(log n + |tier|).
//   - PopGreater: O(log n + |popped|).
//   - Remove/Insert/Contains: O(log n).
//   - Clone: O(containers) — proportional to the compressed bitmap size.

package plan

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/treetrip/citymap"
)

// poolIndex is the immutable ranking shared by a pool and all its clones.
type poolIndex struct {
	order   []int // rank → city id
	attr    []int // rank → attractiveness (non-increasing)
	rankOf  []int // city id → rank
	tierEnd []int // rank → first rank past its tier
}

func newPoolIndex(m *citymap.Map) *poolIndex {
	n := m.Len()
	idx := &poolIndex{
		order:   make([]int, n),
		attr:    make([]int, n),
		rankOf:  make([]int, n),
		tierEnd: make([]int, n),
	}
	// 1) Rank cities: attractiveness descending, ids ascending within a tie
	//    (stable sort over the identity order).
	for i := range idx.order {
		idx.order[i] = i
	}
	sort.SliceStable(idx.order, func(i, j int) bool {
		return m.Attractiveness(idx.order[i]) > m.Attractiveness(idx.order[j])
	})
	// 2) Invert the ranking and cache the per-rank value.
	for r, id := range idx.order {
		idx.attr[r] = m.Attractiveness(id)
		idx.rankOf[id] = r
	}
	// 3) Walk back once so every rank knows where its tier ends.
	for r := n - 1; r >= 0; r-- {
		if r == n-1 || idx.attr[r+1] != idx.attr[r] {
			idx.tierEnd[r] = r + 1
		} else {
			idx.tierEnd[r] = idx.tierEnd[r+1]
		}
	}

	return idx
}

// countAbove returns how many ranks carry attractiveness strictly above t,
// which is also the first rank at or below t.
func (idx *poolIndex) countAbove(t int) int {
	return sort.Search(len(idx.attr), func(r int) bool { return idx.attr[r] <= t })
}

// Pool holds the cities still available to a trip plan, ordered for
// max-attractiveness access. The zero value is not usable; see NewPool.
type Pool struct {
	idx   *poolIndex
	ranks *roaring.Bitmap
}

// NewPool returns a pool containing every city of m.
func NewPool(m *citymap.Map) *Pool {
	p := &Pool{idx: newPoolIndex(m), ranks: roaring.New()}
	if m.Len() > 0 {
		p.ranks.AddRange(0, uint64(m.Len()))
	}

	return p
}

// Len returns the number of available cities.
func (p *Pool) Len() int { return int(p.ranks.GetCardinality()) }

// IsEmpty reports whether no city is available.
func (p *Pool) IsEmpty() bool { return p.ranks.IsEmpty() }

// Contains reports whether city id is available.
func (p *Pool) Contains(id int) bool { return p.ranks.Contains(uint32(p.idx.rankOf[id])) }

// TopTier returns, without removing them, every available city sharing the
// highest available attractiveness, in ascending id order. Empty pool → nil.
func (p *Pool) TopTier() []int {
	if p.ranks.IsEmpty() {
		return nil
	}
	first := p.ranks.Minimum() // lowest present rank = most attractive city

	return p.collect(first, uint32(p.idx.tierEnd[first]))
}

// PopGreater removes and returns every available city whose attractiveness
// is strictly greater than threshold, most attractive first (ties by id).
func (p *Pool) PopGreater(threshold int) []int {
	end := p.idx.countAbove(threshold)
	if end == 0 || p.ranks.IsEmpty() {
		return nil
	}
	// ranks [0, end) are exactly the cities above threshold
	out := p.collect(0, uint32(end))
	if len(out) > 0 {
		p.ranks.RemoveRange(0, uint64(end))
	}

	return out
}

// Remove takes city id out of the pool; absent ids are ignored.
func (p *Pool) Remove(id int) { p.ranks.Remove(uint32(p.idx.rankOf[id])) }

// RemoveAll takes every id in ids out of the pool.
func (p *Pool) RemoveAll(ids []int) {
	for _, id := range ids {
		p.ranks.Remove(uint32(p.idx.rankOf[id]))
	}
}

// Insert puts city id (back) into the pool.
func (p *Pool) Insert(id int) { p.ranks.Add(uint32(p.idx.rankOf[id])) }

// Clone returns an independent copy; mutations on either side are invisible
// to the other. The immutable ranking is shared.
func (p *Pool) Clone() *Pool {
	return &Pool{idx: p.idx, ranks: p.ranks.Clone()}
}

// collect returns the city ids of the available ranks in [from, to).
func (p *Pool) collect(from, to uint32) []int {
	var out []int
	it := p.ranks.Iterator()
	it.AdvanceIfNeeded(from) // skip ranks below from without visiting them
	for it.HasNext() {
		r := it.PeekNext()
		if r >= to {
			break // past the window; leave r unconsumed
		}
		it.Next()
		out = append(out, p.idx.order[r])
	}

	return out
}

// SPDX-License-Identifier: MIT
// Package: treetrip/plan
//
// set.go — Set, the committed cities of a trip plan plus its path cache.
//
// Min/Max contract (recompute on demand):
//   - Add/AddAll/AddPath fold the new cities into a valid cached aggregate
//     in O(1) each, since an insertion can only widen [min, max].
//   - Remove invalidates the aggregate; the next Min or Max rescans the
//     members in O(n) and re-caches.
//   - Empty set: Min() == math.MaxInt, Max() == math.MinInt.
//
// Path cache:
//   - Unordered city pairs known to be joined by cities already in the set.
//   - Keys are the canonical (min(a,b), max(a,b)) pair packed into a uint64.

package plan

import (
	"maps"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/treetrip/citymap"
)

// pairKey packs an unordered pair into a canonical key.
func pairKey(a, b int) uint64 {
	if a > b {
		a, b = b, a
	}

	return uint64(uint32(a))<<32 | uint64(uint32(b))
}

// Set is a trip plan under construction. The zero value is not usable; see
// NewSet.
type Set struct {
	attr    []int // shared, read-only: id → attractiveness
	members *roaring.Bitmap
	paths   map[uint64]struct{}

	aggValid bool
	min, max int
}

// NewSet returns an empty plan over the cities of m.
func NewSet(m *citymap.Map) *Set {
	return &Set{
		attr:     m.Attractivenesses(),
		members:  roaring.New(),
		paths:    make(map[uint64]struct{}),
		aggValid: true,
		min:      math.MaxInt,
		max:      math.MinInt,
	}
}

// Len returns the number of cities in the plan.
func (s *Set) Len() int { return int(s.members.GetCardinality()) }

// Contains reports whether city id is in the plan.
func (s *Set) Contains(id int) bool { return s.members.Contains(uint32(id)) }

// Members returns the plan's cities in ascending id order.
func (s *Set) Members() []int {
	out := make([]int, 0, s.Len())
	it := s.members.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// Add puts city id into the plan.
func (s *Set) Add(id int) {
	s.members.Add(uint32(id))
	if s.aggValid {
		s.fold(s.attr[id])
	}
}

// AddAll puts every id of ids into the plan.
func (s *Set) AddAll(ids []int) {
	for _, id := range ids {
		s.Add(id)
	}
}

// Remove takes city id out of the plan and invalidates Min/Max.
func (s *Set) Remove(id int) {
	s.members.Remove(uint32(id))
	s.aggValid = false
}

// AddPath merges path (ordered from … to) into the plan and records that
// every pair of cities along it is now connected inside the plan: adjacent
// pairs, (from, p) and (p, to) for each p, and (from, to) itself.
func (s *Set) AddPath(from, to int, path []int) {
	s.AddAll(path)
	for i, p := range path {
		s.paths[pairKey(from, p)] = struct{}{}
		s.paths[pairKey(p, to)] = struct{}{}
		if i > 0 {
			s.paths[pairKey(path[i-1], p)] = struct{}{}
		}
	}
	s.paths[pairKey(from, to)] = struct{}{}
}

// ContainsPath reports whether the route between a and b is already known
// to lie inside the plan. Symmetric in a and b.
func (s *Set) ContainsPath(a, b int) bool {
	_, ok := s.paths[pairKey(a, b)]

	return ok
}

// Min returns the lowest attractiveness in the plan.
func (s *Set) Min() int {
	s.ensureAgg()

	return s.min
}

// Max returns the highest attractiveness in the plan.
func (s *Set) Max() int {
	s.ensureAgg()

	return s.max
}

// Clone returns a plan with independent membership and path cache.
func (s *Set) Clone() *Set {
	return &Set{
		attr:     s.attr,
		members:  s.members.Clone(),
		paths:    maps.Clone(s.paths),
		aggValid: s.aggValid,
		min:      s.min,
		max:      s.max,
	}
}

func (s *Set) fold(a int) {
	if a < s.min {
		s.min = a
	}
	if a > s.max {
		s.max = a
	}
}

func (s *Set) ensureAgg() {
	if s.aggValid {
		return
	}
	s.min, s.max = math.MaxInt, math.MinInt
	it := s.members.Iterator()
	for it.HasNext() {
		s.fold(s.attr[it.Next()])
	}
	s.aggValid = true
}

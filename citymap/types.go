// SPDX-License-Identifier: MIT
// Package: treetrip/citymap
//
// types.go — Node, Map and the sentinel errors of the package.
//
// Policy:
//   - Map is immutable after Build; every accessor returning a slice
//     returns a copy so callers cannot corrupt shared state.
//   - Only sentinel variables are exposed; callers branch with errors.Is.

package citymap

import "errors"

// Sentinel errors for map construction and path queries.
var (
	// ErrEmptyMap indicates that no cities were supplied.
	ErrEmptyMap = errors.New("citymap: map has no cities")

	// ErrLengthMismatch indicates that the parent-link and attractiveness
	// arrays describe a different number of cities.
	ErrLengthMismatch = errors.New("citymap: parent and attractiveness lengths differ")

	// ErrParentOutOfRange indicates a parent link outside [0, N).
	ErrParentOutOfRange = errors.New("citymap: parent link out of range")

	// ErrNotTree indicates that the roads do not form a spanning tree
	// (a repeated road, a cycle, or more than one component).
	ErrNotTree = errors.New("citymap: roads do not form a tree")

	// ErrDisconnected is the payload of the PathFinder panic raised when no
	// route exists between two cities. Build rejects such maps, so seeing it
	// means the tree invariant was broken behind the package's back.
	ErrDisconnected = errors.New("citymap: no route between cities")
)

// Node is a single city: its index, attractiveness and direct roads.
type Node struct {
	// ID is the city index in [0, N).
	ID int

	// Attractiveness is the integer weight that defines priority tiers.
	Attractiveness int

	// Neighbors lists the cities one road away, in road insertion order.
	Neighbors []int
}

// Map is the immutable city table produced by Build.
type Map struct {
	nodes   []Node
	edges   [][2]int // each road once, {child, parent}, in input order
	maxTier []int    // ids sharing the maximum attractiveness, ascending
	maxAttr int
}

// Len returns the number of cities.
func (m *Map) Len() int { return len(m.nodes) }

// Node returns a copy of city id. Panics on an out-of-range id.
func (m *Map) Node(id int) Node {
	n := m.nodes[id]
	n.Neighbors = append([]int(nil), n.Neighbors...)

	return n
}

// Attractiveness returns the attractiveness of city id.
func (m *Map) Attractiveness(id int) int { return m.nodes[id].Attractiveness }

// Neighbors returns a copy of the adjacency list of city id.
func (m *Map) Neighbors(id int) []int {
	return append([]int(nil), m.nodes[id].Neighbors...)
}

// Attractivenesses returns the attractiveness of every city, indexed by id.
func (m *Map) Attractivenesses() []int {
	out := make([]int, len(m.nodes))
	for i := range m.nodes {
		out[i] = m.nodes[i].Attractiveness
	}

	return out
}

// MaxTier returns the ids of every city sharing the maximum attractiveness,
// in ascending order. The search is seeded from this group: nothing is
// strictly more attractive, so each member is closed on its own.
func (m *Map) MaxTier() []int { return append([]int(nil), m.maxTier...) }

// MaxAttractiveness returns the highest attractiveness on the map.
func (m *Map) MaxAttractiveness() int { return m.maxAttr }

// Edges returns each road once as {child, parent}, in input order.
func (m *Map) Edges() [][2]int { return append([][2]int(nil), m.edges...) }

// neighbors exposes the internal adjacency slice without copying; callers
// inside the package must not mutate it.
func (m *Map) neighbors(id int) []int { return m.nodes[id].Neighbors }

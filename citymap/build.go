// SPDX-License-Identifier: MIT
// Package: treetrip/citymap
//
// build.go — Build(parents, attractiveness): validation, adjacency, max tier.
//
// Contract:
//   - len(parents) == len(attractiveness) == N ≥ 1.
//   - parents[i] == i adds no road; any other value in [0, N) adds i—parents[i].
//   - The roads must form a spanning tree: exactly N-1 of them, no repeats,
//     no cycles. Union–find rejects the first road closing a cycle.
//   - Validation order: ErrEmptyMap, ErrLengthMismatch, ErrParentOutOfRange,
//     ErrNotTree. Errors wrap the sentinel with index context.
//
// Complexity:
//   - Time O(N·α(N)), Space O(N).

package citymap

import "fmt"

// Build constructs the Map from parent links and attractiveness values.
func Build(parents, attractiveness []int) (*Map, error) {
	n := len(parents)
	if n == 0 && len(attractiveness) == 0 {
		return nil, fmt.Errorf("citymap: Build: %w", ErrEmptyMap)
	}
	if n != len(attractiveness) {
		return nil, fmt.Errorf("citymap: Build: parents=%d attractiveness=%d: %w",
			n, len(attractiveness), ErrLengthMismatch)
	}

	m := &Map{
		nodes: make([]Node, n),
		edges: make([][2]int, 0, n-1),
	}

	// Stage 1: node table and max tier in one pass.
	var i int
	for i = 0; i < n; i++ {
		m.nodes[i] = Node{ID: i, Attractiveness: attractiveness[i]}
		switch {
		case i == 0 || attractiveness[i] > m.maxAttr:
			m.maxAttr = attractiveness[i]
			m.maxTier = append(m.maxTier[:0], i)
		case attractiveness[i] == m.maxAttr:
			m.maxTier = append(m.maxTier, i)
		}
	}

	// Stage 2: roads, rejecting anything that is not a forest edge.
	uf := newUnionFind(n)
	var p int
	for i = 0; i < n; i++ {
		p = parents[i]
		if p < 0 || p >= n {
			return nil, fmt.Errorf("citymap: Build: parents[%d]=%d with N=%d: %w",
				i, p, n, ErrParentOutOfRange)
		}
		if p == i {
			continue
		}
		if !uf.union(i, p) {
			return nil, fmt.Errorf("citymap: Build: road %d—%d closes a cycle: %w", i, p, ErrNotTree)
		}
		m.nodes[i].Neighbors = append(m.nodes[i].Neighbors, p)
		m.nodes[p].Neighbors = append(m.nodes[p].Neighbors, i)
		m.edges = append(m.edges, [2]int{i, p})
	}

	// Stage 3: an acyclic road set is spanning iff it has N-1 roads.
	if len(m.edges) != n-1 {
		return nil, fmt.Errorf("citymap: Build: %d roads for %d cities: %w", len(m.edges), n, ErrNotTree)
	}

	return m, nil
}

// unionFind is a slice-backed disjoint-set forest with path halving and
// union by size.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), size: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// union merges the components of a and b. Returns false if they were
// already joined.
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]

	return true
}

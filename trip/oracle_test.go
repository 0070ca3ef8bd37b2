package trip_test

// bruteForce returns the size of the largest closed, connected city subset
// of at most k cities by enumerating every subset. Only for tiny trees.
func bruteForce(k int, parents, attr []int) int {
	n := len(parents)
	adj := make([][]int, n)
	for i, p := range parents {
		if p != i {
			adj[i] = append(adj[i], p)
			adj[p] = append(adj[p], i)
		}
	}

	best := 0
	for mask := 1; mask < 1<<n; mask++ {
		size := popcount(mask)
		if size > k || size <= best {
			continue
		}
		if closed(mask, attr) && connected(mask, adj) {
			best = size
		}
	}

	return best
}

func popcount(mask int) int {
	c := 0
	for ; mask != 0; mask &= mask - 1 {
		c++
	}

	return c
}

// closed: no city outside the subset is strictly more attractive than the
// subset's least attractive member.
func closed(mask int, attr []int) bool {
	lo := 0
	first := true
	for i := range attr {
		if mask&(1<<i) != 0 && (first || attr[i] < lo) {
			lo, first = attr[i], false
		}
	}
	for i := range attr {
		if mask&(1<<i) == 0 && attr[i] > lo {
			return false
		}
	}

	return true
}

// connected: the subset induces a connected subtree.
func connected(mask int, adj [][]int) bool {
	start := -1
	for i := range adj {
		if mask&(1<<i) != 0 {
			start = i
			break
		}
	}
	seen := 1 << start
	stack := []int{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, u := range adj[v] {
			if mask&(1<<u) != 0 && seen&(1<<u) == 0 {
				seen |= 1 << u
				stack = append(stack, u)
			}
		}
	}

	return seen == mask
}

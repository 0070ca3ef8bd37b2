// SPDX-License-Identifier: MIT
// Package: treetrip/treegen
//
// generate.go — Generate plus the shape and profile constructors.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - Shapes emit C with exactly one root marker and n-1 roads.
//   - Shapes run before profiles, so a shared RNG is consumed in that order.
//
// Complexity: O(n) time and space for every shape and profile.

package treegen

import "fmt"

const (
	methodGenerate    = "Generate"
	methodStraight    = "Straight"
	methodStar        = "Star"
	methodRandom      = "Random"
	methodElevated    = "Elevated"
	methodSunken      = "Sunken"
	methodRandomRange = "RandomRange"

	minNodes = 1
)

// Tree is a generated input: the two arrays trip.Solve consumes.
type Tree struct {
	Parents        []int `yaml:"parents" json:"parents"`
	Attractiveness []int `yaml:"attractiveness" json:"attractiveness"`
}

// Shape emits parent links for n cities.
type Shape func(n int, cfg config) ([]int, error)

// Profile emits attractiveness for n cities.
type Profile func(n int, cfg config) ([]int, error)

// Generate builds an n-city Tree from shape and profile.
func Generate(n int, shape Shape, profile Profile, opts ...Option) (Tree, error) {
	if shape == nil || profile == nil {
		return Tree{}, fmt.Errorf("%s: %w", methodGenerate, ErrNilPart)
	}
	if n < minNodes {
		return Tree{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodGenerate, n, minNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)

	parents, err := shape(n, cfg)
	if err != nil {
		return Tree{}, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	attr, err := profile(n, cfg)
	if err != nil {
		return Tree{}, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	return Tree{Parents: parents, Attractiveness: attr}, nil
}

// Straight links city i to i-1; city 0 is the root.
func Straight() Shape {
	return func(n int, _ config) ([]int, error) {
		if n < minNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStraight, n, minNodes, ErrTooFewNodes)
		}
		c := make([]int, n)
		for i := 1; i < n; i++ {
			c[i] = i - 1
		}

		return c, nil
	}
}

// Star links every city to centre 0.
func Star() Shape {
	return func(n int, _ config) ([]int, error) {
		if n < minNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minNodes, ErrTooFewNodes)
		}

		return make([]int, n), nil // all zeros: C[0]==0 is the root marker
	}
}

// Random links city i to a uniformly chosen earlier city.
func Random() Shape {
	return func(n int, cfg config) ([]int, error) {
		if n < minNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minNodes, ErrTooFewNodes)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		c := make([]int, n)
		for i := 1; i < n; i++ {
			c[i] = cfg.rng.Intn(i)
		}

		return c, nil
	}
}

// Uniform gives every city attractiveness v.
func Uniform(v int) Profile {
	return func(n int, _ config) ([]int, error) {
		return fill(n, v), nil
	}
}

// Elevated gives every city base and city idx the value high.
func Elevated(base, high, idx int) Profile {
	return func(n int, _ config) ([]int, error) {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("%s: idx=%d n=%d: %w", methodElevated, idx, n, ErrBadIndex)
		}
		d := fill(n, base)
		d[idx] = high

		return d, nil
	}
}

// Sunken gives every city base and city idx the value low.
func Sunken(base, low, idx int) Profile {
	return func(n int, _ config) ([]int, error) {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("%s: idx=%d n=%d: %w", methodSunken, idx, n, ErrBadIndex)
		}
		d := fill(n, base)
		d[idx] = low

		return d, nil
	}
}

// RandomRange draws each attractiveness uniformly from [lo, hi].
func RandomRange(lo, hi int) Profile {
	return func(n int, cfg config) ([]int, error) {
		if hi < lo {
			return nil, fmt.Errorf("%s: lo=%d hi=%d: %w", methodRandomRange, lo, hi, ErrBadRange)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandomRange, ErrNeedRandSource)
		}
		d := make([]int, n)
		for i := range d {
			d[i] = lo + cfg.rng.Intn(hi-lo+1)
		}

		return d, nil
	}
}

func fill(n, v int) []int {
	d := make([]int, n)
	for i := range d {
		d[i] = v
	}

	return d
}

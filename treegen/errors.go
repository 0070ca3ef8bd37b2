// SPDX-License-Identifier: MIT
// Package: treetrip/treegen
//
// errors.go — sentinel errors for the treegen package.
//
// Callers branch with errors.Is; implementations attach the method name and
// parameters with %w wrapping, e.g. "Star: n=0 < min=1: treegen: ...".

package treegen

import "errors"

// ErrTooFewNodes indicates n below the minimum tree size.
var ErrTooFewNodes = errors.New("treegen: parameter too small")

// ErrNeedRandSource indicates a random shape or profile was requested
// without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("treegen: rng is required")

// ErrBadIndex indicates a profile index outside [0, n).
var ErrBadIndex = errors.New("treegen: city index out of range")

// ErrBadRange indicates an empty value range (hi < lo).
var ErrBadRange = errors.New("treegen: invalid value range")

// ErrNilPart indicates a nil Shape or Profile passed to Generate.
var ErrNilPart = errors.New("treegen: nil shape or profile")

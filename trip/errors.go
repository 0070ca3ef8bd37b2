// SPDX-License-Identifier: MIT
// Package: treetrip/trip

package trip

import "errors"

// ErrBadK indicates a trip size bound below 1.
var ErrBadK = errors.New("trip: K must be at least 1")

// flight/snapshot.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package flight

import (
	"github.com/brunoga/deep"

	"github.com/mmp/flyable/math"
)

// Snapshot captures a flyer's mutable state so that it can be rolled back,
// e.g. after probing whether a destination is reachable. The start point
// and speed are fixed at construction and so are not included.
type Snapshot struct {
	Destination math.Coordinate
	Elapsed     float64
	// Profile is only meaningful for planes; it is the kinematic solution
	// most recently computed by FlyTime.
	Profile Profile
}

// takeSnapshot copies its inputs so that a Snapshot never shares storage
// with the flyer it came from, whatever state is added to it later.
func takeSnapshot(dest math.Coordinate, elapsed float64, prof Profile) Snapshot {
	return deep.MustCopy(Snapshot{
		Destination: dest,
		Elapsed:     elapsed,
		Profile:     prof,
	})
}

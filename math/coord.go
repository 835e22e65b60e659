// math/coord.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"encoding/json"
	"fmt"
)

// Coordinate is a point in space with non-negative integer components,
// in km. Construct with NewCoordinate to get negative components clamped
// to zero; the zero value is the origin.
type Coordinate struct {
	X, Y, Z int
}

// Origin is where flyers start unless told otherwise.
var Origin = Coordinate{}

func NewCoordinate(x, y, z int) Coordinate {
	return Coordinate{X: max(x, 0), Y: max(y, 0), Z: max(z, 0)}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// Distance returns the straight-line distance between a and b.
func Distance(a, b Coordinate) float64 {
	dx := float64(b.X) - float64(a.X)
	dy := float64(b.Y) - float64(a.Y)
	dz := float64(b.Z) - float64(a.Z)
	return Sqrt(Sqr(dx) + Sqr(dy) + Sqr(dz))
}

// AllPositive reports whether every component of c is strictly greater
// than zero.
func AllPositive(c Coordinate) bool {
	return c.X > 0 && c.Y > 0 && c.Z > 0
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{c.X, c.Y, c.Z})
}

// UnmarshalJSON accepts [x, y, z]; negative components are clamped in the
// same way as NewCoordinate.
func (c *Coordinate) UnmarshalJSON(b []byte) error {
	var v []int
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("%s: coordinate must be an array of three integers: %w", string(b), err)
	} else if len(v) != 3 {
		return fmt.Errorf("%s: expected three coordinate components, got %d", string(b), len(v))
	}
	*c = NewCoordinate(v[0], v[1], v[2])
	return nil
}

// math/core.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

// A few numeric helpers follow; the flight models work in float64 with
// integer inputs, so it's handy to have generic versions rather than
// casting back and forth with the math package.

func Sqrt(a float64) float64 {
	return gomath.Sqrt(a)
}

func Floor(v float64) float64 {
	return gomath.Floor(v)
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Sqr[V constraints.Integer | constraints.Float](v V) V { return v * v }

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

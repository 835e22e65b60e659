// rand/rand.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package rand

import (
	"time"

	"github.com/MichaelTJones/pcg"
)

///////////////////////////////////////////////////////////////////////////
// Random numbers.

// Rand is a PCG32 generator. Flyers that need randomness take one of these
// (or anything else with an Intn method) so that tests can control what
// they get.
type Rand struct {
	r *pcg.PCG32
}

func New() Rand {
	return Rand{r: pcg.NewPCG32()}
}

// Make returns a generator seeded with s; two generators made with the same
// seed produce the same sequence.
func Make(s int64) Rand {
	r := New()
	r.Seed(s)
	return r
}

// MakeTimeSeeded returns a generator seeded from the current time.
func MakeTimeSeeded() Rand {
	return Make(time.Now().UnixNano())
}

func (r *Rand) Seed(s int64) {
	r.r.Seed(uint64(s), 0xda3e39cb94b95bdb)
}

// Intn returns a value in [0, n). n must be positive.
func (r *Rand) Intn(n int) int {
	return int(r.r.Bounded(uint32(n)))
}

// IntRange returns a value in the half-open range [lo, hi). hi must be
// greater than lo.
func (r *Rand) IntRange(lo, hi int) int {
	return lo + r.Intn(hi-lo)
}

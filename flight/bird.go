// flight/bird.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package flight

import (
	"fmt"

	"github.com/mmp/flyable/math"
	"github.com/mmp/flyable/rand"
)

const (
	BirdMaxDistanceKm = 200
	BirdMinSpeedKmH   = 1
	BirdMaxSpeedKmH   = 20 // exclusive
)

// IntSource is a source of random integers in the half-open range
// [lo, hi); *rand.Rand satisfies it.
type IntSource interface {
	IntRange(lo, hi int) int
}

// Bird flies at a constant speed that is chosen at random when it is
// created.
type Bird struct {
	start   math.Coordinate
	dest    math.Coordinate
	speed   int
	elapsed float64
	diag    diagnostics
}

var _ Flyer = (*Bird)(nil)

// NewBird returns a bird whose speed is drawn uniformly from
// [BirdMinSpeedKmH, BirdMaxSpeedKmH) using src. If src is nil, a
// time-seeded generator is used.
func NewBird(src IntSource, opts ...Option) *Bird {
	if src == nil {
		r := rand.MakeTimeSeeded()
		src = &r
	}

	o, diag := makeOptions(KindBird, opts)
	// Don't trust the source to stay in range.
	speed := math.Clamp(src.IntRange(BirdMinSpeedKmH, BirdMaxSpeedKmH), BirdMinSpeedKmH, BirdMaxSpeedKmH-1)

	return &Bird{
		start: o.start,
		dest:  o.start,
		speed: speed,
		diag:  diag,
	}
}

func (b *Bird) Kind() Kind                   { return KindBird }
func (b *Bird) Start() math.Coordinate       { return b.start }
func (b *Bird) Destination() math.Coordinate { return b.dest }
func (b *Bird) Speed() int                   { return b.speed }
func (b *Bird) Elapsed() float64             { return b.elapsed }

// FlyTo accepts destinations within BirdMaxDistanceKm of the start. A
// destination with a non-positive component is accepted as well, with an
// advisory: positivity only guards the distance computation.
func (b *Bird) FlyTo(dest math.Coordinate) (bool, error) {
	if !math.AllPositive(dest) {
		b.dest = dest
		return b.diag.attempted(dest, true, fmt.Errorf("%w: %s", ErrNonPositiveCoordinate, dest))
	}

	if d := math.Distance(b.start, dest); d > BirdMaxDistanceKm {
		b.dest = b.start
		return b.diag.attempted(dest, false,
			fmt.Errorf("%w: %.1f km is beyond the bird's %d km range", ErrOutOfRange, d, BirdMaxDistanceKm))
	}

	b.dest = dest
	return b.diag.attempted(dest, true, nil)
}

func (b *Bird) FlyTime(dest math.Coordinate) (float64, error) {
	t, err := b.flyTime(dest)
	return t, b.diag.advise(err)
}

func (b *Bird) flyTime(dest math.Coordinate) (float64, error) {
	if !math.AllPositive(dest) {
		return 0, fmt.Errorf("%w: %s", ErrNonPositiveCoordinate, dest)
	}
	return math.Distance(b.start, dest) / float64(b.speed), nil
}

func (b *Bird) SetElapsed(hours float64) error {
	// Only the elapsed time bound matters here; a non-positive committed
	// destination was already reported when it was accepted.
	limit, _ := b.flyTime(b.dest)
	b.elapsed = 0
	if err := checkElapsed(hours, limit); err != nil {
		return b.diag.advise(err)
	}
	b.elapsed = hours
	return nil
}

func (b *Bird) Position() float64 {
	return b.elapsed * float64(b.speed)
}

func (b *Bird) TakeSnapshot() Snapshot {
	return takeSnapshot(b.dest, b.elapsed, Profile{})
}

func (b *Bird) RestoreSnapshot(s Snapshot) {
	b.dest = s.Destination
	b.elapsed = s.Elapsed
}

// checkElapsed returns an error if hours isn't in [0, limit].
func checkElapsed(hours, limit float64) error {
	if hours < 0 {
		return fmt.Errorf("%w: %g h", ErrNegativeElapsed, hours)
	} else if !(hours <= limit) {
		return fmt.Errorf("%w: %g h > %g h", ErrElapsedExceedsFlight, hours, limit)
	}
	return nil
}

// flight/drone_test.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package flight

import (
	"errors"
	"testing"

	"github.com/mmp/flyable/math"
)

func TestDroneSpeedClamping(t *testing.T) {
	for _, test := range []struct {
		speed, expected int
		clamped         bool
	}{
		{speed: 139, expected: 139},
		{speed: 140, expected: 140},
		{speed: 141, expected: 140, clamped: true},
		{speed: 1000, expected: 140, clamped: true},
		{speed: 1, expected: 1},
		{speed: 0, expected: 1, clamped: true},
		{speed: -20, expected: 1, clamped: true},
	} {
		d, err := NewDrone(test.speed)
		if d == nil {
			t.Fatalf("speed %d: nil drone", test.speed)
		}
		if d.Speed() != test.expected {
			t.Errorf("speed %d: got %d, expected %d", test.speed, d.Speed(), test.expected)
		}
		if test.clamped != errors.Is(err, ErrSpeedClamped) {
			t.Errorf("speed %d: got error %v, expected clamped = %v", test.speed, err, test.clamped)
		}
	}
}

func TestEffectiveFlightTime(t *testing.T) {
	for _, test := range []struct {
		raw     float64
		freezes int
	}{
		{0, 0},
		{0.1, 0},
		{0.1665, 0},
		{FreezeFrequencyHours, 1},
		{0.3, 1},
		{2 * FreezeFrequencyHours, 2},
		{1, 6},
	} {
		expected := test.raw + float64(test.freezes)/MinutesPerHour
		if et := EffectiveFlightTime(test.raw); et != expected {
			t.Errorf("EffectiveFlightTime(%g): got %.10f, expected %.10f", test.raw, et, expected)
		}
	}

	// A raw flight of exactly one interval picks up exactly one minute.
	raw := 0.1666
	if et := EffectiveFlightTime(raw); et != raw+1.0/60 {
		t.Errorf("got %.10f, expected %.10f", et, raw+1.0/60)
	}
}

func TestDroneFlyTime(t *testing.T) {
	d, _ := NewDrone(60)

	dest := math.NewCoordinate(2, 3, 6) // 7 km: 7 minutes, no freezes
	dist := 7.0
	ft, err := d.FlyTime(dest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ft != dist/60 {
		t.Errorf("got %f, expected %f", ft, dist/60)
	}

	d, _ = NewDrone(30)
	ft, _ = d.FlyTime(dest) // 14 minutes: one freeze
	if expected := dist/30 + 1.0/60; ft != expected {
		t.Errorf("got %f, expected %f", ft, expected)
	}

	ft, err = d.FlyTime(math.NewCoordinate(5, 5, 0))
	if ft != 0 {
		t.Errorf("got fly time %f for non-positive destination, expected 0", ft)
	}
	if !errors.Is(err, ErrNonPositiveCoordinate) {
		t.Errorf("got error %v, expected ErrNonPositiveCoordinate", err)
	}
}

func TestDroneFlyTo(t *testing.T) {
	d, _ := NewDrone(50, WithStart(math.NewCoordinate(1, 1, 1)))

	if ok, err := d.FlyTo(math.NewCoordinate(3, 4, 6)); !ok || err != nil {
		t.Errorf("short flight rejected: %v", err)
	}
	if d.Destination() != math.NewCoordinate(3, 4, 6) {
		t.Errorf("destination not committed, got %s", d.Destination())
	}

	// 10 km exactly is the limit.
	if ok, err := d.FlyTo(math.NewCoordinate(7, 9, 1)); !ok || err != nil {
		t.Errorf("10 km flight rejected: %v", err)
	}

	ok, err := d.FlyTo(math.NewCoordinate(8, 9, 2))
	if ok {
		t.Errorf("10.7 km flight accepted")
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got error %v, expected ErrOutOfRange", err)
	}
	if d.Destination() != d.Start() {
		t.Errorf("rejected destination not reset to start, got %s", d.Destination())
	}

	// Unlike birds, drones refuse non-positive destinations outright, and
	// keep whatever destination they had.
	d.FlyTo(math.NewCoordinate(2, 3, 6))
	ok, err = d.FlyTo(math.NewCoordinate(0, 2, 2))
	if ok {
		t.Errorf("non-positive destination accepted")
	}
	if !errors.Is(err, ErrNonPositiveCoordinate) {
		t.Errorf("got error %v, expected ErrNonPositiveCoordinate", err)
	}
	if expected := math.NewCoordinate(2, 3, 6); d.Destination() != expected {
		t.Errorf("got destination %s, expected %s to be kept", d.Destination(), expected)
	}

	// Including when the previous attempt was out of range.
	d.FlyTo(math.NewCoordinate(50, 50, 50))
	if _, err := d.FlyTo(math.NewCoordinate(-1, 2, 2)); !errors.Is(err, ErrNonPositiveCoordinate) {
		t.Errorf("got error %v, expected ErrNonPositiveCoordinate", err)
	}
	if d.Destination() != d.Start() {
		t.Errorf("got destination %s, expected the start", d.Destination())
	}
}

func TestDroneMaxFlyTime(t *testing.T) {
	for _, speed := range []int{1, 7, 30, 60, 139, 140} {
		d, _ := NewDrone(speed)
		raw := 10 / float64(speed)
		if mft := d.MaxFlyTime(); mft != EffectiveFlightTime(raw) {
			t.Errorf("speed %d: got max fly time %f, expected %f", speed, mft, EffectiveFlightTime(raw))
		}
	}
}

func TestDronePosition(t *testing.T) {
	d, _ := NewDrone(60)
	if d.Position() != 0 {
		t.Errorf("got position %f before departure, expected 0", d.Position())
	}

	dest := math.NewCoordinate(2, 3, 6)
	if ok, err := d.FlyTo(dest); !ok {
		t.Fatalf("flight rejected: %v", err)
	}

	elapsed := 0.1
	if err := d.SetElapsed(elapsed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expected := elapsed * float64(60) * FreezeCoefficient; d.Position() != expected {
		t.Errorf("got position %f, expected %f", d.Position(), expected)
	}
	if d.Position() >= 6 {
		t.Errorf("freezes should keep the drone behind a non-stop flyer; got %f", d.Position())
	}

	if err := d.SetElapsed(0.5); !errors.Is(err, ErrElapsedExceedsFlight) {
		t.Errorf("got error %v, expected ErrElapsedExceedsFlight", err)
	}
	if d.Elapsed() != 0 || d.Position() != 0 {
		t.Errorf("elapsed time not reset: elapsed %f position %f", d.Elapsed(), d.Position())
	}
}

// flight/drone.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package flight

import (
	"fmt"

	"github.com/mmp/flyable/math"
)

const (
	DroneMaxDistanceKm = 10
	DroneMinSpeedKmH   = 1
	DroneMaxSpeedKmH   = 140

	MinutesPerHour = 60

	// Drones freeze for a minute (0.0166 h) after every 10 minutes
	// (0.1666 h) of flight.
	FreezeFrequencyHours = 0.1666
	FreezeValueHours     = 0.0166

	// FreezeCoefficient is the fraction of wall-clock time a drone spends
	// moving; position is t * v * FreezeCoefficient.
	FreezeCoefficient = FreezeFrequencyHours / (FreezeFrequencyHours + FreezeValueHours)
)

// EffectiveFlightTime returns the time it takes to fly for raw hours once
// freezes are included: each completed freeze interval adds a minute.
func EffectiveFlightTime(raw float64) float64 {
	freezes := math.Floor(raw / FreezeFrequencyHours)
	return raw + freezes/MinutesPerHour
}

// Drone flies at a constant speed but periodically stops for a minute,
// and its range is limited to DroneMaxDistanceKm.
type Drone struct {
	start   math.Coordinate
	dest    math.Coordinate
	speed   int
	elapsed float64
	diag    diagnostics
}

var _ Flyer = (*Drone)(nil)

// NewDrone returns a drone that flies at the given speed, limited to
// [DroneMinSpeedKmH, DroneMaxSpeedKmH]. If the speed had to be limited,
// the drone is returned along with an error wrapping ErrSpeedClamped.
func NewDrone(speed int, opts ...Option) (*Drone, error) {
	o, diag := makeOptions(KindDrone, opts)
	d := &Drone{
		start: o.start,
		dest:  o.start,
		speed: math.Clamp(speed, DroneMinSpeedKmH, DroneMaxSpeedKmH),
		diag:  diag,
	}

	if d.speed != speed {
		return d, diag.advise(fmt.Errorf("%w: drone speed must be between %d and %d km/h; %d km/h has been set to %d km/h",
			ErrSpeedClamped, DroneMinSpeedKmH, DroneMaxSpeedKmH, speed, d.speed))
	}
	return d, nil
}

func (d *Drone) Kind() Kind                   { return KindDrone }
func (d *Drone) Start() math.Coordinate       { return d.start }
func (d *Drone) Destination() math.Coordinate { return d.dest }
func (d *Drone) Speed() int                   { return d.speed }
func (d *Drone) Elapsed() float64             { return d.elapsed }

// MaxFlyTime returns the longest flight the drone can make, freezes
// included.
func (d *Drone) MaxFlyTime() float64 {
	return EffectiveFlightTime(DroneMaxDistanceKm / float64(d.speed))
}

// FlyTo rejects destinations with a non-positive component, leaving the
// committed destination as it was, as well as ones that would take longer
// than MaxFlyTime to reach.
func (d *Drone) FlyTo(dest math.Coordinate) (bool, error) {
	t, err := d.flyTime(dest)
	if err != nil {
		return d.diag.attempted(dest, false, err)
	}

	if t > d.MaxFlyTime() {
		d.dest = d.start
		return d.diag.attempted(dest, false,
			fmt.Errorf("%w: %.1f km is beyond the drone's %d km range", ErrOutOfRange,
				math.Distance(d.start, dest), DroneMaxDistanceKm))
	}

	d.dest = dest
	return d.diag.attempted(dest, true, nil)
}

func (d *Drone) FlyTime(dest math.Coordinate) (float64, error) {
	t, err := d.flyTime(dest)
	return t, d.diag.advise(err)
}

func (d *Drone) flyTime(dest math.Coordinate) (float64, error) {
	if !math.AllPositive(dest) {
		return 0, fmt.Errorf("%w: %s", ErrNonPositiveCoordinate, dest)
	}
	return EffectiveFlightTime(math.Distance(d.start, dest) / float64(d.speed)), nil
}

func (d *Drone) SetElapsed(hours float64) error {
	limit, _ := d.flyTime(d.dest)
	d.elapsed = 0
	if err := checkElapsed(hours, limit); err != nil {
		return d.diag.advise(err)
	}
	d.elapsed = hours
	return nil
}

func (d *Drone) Position() float64 {
	return d.elapsed * float64(d.speed) * FreezeCoefficient
}

func (d *Drone) TakeSnapshot() Snapshot {
	return takeSnapshot(d.dest, d.elapsed, Profile{})
}

func (d *Drone) RestoreSnapshot(s Snapshot) {
	d.dest = s.Destination
	d.elapsed = s.Elapsed
}

// flight/plane.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package flight

import (
	"fmt"

	"github.com/mmp/flyable/math"
)

const (
	PlaneMinDistanceKm = 100
	PlaneMaxDistanceKm = 10000
	PlaneMaxSpeedKmH   = 900

	// Planes speed up by 10 km/h for every 10 km flown, up to
	// PlaneMaxSpeedKmH.
	PlaneSpeedChangePeriodKm     = 10
	PlaneSpeedChangePerPeriodKmH = 10

	DefaultPlaneStartSpeedKmH = 200
)

// Profile is the constant-acceleration solution for a plane's flight to a
// particular destination.
type Profile struct {
	DistanceKm    float64
	FinalSpeedKmH float64
	Acceleration  float64 // km/h^2
	Hours         float64
}

// Plane accelerates uniformly from its start speed to a final speed that
// depends on the trip distance.
type Plane struct {
	start      math.Coordinate
	dest       math.Coordinate
	startSpeed float64
	elapsed    float64
	// profile is the solution most recently computed by FlyTime or
	// SetElapsed; Acceleration and Position use it.
	profile Profile
	diag    diagnostics
}

var _ Flyer = (*Plane)(nil)

// NewDefaultPlane returns a plane with a start speed of
// DefaultPlaneStartSpeedKmH.
func NewDefaultPlane(opts ...Option) *Plane {
	p, _ := NewPlane(DefaultPlaneStartSpeedKmH, opts...)
	return p
}

// NewPlane returns a plane with the given start speed, limited to
// [0, PlaneMaxSpeedKmH]. If the speed had to be limited, the plane is
// returned along with an error wrapping ErrSpeedClamped.
func NewPlane(startSpeed float64, opts ...Option) (*Plane, error) {
	o, diag := makeOptions(KindPlane, opts)
	p := &Plane{
		start:      o.start,
		dest:       o.start,
		startSpeed: math.Clamp(startSpeed, 0, PlaneMaxSpeedKmH),
		diag:       diag,
	}
	p.profile = Profile{FinalSpeedKmH: p.startSpeed}

	if p.startSpeed != startSpeed {
		return p, diag.advise(fmt.Errorf("%w: plane start speed must be between 0 and %d km/h; %g km/h has been set to %g km/h",
			ErrSpeedClamped, PlaneMaxSpeedKmH, startSpeed, p.startSpeed))
	}
	return p, nil
}

func (p *Plane) Kind() Kind                   { return KindPlane }
func (p *Plane) Start() math.Coordinate       { return p.start }
func (p *Plane) Destination() math.Coordinate { return p.dest }
func (p *Plane) StartSpeed() float64          { return p.startSpeed }
func (p *Plane) Elapsed() float64             { return p.elapsed }

// Acceleration returns the acceleration for the destination most recently
// passed to FlyTime (or the committed destination, after SetElapsed).
func (p *Plane) Acceleration() float64 { return p.profile.Acceleration }

// Profile returns the most recently computed flight profile.
func (p *Plane) Profile() Profile { return p.profile }

// ProfileFor solves for the plane's flight to dest without changing any
// state.
func (p *Plane) ProfileFor(dest math.Coordinate) Profile {
	dist := math.Distance(p.start, dest)
	if dist == 0 {
		return Profile{FinalSpeedKmH: p.startSpeed}
	}

	final := math.Min(p.startSpeed+dist/PlaneSpeedChangePeriodKm*PlaneSpeedChangePerPeriodKmH, PlaneMaxSpeedKmH)
	prof := Profile{
		DistanceKm:    dist,
		FinalSpeedKmH: final,
		Acceleration:  (math.Sqr(final) - math.Sqr(p.startSpeed)) / (2 * dist),
	}
	if prof.Acceleration == 0 {
		// Already at the speed cap: cruise the whole way.
		prof.Hours = dist / p.startSpeed
	} else {
		prof.Hours = (final - p.startSpeed) / prof.Acceleration
	}
	return prof
}

// FlyTo accepts trips between PlaneMinDistanceKm and PlaneMaxDistanceKm
// long.
func (p *Plane) FlyTo(dest math.Coordinate) (bool, error) {
	if d := math.Distance(p.start, dest); d < PlaneMinDistanceKm || d > PlaneMaxDistanceKm {
		p.dest = p.start
		return p.diag.attempted(dest, false,
			fmt.Errorf("%w: %.1f km is outside the plane's %d-%d km range", ErrOutOfRange, d,
				PlaneMinDistanceKm, PlaneMaxDistanceKm))
	}

	p.dest = dest
	return p.diag.attempted(dest, true, nil)
}

// FlyTime returns the flight time to dest and records dest's profile as
// the plane's current one.
func (p *Plane) FlyTime(dest math.Coordinate) (float64, error) {
	p.profile = p.ProfileFor(dest)
	return p.profile.Hours, nil
}

func (p *Plane) SetElapsed(hours float64) error {
	limit, _ := p.FlyTime(p.dest)
	p.elapsed = 0
	if err := checkElapsed(hours, limit); err != nil {
		return p.diag.advise(err)
	}
	p.elapsed = hours
	return nil
}

func (p *Plane) Position() float64 {
	t := p.elapsed
	return p.startSpeed*t + p.profile.Acceleration*math.Sqr(t)/2
}

func (p *Plane) TakeSnapshot() Snapshot {
	return takeSnapshot(p.dest, p.elapsed, p.profile)
}

func (p *Plane) RestoreSnapshot(s Snapshot) {
	p.dest = s.Destination
	p.elapsed = s.Elapsed
	p.profile = s.Profile
}

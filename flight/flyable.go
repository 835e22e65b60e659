// flight/flyable.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package flight models birds, drones, and planes flying from a start
// point to a destination. Each kind has its own kinematics; they share
// only the Flyable contract.
//
// Distances are in km, speeds in km/h, and times in hours throughout.
//
// Bad input is never fatal. Out-of-range values are clamped or defaulted
// and the returned error says what was done. Such errors are advisory:
// the accompanying values are always usable.
package flight

import (
	"log/slog"

	"github.com/mmp/flyable/log"
	"github.com/mmp/flyable/math"
)

// Flyable is the capability every kind of flyer provides.
type Flyable interface {
	// FlyTo validates dest against the flyer's range rules. If the
	// flight is accepted, dest becomes the committed destination. A
	// destination that is out of range reverts the committed destination
	// to the start point; a drone refusing a non-positive destination
	// keeps the one it had. A non-nil error explains a rejection, or
	// something that was tolerated in an accepted flight.
	FlyTo(dest math.Coordinate) (bool, error)

	// FlyTime returns the number of hours needed to fly from the start
	// point to dest. A non-nil error means that the returned time was
	// defaulted.
	FlyTime(dest math.Coordinate) (float64, error)
}

// Flyer is a Flyable that tracks where it is going and how far along
// it is.
type Flyer interface {
	Flyable

	Kind() Kind
	Start() math.Coordinate
	Destination() math.Coordinate

	// Elapsed returns the point in the flight, in hours since
	// departure, at which Position is evaluated.
	Elapsed() float64
	// SetElapsed sets the elapsed time. Values that are negative or
	// that exceed the flight time to the committed destination reset
	// the elapsed time to zero and return an advisory error.
	SetElapsed(hours float64) error
	// Position returns the distance flown, in km, at the elapsed time.
	Position() float64

	TakeSnapshot() Snapshot
	RestoreSnapshot(Snapshot)
}

type Kind string

const (
	KindBird  Kind = "bird"
	KindDrone Kind = "drone"
	KindPlane Kind = "plane"
)

// Observer is notified of flight attempts and advisories; the metrics
// package provides a Prometheus-backed implementation.
type Observer interface {
	FlightAttempted(kind Kind, accepted bool, reason string)
	AdvisoryRaised(kind Kind, reason string)
}

// Option configures a flyer at construction time.
type Option func(*options)

type options struct {
	start math.Coordinate
	lg    *log.Logger
	obs   Observer
}

// WithStart sets the flyer's start point; the default is the origin.
func WithStart(c math.Coordinate) Option {
	return func(o *options) {
		o.start = c
	}
}

// WithLogger sets the logger used to report advisories. With no logger,
// advisories go to the default slog logger.
func WithLogger(lg *log.Logger) Option {
	return func(o *options) {
		o.lg = lg
	}
}

func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.obs = obs
	}
}

func makeOptions(kind Kind, opts []Option) (options, diagnostics) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o, diagnostics{kind: kind, lg: o.lg.With(slog.String("kind", string(kind))), obs: o.obs}
}

// diagnostics routes advisories to the log and the observer.
type diagnostics struct {
	kind Kind
	lg   *log.Logger
	obs  Observer
}

func (d diagnostics) advise(err error) error {
	if err == nil {
		return nil
	}
	d.lg.Warn(err.Error(), slog.String("reason", Reason(err)))
	if d.obs != nil {
		d.obs.AdvisoryRaised(d.kind, Reason(err))
	}
	return err
}

func (d diagnostics) attempted(dest math.Coordinate, accepted bool, err error) (bool, error) {
	d.lg.Debug("flight attempted", slog.String("destination", dest.String()), slog.Bool("accepted", accepted))
	if d.obs != nil {
		d.obs.FlightAttempted(d.kind, accepted, Reason(err))
	}
	return accepted, d.advise(err)
}

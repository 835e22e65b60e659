// scenario/scenario.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package scenario loads JSON descriptions of flyers and the legs they
// should attempt, and runs them through the flight models.
package scenario

import (
	"fmt"
	"io"
	"slices"

	"github.com/mmp/flyable/flight"
	"github.com/mmp/flyable/math"
	"github.com/mmp/flyable/util"
)

type Scenario struct {
	// Seed, if non-zero, seeds the speed of any bird that doesn't have
	// its own seed; otherwise such birds get random speeds.
	Seed   int64       `json:"seed,omitempty"`
	Flyers []FlyerSpec `json:"flyers"`
	Legs   []Leg       `json:"legs"`
}

type FlyerSpec struct {
	Name  string          `json:"name"`
	Kind  flight.Kind     `json:"kind"`
	Start math.Coordinate `json:"start"`

	Seed       *int64   `json:"seed,omitempty"`        // birds
	Speed      *int     `json:"speed,omitempty"`       // drones; required
	StartSpeed *float64 `json:"start_speed,omitempty"` // planes; defaults to 200 km/h
}

// Leg is a single destination for a flyer. Unless Probe is set, an
// accepted leg becomes the flyer's committed destination; probes report
// what would happen and then roll the flyer back.
type Leg struct {
	Flyer       string          `json:"flyer"`
	Destination math.Coordinate `json:"destination"`
	// Elapsed lists times (hours) at which to report the flyer's position.
	Elapsed []float64 `json:"elapsed,omitempty"`
	Probe   bool      `json:"probe,omitempty"`
}

// Load reads and validates a scenario.
func Load(r io.Reader) (*Scenario, error) {
	var e util.ErrorLogger
	s := Read(r, &e)
	if e.HaveErrors() {
		return nil, e.Err()
	}
	return s, nil
}

// Parse decodes and validates a scenario. All problems found are reported
// together in the returned error.
func Parse(b []byte) (*Scenario, error) {
	var e util.ErrorLogger
	s := parse(b, &e)
	if e.HaveErrors() {
		return nil, e.Err()
	}
	return s, nil
}

// Read decodes and validates a scenario, reporting every problem it finds
// to e. The returned scenario should not be used if e has errors.
func Read(r io.Reader, e *util.ErrorLogger) *Scenario {
	b, err := io.ReadAll(r)
	if err != nil {
		e.Error(err)
		return nil
	}
	return parse(b, e)
}

func parse(b []byte, e *util.ErrorLogger) *Scenario {
	for _, dup := range util.FindDuplicateJSONKeys(b) {
		if dup.Path == "" {
			e.ErrorString("duplicate key %q", dup.Key)
		} else {
			e.ErrorString("%s: duplicate key %q", dup.Path, dup.Key)
		}
	}

	var s Scenario
	if err := util.UnmarshalJSONBytes(b, &s); err != nil {
		e.Error(err)
		return nil
	}

	s.validate(e)
	return &s
}

// Validate checks that the scenario makes sense: flyers are uniquely
// named and fully specified, and every leg refers to one of them.
func (s *Scenario) Validate() error {
	var e util.ErrorLogger
	s.validate(&e)
	return e.Err()
}

func (s *Scenario) validate(e *util.ErrorLogger) {
	if len(s.Flyers) == 0 {
		e.ErrorString("no flyers specified")
	}

	names := make(map[string]bool)
	e.Push("flyers")
	for i, f := range s.Flyers {
		if f.Name == "" {
			e.Push(fmt.Sprintf("#%d", i))
			e.ErrorString("flyer must have a name")
		} else {
			e.Push(f.Name)
			if names[f.Name] {
				e.ErrorString("flyer name is used more than once")
			}
			names[f.Name] = true
		}

		switch f.Kind {
		case flight.KindBird:
		case flight.KindDrone:
			if f.Speed == nil {
				e.ErrorString("drones must have a \"speed\"")
			}
		case flight.KindPlane:
		case "":
			e.ErrorString("\"kind\" must be specified")
		default:
			e.ErrorString("%q: unknown kind; expected one of %q, %q, %q", f.Kind,
				flight.KindBird, flight.KindDrone, flight.KindPlane)
		}

		if f.Seed != nil && f.Kind != flight.KindBird {
			e.ErrorString("\"seed\" only applies to birds")
		}
		if f.Speed != nil && f.Kind != flight.KindDrone {
			e.ErrorString("\"speed\" only applies to drones")
		}
		if f.StartSpeed != nil && f.Kind != flight.KindPlane {
			e.ErrorString("\"start_speed\" only applies to planes")
		}
		e.Pop()
	}
	e.Pop()

	e.Push("legs")
	for i, leg := range s.Legs {
		e.Push(fmt.Sprintf("#%d", i))
		if !names[leg.Flyer] {
			e.ErrorString("%q: no such flyer", leg.Flyer)
		}
		if slices.ContainsFunc(leg.Elapsed, func(h float64) bool { return h < 0 }) {
			e.ErrorString("elapsed times must not be negative")
		}
		e.Pop()
	}
	e.Pop()
}

// scenario/report.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scenario

import (
	"github.com/mmp/flyable/flight"
	"github.com/mmp/flyable/math"

	"github.com/iancoleman/orderedmap"
)

// Report holds the outcome of Run, with flyers in the order they were
// given in the scenario.
type Report struct {
	Flyers []FlyerReport
}

type FlyerReport struct {
	Name  string          `json:"-"`
	Kind  flight.Kind     `json:"kind"`
	Start math.Coordinate `json:"start"`
	// Seed is the seed a bird's speed was drawn with, if it was seeded.
	Seed *int64 `json:"seed,omitempty"`
	// Speed is the bird or drone cruising speed, or the plane's start
	// speed, in km/h.
	Speed float64 `json:"speed"`
	// Reason is set if the flyer's speed was adjusted when it was created.
	Reason string      `json:"reason,omitempty"`
	Legs   []LegResult `json:"legs"`
}

type LegResult struct {
	Destination   math.Coordinate `json:"destination"`
	Probe         bool            `json:"probe,omitempty"`
	Accepted      bool            `json:"accepted"`
	Reason        string          `json:"reason,omitempty"`
	Committed     math.Coordinate `json:"committed"`
	FlyTimeHours  float64         `json:"fly_time_hours"`
	FlyTimeReason string          `json:"fly_time_reason,omitempty"`
	Samples       []Sample        `json:"samples,omitempty"`
}

type Sample struct {
	Elapsed    float64 `json:"elapsed"`
	PositionKm float64 `json:"position_km"`
	Reason     string  `json:"reason,omitempty"`
}

// Lookup returns the report for the named flyer.
func (r *Report) Lookup(name string) (FlyerReport, bool) {
	for _, fr := range r.Flyers {
		if fr.Name == name {
			return fr, true
		}
	}
	return FlyerReport{}, false
}

// MarshalJSON encodes the report as an object keyed by flyer name,
// preserving scenario order.
func (r *Report) MarshalJSON() ([]byte, error) {
	om := orderedmap.New()
	for _, fr := range r.Flyers {
		om.Set(fr.Name, fr)
	}
	return om.MarshalJSON()
}

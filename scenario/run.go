// scenario/run.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scenario

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmp/flyable/flight"
	"github.com/mmp/flyable/log"
	"github.com/mmp/flyable/rand"

	"github.com/brunoga/deep"
	"golang.org/x/sync/errgroup"
)

type RunOptions struct {
	Logger   *log.Logger
	Observer flight.Observer
}

// Run builds each flyer in the scenario and evaluates its legs in order.
// Distinct flyers are evaluated concurrently; the legs of a single flyer
// always run sequentially since each one may depend on the destination
// committed by the one before. The scenario itself is not modified.
func Run(ctx context.Context, s *Scenario, opts RunOptions) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	// Bird seeds are filled in below; the caller's flyers must not change.
	sc := deep.MustCopy(*s)
	sc.resolveSeeds()

	legs := make(map[string][]Leg)
	for _, leg := range sc.Legs {
		legs[leg.Flyer] = append(legs[leg.Flyer], leg)
	}

	report := &Report{Flyers: make([]FlyerReport, len(sc.Flyers))}

	eg, ctx := errgroup.WithContext(ctx)
	for i, spec := range sc.Flyers {
		eg.Go(func() error {
			lg := opts.Logger.With(slog.String("flyer", spec.Name))

			f, err := makeFlyer(spec, lg, opts.Observer)
			fr := FlyerReport{
				Name:   spec.Name,
				Kind:   spec.Kind,
				Seed:   spec.Seed,
				Start:  f.Start(),
				Speed:  speedOf(f),
				Reason: flight.Reason(err),
			}

			for _, leg := range legs[spec.Name] {
				if err := ctx.Err(); err != nil {
					return err
				}
				fr.Legs = append(fr.Legs, runLeg(f, leg))
			}
			lg.Debugf("%s: evaluated %d legs", spec.Name, len(fr.Legs))

			report.Flyers[i] = fr
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

// resolveSeeds gives each bird without its own seed one derived from the
// scenario seed, if there is one.
func (s *Scenario) resolveSeeds() {
	if s.Seed == 0 {
		return
	}
	for i := range s.Flyers {
		if f := &s.Flyers[i]; f.Kind == flight.KindBird && f.Seed == nil {
			seed := s.Seed + int64(i)
			f.Seed = &seed
		}
	}
}

func makeFlyer(spec FlyerSpec, lg *log.Logger, obs flight.Observer) (flight.Flyer, error) {
	opts := []flight.Option{flight.WithStart(spec.Start), flight.WithLogger(lg)}
	if obs != nil {
		opts = append(opts, flight.WithObserver(obs))
	}

	switch spec.Kind {
	case flight.KindBird:
		var src flight.IntSource
		if spec.Seed != nil {
			r := rand.Make(*spec.Seed)
			src = &r
		}
		return flight.NewBird(src, opts...), nil

	case flight.KindDrone:
		return flight.NewDrone(*spec.Speed, opts...)

	case flight.KindPlane:
		if spec.StartSpeed == nil {
			return flight.NewDefaultPlane(opts...), nil
		}
		return flight.NewPlane(*spec.StartSpeed, opts...)

	default:
		// Validate should have caught this.
		panic(fmt.Sprintf("%s: unexpected flyer kind %q", spec.Name, spec.Kind))
	}
}

func speedOf(f flight.Flyer) float64 {
	switch f := f.(type) {
	case *flight.Bird:
		return float64(f.Speed())
	case *flight.Drone:
		return float64(f.Speed())
	case *flight.Plane:
		return f.StartSpeed()
	default:
		return 0
	}
}

func runLeg(f flight.Flyer, leg Leg) LegResult {
	var snap flight.Snapshot
	if leg.Probe {
		snap = f.TakeSnapshot()
	}

	accepted, err := f.FlyTo(leg.Destination)
	lr := LegResult{
		Destination: leg.Destination,
		Probe:       leg.Probe,
		Accepted:    accepted,
		Reason:      flight.Reason(err),
		Committed:   f.Destination(),
	}

	hours, err := f.FlyTime(leg.Destination)
	lr.FlyTimeHours = hours
	lr.FlyTimeReason = flight.Reason(err)

	for _, h := range leg.Elapsed {
		err := f.SetElapsed(h)
		lr.Samples = append(lr.Samples, Sample{
			Elapsed:    f.Elapsed(),
			PositionKm: f.Position(),
			Reason:     flight.Reason(err),
		})
	}

	if leg.Probe {
		f.RestoreSnapshot(snap)
		lr.Committed = f.Destination()
	}
	return lr
}

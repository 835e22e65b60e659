// metrics/metrics.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package metrics counts flight attempts and advisories with Prometheus.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmp/flyable/flight"
)

// Collector implements flight.Observer. It is safe for concurrent use.
type Collector struct {
	Attempts   *prometheus.CounterVec
	Advisories *prometheus.CounterVec
}

var _ flight.Observer = (*Collector)(nil)

// NewCollector registers the flight metrics with reg, defaulting to the
// global Prometheus registry when reg is nil. Registering twice against
// the same registry returns collectors that share the existing metrics.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	attempts, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "flight_attempts_total",
		Help: "Flight attempts, labeled by flyer kind, whether the flight was accepted, and the rejection reason.",
	}, []string{"kind", "accepted", "reason"}), "flight_attempts_total")
	if err != nil {
		return nil, err
	}

	advisories, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "flight_advisories_total",
		Help: "Recoverable input problems (clamped or defaulted values, rejected destinations), labeled by flyer kind and reason.",
	}, []string{"kind", "reason"}), "flight_advisories_total")
	if err != nil {
		return nil, err
	}

	return &Collector{Attempts: attempts, Advisories: advisories}, nil
}

func (c *Collector) FlightAttempted(kind flight.Kind, accepted bool, reason string) {
	if c == nil || c.Attempts == nil {
		return
	}
	if reason == "" {
		reason = "none"
	}
	c.Attempts.WithLabelValues(string(kind), fmt.Sprint(accepted), reason).Inc()
}

func (c *Collector) AdvisoryRaised(kind flight.Kind, reason string) {
	if c == nil || c.Advisories == nil {
		return
	}
	c.Advisories.WithLabelValues(string(kind), reason).Inc()
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

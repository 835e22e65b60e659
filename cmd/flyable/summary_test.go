// cmd/flyable/summary_test.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"strings"
	"testing"

	"github.com/mmp/flyable/flight"
	"github.com/mmp/flyable/metrics"
	"github.com/mmp/flyable/util"

	"github.com/prometheus/client_golang/prometheus"
)

func TestWriteMetricsSummary(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector(reg)
	if err != nil {
		t.Fatal(err)
	}
	c.FlightAttempted(flight.KindPlane, true, "")
	c.FlightAttempted(flight.KindPlane, true, "")
	c.FlightAttempted(flight.KindBird, false, "out_of_range")
	c.AdvisoryRaised(flight.KindBird, "out_of_range")

	var sb strings.Builder
	if err := writeMetricsSummary(&sb, reg); err != nil {
		t.Fatal(err)
	}

	expected := []string{
		`flight_advisories_total{kind="bird",reason="out_of_range"} 1`,
		`flight_attempts_total{accepted="false",kind="bird",reason="out_of_range"} 1`,
		`flight_attempts_total{accepted="true",kind="plane",reason="none"} 2`,
	}
	got := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(got) != len(expected) {
		t.Fatalf("got %q, expected %q", got, expected)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("line %d: got %q, expected %q", i, got[i], expected[i])
		}
	}
}

func TestLoadScenario(t *testing.T) {
	var e util.ErrorLogger
	s := loadScenario("../../scenario/testdata/example.json", &e)
	if e.HaveErrors() {
		t.Fatal(e.Err())
	}
	if len(s.Flyers) != 3 {
		t.Errorf("got %d flyers, expected 3", len(s.Flyers))
	}

	var missing util.ErrorLogger
	if s := loadScenario("nonexistent.json", &missing); s != nil || !missing.HaveErrors() {
		t.Errorf("expected an error for a missing file")
	}
	if !strings.HasPrefix(missing.String(), "nonexistent.json: ") {
		t.Errorf("got %q, expected the error to name the file", missing.String())
	}
}

func TestRun(t *testing.T) {
	var e util.ErrorLogger
	s := loadScenario("../../scenario/testdata/example.json", &e)
	if e.HaveErrors() {
		t.Fatal(e.Err())
	}

	*showMetrics = true
	defer func() { *showMetrics = false }()

	var sb strings.Builder
	if err := run(&sb, s, nil); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, expected := range []string{`"jet": {`, `"accepted": true`,
		`flight_attempts_total{accepted="true",kind="plane",reason="none"} 1`} {
		if !strings.Contains(out, expected) {
			t.Errorf("output does not contain %q:\n%s", expected, out)
		}
	}
}

// cmd/flyable/summary.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// writeMetricsSummary prints one line per counter series in g, sorted so
// that the output is stable from run to run.
func writeMetricsSummary(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}

	var lines []string
	for _, mf := range mfs {
		if mf.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, m := range mf.GetMetric() {
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), formatLabels(m.GetLabel()),
				m.GetCounter().GetValue()))
		}
	}
	slices.Sort(lines)

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func formatLabels(labels []*dto.LabelPair) string {
	var s []string
	for _, l := range labels {
		s = append(s, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
	}
	return strings.Join(s, ",")
}

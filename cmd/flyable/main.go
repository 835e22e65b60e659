// cmd/flyable/main.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

// flyable runs a JSON scenario of birds, drones, and planes through the
// flight models and prints a report of what each of them did.

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mmp/flyable/log"
	"github.com/mmp/flyable/metrics"
	"github.com/mmp/flyable/scenario"
	"github.com/mmp/flyable/util"

	"github.com/apenwarr/fixconsole"
	"github.com/goforj/godump"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	scenarioFilename = flag.String("scenario", "", "filename of JSON file with a scenario definition (default: read from stdin)")
	logLevel         = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir           = flag.String("logdir", "", "log file directory")
	seed             = flag.Int64("seed", 0, "seed for birds' speeds; overrides the scenario's seed if non-zero")
	lint             = flag.Bool("lint", false, "check the validity of the scenario and exit")
	dump             = flag.Bool("dump", false, "dump the loaded scenario and the resulting report")
	showMetrics      = flag.Bool("metrics", false, "print a summary of flight metrics after the run")
)

func main() {
	flag.Parse()

	if err := fixconsole.FixConsoleIfNeeded(); err != nil {
		fmt.Printf("FixConsole: %v\n", err)
	}

	lg := log.New(*logLevel, *logDir)

	var e util.ErrorLogger
	s := loadScenario(*scenarioFilename, &e)
	if e.HaveErrors() {
		e.PrintErrors(lg)
		fmt.Fprintln(os.Stderr, e.String())
		os.Exit(1)
	}
	if *lint {
		fmt.Printf("%s: ok (%d flyers, %d legs)\n", *scenarioFilename, len(s.Flyers), len(s.Legs))
		return
	}
	if *seed != 0 {
		s.Seed = *seed
	}

	if err := run(os.Stdout, s, lg); err != nil {
		lg.Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run evaluates the scenario and writes the report, and the metrics
// summary if requested, to w.
func run(w io.Writer, s *scenario.Scenario, lg *log.Logger) error {
	if *dump {
		godump.Dump(s)
	}

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	report, err := scenario.Run(ctx, s, scenario.RunOptions{Logger: lg, Observer: collector})
	if err != nil {
		return err
	}
	lg.Infof("ran %d legs for %d flyers", len(s.Legs), len(s.Flyers))

	if *dump {
		godump.Dump(report)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}

	if *showMetrics {
		return writeMetricsSummary(w, reg)
	}
	return nil
}

// loadScenario reads the scenario from filename, or from stdin if it is
// empty, reporting problems to e.
func loadScenario(filename string, e *util.ErrorLogger) *scenario.Scenario {
	var r io.Reader = os.Stdin
	if filename == "" {
		e.Push("stdin")
	} else {
		e.Push(filename)
		f, err := os.Open(filename)
		if err != nil {
			e.Error(err)
			e.Pop()
			return nil
		}
		defer f.Close()
		r = f
	}
	defer e.Pop()

	return scenario.Read(r, e)
}

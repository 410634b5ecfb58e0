// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtour/builder"
	"github.com/katalvlaran/lvtour/internal/errs"
	"github.com/katalvlaran/lvtour/mapgraph"
	"github.com/katalvlaran/lvtour/mapio"
	"github.com/katalvlaran/lvtour/metrics"
	"github.com/katalvlaran/lvtour/tsp"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrNoInput is returned unless exactly one of --map and --points is given.
var ErrNoInput = errors.New("pass exactly one of --map or --points")

// Args is the CLI parsing structure and type of the parsed result.
type Args struct {
	Map    string `arg:"--map" help:"YAML map file to load"`
	Points int    `arg:"--points" help:"generate a Euclidean map over this many random points"`
	Seed   int64  `arg:"--seed" default:"1" help:"seed for --points"`

	Method   string `arg:"--method" default:"prim" help:"MST method: prim or kruskal"`
	Start    int    `arg:"--start" help:"start vertex of the tour"`
	TwoOpt   bool   `arg:"--two-opt" help:"improve the tour with 2-opt"`
	MaxIters int    `arg:"--max-iters" help:"cap on accepted 2-opt moves, 0 for none"`

	Save        string `arg:"--save" help:"write the map as YAML to this path"`
	MetricsFile string `arg:"--metrics-file" help:"write Prometheus metrics in text format to this path"`
	Verbose     bool   `arg:"-v,--verbose" help:"log progress to stderr"`
}

// Version returns the version string. go-arg adds --version when this exists.
func (obj *Args) Version() string {
	return program + " " + version
}

// Run loads or generates the map, solves it and prints the result.
func (obj *Args) Run(env *Env, logf func(format string, v ...interface{})) (reterr error) {
	m, err := obj.loadMap(env)
	if err != nil {
		return err
	}
	logf("map: %d vertices, %d edges", m.Order(), m.Size())
	if !m.IsComplete() {
		logf("map is not complete: the tour fails if it shortcuts over a missing edge")
	}

	if obj.Save != "" {
		if err := mapio.Save(env.Fs, obj.Save, m); err != nil {
			return err
		}
		logf("map saved to %s", obj.Save)
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return errs.Context(err, "metrics setup")
	}
	if obj.MetricsFile != "" {
		defer func() {
			err := metrics.WriteTextfile(env.Fs, obj.MetricsFile, reg)
			reterr = errs.Collect(reterr, err)
			if err == nil {
				logf("metrics written to %s", obj.MetricsFile)
			}
		}()
	}

	opts := tsp.DefaultOptions()
	opts.Method = obj.Method
	opts.StartVertex = obj.Start
	opts.EnableLocalSearch = obj.TwoOpt
	opts.TwoOptMaxIters = obj.MaxIters
	opts.Observer = rec

	res, err := tsp.Solve(m, opts)
	if err != nil {
		return errs.Context(err, "solve failed")
	}
	logf("solved with %s from vertex %d", res.Method, obj.Start)

	fmt.Fprintf(env.Stdout, "method:     %s\n", res.Method)
	fmt.Fprintf(env.Stdout, "mst weight: %.6f\n", res.MSTWeight)
	fmt.Fprintf(env.Stdout, "tour:       %v\n", res.Tour)
	fmt.Fprintf(env.Stdout, "tour cost:  %.6f\n", res.Cost)
	if obj.TwoOpt {
		fmt.Fprintf(env.Stdout, "improved:   %t\n", res.Improved)
	}

	return nil
}

func (obj *Args) loadMap(env *Env) (*mapgraph.Map, error) {
	if (obj.Map == "") == (obj.Points <= 0) {
		return nil, ErrNoInput
	}
	if obj.Map != "" {
		return mapio.Load(env.Fs, obj.Map)
	}
	if obj.Points > mapio.MaxVertices {
		return nil, fmt.Errorf("--points %d: %w", obj.Points, mapio.ErrTooManyVertices)
	}

	pts, err := builder.Points(obj.Points, builder.WithSeed(obj.Seed))
	if err != nil {
		return nil, err
	}

	return builder.Euclidean(pts)
}

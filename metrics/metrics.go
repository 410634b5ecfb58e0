// SPDX-License-Identifier: MIT

// Package metrics records tour-building runs as Prometheus metrics. Recorder
// implements tsp.Observer, so it plugs straight into tsp.Options.
package metrics

import (
	"errors"
	"time"

	"github.com/katalvlaran/lvtour/prim_kruskal"
	"github.com/katalvlaran/lvtour/tsp"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeOK           = "ok"
	OutcomeDisconnected = "disconnected"
	OutcomeMissingEdge  = "missing_edge"
	OutcomeError        = "error"
)

var _ tsp.Observer = (*Recorder)(nil)

// Recorder is the struct that holds the tour metrics. Build it with NewRecorder.
type Recorder struct {
	solveTotal    *prometheus.CounterVec   // Solve calls by method and outcome
	solveDuration *prometheus.HistogramVec // wall time of successful Solve calls
	tourMSTRatio  *prometheus.GaugeVec     // tour cost / MST weight of the last success
	startTime     prometheus.Gauge         // recorder creation time since unix epoch
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	obj := &Recorder{}
	obj.solveTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvtour_solve_total",
			Help: "Number of tour builds that have run.",
		},
		// method: prim or kruskal
		// outcome: ok, disconnected, missing_edge, error
		[]string{"method", "outcome"},
	)
	obj.solveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lvtour_solve_duration_seconds",
			Help:    "Duration of successful tour builds.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		},
		[]string{"method"},
	)
	obj.tourMSTRatio = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "lvtour_tour_mst_ratio",
			Help: "Tour cost divided by MST weight for the last successful build.",
		},
		[]string{"method"},
	)
	obj.startTime = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "lvtour_process_start_time_seconds",
			Help: "Start time of the process since unix epoch in seconds.",
		},
	)

	for _, c := range []prometheus.Collector{obj.solveTotal, obj.solveDuration, obj.tourMSTRatio, obj.startTime} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	obj.startTime.SetToCurrentTime()

	return obj, nil
}

// ObserveSolve implements tsp.Observer.
func (obj *Recorder) ObserveSolve(method string, res tsp.TSResult, elapsed time.Duration, err error) {
	outcome := Outcome(err)
	obj.solveTotal.With(prometheus.Labels{"method": method, "outcome": outcome}).Inc()
	if err != nil {
		return
	}
	obj.solveDuration.WithLabelValues(method).Observe(elapsed.Seconds())
	if res.MSTWeight > 0 {
		obj.tourMSTRatio.WithLabelValues(method).Set(res.Cost / res.MSTWeight)
	}
}

// Outcome maps a Solve error to its label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, prim_kruskal.ErrDisconnected):
		return OutcomeDisconnected
	case errors.Is(err, tsp.ErrMissingEdge):
		return OutcomeMissingEdge
	default:
		return OutcomeError
	}
}

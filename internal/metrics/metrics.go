// Package metrics exposes solver activity as Prometheus metrics by binding
// collectors to the dijkstra observation hooks.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/lvmaze/cost"
	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/orient"
)

// Collector holds the solver metrics.
type Collector struct {
	Settled     prometheus.Counter
	Relaxations *prometheus.CounterVec
	Stale       prometheus.Counter
	Duration    prometheus.Histogram
}

// New creates the collectors and registers them with reg.
// It panics if registration fails (duplicate registration is a programming error).
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		Settled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lvmaze_states_settled_total",
			Help: "Oriented states whose minimum distance became final",
		}),
		Relaxations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvmaze_relaxations_total",
				Help: "Successful relaxations by kind (improve or tie)",
			},
			[]string{"kind"},
		),
		Stale: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lvmaze_stale_entries_total",
			Help: "Priority-queue entries discarded as stale",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvmaze_solve_seconds",
			Help:    "Wall time of one solve",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	reg.MustRegister(c.Settled, c.Relaxations, c.Stale, c.Duration)

	return c
}

// Options returns solver options whose hooks feed the collectors.
func (c *Collector) Options() []dijkstra.Option {
	improve := c.Relaxations.WithLabelValues("improve")
	tie := c.Relaxations.WithLabelValues("tie")

	return []dijkstra.Option{
		dijkstra.WithOnSettle(func(orient.State, cost.Cost) { c.Settled.Inc() }),
		dijkstra.WithOnRelax(func(_, _ orient.State, _ cost.Cost, isTie bool) {
			if isTie {
				tie.Inc()
			} else {
				improve.Inc()
			}
		}),
		dijkstra.WithOnStale(func(orient.State, cost.Cost) { c.Stale.Inc() }),
	}
}

// ObserveSolve records the duration of one solve.
func (c *Collector) ObserveSolve(d time.Duration) {
	c.Duration.Observe(d.Seconds())
}

// WriteText writes every metric family gathered from g in the Prometheus
// text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}

// Package metrics exposes search progress as Prometheus metrics.
//
// A Collector implements engine.Observer: pass it with engine.WithObserver
// and every counted state, frontier overflow, deepening round and final
// verdict is recorded. All operations are safe for concurrent use, so one
// Collector may observe several engines.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/deepsearch/engine"
	"github.com/katalvlaran/deepsearch/space"
)

const namespace = "deepsearch"

// Collector holds the search metrics.
type Collector struct {
	// VisitedTotal counts states charged to the budget, by phase.
	VisitedTotal *prometheus.CounterVec
	// FrontierOverflowsTotal counts BFS stops on the frontier bound.
	FrontierOverflowsTotal prometheus.Counter
	// RoundsTotal counts completed iterative-deepening rounds.
	RoundsTotal prometheus.Counter
	// SearchesTotal counts finished searches, by verdict.
	SearchesTotal *prometheus.CounterVec
	// DeepestRound is the depth bound of the latest round.
	DeepestRound prometheus.Gauge
	// LastVisited is the visited count of the latest finished search.
	LastVisited prometheus.Gauge
}

var _ engine.Observer = (*Collector)(nil)

// NewCollector creates the metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		VisitedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "visited_states_total",
			Help:      "States counted against the total budget, by search phase.",
		}, []string{"phase"}),
		FrontierOverflowsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frontier_overflows_total",
			Help:      "Breadth-first searches stopped by the frontier capacity.",
		}),
		RoundsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deepening_rounds_total",
			Help:      "Iterative-deepening rounds run.",
		}),
		SearchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Finished searches, by verdict.",
		}, []string{"verdict"}),
		DeepestRound: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "deepest_round",
			Help:      "Depth bound of the most recent iterative-deepening round.",
		}),
		LastVisited: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_search_visited_states",
			Help:      "States visited by the most recent finished search.",
		}),
	}

	for _, col := range []prometheus.Collector{
		c.VisitedTotal, c.FrontierOverflowsTotal, c.RoundsTotal,
		c.SearchesTotal, c.DeepestRound, c.LastVisited,
	} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("registering search metrics: %w", err)
		}
	}

	return c, nil
}

// Visited implements engine.Observer.
func (c *Collector) Visited(phase engine.Phase) {
	c.VisitedTotal.WithLabelValues(phase.String()).Inc()
}

// FrontierExceeded implements engine.Observer.
func (c *Collector) FrontierExceeded(int) {
	c.FrontierOverflowsTotal.Inc()
}

// Round implements engine.Observer.
func (c *Collector) Round(depth, _ int) {
	c.RoundsTotal.Inc()
	c.DeepestRound.Set(float64(depth))
}

// Finished implements engine.Observer.
func (c *Collector) Finished(v space.Verdict, visited int) {
	c.SearchesTotal.WithLabelValues(v.String()).Inc()
	c.LastVisited.Set(float64(visited))
}

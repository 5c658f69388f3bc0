package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"os-scheduler/internal/core"
)

// Collector records simulation runs on its own registry.
type Collector struct {
	registry    *prometheus.Registry
	simulations *prometheus.CounterVec
	processes   *prometheus.HistogramVec
	makespan    *prometheus.HistogramVec
	duration    *prometheus.HistogramVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scheduler",
			Name:      "simulations_total",
			Help:      "Simulation runs by algorithm and outcome.",
		}, []string{"algorithm", "status"}),
		processes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "scheduler",
			Name:      "simulation_processes",
			Help:      "Number of processes per simulation run.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"algorithm"}),
		makespan: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "scheduler",
			Name:      "simulation_makespan_units",
			Help:      "Simulated time from 0 to the last completion.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"algorithm"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "scheduler",
			Name:      "simulation_duration_seconds",
			Help:      "Wall-clock time spent computing a simulation.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}, []string{"algorithm"}),
	}
	c.registry.MustRegister(c.simulations, c.processes, c.makespan, c.duration)
	return c
}

func (c *Collector) ObserveSimulation(algorithm string, processes int, outcome core.Outcome, elapsed time.Duration, err error) {
	if err != nil {
		c.simulations.WithLabelValues(algorithm, "error").Inc()
		return
	}
	c.simulations.WithLabelValues(algorithm, "ok").Inc()
	c.processes.WithLabelValues(algorithm).Observe(float64(processes))
	c.makespan.WithLabelValues(algorithm).Observe(float64(outcome.Metric.TotalTime))
	c.duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

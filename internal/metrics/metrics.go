// Package metrics exposes prometheus collectors for render activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pagewrap"

// Collector groups the counters the engine updates. A nil *Collector is valid
// and records nothing.
type Collector struct {
	passes     prometheus.Counter
	mounts     *prometheus.CounterVec
	unmounts   *prometheus.CounterVec
	dispatches prometheus.Counter
	errors     prometheus.Counter
}

// New builds a collector and registers it with reg. A nil reg skips
// registration, which keeps tests independent from the default registry.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		passes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_passes_total",
			Help:      "Completed render passes.",
		}),
		mounts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "component_mounts_total",
			Help:      "Component instances attached, by kind.",
		}, []string{"kind"}),
		unmounts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "component_unmounts_total",
			Help:      "Component instances released, by kind.",
		}, []string{"kind"}),
		dispatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_switches_total",
			Help:      "Page change actions dispatched.",
		}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_errors_total",
			Help:      "Render passes that returned an error.",
		}),
	}
	if reg == nil {
		return c, nil
	}
	for _, collector := range []prometheus.Collector{c.passes, c.mounts, c.unmounts, c.dispatches, c.errors} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Pass records a completed render pass.
func (c *Collector) Pass() {
	if c == nil {
		return
	}
	c.passes.Inc()
}

// Mount records an attached instance.
func (c *Collector) Mount(kind string) {
	if c == nil {
		return
	}
	c.mounts.WithLabelValues(kind).Inc()
}

// Unmount records a released instance.
func (c *Collector) Unmount(kind string) {
	if c == nil {
		return
	}
	c.unmounts.WithLabelValues(kind).Inc()
}

// Dispatch records a page change action.
func (c *Collector) Dispatch() {
	if c == nil {
		return
	}
	c.dispatches.Inc()
}

// Error records a failed render pass.
func (c *Collector) Error() {
	if c == nil {
		return
	}
	c.errors.Inc()
}

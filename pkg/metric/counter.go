package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every sitenav metric.
const Namespace = "sitenav"

type IncrementalCounter interface {
	Increment(val ...string)
}

// Counter is a labeled prometheus counter.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) IncrementalCounter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
	}, labels)

	reg.MustRegister(counter)

	return &Counter{
		Name: prometheus.BuildFQName(Namespace, "", name),
		Help: help,
		vec:  counter,
	}
}

// Gauge is a single-value prometheus gauge.
type Gauge struct {
	Name string
	g    prometheus.Gauge
}

// Set stores v.
func (g *Gauge) Set(v float64) {
	g.g.Set(v)
}

// SetToCurrentTime stores the current unix time.
func (g *Gauge) SetToCurrentTime() {
	g.g.SetToCurrentTime()
}

// NewGaugeWithRegistry registers a gauge on reg.
func NewGaugeWithRegistry(reg prometheus.Registerer, name, help string) *Gauge {
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
	})

	reg.MustRegister(g)

	return &Gauge{Name: prometheus.BuildFQName(Namespace, "", name), g: g}
}

// GetHandlerForRegistry returns an HTTP handler for serving Prometheus metrics from a custom registry.
func GetHandlerForRegistry(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

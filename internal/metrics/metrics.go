// Package metrics exposes Prometheus instrumentation for mapper dispatch.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector groups the mapperkit metrics. A nil *Collector is valid and
// records nothing.
type Collector struct {
	statements *prometheus.CounterVec
	mappers    prometheus.Gauge
}

// NewCollector creates the metrics and registers them on reg. On failure
// nothing stays registered.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		statements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mapperkit_statements_total",
				Help: "Number of statements dispatched through mapper proxies.",
			},
			[]string{"statement"},
		),
		mappers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mapperkit_mappers_registered",
			Help: "Number of mapper interfaces known to the registry.",
		}),
	}

	var registered []prometheus.Collector
	for _, m := range []prometheus.Collector{c.statements, c.mappers} {
		if err := reg.Register(m); err != nil {
			for _, r := range registered {
				reg.Unregister(r)
			}

			return nil, err
		}

		registered = append(registered, m)
	}

	return c, nil
}

// ObserveStatement counts one dispatch of statement.
func (c *Collector) ObserveStatement(statement string) {
	if c == nil {
		return
	}

	c.statements.WithLabelValues(statement).Inc()
}

// SetMappers records the registry size.
func (c *Collector) SetMappers(n int) {
	if c == nil {
		return
	}

	c.mappers.Set(float64(n))
}

package intern

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// registryMetrics exposes registry occupancy and intern traffic. Every
// collector reads live registry state, so nothing extra runs on the intern
// path beyond the registry's own counters.
type registryMetrics struct {
	keys     prometheus.GaugeFunc
	keyBytes prometheus.GaugeFunc
	hits     prometheus.CounterFunc
	misses   prometheus.CounterFunc
}

func newRegistryMetrics(r *Registry) *registryMetrics {
	return &registryMetrics{
		keys: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "jsondoc_intern_keys",
			Help: "Number of distinct keys held by the registry.",
		}, func() float64 {
			return float64(r.Len())
		}),
		keyBytes: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "jsondoc_intern_key_bytes",
			Help: "Total content bytes held for distinct keys.",
		}, func() float64 {
			return float64(r.Bytes())
		}),
		hits: prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "jsondoc_intern_hits_total",
			Help: "Intern calls that found existing content.",
		}, func() float64 {
			return float64(r.Hits())
		}),
		misses: prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "jsondoc_intern_misses_total",
			Help: "Intern calls that assigned a new handle.",
		}, func() float64 {
			return float64(r.Misses())
		}),
	}
}

func (m *registryMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.keys, m.keyBytes, m.hits, m.misses}
}

func (m *registryMetrics) register(reg prometheus.Registerer) error {
	for _, collector := range m.collectors() {
		if err := reg.Register(collector); err != nil {
			if !errors.As(err, &prometheus.AlreadyRegisteredError{}) {
				return err
			}
		}
	}
	return nil
}

func (m *registryMetrics) unregister(reg prometheus.Registerer) {
	for _, collector := range m.collectors() {
		reg.Unregister(collector)
	}
}

// RegisterMetrics registers metrics about r to reg. All metrics must be
// unregistered by calling [Registry.UnregisterMetrics].
func (r *Registry) RegisterMetrics(reg prometheus.Registerer) error {
	return r.metrics.register(reg)
}

// UnregisterMetrics unregisters metrics about r from reg.
func (r *Registry) UnregisterMetrics(reg prometheus.Registerer) {
	r.metrics.unregister(reg)
}

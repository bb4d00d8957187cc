package generator

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts generations by kind and source and times provider calls.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	generations *prometheus.CounterVec
	calls       *prometheus.HistogramVec
}

// NewMetrics registers the generator collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wonderlens",
			Name:      "generations_total",
			Help:      "Generated mantras and oracle readings by source.",
		}, []string{"kind", "source"}),
		calls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wonderlens",
			Name:      "provider_call_seconds",
			Help:      "Latency of LLM provider calls.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20},
		}, []string{"kind", "outcome"}),
	}
	for _, c := range []prometheus.Collector{m.generations, m.calls} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeResult(kind Kind, src Source) {
	if m == nil {
		return
	}
	m.generations.WithLabelValues(string(kind), string(src)).Inc()
}

func (m *Metrics) observeCall(kind Kind, c Completion) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !c.OK() {
		outcome = "error"
	}
	m.calls.WithLabelValues(string(kind), outcome).Observe(c.Duration.Seconds())
}

package restsource

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the Prometheus counters of a Client.
type Metrics struct {
	fetchTotal *prometheus.CounterVec
	cacheTotal *prometheus.CounterVec
}

// NewMetrics creates the client counters and registers them on registerer.
// A nil registerer leaves them unregistered.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		fetchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rjagro_fetch_total",
				Help: "Total number of backend list fetches",
			},
			[]string{"resource", "outcome"}, // outcome: success, error
		),
		cacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rjagro_cache_total",
				Help: "Total number of list cache lookups",
			},
			[]string{"resource", "result"}, // result: hit, miss
		),
	}

	if registerer == nil {
		return m, nil
	}

	for _, collector := range []prometheus.Collector{m.fetchTotal, m.cacheTotal} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) recordFetch(resource string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}

	m.fetchTotal.WithLabelValues(resource, outcome).Inc()
}

func (m *Metrics) recordCache(resource string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}

	m.cacheTotal.WithLabelValues(resource, result).Inc()
}

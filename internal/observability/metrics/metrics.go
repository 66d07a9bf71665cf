package metrics

import "github.com/prometheus/client_golang/prometheus"

// GatewayMetrics exposes counters/histograms for remote backend calls
// and the query cache.
type GatewayMetrics struct {
	remoteTotal   *prometheus.CounterVec
	remoteLatency *prometheus.HistogramVec
	cacheTotal    *prometheus.CounterVec
}

func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	m := &GatewayMetrics{
		remoteTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "remote",
			Name:      "requests_total",
			Help:      "Total calls to the salon backend",
		}, []string{"method", "outcome"}),
		remoteLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "salon",
			Subsystem: "remote",
			Name:      "request_latency_seconds",
			Help:      "Latency of salon backend calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		cacheTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salon",
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Query cache lookups by result",
		}, []string{"entity", "result"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.remoteTotal, m.remoteLatency, m.cacheTotal)
	return m
}

func (m *GatewayMetrics) ObserveRemote(method, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.remoteTotal.WithLabelValues(method, outcome).Inc()
	m.remoteLatency.WithLabelValues(method).Observe(seconds)
}

func (m *GatewayMetrics) ObserveCache(entity string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheTotal.WithLabelValues(entity, result).Inc()
}

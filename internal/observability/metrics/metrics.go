package metrics

import "github.com/prometheus/client_golang/prometheus"

// ContactMetrics exposes counters/histograms for the contact record flows.
type ContactMetrics struct {
	readsTotal       *prometheus.CounterVec
	mutationsTotal   *prometheus.CounterVec
	mutationDuration *prometheus.HistogramVec
}

func NewContactMetrics(reg prometheus.Registerer) *ContactMetrics {
	m := &ContactMetrics{
		readsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contactline",
			Subsystem: "contact",
			Name:      "reads_total",
			Help:      "Total public record reads",
		}, []string{"degraded"}),
		mutationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contactline",
			Subsystem: "contact",
			Name:      "mutations_total",
			Help:      "Total admin mutations by operation and outcome",
		}, []string{"op", "status"}),
		mutationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "contactline",
			Subsystem: "contact",
			Name:      "mutation_duration_seconds",
			Help:      "Latency of admin mutations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.readsTotal, m.mutationsTotal, m.mutationDuration)
	return m
}

func (m *ContactMetrics) ObserveRead(degraded bool) {
	if m == nil {
		return
	}
	label := "false"
	if degraded {
		label = "true"
	}
	m.readsTotal.WithLabelValues(label).Inc()
}

func (m *ContactMetrics) ObserveMutation(op, status string) {
	if m == nil {
		return
	}
	m.mutationsTotal.WithLabelValues(op, status).Inc()
}

func (m *ContactMetrics) ObserveMutationDuration(op string, seconds float64) {
	if m == nil {
		return
	}
	m.mutationDuration.WithLabelValues(op).Observe(seconds)
}

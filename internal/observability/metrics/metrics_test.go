package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestContactMetricsObserve(t *testing.T) {
	m := NewContactMetrics(nil)
	m.ObserveRead(false)
	m.ObserveRead(true)
	m.ObserveMutation("update", "ok")
	m.ObserveMutationDuration("update", 0.02)
}

func TestContactMetricsCustomRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewContactMetrics(reg)
	m.ObserveMutation("reset", "store_error")
}

func TestContactMetricsNilSafe(t *testing.T) {
	var m *ContactMetrics
	m.ObserveRead(true)
	m.ObserveMutation("update", "ok")
	m.ObserveMutationDuration("reset", 0.1)
}

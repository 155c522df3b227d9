// Package metrics exposes Prometheus counters for the validation pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics holds the collectors registered for one process.
type Metrics struct {
	Payloads       *prometheus.CounterVec
	ObjectsCreated *prometheus.CounterVec
	Latency        *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them with reg.
// A nil reg uses a fresh registry, which keeps tests isolated.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		Payloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "payloadkit_payloads_total",
			Help: "Payloads processed, by resource, outcome and validation error kind",
		}, []string{"resource", "outcome", "kind"}),
		ObjectsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "payloadkit_objects_created_total",
			Help: "Objects created through a persistence adapter, by resource",
		}, []string{"resource"}),
		Latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "payloadkit_request_duration_seconds",
			Help:    "Time spent handling create requests, by resource",
			Buckets: prometheus.DefBuckets,
		}, []string{"resource"}),
		gatherer: reg,
	}
	reg.MustRegister(m.Payloads, m.ObjectsCreated, m.Latency)
	return m
}

// Accepted records a payload that passed validation.
func (m *Metrics) Accepted(resource string) {
	if m == nil {
		return
	}
	m.Payloads.WithLabelValues(resource, OutcomeAccepted, "").Inc()
}

// Rejected records a payload that failed validation with kind.
func (m *Metrics) Rejected(resource, kind string) {
	if m == nil {
		return
	}
	m.Payloads.WithLabelValues(resource, OutcomeRejected, kind).Inc()
}

// Failed records a request that failed after validation.
func (m *Metrics) Failed(resource string) {
	if m == nil {
		return
	}
	m.Payloads.WithLabelValues(resource, OutcomeFailed, "").Inc()
}

// Created records a persisted object.
func (m *Metrics) Created(resource string) {
	if m == nil {
		return
	}
	m.ObjectsCreated.WithLabelValues(resource).Inc()
}

// Observe records request duration in seconds.
func (m *Metrics) Observe(resource string, seconds float64) {
	if m == nil {
		return
	}
	m.Latency.WithLabelValues(resource).Observe(seconds)
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

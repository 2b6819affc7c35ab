// Package metrics provides Prometheus metrics for the back-office service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agency_backoffice"

var (
	// ConversionsTotal counts budget conversions by outcome (converted, replayed, failed).
	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "conversion",
			Name:      "total",
			Help:      "Budget to project conversions by outcome",
		},
		[]string{"outcome"},
	)

	// PaymentEventsTotal counts payment confirmation events by source, type and outcome.
	PaymentEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "events_total",
			Help:      "Payment confirmation events by source, type and outcome",
		},
		[]string{"source", "type", "outcome"},
	)

	// PaymentLinksTotal counts generated payment links by type.
	PaymentLinksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payments",
			Name:      "links_total",
			Help:      "Payment links generated by payment type",
		},
		[]string{"type"},
	)

	// SideEffectsTotal counts best-effort email and notification deliveries.
	SideEffectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "side_effects",
			Name:      "total",
			Help:      "Best-effort side effects by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	// HTTPRequestDuration tracks inbound request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of inbound HTTP requests in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route", "status"},
	)
)

const (
	OutcomeOK       = "ok"
	OutcomeReplayed = "replayed"
	OutcomeIgnored  = "ignored"
	OutcomeFailed   = "failed"
)

// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/logging"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec

	identitiesExtracted *prometheus.CounterVec
	substitutions       prometheus.Counter
	documentsRewritten  prometheus.Counter
	validationFailures  prometheus.Counter

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, duration float64) error {
	metric, err := m.responseTime.GetMetricWith(tags)
	if err != nil {
		return err
	}

	metric.Observe(duration)
	return nil
}

func (m *Monitor) IncrementIdentitiesExtracted(source string, count int) {
	m.identitiesExtracted.WithLabelValues(source).Add(float64(count))
}

func (m *Monitor) IncrementSubstitutions(count int) {
	m.substitutions.Add(float64(count))
}

func (m *Monitor) IncrementDocumentsRewritten(count int) {
	m.documentsRewritten.Add(float64(count))
}

func (m *Monitor) IncrementValidationFailures(count int) {
	m.validationFailures.Add(float64(count))
}

func (m *Monitor) registerMetrics() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.service,
			Name:      "response_time_seconds",
			Help:      "HTTP response time in seconds per route, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	m.identitiesExtracted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.service,
			Name:      "identities_extracted_total",
			Help:      "Deduplicated identities extracted, labelled by driver source.",
		},
		[]string{"source"},
	)

	m.substitutions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: m.service,
			Name:      "substitutions_total",
			Help:      "Identity token substitutions applied by the rewrite engine.",
		},
	)

	m.documentsRewritten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: m.service,
			Name:      "documents_rewritten_total",
			Help:      "Documents re-serialized because at least one substitution occurred.",
		},
	)

	m.validationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: m.service,
			Name:      "validation_failures_total",
			Help:      "Mapping entries that failed target directory validation.",
		},
	)

	collectors := []prometheus.Collector{
		m.responseTime,
		m.identitiesExtracted,
		m.substitutions,
		m.documentsRewritten,
		m.validationFailures,
	}

	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			m.logger.Warnf("metric registration failed: %v", err)
		}
	}
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerMetrics()

	return m
}

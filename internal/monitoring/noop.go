// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package monitoring

var _ MonitorInterface = (*NoopMonitor)(nil)

type NoopMonitor struct{}

func (m *NoopMonitor) GetService() string { return "noop" }

func (m *NoopMonitor) SetResponseTimeMetric(map[string]string, float64) error { return nil }

func (m *NoopMonitor) IncrementIdentitiesExtracted(string, int) {}
func (m *NoopMonitor) IncrementSubstitutions(int)               {}
func (m *NoopMonitor) IncrementDocumentsRewritten(int)          {}
func (m *NoopMonitor) IncrementValidationFailures(int)          {}

func NewNoopMonitor() *NoopMonitor {
	return new(NoopMonitor)
}

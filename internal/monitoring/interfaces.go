// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package monitoring

type MonitorInterface interface {
	GetService() string

	SetResponseTimeMetric(tags map[string]string, duration float64) error

	IncrementIdentitiesExtracted(source string, count int)
	IncrementSubstitutions(count int)
	IncrementDocumentsRewritten(count int)
	IncrementValidationFailures(count int)
}

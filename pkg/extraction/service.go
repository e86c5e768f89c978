// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

// Package extraction walks an identity source and produces the deduplicated,
// provenance-annotated set of user references found there. Two drivers share
// the output shape: one over a parsed provisioning document, one over a live
// directory source.
package extraction

import (
	"context"
	"fmt"
	"sort"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/identity"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/logging"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/monitoring"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/tracing"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/types"
)

type Service struct {
	driver DriverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Extract fetches all sightings from the driver, keeps the first sighting
// per normalized identity, drops system accounts unless includeSystemAccounts
// is set, and returns the result sorted by normalized identity.
//
// Filtering happens after traversal, not during it, so provenance for
// filtered accounts stays available for diagnostics.
func (s *Service) Extract(ctx context.Context, includeSystemAccounts bool) ([]types.ExtractedIdentity, error) {
	ctx, span := s.tracer.Start(ctx, "extraction.Service.Extract")
	defer span.End()

	sightings, err := s.driver.FetchIdentities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch identities from %s source: %w", s.driver.Source(), err)
	}

	s.logger.Debugf("driver %s reported %d sightings", s.driver.Source(), len(sightings))

	// First sighting wins; later provenances for the same identity are
	// intentionally discarded.
	seen := make(map[string]types.ExtractedIdentity, len(sightings))
	for _, sighting := range sightings {
		key := sighting.Reference.Normalized
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = sighting
	}

	result := make([]types.ExtractedIdentity, 0, len(seen))
	for _, sighting := range seen {
		if !includeSystemAccounts && identity.IsSystemAccount(sighting.Reference.Normalized, sighting.Reference.DisplayName) {
			s.logger.Debugf("dropping system account %q found at %s", sighting.Reference.Normalized, sighting.Provenance)
			continue
		}
		result = append(result, sighting)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Reference.Normalized < result[j].Reference.Normalized
	})

	s.monitor.IncrementIdentitiesExtracted(s.driver.Source(), len(result))
	s.logger.Infof("extracted %d identities from %s source", len(result), s.driver.Source())

	return result, nil
}

func NewService(
	driver DriverInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.driver = driver

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

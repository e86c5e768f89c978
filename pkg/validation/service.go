// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

// Package validation checks every mapped target identity against the target
// directory before rewriting is allowed to proceed. Failures are aggregated
// into one report rather than thrown per entry, so the caller sees the
// complete picture.
package validation

import (
	"context"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/directory"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/logging"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/monitoring"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/tracing"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/types"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/pkg/mapping"
)

type Service struct {
	directory directory.DirectoryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Validate checks each non-skip entry of the table against the target
// directory: a found user is Valid; an absent user is ensured (idempotent
// add-if-tenant-known), and only an ensure failure makes the entry Invalid,
// with the collaborator's reason surfaced verbatim.
//
// This is a best-effort reachability check, not a guarantee the rewrite will
// be semantically complete.
func (s *Service) Validate(ctx context.Context, table *mapping.Table) (*types.ValidationReport, error) {
	ctx, span := s.tracer.Start(ctx, "validation.Service.Validate")
	defer span.End()

	report := new(types.ValidationReport)

	for _, entry := range table.Entries() {
		if entry.Skip() {
			report.Skipped++
			continue
		}

		outcome := s.validateEntry(ctx, entry)
		report.Outcomes = append(report.Outcomes, outcome)

		if outcome.Status == types.ValidationValid {
			report.Valid++
		} else {
			report.Invalid++
			s.logger.Warnf("target identity %q is invalid: %s", entry.TargetUser, outcome.Reason)
		}
	}

	s.monitor.IncrementValidationFailures(report.Invalid)
	s.logger.Infof("validated %d mapped identities: %d valid, %d invalid, %d skipped",
		report.Valid+report.Invalid, report.Valid, report.Invalid, report.Skipped)

	return report, nil
}

func (s *Service) validateEntry(ctx context.Context, entry types.MappingEntry) types.ValidationOutcome {
	user, err := s.directory.FindUser(ctx, entry.TargetUser)
	if err != nil {
		return types.ValidationOutcome{
			Entry:  entry,
			Status: types.ValidationInvalid,
			Reason: err.Error(),
		}
	}
	if user != nil {
		return types.ValidationOutcome{Entry: entry, Status: types.ValidationValid}
	}

	// Not a site member yet; try the idempotent tenant-level add.
	if _, err := s.directory.EnsureUser(ctx, entry.TargetUser); err != nil {
		return types.ValidationOutcome{
			Entry:  entry,
			Status: types.ValidationInvalid,
			Reason: err.Error(),
		}
	}
	return types.ValidationOutcome{Entry: entry, Status: types.ValidationValid}
}

func NewService(
	dir directory.DirectoryInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.directory = dir

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

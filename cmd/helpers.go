// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/config"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/directory"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/logging"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/monitoring"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/monitoring/prometheus"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/tracing"
)

const serviceName = "sptmigrate"

// loadSpecs sources the environment configuration. Flags take precedence over
// env vars in the individual commands.
func loadSpecs() (*config.EnvSpec, error) {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}
	return specs, nil
}

// setupTelemetry wires the ambient logger, monitor and tracer the way the
// serve command does, so one-shot commands report through the same stack.
func setupTelemetry(specs *config.EnvSpec) (logging.LoggerInterface, monitoring.MonitorInterface, tracing.TracingInterface) {
	logger := logging.NewLogger(specs.LogLevel)
	monitor := prometheus.NewMonitor(serviceName, logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	return logger, monitor, tracer
}

// buildDirectoryClient returns the configured directory gateway client, or the
// noop client when no endpoint is set. The noop client treats every identity
// as present, which keeps offline runs unblocked.
func buildDirectoryClient(
	specs *config.EnvSpec,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) directory.DirectoryInterface {
	if specs.DirectoryEndpoint == "" {
		logger.Info("no directory endpoint configured, using noop directory client")
		return directory.NewNoopClient()
	}
	return directory.NewClient(specs.DirectoryEndpoint, specs.DirectoryTenant, tracer, monitor, logger)
}

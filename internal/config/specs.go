// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package config

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"false"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	// OutputSuffix is appended to the input archive name (before the
	// extension) when deriving the rewritten archive path.
	OutputSuffix string `envconfig:"output_suffix" default:"remapped"`

	// IncludeSystemAccounts keeps administrative service identities in
	// extraction output instead of filtering them.
	IncludeSystemAccounts bool `envconfig:"include_system_accounts" default:"false"`

	// Directory collaborator settings. The core only consumes the contract;
	// when no endpoint is configured a noop client is wired.
	DirectoryEndpoint string `envconfig:"directory_endpoint" default:""`
	DirectoryTenant   string `envconfig:"directory_tenant" default:""`
}

// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/types"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/pkg/mapping"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/pkg/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate mapped target identities against the target directory",
	Long: `Load a mapping file and check every mapped target identity against
the configured directory. Targets absent from the site are added through the
directory's idempotent ensure call; only identities the directory rejects are
reported invalid.

Example:
  sptmigrate validate --mapping mapping.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd)
	},
}

func init() {
	validateCmd.Flags().String("mapping", "", "Path to the mapping file")

	_ = validateCmd.MarkFlagRequired("mapping")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command) error {
	mappingPath, _ := cmd.Flags().GetString("mapping")

	specs, err := loadSpecs()
	if err != nil {
		return err
	}
	logger, monitor, tracer := setupTelemetry(specs)
	defer logger.Sync()

	table, err := mapping.Load(mappingPath, logger)
	if err != nil {
		return err
	}

	client := buildDirectoryClient(specs, tracer, monitor, logger)
	report, err := validation.NewService(client, tracer, monitor, logger).Validate(context.Background(), table)
	if err != nil {
		return err
	}

	printValidationReport(cmd, report)

	if !report.IsValid() {
		return &validation.IdentityValidationError{Report: report}
	}
	return nil
}

func printValidationReport(cmd *cobra.Command, report *types.ValidationReport) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%d valid, %d invalid, %d skipped\n", report.Valid, report.Invalid, report.Skipped)
	for _, failure := range report.Failures() {
		fmt.Fprintf(out, "  %s -> %s: %s\n", failure.Entry.SourceUser, failure.Entry.TargetUser, failure.Reason)
	}
}

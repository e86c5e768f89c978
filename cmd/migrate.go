// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/pkg/mapping"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/pkg/rewrite"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/pkg/validation"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Validate a mapping file and rewrite an archive with it",
	Long: `Validate every mapped target identity against the target directory,
then rewrite the archive: every mapped identity token in the provisioning
manifest is substituted and a new archive is written next to the original.
The original archive is never modified.

Validation failures abort the migration unless --force is given.

Example:
  sptmigrate migrate --archive site.pnp --mapping mapping.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd)
	},
}

func init() {
	migrateCmd.Flags().String("archive", "", "Path to the provisioning template archive")
	migrateCmd.Flags().String("mapping", "", "Path to the mapping file")
	migrateCmd.Flags().String("suffix", "", "Output archive suffix (default from OUTPUT_SUFFIX, then \"remapped\")")
	migrateCmd.Flags().Bool("force", false, "Rewrite even when validation reports invalid identities")

	_ = migrateCmd.MarkFlagRequired("archive")
	_ = migrateCmd.MarkFlagRequired("mapping")

	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command) error {
	archivePath, _ := cmd.Flags().GetString("archive")
	mappingPath, _ := cmd.Flags().GetString("mapping")
	suffix, _ := cmd.Flags().GetString("suffix")
	force, _ := cmd.Flags().GetBool("force")

	specs, err := loadSpecs()
	if err != nil {
		return err
	}
	logger, monitor, tracer := setupTelemetry(specs)
	defer logger.Sync()

	if suffix == "" {
		suffix = specs.OutputSuffix
	}

	table, err := mapping.Load(mappingPath, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client := buildDirectoryClient(specs, tracer, monitor, logger)
	report, err := validation.NewService(client, tracer, monitor, logger).Validate(ctx, table)
	if err != nil {
		return err
	}

	if !report.IsValid() {
		printValidationReport(cmd, report)
		if !force {
			return &validation.IdentityValidationError{Report: report}
		}
		logger.Warnf("proceeding despite %d invalid identities (--force)", report.Invalid)
	}

	out, err := rewrite.NewEngine(table, suffix, tracer, monitor, logger).Rewrite(ctx, archivePath)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
	return nil
}

// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/pkg/extraction"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/pkg/mapping"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Generate a starter mapping file from an archive",
	Long: `Extract the identities referenced by a provisioning template archive
and write a starter mapping file with TargetUser pre-populated to SourceUser.
Edit the TargetUser column before validating or migrating; clear it to skip
an identity.

Example:
  sptmigrate template --archive site.pnp --output mapping.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTemplate(cmd)
	},
}

func init() {
	templateCmd.Flags().String("archive", "", "Path to the provisioning template archive")
	templateCmd.Flags().String("output", "mapping.csv", "Path of the mapping file to generate")
	templateCmd.Flags().Bool("include-system-accounts", false, "Keep administrative service identities in the output")

	_ = templateCmd.MarkFlagRequired("archive")

	rootCmd.AddCommand(templateCmd)
}

func runTemplate(cmd *cobra.Command) error {
	archivePath, _ := cmd.Flags().GetString("archive")
	output, _ := cmd.Flags().GetString("output")
	includeSystem, _ := cmd.Flags().GetBool("include-system-accounts")

	specs, err := loadSpecs()
	if err != nil {
		return err
	}
	logger, monitor, tracer := setupTelemetry(specs)
	defer logger.Sync()

	driver, cleanup, err := openTemplateDriver(archivePath, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	service := extraction.NewService(driver, tracer, monitor, logger)
	identities, err := service.Extract(context.Background(), includeSystem || specs.IncludeSystemAccounts)
	if err != nil {
		return err
	}

	if err := mapping.WriteTemplate(output, identities); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote mapping template with %d identities to %s\n", len(identities), output)
	return nil
}

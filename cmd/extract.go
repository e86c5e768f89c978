// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/archive"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/logging"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/template"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/types"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/pkg/extraction"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/pkg/mapping"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract user identities from a template archive or a live directory",
	Long: `Extract the deduplicated set of user identities referenced by a
provisioning template archive, or enumerated by the configured directory
source, together with the location each identity was first seen at.

Example:
  sptmigrate extract --archive site.pnp --template mapping.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd)
	},
}

func init() {
	extractCmd.Flags().String("archive", "", "Path to the provisioning template archive")
	extractCmd.Flags().String("source", "template", "Identity source to extract from (template, directory)")
	extractCmd.Flags().String("template", "", "Write a starter mapping file to this path")
	extractCmd.Flags().Bool("include-system-accounts", false, "Keep administrative service identities in the output")
	extractCmd.Flags().Bool("json", false, "Emit the report as JSON")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command) error {
	archivePath, _ := cmd.Flags().GetString("archive")
	source, _ := cmd.Flags().GetString("source")
	templateOut, _ := cmd.Flags().GetString("template")
	includeSystem, _ := cmd.Flags().GetBool("include-system-accounts")
	asJSON, _ := cmd.Flags().GetBool("json")

	specs, err := loadSpecs()
	if err != nil {
		return err
	}
	logger, monitor, tracer := setupTelemetry(specs)
	defer logger.Sync()

	var driver extraction.DriverInterface
	switch source {
	case "template":
		if archivePath == "" {
			return fmt.Errorf("the template source requires --archive")
		}
		templateDriver, cleanup, err := openTemplateDriver(archivePath, logger)
		if err != nil {
			return err
		}
		defer cleanup()
		driver = templateDriver
	case "directory":
		driver = extraction.NewDirectoryDriver(buildDirectoryClient(specs, tracer, monitor, logger))
	default:
		return fmt.Errorf("unsupported source: %q (supported: template, directory)", source)
	}

	service := extraction.NewService(driver, tracer, monitor, logger)
	identities, err := service.Extract(context.Background(), includeSystem || specs.IncludeSystemAccounts)
	if err != nil {
		return err
	}

	if templateOut != "" {
		if err := mapping.WriteTemplate(templateOut, identities); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote mapping template with %d identities to %s\n", len(identities), templateOut)
	}

	return printIdentities(cmd, identities, asJSON)
}

func openTemplateDriver(archivePath string, logger logging.LoggerInterface) (*extraction.TemplateDriver, func(), error) {
	pkg, err := archive.Open(archivePath, logger)
	if err != nil {
		return nil, nil, err
	}

	doc, err := template.Load(pkg.ManifestPath())
	if err != nil {
		pkg.Close()
		return nil, nil, err
	}

	return extraction.NewTemplateDriver(doc), func() { _ = pkg.Close() }, nil
}

func printIdentities(cmd *cobra.Command, identities []types.ExtractedIdentity, asJSON bool) error {
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(identities)
	}

	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "IDENTITY\tDISPLAY NAME\tFOUND AT")
	for _, id := range identities {
		fmt.Fprintf(w, "%s\t%s\t%s\n", id.Reference.Normalized, id.Reference.DisplayName, id.Provenance)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d identities\n", len(identities))
	return nil
}

// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/types"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/pkg/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize the contents of a template archive",
	Long: `Produce a normalized summary of a provisioning template archive:
lists, document libraries and site pages by default, referenced users with
--users, content types and schema fields with --detailed.

Example:
  sptmigrate inspect --archive site.pnp --users --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(cmd)
	},
}

func init() {
	inspectCmd.Flags().String("archive", "", "Path to the provisioning template archive")
	inspectCmd.Flags().Bool("users", false, "Include referenced user identities")
	inspectCmd.Flags().Bool("detailed", false, "Include content types and schema fields")
	inspectCmd.Flags().Bool("json", false, "Emit the summary as JSON")

	_ = inspectCmd.MarkFlagRequired("archive")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command) error {
	archivePath, _ := cmd.Flags().GetString("archive")
	users, _ := cmd.Flags().GetBool("users")
	detailed, _ := cmd.Flags().GetBool("detailed")
	asJSON, _ := cmd.Flags().GetBool("json")

	specs, err := loadSpecs()
	if err != nil {
		return err
	}
	logger, monitor, tracer := setupTelemetry(specs)
	defer logger.Sync()

	opts := inspect.DefaultOptions()
	opts.IncludeUsers = users
	opts.Detailed = detailed

	summary, err := inspect.NewService(tracer, monitor, logger).Summarize(context.Background(), archivePath, opts)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	printSummary(cmd, summary)
	return nil
}

func printSummary(cmd *cobra.Command, summary *types.DocumentSummary) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s\n", summary.Archive)
	for _, kind := range sortedKinds(summary.Entities) {
		entities := summary.Entities[kind]
		fmt.Fprintf(out, "  %s (%d)\n", kind, entities.Count)
		for _, key := range entities.Keys {
			fmt.Fprintf(out, "    %s\n", key)
		}
	}
}

func sortedKinds[V any](entities map[types.EntityKind]V) []types.EntityKind {
	kinds := make([]types.EntityKind, 0, len(entities))
	for kind := range entities {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

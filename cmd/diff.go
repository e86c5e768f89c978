// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/pkg/inspect"
)

var diffCmd = &cobra.Command{
	Use:   "diff <archive-a> <archive-b>",
	Short: "Compare the contents of two template archives",
	Long: `Summarize two provisioning template archives and print the per-kind
set difference between them: keys only in the first, keys only in the second,
and keys present in both. Comparison is exact-string on each kind's key
property (title for lists and pages, email for users).

Example:
  sptmigrate diff before.pnp after.pnp --users`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDiff(cmd, args[0], args[1])
	},
}

func init() {
	diffCmd.Flags().Bool("users", false, "Compare referenced user identities")
	diffCmd.Flags().Bool("detailed", false, "Compare content types and schema fields")
	diffCmd.Flags().Bool("json", false, "Emit the diff as JSON")

	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, archiveA, archiveB string) error {
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

	service := inspect.NewService(tracer, monitor, logger)
	ctx := context.Background()

	summaryA, err := service.Summarize(ctx, archiveA, opts)
	if err != nil {
		return err
	}
	summaryB, err := service.Summarize(ctx, archiveB, opts)
	if err != nil {
		return err
	}

	result := service.Diff(ctx, summaryA, summaryB)

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s vs %s\n", result.ArchiveA, result.ArchiveB)
	for _, kind := range sortedKinds(result.Kinds) {
		set := result.Kinds[kind]
		fmt.Fprintf(out, "  %s\n", kind)
		for _, key := range set.OnlyInA {
			fmt.Fprintf(out, "    - %s\n", key)
		}
		for _, key := range set.OnlyInB {
			fmt.Fprintf(out, "    + %s\n", key)
		}
		for _, key := range set.InBoth {
			fmt.Fprintf(out, "    = %s\n", key)
		}
	}
	return nil
}

// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sptmigrate",
	Short: "Remap user identities inside provisioning template archives",
	Long: `sptmigrate rewrites cross-tenant user identities inside provisioning
template archives: extract the identities a template references, edit the
generated mapping file, validate the mapped targets against the target
directory, and produce a rewritten archive ready for the apply step.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

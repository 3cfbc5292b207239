// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Arnlite Contributors

package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the arnlite CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arnlite",
		Short: "arnlite - inspect the resource portion of ARN-style identifiers",
		Long: `arnlite splits the resource portion of an ARN-style identifier into its
resource type, resource, and qualifier, showing exactly where the
boundaries fall.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewParseCmd())

	return cmd
}

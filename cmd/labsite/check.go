// Copyright LIMIT Lab, 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Verify internal links in a built site",
	Long: `Check parses every HTML file in a static export and reports href and src
targets that do not resolve to a file. External links are not fetched.
The directory defaults to the configured build output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.Build.OutDir
		if len(args) > 0 {
			dir = args[0]
		}
		return runLinkCheck(cmd, dir)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

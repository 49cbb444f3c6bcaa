// Copyright LIMIT Lab, 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of labsite",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "labsite %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Copyright LIMIT Lab, 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/limitlab/labsite/internal/content"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default content files into the content directory",
	Long: `Init copies the built-in site.yaml, publications.yaml, members.yaml, and
news.yaml into the content directory as a starting point. Existing files are
left alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		written, err := content.WriteDefaults(cfg.Content.Dir)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, p := range written {
			fmt.Fprintln(out, "wrote", p)
		}
		if len(written) == 0 {
			fmt.Fprintf(out, "%s already has every content file\n", cfg.Content.Dir)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// Copyright LIMIT Lab, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/limitlab/labsite/internal/linkcheck"
	"github.com/limitlab/labsite/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the site as a static export",
	Long: `Build renders every page into the output directory as <page>/index.html,
writes api/publications.json, and copies the stylesheets and scripts. In the
export the publication filter runs in the browser.

Use --check to verify internal links after building.`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	c, err := loadContent(ctx, cfg.Content)
	if err != nil {
		return err
	}

	summary, err := site.Build(ctx, c, cfg.Build, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "built %s: %d pages, %d assets, %d publications\n",
		summary.OutDir, summary.Pages, summary.Assets, summary.Publications)

	if check, _ := cmd.Flags().GetBool("check"); check {
		return runLinkCheck(cmd, summary.OutDir)
	}
	return nil
}

func init() {
	buildCmd.Flags().String("out", "out", "output directory")
	buildCmd.Flags().Int("workers", 4, "concurrent render workers")
	buildCmd.Flags().Bool("check", false, "verify internal links after building")
	bindFlag("build.out_dir", buildCmd.Flags().Lookup("out"))
	bindFlag("build.workers", buildCmd.Flags().Lookup("workers"))

	rootCmd.AddCommand(buildCmd)
}

// runLinkCheck reports dangling internal links under dir.
func runLinkCheck(cmd *cobra.Command, dir string) error {
	rep, err := linkcheck.Check(dir)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, b := range rep.Broken {
		fmt.Fprintln(out, "broken ", b)
	}
	fmt.Fprintf(out, "checked %d pages, %d links, %d broken\n", rep.Pages, rep.Links, len(rep.Broken))
	if !rep.OK() {
		return fmt.Errorf("%d broken link(s) in %s", len(rep.Broken), dir)
	}
	return nil
}

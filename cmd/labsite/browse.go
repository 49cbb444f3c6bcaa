// Copyright LIMIT Lab, 2026. All rights reserved.

package main

import (
	"context"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/limitlab/labsite/internal/theme"
	"github.com/limitlab/labsite/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse publications in the terminal",
	Long: `Browse opens an interactive publication list. Tab moves between the
conference, year, and field facets; left and right cycle the focused facet
through "all" and its values; r resets; t switches light, dark, and system
themes.`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	c, err := loadContent(context.Background(), cfg.Content)
	if err != nil {
		return err
	}

	themeName, _ := cmd.Flags().GetString("theme")
	mode, err := theme.Parse(themeName)
	if err != nil {
		return err
	}

	m := tui.New(c.Publications, c.Site,
		tui.WithFilter(filterFromFlags(cmd)),
		tui.WithTheme(mode, lipgloss.HasDarkBackground()),
	)
	return tui.Run(m)
}

func init() {
	addFilterFlags(browseCmd)
	browseCmd.Flags().String("theme", string(theme.System), "display theme: light, dark, or system")

	rootCmd.AddCommand(browseCmd)
}

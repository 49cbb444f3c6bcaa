// Copyright LIMIT Lab, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/limitlab/labsite/internal/publication"
	"github.com/limitlab/labsite/internal/web"
)

var publicationsCmd = &cobra.Command{
	Use:   "publications",
	Short: "List publications matching a conference, year, and field",
	Long: `Publications applies the same filter as the website: each facet is either
"all" or a value that must match exactly (the year as written, so 2024 never
matches 20240). Results are listed newest first.

Use --facets to print the selectable values instead.`,
	RunE: runPublications,
}

func runPublications(cmd *cobra.Command, args []string) error {
	c, err := loadContent(context.Background(), cfg.Content)
	if err != nil {
		return err
	}
	store := c.Publications
	f := filterFromFlags(cmd)
	out := cmd.OutOrStdout()

	if facets, _ := cmd.Flags().GetBool("facets"); facets {
		printFacets(out, store.Facets())
		return nil
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return web.NewAPIResponse(store, f).WriteJSON(out)
	}

	pubs := store.Evaluate(f)
	if len(pubs) == 0 {
		fmt.Fprintf(out, "No publications match %s\n", f)
		return nil
	}
	for _, p := range pubs {
		fmt.Fprintf(out, "%4d  %-10s %d  %-20s %s\n", p.ID, p.Conference, p.Year, p.Field, p.Title)
	}
	fmt.Fprintf(out, "\n%d of %d publications (%s)\n", len(pubs), store.Len(), f)
	return nil
}

func printFacets(w io.Writer, f publication.Facets) {
	for _, facet := range publication.FacetOrder {
		fmt.Fprintf(w, "%-11s %s\n", facet.Label()+":", strings.Join(f.Values(facet), ", "))
	}
}

func init() {
	addFilterFlags(publicationsCmd)
	publicationsCmd.Flags().Bool("json", false, "output as JSON (same shape as /api/publications)")
	publicationsCmd.Flags().Bool("facets", false, "print the values each facet can take")

	rootCmd.AddCommand(publicationsCmd)
}

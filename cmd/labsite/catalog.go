// Copyright LIMIT Lab, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/limitlab/labsite/internal/catalog"
	"github.com/limitlab/labsite/internal/content"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the SQLite publication catalog",
	Long: `Catalog keeps a SQLite copy of publications.yaml. With --source sqlite the
site reads publications from the catalog instead of the YAML file.`,
}

// --- import subcommand ---

var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import publications.yaml into the catalog",
	Long: `Import validates publications.yaml and replaces the catalog contents in
one transaction. An unchanged file is skipped unless --force is given.`,
	RunE: runCatalogImport,
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	if file == "" {
		file = filepath.Join(cfg.Content.Dir, content.PublicationsFile)
	}
	force, _ := cmd.Flags().GetBool("force")

	cat, err := catalog.Open(cfg.Content.DB)
	if err != nil {
		return err
	}
	defer cat.Close()

	_, err = cat.ImportFile(context.Background(), file, force, cmd.OutOrStdout())
	return err
}

// --- list subcommand ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogued publications in source order",
	RunE:  runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Open(cfg.Content.DB)
	if err != nil {
		return err
	}
	defer cat.Close()

	ctx := context.Background()
	pubs, err := cat.Publications(ctx)
	if err != nil {
		return err
	}
	stats, err := cat.Stats(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range pubs {
		fmt.Fprintf(out, "%4d  %-10s %d  %s\n", p.ID, p.Conference, p.Year, p.Title)
	}
	last := stats.LastImport
	if last == "" {
		last = "never"
	}
	fmt.Fprintf(out, "\n%d publications in %s (source modified %s)\n", stats.Publications, cfg.Content.DB, last)
	return nil
}

func init() {
	catalogImportCmd.Flags().String("file", "", "publications file (default: <content-dir>/publications.yaml)")
	catalogImportCmd.Flags().Bool("force", false, "import even if the file is unchanged")

	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}

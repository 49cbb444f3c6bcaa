// Copyright LIMIT Lab, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/limitlab/labsite/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export filtered publications as YAML, JSON, or CSL-YAML",
	Long: `Export writes the publications that pass the filter flags. YAML output
has the same shape as content/publications.yaml; CSL-YAML can be read by
Pandoc and reference managers.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	formatName, _ := cmd.Flags().GetString("format")
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	c, err := loadContent(context.Background(), cfg.Content)
	if err != nil {
		return err
	}
	pubs := c.Publications.Evaluate(filterFromFlags(cmd))

	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		return export.Write(cmd.OutOrStdout(), format, pubs)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	if err := export.Write(f, format, pubs); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", outPath, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d publications to %s\n", len(pubs), outPath)
	return nil
}

func init() {
	addFilterFlags(exportCmd)
	exportCmd.Flags().String("format", "yaml", "export format: yaml, json, or csl")
	exportCmd.Flags().String("out", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
}

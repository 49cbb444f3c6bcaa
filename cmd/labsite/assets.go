// Copyright LIMIT Lab, 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/limitlab/labsite/internal/assets"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Plan CDN paths for slides, posters, and other static files",
}

var assetsPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the versioned key, latest alias, and headers for a file",
	Long: `Plan computes where a file would be published on the CDN:

  {event}/{type}/{slug}_{version}_{hash}{-lang}{-variant}{ext}   cached for a year
  {event}/{type}/{slug}_latest{-lang}{-variant}{ext}              cached for 5 minutes

The hash is the first 12 hex digits of the file's SHA-256. PDFs are served
inline. Nothing is uploaded.`,
	RunE: runAssetsPlan,
}

func runAssetsPlan(cmd *cobra.Command, args []string) error {
	get := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	req := assets.Request{
		File:       get("file"),
		Event:      get("event"),
		Type:       get("type"),
		Slug:       get("slug"),
		VersionTag: get("version-tag"),
		Lang:       get("lang"),
		Variant:    get("variant"),
	}

	envName := get("env")
	env, err := assets.Resolve(cfg.Assets.Environments, envName)
	if err != nil {
		return err
	}

	plan, err := assets.NewPlan(req, envName, env)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format := get("format"); format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(plan)
	default:
		return fmt.Errorf("unknown format %q: use json or yaml", format)
	}
}

func init() {
	f := assetsPlanCmd.Flags()
	f.String("file", "", "path to the source file")
	f.String("event", "", "event id, e.g. iccv2025")
	f.String("type", "", "asset type code: s (slides), p (posters), r (reports), a (assets)")
	f.String("slug", "", "descriptive name")
	f.String("version-tag", "", `version tag starting with "v", e.g. v2025-10-19`)
	f.String("lang", "", "optional language suffix, e.g. ja")
	f.String("variant", "", "optional variant suffix, e.g. w1200")
	f.String("env", "dev", "target environment from assets.environments")
	f.String("format", "json", "output format: json or yaml")
	for _, name := range []string{"file", "event", "type", "slug", "version-tag"} {
		_ = assetsPlanCmd.MarkFlagRequired(name)
	}

	assetsCmd.AddCommand(assetsPlanCmd)
	rootCmd.AddCommand(assetsCmd)
}

// Copyright LIMIT Lab, 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limitlab/labsite/internal/assets"
	"github.com/limitlab/labsite/internal/publication"
	"github.com/limitlab/labsite/internal/web"
)

// --- test helpers ---

const samplePublications = `publications:
  - {id: 1, title: Alpha, authors: "A. One", conference: ECCV, year: 2024, field: CV}
  - {id: 2, title: Beta, authors: "B. Two", conference: CVPR WS, year: 2025, field: CV}
  - {id: 3, title: Gamma, authors: "C. Three", conference: ECCV, year: 2024, field: ML}
`

func contentDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "publications.yaml"), []byte(samplePublications), 0o644))
	return dir
}

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.Execute()
	return out.String(), err
}

// --- commands ---

func TestPublicationsCommand(t *testing.T) {
	dir := contentDir(t)
	out, err := run(t, "publications", "--content-dir", dir, "--conference", "ECCV")
	require.NoError(t, err)

	assert.Contains(t, out, "2 of 3 publications (conference=ECCV year=all field=all)")
	assert.Less(t, strings.Index(out, "Gamma"), strings.Index(out, "Alpha"), "newest first")
	assert.NotContains(t, out, "Beta")
}

func TestPublicationsNoMatch(t *testing.T) {
	dir := contentDir(t)
	out, err := run(t, "publications", "--content-dir", dir, "--conference", "ICCV")
	require.NoError(t, err)
	assert.Contains(t, out, "No publications match conference=ICCV")
}

func TestPublicationsJSON(t *testing.T) {
	dir := contentDir(t)
	out, err := run(t, "publications", "--content-dir", dir, "--year", "2024", "--json")
	require.NoError(t, err)

	var resp web.APIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 3, resp.Publications[0].ID)
}

func TestPublicationsFacets(t *testing.T) {
	dir := contentDir(t)
	out, err := run(t, "publications", "--content-dir", dir, "--facets")
	require.NoError(t, err)
	assert.Contains(t, out, "Conference: ECCV, CVPR WS")
	assert.Contains(t, out, "Year:       2024, 2025")
}

func TestCatalogSource(t *testing.T) {
	dir := contentDir(t)
	db := filepath.Join(dir, "index", "labsite.db")

	out, err := run(t, "catalog", "import", "--content-dir", dir, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "inserted: 3")

	out, err = run(t, "catalog", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "3 publications in")

	out, err = run(t, "publications", "--content-dir", dir, "--source", "sqlite", "--db", db, "--field", "CV")
	require.NoError(t, err)
	assert.Contains(t, out, "2 of 3 publications")
}

func TestSQLiteSourceWithoutCatalog(t *testing.T) {
	dir := contentDir(t)
	_, err := run(t, "publications", "--content-dir", dir, "--source", "sqlite", "--db", filepath.Join(dir, "none.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog import")
}

func TestUnknownSource(t *testing.T) {
	_, err := run(t, "publications", "--source", "postgres")
	require.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	dir := contentDir(t)
	outFile := filepath.Join(t.TempDir(), "pubs.yaml")
	_, err := run(t, "export", "--content-dir", dir, "--format", "csl", "--out", outFile, "--conference", "CVPR WS")
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "container-title: CVPR WS")
	assert.NotContains(t, string(data), "ECCV")
}

func TestBuildAndCheckCommands(t *testing.T) {
	dir := contentDir(t)
	out := filepath.Join(t.TempDir(), "out")

	stdout, err := run(t, "build", "--content-dir", dir, "--out", out, "--check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "3 pages")
	assert.Contains(t, stdout, "0 broken")

	require.NoError(t, os.WriteFile(filepath.Join(out, "extra.html"), []byte(`<a href="/missing/">x</a>`), 0o644))
	stdout, err = run(t, "check", out)
	require.Error(t, err)
	assert.Contains(t, stdout, "/missing/")
}

func TestAssetsPlanCommand(t *testing.T) {
	file := filepath.Join(t.TempDir(), "talk.pdf")
	require.NoError(t, os.WriteFile(file, []byte("hello"), 0o644))

	out, err := run(t, "assets", "plan", "--file", file, "--event", "iccv2025", "--type", "s",
		"--slug", "talk", "--version-tag", "v1.0.0", "--lang", "ja", "--env", "prod")
	require.NoError(t, err)

	var plan assets.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, "iccv2025/s/talk_v1.0.0_2cf24dba5fb0-ja.pdf", plan.Versioned.Key)
	assert.Equal(t, "https://cdn.limitlab.xyz/iccv2025/s/talk_latest-ja.pdf", plan.Latest.URL)

	_, err = run(t, "assets", "plan", "--file", file, "--event", "e", "--type", "s",
		"--slug", "talk", "--version-tag", "1.0.0")
	require.Error(t, err)
	assert.ErrorIs(t, err, assets.ErrInvalidVersionTag)
}

func TestInitCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "content")
	out, err := run(t, "init", "--content-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "publications.yaml")
	assert.FileExists(t, filepath.Join(dir, "site.yaml"))
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "labsite dev\n", out)
}

// --- helpers ---

func TestFilterFromFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	addFilterFlags(cmd)
	assert.Equal(t, publication.NewFilter(), filterFromFlags(cmd))

	require.NoError(t, cmd.Flags().Set("year", " 2024 "))
	require.NoError(t, cmd.Flags().Set("field", ""))
	f := filterFromFlags(cmd)
	assert.Equal(t, "2024", f.Year)
	assert.Equal(t, publication.All, f.Field)
}

// --- source tree ---

const sourceHeader = "// Copyright LIMIT Lab, 2026. All rights reserved.\n"

func TestSourceFilesCarryHeader(t *testing.T) {
	root := filepath.Join("..", "..")
	var checked int
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "magefiles") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		checked++
		assert.True(t, strings.HasPrefix(string(data), sourceHeader), "%s lacks the copyright header", path)
		return nil
	})
	require.NoError(t, err)
	assert.Greater(t, checked, 0)
}

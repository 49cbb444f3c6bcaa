// Copyright LIMIT Lab, 2026. All rights reserved.

// Package site writes the static export: one directory per page holding
// index.html, the publications JSON, and the embedded assets. The result
// can be served by any static host.
package site

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/limitlab/labsite/internal/content"
	"github.com/limitlab/labsite/internal/nav"
	"github.com/limitlab/labsite/internal/publication"
	"github.com/limitlab/labsite/internal/theme"
	"github.com/limitlab/labsite/internal/web"
	"github.com/limitlab/labsite/pkg/types"
)

// APIFile is the exported publications JSON, relative to the output root.
const APIFile = "api/publications.json"

// Summary reports what a build wrote.
type Summary struct {
	OutDir       string
	Pages        int
	Assets       int
	Publications int
}

// Build renders c into cfg.OutDir using up to cfg.Workers goroutines.
// Existing files are overwritten; nothing else in the directory is touched.
func Build(ctx context.Context, c *content.Content, cfg types.BuildConfig, logger *zap.Logger) (Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "out"
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return Summary{}, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory: %w", err)
	}

	var pages, assets atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, it := range nav.Pages {
		it := it
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := writePage(renderer, c, it, outDir); err != nil {
				return err
			}
			logger.Debug("wrote page", zap.String("path", it.Path))
			pages.Add(1)
			return nil
		})
	}

	g.Go(func() error {
		path := filepath.Join(outDir, filepath.FromSlash(APIFile))
		return writeFile(path, func(f *os.File) error {
			return web.NewAPIResponse(c.Publications, publication.NewFilter()).WriteJSON(f)
		})
	})

	static := web.StaticFS()
	err = fs.WalkDir(static, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := fs.ReadFile(static, p)
			if err != nil {
				return fmt.Errorf("reading asset %s: %w", p, err)
			}
			dst := filepath.Join(outDir, "static", filepath.FromSlash(p))
			if err := writeFile(dst, func(f *os.File) error {
				_, err := f.Write(data)
				return err
			}); err != nil {
				return err
			}
			assets.Add(1)
			return nil
		})
		return nil
	})
	if err != nil {
		_ = g.Wait()
		return Summary{}, fmt.Errorf("walking assets: %w", err)
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	s := Summary{
		OutDir:       outDir,
		Pages:        int(pages.Load()),
		Assets:       int(assets.Load()),
		Publications: c.Publications.Len(),
	}
	logger.Info("site built",
		zap.String("out_dir", outDir),
		zap.Int("pages", s.Pages),
		zap.Int("assets", s.Assets),
		zap.Int("publications", s.Publications))
	return s, nil
}

// PagePath returns the index.html path for a page URL under outDir.
func PagePath(outDir, urlPath string) string {
	rel := strings.Trim(urlPath, "/")
	return filepath.Join(outDir, filepath.FromSlash(rel), "index.html")
}

func writePage(r *web.Renderer, c *content.Content, it nav.Item, outDir string) error {
	data := web.NewPageData(c, it.Page, publication.NewFilter(), theme.System, false)
	data.Static = true
	return writeFile(PagePath(outDir, it.Path), func(f *os.File) error {
		return r.Render(f, data)
	})
}

func writeFile(path string, write func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
